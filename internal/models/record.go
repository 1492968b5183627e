package models

import "time"

// Record is one row of per-episode statistics. Records for a given
// identifier form a sequence ordered by Episode with no duplicates and, under
// correct operation, no gaps; a process killed mid-run loses only the
// in-flight episode.
type Record struct {
	// BsuiteID is the identifier of the configuration that produced this
	// episode, e.g. "catch/0".
	BsuiteID string `json:"bsuite_id"`

	// RunID distinguishes independent runs multiplexed into a shared store.
	RunID string `json:"run_id"`

	// Episode is the 0-based episode sequence number within the run.
	Episode int `json:"episode"`

	// Steps is the cumulative step count across the whole run, including
	// this episode.
	Steps int `json:"steps"`

	// EpisodeLen is the number of steps taken within this episode.
	EpisodeLen int `json:"episode_len"`

	// Return is the sum of rewards over this episode.
	Return float64 `json:"return"`

	// Incomplete marks an episode flushed by a premature Reset before the
	// environment signalled termination.
	Incomplete bool `json:"incomplete"`

	// WallTime is when the episode was committed.
	WallTime time.Time `json:"wall_time"`
}

// RecordColumns is the stable column order shared by every tabular backend.
var RecordColumns = []string{
	"bsuite_id",
	"run_id",
	"episode",
	"steps",
	"episode_len",
	"return",
	"incomplete",
	"wall_time",
}
