package models

import "time"

// RunConfig represents the parsed run.yaml manifest driving a sweep run.
type RunConfig struct {
	Name          *string  `yaml:"name,omitempty" json:"name,omitempty"`
	ResultsDir    string   `yaml:"results_dir" json:"results_dir"`
	Backend       string   `yaml:"backend" json:"backend"`
	StoreConfig   *string  `yaml:"store_config,omitempty" json:"store_config,omitempty"`
	Identifiers   []string `yaml:"identifiers,omitempty" json:"identifiers,omitempty"`
	Families      []string `yaml:"families,omitempty" json:"families,omitempty"`
	NParallel     int      `yaml:"n_parallel" json:"n_parallel"`
	AgentSeed     int64    `yaml:"agent_seed" json:"agent_seed"`
	ProgressEvery int      `yaml:"progress_every" json:"progress_every"`

	// EpisodeCap optionally truncates each identifier's episode budget for
	// smoke runs ("10k", "500"). A capped run undercounts results and is
	// not comparable to published sweeps.
	EpisodeCap string `yaml:"episode_cap,omitempty" json:"episode_cap,omitempty"`
}

// StoreConfig represents the parsed store.toml tuning for the shared
// appendable store.
type StoreConfig struct {
	Path        string `toml:"path"`
	Bucket      string `toml:"bucket"`
	LockTimeout string `toml:"lock_timeout"` // default: "10s"
}

// RunSummary contains aggregate statistics across all identifiers of a run.
type RunSummary struct {
	RunName          string             `json:"run_name"`
	Backend          string             `json:"backend"`
	Cancelled        bool               `json:"cancelled"`
	TotalIdentifiers int                `json:"total_identifiers"`
	TotalEpisodes    int                `json:"total_episodes"`
	TotalSteps       int                `json:"total_steps"`
	TotalDurationSec float64            `json:"total_duration_sec"`
	StartedAt        time.Time          `json:"started_at"`
	EndedAt          time.Time          `json:"ended_at"`
	Results          []IdentifierResult `json:"results"`
}

// IdentifierResult summarizes one identifier's run.
type IdentifierResult struct {
	BsuiteID    string  `json:"bsuite_id"`
	Episodes    int     `json:"episodes"`
	Steps       int     `json:"steps"`
	MeanReturn  float64 `json:"mean_return"`
	DurationSec float64 `json:"duration_sec"`
	Error       *string `json:"error,omitempty"`
}
