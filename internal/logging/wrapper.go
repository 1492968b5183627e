package logging

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/rlbench/bsuite/internal/env"
	"github.com/rlbench/bsuite/internal/models"
)

// Instrumented decorates an environment so that every completed episode emits
// exactly one record to the bound sink. Observations, rewards, termination
// signals, and errors from the wrapped environment pass through unaltered.
// Only one episode's accumulators are ever held in memory, so a run of tens
// of thousands of episodes stays bounded.
type Instrumented struct {
	inner env.Environment
	id    string
	sink  Sink

	episode    int
	inEpisode  bool
	epReturn   float64
	epLen      int
	totalSteps int
}

// Wrap binds an environment to a sink under a bsuite identifier.
func Wrap(e env.Environment, bsuiteID string, sink Sink) *Instrumented {
	return &Instrumented{inner: e, id: bsuiteID, sink: sink}
}

// Reset starts a new episode. If the previous episode never terminated, its
// partial statistics are flushed first with the incomplete flag set — they
// consume a sequence number but are excluded from completed-episode analysis.
func (w *Instrumented) Reset() (mat.Vector, error) {
	if w.inEpisode {
		if err := w.flush(true); err != nil {
			return nil, err
		}
	}

	obs, err := w.inner.Reset()
	if err != nil {
		return obs, err
	}

	w.epReturn = 0
	w.epLen = 0
	w.inEpisode = true
	return obs, nil
}

// Step forwards the action to the wrapped environment and accumulates
// statistics. When the underlying environment signals termination, the
// episode record is appended durably before Step returns.
func (w *Instrumented) Step(action int) (env.TimeStep, error) {
	if !w.inEpisode {
		return env.TimeStep{}, fmt.Errorf("step on %s: %w", w.id, models.ErrEnvironmentNotReset)
	}

	ts, err := w.inner.Step(action)
	if err != nil {
		// Agent-environment interaction bugs are never masked here.
		return ts, err
	}

	w.epReturn += ts.Reward
	w.epLen++
	w.totalSteps++

	if ts.Done {
		if err := w.flush(false); err != nil {
			return ts, err
		}
	}
	return ts, nil
}

func (w *Instrumented) flush(incomplete bool) error {
	rec := models.Record{
		BsuiteID:   w.id,
		Episode:    w.episode,
		Steps:      w.totalSteps,
		EpisodeLen: w.epLen,
		Return:     w.epReturn,
		Incomplete: incomplete,
		WallTime:   time.Now(),
	}

	// Advance the state machine before the durable write: a failed append
	// must not cause the same sequence number to be issued twice.
	w.episode++
	w.inEpisode = false

	return w.sink.Append(rec)
}

func (w *Instrumented) ActionSpec() env.ActionSpec {
	return w.inner.ActionSpec()
}

func (w *Instrumented) ObservationSpec() env.ObservationSpec {
	return w.inner.ObservationSpec()
}

func (w *Instrumented) EpisodeBudget() int {
	return w.inner.EpisodeBudget()
}

// Close releases the bound sink.
func (w *Instrumented) Close() error {
	return w.sink.Close()
}
