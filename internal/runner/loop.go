package runner

import (
	"context"

	"github.com/rlbench/bsuite/internal/logging"
)

// Stats aggregates the driving loop's view of a run. The authoritative
// per-episode data lives in the sink; these figures feed the run summary.
type Stats struct {
	Episodes    int
	Steps       int
	TotalReturn float64
}

// MeanReturn is the mean episode return over completed episodes.
func (s Stats) MeanReturn() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return s.TotalReturn / float64(s.Episodes)
}

// RunEpisodes drives the instrumented environment through n complete
// reset/step-to-termination cycles. It stops early on context cancellation
// (the in-flight episode is lost, by contract) or on the first error from the
// environment or its sink, returning the statistics accumulated so far.
func RunEpisodes(ctx context.Context, e *logging.Instrumented, agent Agent, n int) (Stats, error) {
	var stats Stats
	spec := e.ActionSpec()

	for ep := 0; ep < n; ep++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		obs, err := e.Reset()
		if err != nil {
			return stats, err
		}

		for {
			ts, err := e.Step(agent.SelectAction(obs, spec))
			if err != nil {
				return stats, err
			}
			obs = ts.Observation
			stats.Steps++
			stats.TotalReturn += ts.Reward
			if ts.Done {
				break
			}
		}
		stats.Episodes++
	}

	return stats, nil
}
