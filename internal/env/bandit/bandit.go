// Package bandit implements a Bernoulli multi-armed bandit. Each episode is a
// single pull: the environment terminates after one step with reward 1 with
// probability proportional to the chosen arm's index, optionally perturbed by
// Gaussian noise.
package bandit

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/rlbench/bsuite/internal/env"
	"github.com/rlbench/bsuite/internal/models"
)

const (
	defaultArms     = 11
	defaultEpisodes = 10000
)

type banditEnv struct {
	probs  []float64
	noise  float64
	rng    *rand.Rand
	budget int
}

// New constructs a bandit from a settings entry. Recognized parameters:
// "arms" (default 11), "noise_scale" (default 0), "seed", "num_episodes"
// (default 10000).
func New(s models.Settings) (env.Environment, error) {
	arms := s.IntOr("arms", defaultArms)
	if arms < 2 {
		return nil, fmt.Errorf("bandit: arms must be >= 2, got %d: %w", arms, models.ErrInvalidSettings)
	}
	noise := s.FloatOr("noise_scale", 0)
	if noise < 0 {
		return nil, fmt.Errorf("bandit: noise_scale must be >= 0, got %g: %w", noise, models.ErrInvalidSettings)
	}
	budget := s.IntOr("num_episodes", defaultEpisodes)
	if budget <= 0 {
		return nil, fmt.Errorf("bandit: num_episodes must be positive, got %d: %w", budget, models.ErrInvalidSettings)
	}

	probs := make([]float64, arms)
	for i := range probs {
		probs[i] = float64(i) / float64(arms-1)
	}

	return &banditEnv{
		probs:  probs,
		noise:  noise,
		rng:    env.NewRand(s),
		budget: budget,
	}, nil
}

func (b *banditEnv) Reset() (mat.Vector, error) {
	return mat.NewVecDense(1, nil), nil
}

func (b *banditEnv) Step(action int) (env.TimeStep, error) {
	if action < 0 || action >= len(b.probs) {
		return env.TimeStep{}, fmt.Errorf("bandit: action %d out of range [0, %d)", action, len(b.probs))
	}

	reward := 0.0
	if b.rng.Float64() < b.probs[action] {
		reward = 1.0
	}
	if b.noise > 0 {
		reward += b.noise * b.rng.NormFloat64()
	}

	return env.TimeStep{
		Observation: mat.NewVecDense(1, nil),
		Reward:      reward,
		Done:        true,
	}, nil
}

func (b *banditEnv) ActionSpec() env.ActionSpec {
	return env.ActionSpec{Num: len(b.probs)}
}

func (b *banditEnv) ObservationSpec() env.ObservationSpec {
	return env.ObservationSpec{Shape: []int{1}}
}

func (b *banditEnv) EpisodeBudget() int {
	return b.budget
}
