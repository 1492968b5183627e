// Package umbrella implements the umbrella-chain credit-assignment task. The
// need for an umbrella is only observable on the first step, the choice only
// matters on the first step, and the reward for the choice arrives after a
// configurable chain of irrelevant steps.
package umbrella

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/rlbench/bsuite/internal/env"
	"github.com/rlbench/bsuite/internal/models"
)

const (
	defaultChainLength = 10
	defaultEpisodes    = 10000
)

// Actions.
const (
	ActionLeaveUmbrella = iota
	ActionTakeUmbrella
)

type umbrellaEnv struct {
	chain  int
	budget int

	t      int
	need   bool
	have   bool
	active bool

	rng *rand.Rand
}

// New constructs an umbrella-chain environment from a settings entry.
// Recognized parameters: "chain_length" (default 10), "seed", "num_episodes"
// (default 10000).
func New(s models.Settings) (env.Environment, error) {
	chain := s.IntOr("chain_length", defaultChainLength)
	if chain < 1 {
		return nil, fmt.Errorf("umbrella_length: chain_length must be >= 1, got %d: %w", chain, models.ErrInvalidSettings)
	}
	budget := s.IntOr("num_episodes", defaultEpisodes)
	if budget <= 0 {
		return nil, fmt.Errorf("umbrella_length: num_episodes must be positive, got %d: %w", budget, models.ErrInvalidSettings)
	}

	return &umbrellaEnv{
		chain:  chain,
		budget: budget,
		rng:    env.NewRand(s),
	}, nil
}

func (u *umbrellaEnv) Reset() (mat.Vector, error) {
	return u.reset(), nil
}

func (u *umbrellaEnv) reset() mat.Vector {
	u.t = 0
	u.need = u.rng.Intn(2) == 1
	u.have = false
	u.active = true
	return u.observation()
}

func (u *umbrellaEnv) Step(action int) (env.TimeStep, error) {
	if action != ActionLeaveUmbrella && action != ActionTakeUmbrella {
		return env.TimeStep{}, fmt.Errorf("umbrella_length: action %d out of range [0, 2)", action)
	}
	if !u.active {
		u.reset()
	}

	if u.t == 0 {
		u.have = action == ActionTakeUmbrella
	}
	u.t++

	if u.t == u.chain {
		u.active = false
		reward := -1.0
		if u.have == u.need {
			reward = 1.0
		}
		return env.TimeStep{Observation: u.observation(), Reward: reward, Done: true}, nil
	}

	return env.TimeStep{Observation: u.observation()}, nil
}

// observation features: whether rain is forecast (visible only before the
// first action), whether the umbrella is held, and time remaining in the
// chain, scaled to [0, 1].
func (u *umbrellaEnv) observation() mat.Vector {
	obs := mat.NewVecDense(3, nil)
	if u.t == 0 && u.need {
		obs.SetVec(0, 1)
	}
	if u.have {
		obs.SetVec(1, 1)
	}
	obs.SetVec(2, 1-float64(u.t)/float64(u.chain))
	return obs
}

func (u *umbrellaEnv) ActionSpec() env.ActionSpec {
	return env.ActionSpec{Num: 2}
}

func (u *umbrellaEnv) ObservationSpec() env.ObservationSpec {
	return env.ObservationSpec{Shape: []int{3}}
}

func (u *umbrellaEnv) EpisodeBudget() int {
	return u.budget
}
