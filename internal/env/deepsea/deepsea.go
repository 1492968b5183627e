// Package deepsea implements the deep-sea exploration chain: an NxN grid
// descended one row per step. Moving right costs a small penalty and only a
// full run of rightward moves reaches the rewarding bottom-right cell, making
// the task a targeted probe of deep exploration.
package deepsea

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rlbench/bsuite/internal/env"
	"github.com/rlbench/bsuite/internal/models"
)

const (
	defaultSize        = 10
	episodesPerCell    = 1000
	defaultMoveCost    = 0.01
	defaultFinalReward = 1.0
)

// Actions.
const (
	ActionLeft = iota
	ActionRight
)

type deepSeaEnv struct {
	size   int
	budget int

	row, col int
	active   bool
}

// New constructs a deep-sea environment from a settings entry. Recognized
// parameters: "size" (default 10), "num_episodes" (default size*1000).
// Dynamics are deterministic; no seed is consumed.
func New(s models.Settings) (env.Environment, error) {
	size := s.IntOr("size", defaultSize)
	if size < 2 {
		return nil, fmt.Errorf("deep_sea: size must be >= 2, got %d: %w", size, models.ErrInvalidSettings)
	}
	// Larger boards need proportionally more episodes for comparable
	// exploration statistics.
	budget := s.IntOr("num_episodes", size*episodesPerCell)
	if budget <= 0 {
		return nil, fmt.Errorf("deep_sea: num_episodes must be positive, got %d: %w", budget, models.ErrInvalidSettings)
	}

	return &deepSeaEnv{size: size, budget: budget}, nil
}

func (d *deepSeaEnv) Reset() (mat.Vector, error) {
	return d.reset(), nil
}

func (d *deepSeaEnv) reset() mat.Vector {
	d.row, d.col = 0, 0
	d.active = true
	return d.observation()
}

func (d *deepSeaEnv) Step(action int) (env.TimeStep, error) {
	if action != ActionLeft && action != ActionRight {
		return env.TimeStep{}, fmt.Errorf("deep_sea: action %d out of range [0, 2)", action)
	}
	if !d.active {
		d.reset()
	}

	reward := 0.0
	if action == ActionRight {
		d.col = min(d.col+1, d.size-1)
		reward -= defaultMoveCost / float64(d.size)
	} else if d.col > 0 {
		d.col--
	}
	d.row++

	if d.row == d.size {
		d.active = false
		if d.col == d.size-1 {
			reward += defaultFinalReward
		}
		return env.TimeStep{Observation: d.observation(), Reward: reward, Done: true}, nil
	}

	return env.TimeStep{Observation: d.observation(), Reward: reward}, nil
}

// observation is a one-hot encoding of the agent's cell; all zeros once the
// submarine has left the board (terminal step).
func (d *deepSeaEnv) observation() mat.Vector {
	obs := mat.NewVecDense(d.size*d.size, nil)
	if d.row < d.size {
		obs.SetVec(d.row*d.size+d.col, 1)
	}
	return obs
}

func (d *deepSeaEnv) ActionSpec() env.ActionSpec {
	return env.ActionSpec{Num: 2}
}

func (d *deepSeaEnv) ObservationSpec() env.ObservationSpec {
	return env.ObservationSpec{Shape: []int{d.size, d.size}}
}

func (d *deepSeaEnv) EpisodeBudget() int {
	return d.budget
}
