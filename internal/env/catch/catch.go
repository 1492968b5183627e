// Package catch implements the falling-ball catch task. A ball drops one row
// per step from a random top column; the agent shifts a paddle along the
// bottom row and receives +1 for catching the ball, -1 for missing it.
package catch

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/rlbench/bsuite/internal/env"
	"github.com/rlbench/bsuite/internal/models"
)

const (
	defaultRows     = 10
	defaultColumns  = 5
	defaultEpisodes = 10000
)

// Actions.
const (
	ActionLeft = iota
	ActionStay
	ActionRight
)

type catchEnv struct {
	rows, cols int
	budget     int

	ballRow   int
	ballCol   int
	paddleCol int
	active    bool

	rng *rand.Rand
}

// New constructs a catch environment from a settings entry. Recognized
// parameters: "rows" (default 10), "columns" (default 5), "seed",
// "num_episodes" (default 10000).
func New(s models.Settings) (env.Environment, error) {
	rows := s.IntOr("rows", defaultRows)
	cols := s.IntOr("columns", defaultColumns)
	if rows < 2 || cols < 1 {
		return nil, fmt.Errorf("catch: board %dx%d too small: %w", rows, cols, models.ErrInvalidSettings)
	}
	budget := s.IntOr("num_episodes", defaultEpisodes)
	if budget <= 0 {
		return nil, fmt.Errorf("catch: num_episodes must be positive, got %d: %w", budget, models.ErrInvalidSettings)
	}

	return &catchEnv{
		rows:   rows,
		cols:   cols,
		budget: budget,
		rng:    env.NewRand(s),
	}, nil
}

func (c *catchEnv) Reset() (mat.Vector, error) {
	return c.reset(), nil
}

func (c *catchEnv) reset() mat.Vector {
	c.ballRow = 0
	c.ballCol = c.rng.Intn(c.cols)
	c.paddleCol = c.cols / 2
	c.active = true
	return c.observation()
}

func (c *catchEnv) Step(action int) (env.TimeStep, error) {
	if action < ActionLeft || action > ActionRight {
		return env.TimeStep{}, fmt.Errorf("catch: action %d out of range [0, 3)", action)
	}
	if !c.active {
		c.reset()
	}

	c.paddleCol = clamp(c.paddleCol+action-1, 0, c.cols-1)
	c.ballRow++

	if c.ballRow == c.rows-1 {
		c.active = false
		reward := -1.0
		if c.ballCol == c.paddleCol {
			reward = 1.0
		}
		return env.TimeStep{Observation: c.observation(), Reward: reward, Done: true}, nil
	}

	return env.TimeStep{Observation: c.observation()}, nil
}

func (c *catchEnv) observation() mat.Vector {
	obs := mat.NewVecDense(c.rows*c.cols, nil)
	obs.SetVec(c.ballRow*c.cols+c.ballCol, 1)
	obs.SetVec((c.rows-1)*c.cols+c.paddleCol, 1)
	return obs
}

func (c *catchEnv) ActionSpec() env.ActionSpec {
	return env.ActionSpec{Num: 3}
}

func (c *catchEnv) ObservationSpec() env.ObservationSpec {
	return env.ObservationSpec{Shape: []int{c.rows, c.cols}}
}

func (c *catchEnv) EpisodeBudget() int {
	return c.budget
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
