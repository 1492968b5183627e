// Package env defines the capability interface the harness requires from an
// environment. The instrumentation layer depends only on this contract and
// never inspects a concrete environment type.
package env

import "gonum.org/v1/gonum/mat"

// TimeStep is the result of one environment transition.
type TimeStep struct {
	Observation mat.Vector
	Reward      float64
	Done        bool
	Extra       map[string]any
}

// ActionSpec declares a discrete action space of Num actions, 0..Num-1.
type ActionSpec struct {
	Num int
}

// ObservationSpec declares the shape of observation vectors. Observations
// are flattened row-major into a vector of Len() elements.
type ObservationSpec struct {
	Shape []int
}

// Len returns the number of elements in a flattened observation.
func (o ObservationSpec) Len() int {
	n := 1
	for _, d := range o.Shape {
		n *= d
	}
	return n
}

// Environment is a step-based simulated task.
type Environment interface {
	// Reset starts a new episode and returns the initial observation.
	// Concrete environments never fail here; instrumentation layers use
	// the error to surface a failed flush of an abandoned episode.
	Reset() (mat.Vector, error)

	// Step applies a discrete action and returns the resulting timestep.
	// Errors (e.g. an out-of-range action) pass through instrumentation
	// unchanged.
	Step(action int) (TimeStep, error)

	// ActionSpec returns the static action space declaration.
	ActionSpec() ActionSpec

	// ObservationSpec returns the static observation space declaration.
	ObservationSpec() ObservationSpec

	// EpisodeBudget returns the fixed number of episodes prescribed for
	// this configuration. A comparable benchmark run consumes exactly
	// this many episodes.
	EpisodeBudget() int
}
