package runner

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/rlbench/bsuite/internal/env"
)

// Agent selects actions for the driving loop. Real agents live outside this
// repository; the harness only needs this boundary.
type Agent interface {
	SelectAction(obs mat.Vector, spec env.ActionSpec) int
}

// randomAgent samples uniformly from the action space. It is the baseline
// used by the CLI when no external agent drives the environment.
type randomAgent struct {
	rng *rand.Rand
}

// Random creates a uniform-random agent with its own seeded stream.
func Random(seed int64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) SelectAction(_ mat.Vector, spec env.ActionSpec) int {
	return a.rng.Intn(spec.Num)
}
