package env

import (
	"math/rand"

	"github.com/rlbench/bsuite/internal/models"
)

// NewRand returns the RNG for a settings entry. A "seed" parameter fully
// determines the stream; without one, entropy is drawn from the process-wide
// source.
func NewRand(s models.Settings) *rand.Rand {
	if seed, ok := s.Int("seed"); ok {
		return rand.New(rand.NewSource(int64(seed)))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
