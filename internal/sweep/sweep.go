// Package sweep defines the fixed benchmark sweep: every registered
// environment family, its ordered settings list, and the identifier scheme
// selecting one configuration. The sweep is built once and never mutated;
// changing its contents invalidates comparability with previously published
// runs.
package sweep

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rlbench/bsuite/internal/models"
)

// Entry is a resolved identifier: one settings entry of one family.
type Entry struct {
	Family   string
	Index    int
	Settings models.Settings
}

// Sweep is the immutable registry of all benchmark configurations. Construct
// it with New and pass it by reference; there is no package-level state.
type Sweep struct {
	families []string
	settings map[string][]models.Settings
	ids      []string
}

// New builds the full sweep. Families and settings are enumerated in a fixed
// order so that All is stable across runs.
func New() *Sweep {
	s := &Sweep{settings: make(map[string][]models.Settings)}

	var banditSettings []models.Settings
	for seed := 0; seed < 20; seed++ {
		banditSettings = append(banditSettings, models.Settings{"seed": seed})
	}
	s.add("bandit", banditSettings)

	var banditNoiseSettings []models.Settings
	for _, scale := range []float64{0.1, 0.3, 1.0} {
		for seed := 0; seed < 3; seed++ {
			banditNoiseSettings = append(banditNoiseSettings, models.Settings{
				"noise_scale": scale,
				"seed":        seed,
			})
		}
	}
	s.add("bandit_noise", banditNoiseSettings)

	var catchSettings []models.Settings
	for seed := 0; seed < 20; seed++ {
		catchSettings = append(catchSettings, models.Settings{"seed": seed})
	}
	s.add("catch", catchSettings)

	var deepSeaSettings []models.Settings
	for _, size := range []int{10, 20, 30, 40, 50} {
		deepSeaSettings = append(deepSeaSettings, models.Settings{"size": size})
	}
	s.add("deep_sea", deepSeaSettings)

	var umbrellaSettings []models.Settings
	for chain := 1; chain <= 20; chain++ {
		umbrellaSettings = append(umbrellaSettings, models.Settings{
			"chain_length": chain,
			"seed":         chain,
		})
	}
	s.add("umbrella_length", umbrellaSettings)

	return s
}

func (s *Sweep) add(family string, settings []models.Settings) {
	s.families = append(s.families, family)
	s.settings[family] = settings
	for i := range settings {
		s.ids = append(s.ids, Identifier(family, i))
	}
}

// Identifier formats the identifier string for a (family, index) pair.
func Identifier(family string, index int) string {
	return fmt.Sprintf("%s/%d", family, index)
}

// Resolve maps an identifier string to its registry entry. It fails with an
// error wrapping models.ErrUnknownIdentifier for a malformed identifier, an
// unregistered family, or an out-of-range index.
func (s *Sweep) Resolve(id string) (Entry, error) {
	family, idxStr, ok := strings.Cut(id, "/")
	if !ok {
		return Entry{}, fmt.Errorf("malformed identifier %q: %w", id, models.ErrUnknownIdentifier)
	}

	settings, ok := s.settings[family]
	if !ok {
		return Entry{}, fmt.Errorf("family %q not registered: %w", family, models.ErrUnknownIdentifier)
	}

	index, err := strconv.Atoi(idxStr)
	if err != nil || index < 0 {
		return Entry{}, fmt.Errorf("bad index %q in identifier %q: %w", idxStr, id, models.ErrUnknownIdentifier)
	}
	if index >= len(settings) {
		return Entry{}, fmt.Errorf("index %d out of range for family %q (%d entries): %w",
			index, family, len(settings), models.ErrUnknownIdentifier)
	}

	return Entry{
		Family:   family,
		Index:    index,
		Settings: settings[index].Clone(),
	}, nil
}

// All returns every identifier in the sweep, in registration order. The
// returned slice is a copy.
func (s *Sweep) All() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Family returns the identifiers of one family in index order, or nil if the
// family is not registered.
func (s *Sweep) Family(name string) []string {
	settings, ok := s.settings[name]
	if !ok {
		return nil
	}
	out := make([]string, len(settings))
	for i := range settings {
		out[i] = Identifier(name, i)
	}
	return out
}

// Families returns the registered family names in registration order.
func (s *Sweep) Families() []string {
	out := make([]string, len(s.families))
	copy(out, s.families)
	return out
}

// First identifiers of each family, derived from the identifier scheme.
var (
	Bandit      = Identifier("bandit", 0)
	BanditNoise = Identifier("bandit_noise", 0)
	Catch       = Identifier("catch", 0)
	DeepSea     = Identifier("deep_sea", 0)
	Umbrella    = Identifier("umbrella_length", 0)
)
