package harness

import (
	"fmt"

	"github.com/rlbench/bsuite/internal/env"
	"github.com/rlbench/bsuite/internal/env/bandit"
	"github.com/rlbench/bsuite/internal/env/catch"
	"github.com/rlbench/bsuite/internal/env/deepsea"
	"github.com/rlbench/bsuite/internal/env/umbrella"
	"github.com/rlbench/bsuite/internal/models"
	"github.com/rlbench/bsuite/internal/sweep"
)

// constructors maps each registered family to its environment constructor.
// Every family in the sweep must have an entry here.
var constructors = map[string]func(models.Settings) (env.Environment, error){
	"bandit":          bandit.New,
	"bandit_noise":    bandit.New,
	"catch":           catch.New,
	"deep_sea":        deepsea.New,
	"umbrella_length": umbrella.New,
}

// Build constructs the base environment for a resolved sweep entry. The
// returned environment carries its computed episode budget.
func Build(entry sweep.Entry) (env.Environment, error) {
	construct, ok := constructors[entry.Family]
	if !ok {
		return nil, fmt.Errorf("no constructor for family %q: %w", entry.Family, models.ErrUnknownIdentifier)
	}

	e, err := construct(entry.Settings)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", sweep.Identifier(entry.Family, entry.Index), err)
	}
	return e, nil
}
