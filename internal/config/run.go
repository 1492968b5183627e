package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rlbench/bsuite/internal/models"
)

// DefaultRunConfig returns a RunConfig with default values.
func DefaultRunConfig() models.RunConfig {
	return models.RunConfig{
		ResultsDir:    "results",
		Backend:       "csv",
		NParallel:     1,
		ProgressEvery: 100,
	}
}

// LoadRunConfig loads and parses a run.yaml manifest.
func LoadRunConfig(path string) (models.RunConfig, error) {
	cfg := DefaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing run config: %w", err)
	}

	if len(cfg.Identifiers) > 0 && len(cfg.Families) > 0 {
		return cfg, fmt.Errorf("cannot specify both 'identifiers' and 'families'")
	}

	// Apply defaults for missing values
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = "results"
	}
	if cfg.Backend == "" {
		cfg.Backend = "csv"
	}
	if cfg.NParallel == 0 {
		cfg.NParallel = 1
	}
	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = 100
	}

	return cfg, nil
}
