package config

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rlbench/bsuite/internal/models"
	"github.com/rlbench/bsuite/internal/util"
)

// DefaultStoreConfig returns a StoreConfig with default values.
func DefaultStoreConfig() models.StoreConfig {
	return models.StoreConfig{
		Path:        "results/bsuite.db",
		Bucket:      "episodes",
		LockTimeout: "10s",
	}
}

// LoadStoreConfig loads and parses a store config TOML file from the given
// filesystem.
func LoadStoreConfig(fsys fs.FS, name string) (models.StoreConfig, error) {
	cfg := DefaultStoreConfig()

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", name, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", name, err)
	}

	// An explicitly empty lock_timeout means "use the default", not "no
	// bound on lock acquisition".
	if md.IsDefined("lock_timeout") && cfg.LockTimeout == "" {
		cfg.LockTimeout = "10s"
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "episodes"
	}

	if _, err := util.ParseTimeout(cfg.LockTimeout); err != nil {
		return cfg, fmt.Errorf("parsing lock_timeout %q: %w", cfg.LockTimeout, err)
	}

	return cfg, nil
}

// LockTimeout returns the parsed lock-acquisition bound.
func LockTimeout(cfg models.StoreConfig) (time.Duration, error) {
	return util.ParseTimeout(cfg.LockTimeout)
}
