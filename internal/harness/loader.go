// Package harness composes the sweep registry, the environment factory, and a
// result-sink backend into an instrumented environment ready to be driven.
package harness

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rlbench/bsuite/internal/logging"
	"github.com/rlbench/bsuite/internal/sweep"
)

// Config carries the backend-specific destinations for Load.
type Config struct {
	// ResultsDir is the per-identifier file store destination directory.
	ResultsDir string

	// StorePath and Bucket locate the shared appendable store.
	StorePath string
	Bucket    string

	// LockTimeout bounds shared-store lock acquisition per append.
	LockTimeout time.Duration

	// ProgressEvery is the terminal sink's reporting interval in episodes.
	ProgressEvery int

	// Out receives terminal progress lines; defaults to os.Stdout.
	Out io.Writer

	// Echo additionally prints progress lines alongside a durable backend.
	Echo bool
}

// Load resolves an identifier, builds its environment, opens a sink of the
// requested kind, and returns the instrumented wrapper bound to it. Failures
// from the lower layers propagate unmasked.
func Load(sw *sweep.Sweep, bsuiteID string, backend Backend, cfg Config) (*logging.Instrumented, error) {
	entry, err := sw.Resolve(bsuiteID)
	if err != nil {
		return nil, err
	}

	e, err := Build(entry)
	if err != nil {
		return nil, err
	}

	sink, err := openSink(bsuiteID, backend, cfg)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded environment",
		"bsuite_id", bsuiteID,
		"backend", backend.String(),
		"episode_budget", e.EpisodeBudget())

	return logging.Wrap(e, bsuiteID, sink), nil
}

func openSink(bsuiteID string, backend Backend, cfg Config) (logging.Sink, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	var durable logging.Sink
	switch backend {
	case BackendCSV:
		s, err := logging.NewCSVSink(cfg.ResultsDir, bsuiteID)
		if err != nil {
			return nil, fmt.Errorf("opening csv sink: %w", err)
		}
		durable = s
	case BackendBolt:
		if cfg.StorePath == "" {
			return nil, fmt.Errorf("bolt backend requires a store path")
		}
		durable = logging.NewBoltSink(cfg.StorePath, cfg.Bucket, cfg.LockTimeout)
	case BackendTerm:
		return logging.NewTermSink(out, cfg.ProgressEvery), nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	if cfg.Echo {
		return logging.MultiSink(durable, logging.NewTermSink(out, cfg.ProgressEvery)), nil
	}
	return durable, nil
}
