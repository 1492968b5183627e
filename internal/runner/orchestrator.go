// Package runner drives instrumented environments through their episode
// budgets: a single-identifier episode loop, a random baseline agent, and an
// orchestrator that runs many identifiers from a manifest.
package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rlbench/bsuite/internal/config"
	"github.com/rlbench/bsuite/internal/harness"
	"github.com/rlbench/bsuite/internal/models"
	"github.com/rlbench/bsuite/internal/sweep"
	"github.com/rlbench/bsuite/internal/util"
)

// Orchestrator runs a set of identifiers against one backend, each with its
// own loader, wrapper, and sink. The only resource runs can share is the
// shared store's file, which serializes itself.
type Orchestrator struct {
	cfg     models.RunConfig
	sw      *sweep.Sweep
	backend harness.Backend
	hcfg    harness.Config
}

// NewOrchestrator validates the run manifest against the sweep and prepares
// backend configuration.
func NewOrchestrator(cfg models.RunConfig, sw *sweep.Sweep) (*Orchestrator, error) {
	backend, err := harness.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	hcfg := harness.Config{
		ResultsDir:    cfg.ResultsDir,
		ProgressEvery: cfg.ProgressEvery,
	}

	if backend == harness.BackendBolt {
		store := config.DefaultStoreConfig()
		if cfg.StoreConfig != nil && *cfg.StoreConfig != "" {
			dir, name := filepath.Split(*cfg.StoreConfig)
			if dir == "" {
				dir = "."
			}
			store, err = config.LoadStoreConfig(os.DirFS(dir), name)
			if err != nil {
				return nil, fmt.Errorf("loading store config: %w", err)
			}
		}
		timeout, err := config.LockTimeout(store)
		if err != nil {
			return nil, err
		}
		hcfg.StorePath = store.Path
		hcfg.Bucket = store.Bucket
		hcfg.LockTimeout = timeout
	}

	return &Orchestrator{cfg: cfg, sw: sw, backend: backend, hcfg: hcfg}, nil
}

// Identifiers expands the manifest's selection against the sweep: an explicit
// list, a family filter, or the whole sweep.
func (o *Orchestrator) Identifiers() ([]string, error) {
	if len(o.cfg.Identifiers) > 0 {
		for _, id := range o.cfg.Identifiers {
			if _, err := o.sw.Resolve(id); err != nil {
				return nil, err
			}
		}
		return o.cfg.Identifiers, nil
	}

	if len(o.cfg.Families) > 0 {
		var ids []string
		for _, f := range o.cfg.Families {
			family := o.sw.Family(f)
			if family == nil {
				return nil, fmt.Errorf("family %q not registered: %w", f, models.ErrUnknownIdentifier)
			}
			ids = append(ids, family...)
		}
		return ids, nil
	}

	return o.sw.All(), nil
}

// Run executes every selected identifier, honoring n_parallel, and writes
// summary.json to the results directory.
func (o *Orchestrator) Run(ctx context.Context) (*models.RunSummary, error) {
	ids, err := o.Identifiers()
	if err != nil {
		return nil, err
	}

	epCap, err := util.ParseCount(o.cfg.EpisodeCap)
	if err != nil {
		return nil, fmt.Errorf("parsing episode_cap: %w", err)
	}

	runName := time.Now().Format("2006-01-02__15-04-05")
	if o.cfg.Name != nil {
		runName = *o.cfg.Name
	}

	if err := os.MkdirAll(o.cfg.ResultsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	slog.Info("starting run",
		"run", runName,
		"identifiers", len(ids),
		"backend", o.backend.String(),
		"n_parallel", o.cfg.NParallel)

	summary := &models.RunSummary{
		RunName:   runName,
		Backend:   o.backend.String(),
		StartedAt: time.Now(),
		Results:   make([]models.IdentifierResult, 0, len(ids)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.cfg.NParallel, 1))

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			res, err := o.runOne(gctx, id, o.cfg.AgentSeed+int64(i), epCap)
			mu.Lock()
			summary.Results = append(summary.Results, res)
			mu.Unlock()
			return err
		})
	}

	runErr := g.Wait()
	summary.EndedAt = time.Now()
	summary.TotalDurationSec = summary.EndedAt.Sub(summary.StartedAt).Seconds()
	summary.TotalIdentifiers = len(summary.Results)
	summary.Cancelled = errors.Is(runErr, context.Canceled)
	for _, r := range summary.Results {
		summary.TotalEpisodes += r.Episodes
		summary.TotalSteps += r.Steps
	}

	summaryJSON, _ := json.MarshalIndent(summary, "", "  ")
	if err := os.WriteFile(filepath.Join(o.cfg.ResultsDir, "summary.json"), summaryJSON, 0o644); err != nil {
		slog.Error("writing summary", "error", err)
	}

	if runErr != nil && !summary.Cancelled {
		return summary, runErr
	}
	return summary, nil
}

func (o *Orchestrator) runOne(ctx context.Context, id string, seed int64, epCap int) (models.IdentifierResult, error) {
	start := time.Now()
	res := models.IdentifierResult{BsuiteID: id}

	wrapped, err := harness.Load(o.sw, id, o.backend, o.hcfg)
	if err != nil {
		msg := err.Error()
		res.Error = &msg
		return res, err
	}
	defer wrapped.Close()

	n := wrapped.EpisodeBudget()
	if epCap > 0 && epCap < n {
		n = epCap
	}

	stats, err := RunEpisodes(ctx, wrapped, Random(seed), n)
	res.Episodes = stats.Episodes
	res.Steps = stats.Steps
	res.MeanReturn = stats.MeanReturn()
	res.DurationSec = time.Since(start).Seconds()
	if err != nil {
		msg := err.Error()
		res.Error = &msg
		return res, err
	}

	slog.Debug("identifier complete",
		"bsuite_id", id,
		"episodes", stats.Episodes,
		"mean_return", res.MeanReturn)
	return res, nil
}

// RunFromConfig loads a run manifest and executes the sweep it selects.
func RunFromConfig(ctx context.Context, configPath string) (*models.RunSummary, error) {
	cfg, err := config.LoadRunConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading run config: %w", err)
	}

	orchestrator, err := NewOrchestrator(cfg, sweep.New())
	if err != nil {
		return nil, fmt.Errorf("creating orchestrator: %w", err)
	}

	return orchestrator.Run(ctx)
}
