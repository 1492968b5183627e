package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rlbench/bsuite/internal/runner"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bsuite <run.yaml>")
		os.Exit(1)
	}

	configPath := os.Args[1]

	// Setup context with manual signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	defer func() {
		signal.Stop(sigChan)
		cancel()
	}()

	go func() {
		sig := <-sigChan
		slog.Info("interrupt received, shutting down gracefully...", "signal", sig)
		cancel()
	}()

	summary, err := runner.RunFromConfig(ctx, configPath)
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	// Print summary
	fmt.Printf("\nRun: %s\n", summary.RunName)
	fmt.Printf("Backend: %s\n", summary.Backend)
	fmt.Printf("Identifiers: %d\n", summary.TotalIdentifiers)
	fmt.Printf("Episodes: %d\n", summary.TotalEpisodes)
	fmt.Printf("Steps: %d\n", summary.TotalSteps)
	fmt.Printf("Duration: %.2fs\n", summary.TotalDurationSec)

	if summary.Cancelled {
		os.Exit(1)
	}
}
