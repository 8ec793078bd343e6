package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lk16/othello-agent/internal/config"
	"github.com/lk16/othello-agent/internal/repository"
	"github.com/lk16/othello-agent/internal/shell"
	"github.com/rs/zerolog/log"
)

// Runs the agent vs random benchmark without prompts. Settings come from othello.yaml and
// OTHELLO_ environment variables.
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err = config.SetLogLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("Failed to set log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store shell.BenchmarkStore
	if cfg.PostgresURL != "" {
		repo, err := repository.OpenBenchmarkRepository(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open benchmark storage")
		}
		defer repo.Close()
		store = repo
	}

	if err = shell.RunBenchmark(ctx, cfg, os.Stdout, store); err != nil {
		log.Error().Err(err).Msg("Benchmark failed")
		os.Exit(1)
	}
}
