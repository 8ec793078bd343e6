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

	l, err := shell.NewReadline()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start shell")
	}

	err = shell.NewShell(l, l.Stdout(), cfg, store).Run(ctx)
	if err != nil && !shell.IsExit(err) {
		log.Error().Err(err).Msg("Game stopped")
		os.Exit(1)
	}
}
