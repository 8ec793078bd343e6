package main

import (
	"context"

	"github.com/lk16/othello-agent/internal"
	"github.com/lk16/othello-agent/internal/config"
	"github.com/lk16/othello-agent/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err = config.SetLogLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("Failed to set log level")
	}

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Close()

	if err = internal.InitStorage(context.Background(), services); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}

	// Setup app
	app := internal.SetupApp(cfg, services)

	// Start server
	address := cfg.Server.Address()
	log.Info().Str("address", address).Msg("Starting server")

	if err = app.Listen(address); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}
