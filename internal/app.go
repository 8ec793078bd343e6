package internal

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-agent/internal/config"
	"github.com/lk16/othello-agent/internal/middleware"
	"github.com/lk16/othello-agent/internal/repository"
	"github.com/lk16/othello-agent/internal/routes"
	"github.com/lk16/othello-agent/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
)

// SetupApp creates the analysis server. Services that are not configured are nil.
func SetupApp(cfg *config.Config, services *services.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		Concurrency:           defaultConcurrency,
		ReadTimeout:           defaultReadTimeout,
		WriteTimeout:          defaultWriteTimeout,
		IdleTimeout:           defaultIdleTimeout,
		BodyLimit:             defaultBodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	searchCache := repository.NewSearchCache(services)

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		c.Locals("searchCache", searchCache)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}

// InitStorage creates the tables used by the routes. It does nothing without Postgres.
func InitStorage(ctx context.Context, services *services.Services) error {
	if services.Postgres == nil {
		return nil
	}

	return repository.NewBenchmarkRepository(services.Postgres).EnsureSchema(ctx)
}
