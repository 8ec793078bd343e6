package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Board routes
	apiGroup.Post("/moves", GetMoves)
	apiGroup.Post("/move", DoMove)
	apiGroup.Post("/search", Search)

	// Benchmark routes
	apiGroup.Get("/benchmarks", ListBenchmarks)
	apiGroup.Get("/benchmarks/:id", GetBenchmark)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
