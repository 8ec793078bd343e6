package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/othello-agent/internal/repository"
	"github.com/lk16/othello-agent/internal/services"
)

const (
	defaultBenchmarkListLimit = 20
	maxBenchmarkListLimit     = 100
)

func benchmarkRepository(c *fiber.Ctx) (*repository.BenchmarkRepository, error) {
	services, _ := c.Locals("services").(*services.Services)
	if services == nil || services.Postgres == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "benchmark storage is not configured")
	}

	return repository.NewBenchmarkRepository(services.Postgres), nil
}

// ListBenchmarks returns the most recent stored benchmark runs.
func ListBenchmarks(c *fiber.Ctx) error {
	repo, err := benchmarkRepository(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", defaultBenchmarkListLimit)
	if limit < 1 || limit > maxBenchmarkListLimit {
		return fiber.NewError(fiber.StatusBadRequest, "limit must be between 1 and 100")
	}

	runs, err := repo.List(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(runs)
}

// GetBenchmark returns a single stored benchmark run.
func GetBenchmark(c *fiber.Ctx) error {
	repo, err := benchmarkRepository(c)
	if err != nil {
		return err
	}

	runID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid benchmark run ID")
	}

	run, err := repo.Get(c.Context(), runID)
	if errors.Is(err, repository.ErrBenchmarkNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(run)
}
