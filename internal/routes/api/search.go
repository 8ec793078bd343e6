package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-agent/internal/config"
	"github.com/lk16/othello-agent/internal/models"
	"github.com/lk16/othello-agent/internal/repository"
	"github.com/lk16/othello-agent/internal/search"
	"github.com/rs/zerolog/log"
)

// Search handles requests for the best move of a board.
func Search(c *fiber.Ctx) error {
	var payload models.SearchPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, errInvalidBody)
	}

	board, mover, err := payload.Parse()
	if err != nil {
		return badRequest(c, err)
	}

	cfg := c.Locals("config").(*config.Config) //nolint: errcheck

	searchCfg, err := payload.SearchConfig(cfg.Search())
	if err != nil {
		return badRequest(c, err)
	}

	cache := c.Locals("searchCache").(repository.SearchCache) //nolint: errcheck

	key := repository.SearchKey{
		Board:       board.String(),
		Mover:       int(mover),
		DepthLimit:  searchCfg.DepthLimit,
		TimeLimitMs: searchCfg.TimeLimit.Milliseconds(),
	}

	cached, ok, err := cache.Get(c.Context(), key)
	if err != nil {
		log.Warn().Err(err).Msg("Search cache lookup failed")
	}

	if ok {
		cached.Cached = true
		return c.Status(fiber.StatusOK).JSON(cached)
	}

	result := search.NewEngine(searchCfg).Search(board, mover)
	response := models.NewSearchResponse(result, searchCfg)

	// A truncated search depends on machine load, so it is not reused.
	if !result.TimedOut {
		if err = cache.Set(c.Context(), key, response); err != nil {
			log.Warn().Err(err).Msg("Search cache store failed")
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
