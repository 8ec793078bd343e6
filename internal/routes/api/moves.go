package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-agent/internal/models"
	"github.com/lk16/othello-agent/internal/othello"
	"github.com/samber/lo"
)

var errInvalidBody = errors.New("invalid request body")

// GetMoves handles requests for the valid moves of a board.
func GetMoves(c *fiber.Ctx) error {
	var payload models.BoardPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, errInvalidBody)
	}

	board, mover, err := payload.Parse()
	if err != nil {
		return badRequest(c, err)
	}

	moves := lo.Map(board.Moves(mover), func(move othello.Move, _ int) models.MoveInfo {
		return models.NewMoveInfo(move)
	})

	return c.Status(fiber.StatusOK).JSON(models.MovesResponse{
		Moves: moves,
	})
}

// DoMove handles requests to play a move on a board.
func DoMove(c *fiber.Ctx) error {
	var payload models.DoMovePayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, errInvalidBody)
	}

	board, mover, err := payload.Parse()
	if err != nil {
		return badRequest(c, err)
	}

	move, err := othello.ParseMove(payload.Move)
	if err != nil {
		return badRequest(c, err)
	}

	if !board.IsValidMove(move, mover) {
		return badRequest(c, othello.ErrInvalidMove)
	}

	child := board.DoMove(move, mover)
	next := mover.Opponent()

	return c.Status(fiber.StatusOK).JSON(models.DoMoveResponse{
		Board:    child.String(),
		Mover:    int(next),
		Score:    child.Score(),
		GameOver: !child.HasMoves(next) && !child.HasMoves(mover),
	})
}
