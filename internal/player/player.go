package player

import (
	"context"

	"github.com/lk16/othello-agent/internal/othello"
)

// Player chooses moves. Implementations must only return moves that are valid for the mover,
// or a pass when the mover has no valid moves.
type Player interface {
	Name() string
	ChooseMove(ctx context.Context, board othello.Board, mover othello.Color) (othello.Move, error)
}
