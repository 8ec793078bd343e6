package player

import (
	"context"

	"github.com/lk16/othello-agent/internal/othello"
	"lukechampine.com/frand"
)

// Random picks a uniformly random valid move.
type Random struct {
	name string
	intn func(n int) int
}

// NewRandom creates a random player.
func NewRandom(name string) *Random {
	return &Random{
		name: name,
		intn: frand.Intn,
	}
}

// NewRandomWithSource creates a random player that draws indices from intn.
func NewRandomWithSource(name string, intn func(n int) int) *Random {
	return &Random{
		name: name,
		intn: intn,
	}
}

// Name returns the name of the player.
func (r *Random) Name() string {
	return r.name
}

// ChooseMove returns a random valid move, or a pass when there is none.
func (r *Random) ChooseMove(ctx context.Context, board othello.Board, mover othello.Color) (othello.Move, error) {
	if err := ctx.Err(); err != nil {
		return othello.Move{}, err
	}

	moves := board.Moves(mover)
	if len(moves) == 0 {
		return othello.PassMove().WithScore(board.Score()), nil
	}

	return moves[r.intn(len(moves))], nil
}
