package player

import (
	"context"

	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/search"
	"github.com/rs/zerolog/log"
)

// Agent picks moves with the alpha-beta search engine.
type Agent struct {
	name   string
	engine *search.Engine
}

// NewAgent creates an agent player.
func NewAgent(name string, engine *search.Engine) *Agent {
	return &Agent{
		name:   name,
		engine: engine,
	}
}

// Name returns the name of the player.
func (a *Agent) Name() string {
	return a.name
}

// ChooseMove runs a search. The search is bounded by its own time limit, ctx is only
// checked before the search starts.
func (a *Agent) ChooseMove(ctx context.Context, board othello.Board, mover othello.Color) (othello.Move, error) {
	if err := ctx.Err(); err != nil {
		return othello.Move{}, err
	}

	result := a.engine.Search(board, mover)

	log.Debug().
		Str("player", a.name).
		Str("mover", mover.String()).
		Str("move", result.Move.String()).
		Int("score", result.Move.Score).
		Uint64("nodes", result.Nodes).
		Dur("elapsed", result.Elapsed).
		Msg("Agent chose move")

	return result.Move, nil
}
