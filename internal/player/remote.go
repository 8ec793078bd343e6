package player

import (
	"context"
	"fmt"
	"time"

	"github.com/lk16/othello-agent/internal/models"
	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/search"
	"github.com/rs/zerolog/log"
)

// RemoteSearcher runs searches elsewhere. It is implemented by *client.APIClient.
type RemoteSearcher interface {
	Search(
		ctx context.Context,
		board othello.Board,
		mover othello.Color,
		timeLimit time.Duration,
		depthLimit int,
	) (models.SearchResponse, error)
}

// Remote lets an analysis server pick the moves.
type Remote struct {
	name     string
	searcher RemoteSearcher
	cfg      search.Config
}

// NewRemote creates a player that sends its searches to searcher with the limits in cfg.
func NewRemote(name string, searcher RemoteSearcher, cfg search.Config) *Remote {
	return &Remote{
		name:     name,
		searcher: searcher,
		cfg:      cfg,
	}
}

// Name returns the name of the player.
func (r *Remote) Name() string {
	return r.name
}

// ChooseMove asks the server for the best move and checks that it is valid.
func (r *Remote) ChooseMove(ctx context.Context, board othello.Board, mover othello.Color) (othello.Move, error) {
	response, err := r.searcher.Search(ctx, board, mover, r.cfg.TimeLimit, r.cfg.DepthLimit)
	if err != nil {
		return othello.Move{}, err
	}

	move, err := othello.ParseMove(response.Move)
	if err != nil {
		return othello.Move{}, fmt.Errorf("server returned invalid move: %w", err)
	}

	if !board.IsValidMove(move, mover) {
		return othello.Move{}, fmt.Errorf("%w: server returned %s", othello.ErrInvalidMove, move)
	}

	log.Debug().
		Str("player", r.name).
		Str("move", move.String()).
		Bool("cached", response.Cached).
		Msg("Remote chose move")

	return move.WithScore(response.Score), nil
}
