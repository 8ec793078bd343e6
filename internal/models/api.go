package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/search"
)

const (
	// MaxTimeLimitMs caps the time budget a search request may ask for.
	MaxTimeLimitMs = 10_000

	// MaxDepthLimit caps the depth a search request may ask for.
	MaxDepthLimit = 12
)

var ErrInvalidMover = errors.New("mover must be 1 (black) or -1 (white)")

// BoardPayload identifies a board and the side to move.
type BoardPayload struct {
	Board string `json:"board"`
	Mover int    `json:"mover"`
}

// Parse validates the payload and returns the board and mover.
func (p *BoardPayload) Parse() (othello.Board, othello.Color, error) {
	board, err := othello.NewBoardFromString(p.Board)
	if err != nil {
		return othello.Board{}, othello.Empty, err
	}

	mover := othello.Color(p.Mover)
	if mover != othello.Black && mover != othello.White {
		return othello.Board{}, othello.Empty, fmt.Errorf("%w, got %d", ErrInvalidMover, p.Mover)
	}

	return board, mover, nil
}

// MoveInfo describes a valid move and the score of the board after it.
type MoveInfo struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
}

// NewMoveInfo converts a move.
func NewMoveInfo(move othello.Move) MoveInfo {
	return MoveInfo{
		Move:  move.String(),
		Score: move.Score,
	}
}

// MovesResponse lists the valid moves of a board.
type MovesResponse struct {
	Moves []MoveInfo `json:"moves"`
}

// DoMovePayload asks to play a move on a board.
type DoMovePayload struct {
	BoardPayload
	Move string `json:"move"`
}

// DoMoveResponse contains the board after a move.
type DoMoveResponse struct {
	Board    string `json:"board"`
	Mover    int    `json:"mover"`
	Score    int    `json:"score"`
	GameOver bool   `json:"game_over"`
}

// SearchPayload asks for the best move. Limits that are not set use the server defaults.
type SearchPayload struct {
	BoardPayload
	TimeLimitMs *int `json:"time_limit_ms,omitempty"`
	DepthLimit  *int `json:"depth_limit,omitempty"`
}

// SearchConfig applies the payload limits on top of the defaults. Without a time limit in
// either, the search gets MaxTimeLimitMs.
func (p *SearchPayload) SearchConfig(defaults search.Config) (search.Config, error) {
	cfg := defaults

	if p.TimeLimitMs != nil {
		if *p.TimeLimitMs < 1 || *p.TimeLimitMs > MaxTimeLimitMs {
			return search.Config{}, fmt.Errorf("time_limit_ms must be between 1 and %d", MaxTimeLimitMs)
		}
		cfg.TimeLimit = time.Duration(*p.TimeLimitMs) * time.Millisecond
		cfg.DepthLimit = search.DepthLimitForTimeLimit(cfg.TimeLimit)
	}

	if p.DepthLimit != nil {
		if *p.DepthLimit < 1 || *p.DepthLimit > MaxDepthLimit {
			return search.Config{}, fmt.Errorf("depth_limit must be between 1 and %d", MaxDepthLimit)
		}
		cfg.DepthLimit = *p.DepthLimit
	}

	// Server searches always have a time budget.
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = MaxTimeLimitMs * time.Millisecond
	}

	return cfg, nil
}

// SearchResponse contains the result of a search.
type SearchResponse struct {
	Move        string  `json:"move"`
	Score       int     `json:"score"`
	Nodes       uint64  `json:"nodes"`
	ElapsedMs   float64 `json:"elapsed_ms"`
	TimedOut    bool    `json:"timed_out"`
	DepthLimit  int     `json:"depth_limit"`
	TimeLimitMs int64   `json:"time_limit_ms"`
	Cached      bool    `json:"cached"`
}

// NewSearchResponse converts a search result.
func NewSearchResponse(result search.Result, cfg search.Config) SearchResponse {
	return SearchResponse{
		Move:        result.Move.String(),
		Score:       result.Move.Score,
		Nodes:       result.Nodes,
		ElapsedMs:   float64(result.Elapsed.Microseconds()) / 1000, //nolint:mnd
		TimedOut:    result.TimedOut,
		DepthLimit:  cfg.DepthLimit,
		TimeLimitMs: cfg.TimeLimit.Milliseconds(),
	}
}

// VersionResponse contains the git commit of the server.
type VersionResponse struct {
	Commit string `json:"commit"`
}
