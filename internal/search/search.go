package search

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lk16/othello-agent/internal/othello"
	"github.com/rs/zerolog/log"
)

const (
	// timeFraction is the part of the time limit after which nodes become leaves.
	timeFraction = 0.8

	// maxDerivedDepth caps the depth limit derived from a time limit.
	maxDerivedDepth = 9
)

var (
	ErrInvalidDepthLimit = errors.New("depth limit must be at least 1")
	ErrInvalidTimeLimit  = errors.New("time limit must not be negative")
)

// Config holds the limits of a search. It is fixed for the duration of a search.
type Config struct {
	// DepthLimit is the maximum number of plies searched.
	DepthLimit int

	// TimeLimit is the time budget of a search. Zero disables the time check.
	TimeLimit time.Duration
}

// NewConfig creates a config with the depth limit derived from the time limit.
func NewConfig(timeLimit time.Duration) Config {
	return Config{
		DepthLimit: DepthLimitForTimeLimit(timeLimit),
		TimeLimit:  timeLimit,
	}
}

// Validate checks the limits.
func (c Config) Validate() error {
	if c.DepthLimit < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidDepthLimit, c.DepthLimit)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w, got %s", ErrInvalidTimeLimit, c.TimeLimit)
	}
	return nil
}

// DepthLimitForTimeLimit derives a depth limit from a time limit: roughly one ply per
// ten milliseconds per digit of the millisecond count, capped at 9 plies.
func DepthLimitForTimeLimit(timeLimit time.Duration) int {
	ms := timeLimit.Milliseconds()
	if ms <= 0 {
		return 1
	}

	digits := len(fmt.Sprint(ms))
	depth := math.Min(maxDerivedDepth, float64(ms)/float64(10*digits)+1) //nolint:mnd
	return int(depth)
}

// Result is the outcome of a top-level search.
type Result struct {
	// Move is the best move found. Its Score is the minimax score of the position.
	Move othello.Move

	// Nodes is the number of visited nodes.
	Nodes uint64

	// Elapsed is the wall-clock time the search took.
	Elapsed time.Duration

	// TimedOut is set when at least one node became a leaf because time ran out.
	TimedOut bool
}

// Engine finds moves with a depth and time bounded alpha-beta search.
// Black maximizes and White minimizes the disc differential.
type Engine struct {
	cfg Config
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the clock used for the time limit.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a new engine.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Config returns the limits of the engine.
func (e *Engine) Config() Config {
	return e.cfg
}

// Search returns the best move for the mover. A pass is returned if the mover has no moves.
func (e *Engine) Search(board othello.Board, mover othello.Color) Result {
	start := e.now()
	s := e.newSearcher(start)

	seed := othello.PassMove().WithScore(worstScore(mover))
	move := s.alphaBeta(board, mover, math.MinInt, math.MaxInt, 1, seed)

	// Time ran out before the root was expanded, don't pass with moves available.
	if move.IsPass() {
		if moves := board.Moves(mover); len(moves) > 0 {
			move = moves[0]
		}
	}

	result := Result{
		Move:     move,
		Nodes:    s.nodes,
		Elapsed:  e.now().Sub(start),
		TimedOut: s.timedOut,
	}

	s.logStats(result)
	return result
}

// AlphaBeta searches a node. The best move is threaded through the recursion: leaves return
// it with the score of their board, internal nodes replace it with the best child move.
func (e *Engine) AlphaBeta(
	board othello.Board,
	mover othello.Color,
	alpha, beta, depth int,
	best othello.Move,
	start time.Time,
) othello.Move {
	return e.newSearcher(start).alphaBeta(board, mover, alpha, beta, depth, best)
}

func (e *Engine) newSearcher(start time.Time) *searcher {
	return &searcher{
		cfg:   e.cfg,
		now:   e.now,
		start: start,
	}
}

// worstScore returns the initial running score for the mover's role.
func worstScore(mover othello.Color) int {
	if mover == othello.Black {
		return math.MinInt
	}
	return math.MaxInt
}

// searcher holds the state of a single search.
type searcher struct {
	cfg      Config
	now      func() time.Time
	start    time.Time
	nodes    uint64
	timedOut bool
}

// outOfTime checks the elapsed time. It is only called when entering a node, so a single
// node's move loop can overrun the budget. The time fraction leaves room for that.
func (s *searcher) outOfTime() bool {
	if s.cfg.TimeLimit <= 0 {
		return false
	}

	budget := time.Duration(timeFraction * float64(s.cfg.TimeLimit))
	if s.now().Sub(s.start) > budget {
		s.timedOut = true
		return true
	}
	return false
}

func (s *searcher) alphaBeta(
	board othello.Board,
	mover othello.Color,
	alpha, beta, depth int,
	best othello.Move,
) othello.Move {
	s.nodes++

	moves := board.Moves(mover)

	if len(moves) == 0 || depth > s.cfg.DepthLimit || s.outOfTime() {
		return best.WithScore(board.Score())
	}

	maximizing := mover == othello.Black
	bestScore := worstScore(mover)

	for _, move := range moves {
		child := s.alphaBeta(board.DoMove(move, mover), mover.Opponent(), alpha, beta, depth+1, best)

		if (maximizing && child.Score > bestScore) || (!maximizing && child.Score < bestScore) {
			bestScore = child.Score
			best = move.WithScore(bestScore)
		}

		if maximizing {
			if bestScore >= beta {
				return best
			}
			alpha = max(alpha, bestScore)
		} else {
			if bestScore <= alpha {
				return best
			}
			beta = min(beta, bestScore)
		}
	}

	return best
}

func (s *searcher) logStats(result Result) {
	elapsedSeconds := result.Elapsed.Seconds()

	nodesPerSecond := int64(0)
	if elapsedSeconds > 0.000001 { //nolint:mnd
		nodesPerSecond = int64(float64(result.Nodes) / elapsedSeconds)
	}

	log.Debug().
		Str("move", result.Move.String()).
		Int("score", result.Move.Score).
		Uint64("nodes", result.Nodes).
		Dur("elapsed", result.Elapsed).
		Int64("nodes_per_second", nodesPerSecond).
		Bool("timed_out", result.TimedOut).
		Msg("Search finished")
}
