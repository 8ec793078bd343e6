package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/othello-agent/internal/match"
	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/player"
	"github.com/lk16/othello-agent/internal/search"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidOptions = errors.New("invalid benchmark options")

// Options configures a benchmark run.
type Options struct {
	Games   int
	Workers int
	Search  search.Config

	// NewRandom creates the opponent of the agent. It defaults to a uniform random player.
	NewRandom func() player.Player
}

// GameRecord holds the result of one benchmark game. The agent plays Black.
type GameRecord struct {
	Game          int
	Winner        othello.Color
	Score         int
	Moves         int
	AgentMoveTime time.Duration
	Duration      time.Duration
}

// Summary aggregates a benchmark run.
type Summary struct {
	RunID      uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Games      int
	AgentWins  int
	RandomWins int
	Ties       int

	// AverageAgentMoveTime is the mean over all games of the agent's average move time.
	AverageAgentMoveTime time.Duration

	DepthLimit int
	TimeLimit  time.Duration
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidOptions, o.Games)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidOptions, o.Workers)
	}
	if err := o.Search.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// Run plays the configured number of agent vs random games. Games run in parallel on up to
// Workers goroutines; every game has its own engine and boards.
func Run(ctx context.Context, opts Options) (*Summary, []GameRecord, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	newRandom := opts.NewRandom
	if newRandom == nil {
		newRandom = func() player.Player {
			return player.NewRandom("random")
		}
	}

	summary := &Summary{
		RunID:      uuid.New(),
		StartTime:  time.Now(),
		Games:      opts.Games,
		DepthLimit: opts.Search.DepthLimit,
		TimeLimit:  opts.Search.TimeLimit,
	}

	log.Info().
		Str("run_id", summary.RunID.String()).
		Int("games", opts.Games).
		Int("workers", opts.Workers).
		Int("depth_limit", opts.Search.DepthLimit).
		Dur("time_limit", opts.Search.TimeLimit).
		Msg("Starting benchmark")

	records := make([]GameRecord, opts.Games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range opts.Games {
		g.Go(func() error {
			agent := player.NewAgent("agent", search.NewEngine(opts.Search))

			start := time.Now()
			result, err := match.Run(gctx, agent, newRandom(), match.Options{})
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}

			records[i] = GameRecord{
				Game:          i + 1,
				Winner:        result.Winner,
				Score:         result.Score,
				Moves:         len(result.Moves),
				AgentMoveTime: result.AverageMoveTime[othello.Black],
				Duration:      time.Since(start),
			}

			log.Debug().Int("game", i+1).Int("score", result.Score).Msg("Game finished")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	summary.EndTime = time.Now()
	summary.add(records)

	log.Info().
		Str("run_id", summary.RunID.String()).
		Int("agent_wins", summary.AgentWins).
		Int("random_wins", summary.RandomWins).
		Int("ties", summary.Ties).
		Dur("average_agent_move_time", summary.AverageAgentMoveTime).
		Msg("Benchmark finished")

	return summary, records, nil
}

func (s *Summary) add(records []GameRecord) {
	var totalMoveTime time.Duration

	for _, record := range records {
		switch record.Winner {
		case othello.Black:
			s.AgentWins++
		case othello.White:
			s.RandomWins++
		default:
			s.Ties++
		}
		totalMoveTime += record.AgentMoveTime
	}

	if len(records) > 0 {
		s.AverageAgentMoveTime = totalMoveTime / time.Duration(len(records))
	}
}
