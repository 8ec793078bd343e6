package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/lk16/othello-agent/internal/bench"
	"github.com/lk16/othello-agent/internal/services"
	"github.com/samber/lo"
)

var ErrBenchmarkNotFound = errors.New("benchmark run not found")

const createBenchmarkRunsTable = `
CREATE TABLE IF NOT EXISTS benchmark_runs (
	run_id                     UUID PRIMARY KEY,
	start_time                 TIMESTAMPTZ NOT NULL,
	end_time                   TIMESTAMPTZ NOT NULL,
	games                      INTEGER NOT NULL,
	agent_wins                 INTEGER NOT NULL,
	random_wins                INTEGER NOT NULL,
	ties                       INTEGER NOT NULL,
	average_agent_move_time_us BIGINT NOT NULL,
	depth_limit                INTEGER NOT NULL,
	time_limit_ms              BIGINT NOT NULL,
	game_scores                BIGINT[] NOT NULL
)`

// BenchmarkRun is a stored benchmark summary.
type BenchmarkRun struct {
	RunID                  uuid.UUID     `db:"run_id" json:"run_id"`
	StartTime              time.Time     `db:"start_time" json:"start_time"`
	EndTime                time.Time     `db:"end_time" json:"end_time"`
	Games                  int           `db:"games" json:"games"`
	AgentWins              int           `db:"agent_wins" json:"agent_wins"`
	RandomWins             int           `db:"random_wins" json:"random_wins"`
	Ties                   int           `db:"ties" json:"ties"`
	AverageAgentMoveTimeUs int64         `db:"average_agent_move_time_us" json:"average_agent_move_time_us"`
	DepthLimit             int           `db:"depth_limit" json:"depth_limit"`
	TimeLimitMs            int64         `db:"time_limit_ms" json:"time_limit_ms"`
	GameScores             pq.Int64Array `db:"game_scores" json:"game_scores"`
}

// NewBenchmarkRun converts a benchmark summary and its game records.
func NewBenchmarkRun(summary *bench.Summary, records []bench.GameRecord) BenchmarkRun {
	return BenchmarkRun{
		RunID:                  summary.RunID,
		StartTime:              summary.StartTime,
		EndTime:                summary.EndTime,
		Games:                  summary.Games,
		AgentWins:              summary.AgentWins,
		RandomWins:             summary.RandomWins,
		Ties:                   summary.Ties,
		AverageAgentMoveTimeUs: summary.AverageAgentMoveTime.Microseconds(),
		DepthLimit:             summary.DepthLimit,
		TimeLimitMs:            summary.TimeLimit.Milliseconds(),
		GameScores: lo.Map(records, func(record bench.GameRecord, _ int) int64 {
			return int64(record.Score)
		}),
	}
}

// BenchmarkRepository stores benchmark runs in Postgres.
type BenchmarkRepository struct {
	db *sqlx.DB
}

func NewBenchmarkRepository(db *sqlx.DB) *BenchmarkRepository {
	return &BenchmarkRepository{
		db: db,
	}
}

// EnsureSchema creates the table if it does not exist.
func (repo *BenchmarkRepository) EnsureSchema(ctx context.Context) error {
	if _, err := repo.db.ExecContext(ctx, createBenchmarkRunsTable); err != nil {
		return fmt.Errorf("error creating benchmark_runs table: %w", err)
	}
	return nil
}

// Save stores a benchmark run.
func (repo *BenchmarkRepository) Save(ctx context.Context, run BenchmarkRun) error {
	query := `
		INSERT INTO benchmark_runs (
			run_id, start_time, end_time, games, agent_wins, random_wins, ties,
			average_agent_move_time_us, depth_limit, time_limit_ms, game_scores
		) VALUES (
			:run_id, :start_time, :end_time, :games, :agent_wins, :random_wins, :ties,
			:average_agent_move_time_us, :depth_limit, :time_limit_ms, :game_scores
		)
	`

	if _, err := repo.db.NamedExecContext(ctx, query, run); err != nil {
		return fmt.Errorf("error saving benchmark run: %w", err)
	}

	return nil
}

// Get returns a single benchmark run.
func (repo *BenchmarkRepository) Get(ctx context.Context, runID uuid.UUID) (BenchmarkRun, error) {
	var run BenchmarkRun
	err := repo.db.GetContext(ctx, &run, `SELECT * FROM benchmark_runs WHERE run_id = $1`, runID)

	if errors.Is(err, sql.ErrNoRows) {
		return BenchmarkRun{}, ErrBenchmarkNotFound
	}

	if err != nil {
		return BenchmarkRun{}, fmt.Errorf("error getting benchmark run: %w", err)
	}

	return run, nil
}

// List returns the most recent benchmark runs first.
func (repo *BenchmarkRepository) List(ctx context.Context, limit int) ([]BenchmarkRun, error) {
	runs := []BenchmarkRun{}
	err := repo.db.SelectContext(ctx, &runs, `SELECT * FROM benchmark_runs ORDER BY start_time DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing benchmark runs: %w", err)
	}

	return runs, nil
}

// OpenBenchmarkRepository connects to Postgres and creates the table if needed.
func OpenBenchmarkRepository(ctx context.Context, url string) (*BenchmarkRepository, error) {
	db, err := services.InitPostgres(url)
	if err != nil {
		return nil, err
	}

	repo := NewBenchmarkRepository(db)
	if err = repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return repo, nil
}

// Close closes the database connection.
func (repo *BenchmarkRepository) Close() error {
	return repo.db.Close()
}
