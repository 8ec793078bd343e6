package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/lk16/othello-agent/internal/bench"
	"github.com/lk16/othello-agent/internal/config"
	"github.com/lk16/othello-agent/internal/repository"
	"github.com/rs/zerolog/log"
)

// BenchmarkStore stores benchmark runs. It is implemented by *repository.BenchmarkRepository.
type BenchmarkStore interface {
	Save(ctx context.Context, run repository.BenchmarkRun) error
}

// RunBenchmark plays the configured agent vs random games, prints a summary and writes the
// results to CSV files. The run is also stored if store is not nil.
func RunBenchmark(ctx context.Context, cfg *config.Config, out io.Writer, store BenchmarkStore) error {
	summary, records, err := bench.Run(ctx, bench.Options{
		Games:   cfg.Bench.Games,
		Workers: cfg.Bench.Workers,
		Search:  cfg.Search(),
	})
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	fmt.Fprintf(out, "Games: %d\n", summary.Games)
	fmt.Fprintf(out, "Agent wins: %d\n", summary.AgentWins)
	fmt.Fprintf(out, "Random wins: %d\n", summary.RandomWins)
	fmt.Fprintf(out, "Ties: %d\n", summary.Ties)
	fmt.Fprintf(out, "Average agent time per move: %s\n", summary.AverageAgentMoveTime)

	writer, err := bench.NewWriter(cfg.Bench.OutputDir, summary)
	if err != nil {
		return err
	}

	if err = writer.WriteGameRecords(records); err != nil {
		return err
	}

	if err = writer.WriteSummary(summary); err != nil {
		return err
	}

	fmt.Fprintf(out, "Results written to %s\n", writer.Dir())

	if store != nil {
		if err = store.Save(ctx, repository.NewBenchmarkRun(summary, records)); err != nil {
			return err
		}
		log.Info().Str("run_id", summary.RunID.String()).Msg("Stored benchmark run")
	}

	return nil
}
