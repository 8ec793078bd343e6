package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer writes benchmark results as CSV files into a directory per run.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory of a run.
func NewWriter(outputDir string, summary *Summary) (*Writer, error) {
	baseDir := filepath.Join(outputDir, summary.RunID.String())
	if err := os.MkdirAll(baseDir, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the files are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err = writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	if err = writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}

// WriteGameRecords writes one row per game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"game", "winner", "score", "moves", "agent_move_time", "duration"}

	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			record.Winner.String(),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Moves),
			record.AgentMoveTime.String(),
			record.Duration.String(),
		}
	}

	return w.writeCSV("game_records.csv", header, rows)
}

// WriteSummary writes the aggregated results.
func (w *Writer) WriteSummary(summary *Summary) error {
	header := []string{
		"run_id", "start_time", "end_time", "games", "agent_wins", "random_wins", "ties",
		"average_agent_move_time", "depth_limit", "time_limit",
	}

	row := []string{
		summary.RunID.String(),
		summary.StartTime.Format(time.RFC3339),
		summary.EndTime.Format(time.RFC3339),
		strconv.Itoa(summary.Games),
		strconv.Itoa(summary.AgentWins),
		strconv.Itoa(summary.RandomWins),
		strconv.Itoa(summary.Ties),
		summary.AverageAgentMoveTime.String(),
		strconv.Itoa(summary.DepthLimit),
		summary.TimeLimit.String(),
	}

	return w.writeCSV("summary.csv", header, [][]string{row})
}
