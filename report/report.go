// Package report stores batch solve outcomes as a parquet table, one row per
// puzzle, so runs can be compared offline with any parquet reader.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/katalvlaran/watersort/search"
)

// SchemaVersion is stored in the file's key/value metadata under "schema".
const SchemaVersion = "solve_report_v1"

// Row is the outcome of one puzzle in a batch run.
//
// Solution lists the moves as space-separated 1-based "from->to" pairs.
// Error is set when the puzzle could not be loaded or validated; the
// search columns are then zero.
type Row struct {
	RunID     string  `parquet:"run_id,dict"`
	Puzzle    string  `parquet:"puzzle"`
	Strategy  string  `parquet:"strategy,dict"`
	Goal      string  `parquet:"goal,dict"`
	Status    string  `parquet:"status,dict"`
	Solved    bool    `parquet:"solved"`
	Moves     int32   `parquet:"moves"`
	Visited   int64   `parquet:"visited"`
	ElapsedMS float64 `parquet:"elapsed_ms"`
	Solution  string  `parquet:"solution,optional"`
	Error     string  `parquet:"error,optional"`
}

// NewRow fills a Row from a finished search.
func NewRow(runID, puzzle, goal string, res *search.Result) Row {
	row := Row{
		RunID:     runID,
		Puzzle:    puzzle,
		Strategy:  res.Strategy.String(),
		Goal:      goal,
		Status:    res.Status.String(),
		Solved:    res.Solved,
		Moves:     int32(len(res.Moves)),
		Visited:   int64(res.Visited),
		ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000,
	}
	if len(res.Moves) > 0 {
		steps := make([]string, len(res.Moves))
		for i, m := range res.Moves {
			steps[i] = fmt.Sprintf("%d->%d", m.From+1, m.To+1)
		}
		row.Solution = strings.Join(steps, " ")
	}

	return row
}

// ErrorRow records a puzzle that never reached the solver.
func ErrorRow(runID, puzzle string, err error) Row {
	return Row{RunID: runID, Puzzle: puzzle, Status: "error", Error: err.Error()}
}

// WriteParquet writes rows to outPath with zstd compression. The file is
// written next to outPath first and renamed into place.
func WriteParquet(outPath string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", SchemaVersion),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("report: write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("report: rename parquet: %w", err)
	}

	return nil
}

// ReadParquet loads every row of a report file.
func ReadParquet(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("report: open parquet: %w", err)
	}
	if v, ok := pf.Lookup("schema"); ok && v != SchemaVersion {
		return nil, fmt.Errorf("report: unsupported schema %q", v)
	}

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	rows := make([]Row, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("report: read parquet: %w", err)
	}

	return rows[:n], nil
}
