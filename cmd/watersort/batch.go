package main

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/watersort/metrics"
	"github.com/katalvlaran/watersort/report"
	"github.com/katalvlaran/watersort/search"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		f           flagValues
		inputFormat string
		reportPath  string
	)
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Solve many puzzles in parallel and summarise the outcomes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings
			s.overlay(cmd, &f)

			return a.batch(s, args, inputFormat, reportPath, f.metricsFile)
		},
	}
	addSearchFlags(cmd, &f)
	cmd.Flags().IntVar(&f.jobs, "jobs", defaultSettings().Jobs, "puzzles solved concurrently")
	cmd.Flags().StringVar(&inputFormat, "input-format", "auto", "input format: auto, yaml, json or text")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a parquet table of outcomes to this path")

	return cmd
}

// batch runs one independent search per file. Per-puzzle failures become
// report rows; they never cancel the other searches.
func (a *app) batch(s settings, paths []string, inputFormat, reportPath, metricsFile string) error {
	if _, _, _, err := s.searchOptions(); err != nil {
		return fail(exitError, "%v", err)
	}
	if s.Jobs < 1 {
		s.Jobs = 1
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	rows := make([]report.Row, len(paths))

	var g errgroup.Group
	g.SetLimit(s.Jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			rows[i] = a.batchOne(s, path, inputFormat, rec)
			return nil
		})
	}
	_ = g.Wait()

	code := exitOK
	for _, row := range rows {
		switch {
		case row.Error != "":
			fmt.Fprintf(a.stdout, "%s: error: %s\n", row.Puzzle, row.Error)
			code = exitError
		case row.Solved:
			fmt.Fprintf(a.stdout, "%s: solved in %d moves (%d states, %.1fms)\n", row.Puzzle, row.Moves, row.Visited, row.ElapsedMS)
		case row.Status == search.TimedOut.String():
			fmt.Fprintf(a.stdout, "%s: timed out (%d states)\n", row.Puzzle, row.Visited)
			if code == exitOK {
				code = exitTimeout
			}
		default:
			fmt.Fprintf(a.stdout, "%s: unsolvable (%d states)\n", row.Puzzle, row.Visited)
			code = exitError
		}
	}

	if reportPath != "" {
		if err := report.WriteParquet(reportPath, rows); err != nil {
			return fail(exitError, "%v", err)
		}
		a.logger.Info("report written", "path", reportPath, "rows", len(rows))
	}
	if metricsFile != "" {
		if err := metrics.WriteTextfile(metricsFile, reg); err != nil {
			a.logger.Warn("metrics export failed", "error", err)
		}
	}

	if code != exitOK {
		return silentExit(code)
	}

	return nil
}

// batchOne loads and solves a single puzzle and describes the outcome as a row.
func (a *app) batchOne(s settings, path, inputFormat string, rec *metrics.Recorder) report.Row {
	logger := a.logger.With("puzzle", path)
	start, _, err := load(path, inputFormat)
	if err != nil {
		logger.Warn("puzzle rejected", "error", err)
		return report.ErrorRow(a.runID, path, err)
	}

	res, err := a.runSearch(logger, start, s, rec)
	if err != nil && !errors.Is(err, search.ErrTimeout) {
		return report.ErrorRow(a.runID, path, err)
	}

	_, goal, _, _ := s.searchOptions()

	return report.NewRow(a.runID, path, goal.String(), res)
}
