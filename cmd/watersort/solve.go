package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/watersort/core"
	"github.com/katalvlaran/watersort/metrics"
	"github.com/katalvlaran/watersort/puzzle"
	"github.com/katalvlaran/watersort/render"
	"github.com/katalvlaran/watersort/search"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		f            flagValues
		input        string
		inputFormat  string
		output       string
		verbose      bool
		validateOnly bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a move sequence that sorts the puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings
			s.overlay(cmd, &f)
			if validateOnly {
				return a.validate(input, inputFormat)
			}

			return a.solve(s, input, inputFormat, output, verbose, f.metricsFile)
		},
	}
	addSearchFlags(cmd, &f)
	cmd.Flags().StringVarP(&input, "input", "i", "", "puzzle file (YAML, JSON or text)")
	cmd.Flags().StringVar(&inputFormat, "input-format", "auto", "input format: auto, yaml, json or text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the solution to this file instead of stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the bottles after every step (text format)")
	cmd.Flags().BoolVar(&validateOnly, "validate", false, "only validate the puzzle, do not search")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// load parses and validates one puzzle file.
func load(path, inputFormat string) (core.Configuration, puzzle.Report, error) {
	f, err := puzzle.ParseFormat(inputFormat)
	if err != nil {
		return core.Configuration{}, puzzle.Report{}, err
	}
	p, err := puzzle.ParseFile(path, f)
	if err != nil {
		return core.Configuration{}, puzzle.Report{}, err
	}
	rep, err := puzzle.Validate(p)
	if err != nil {
		return core.Configuration{}, puzzle.Report{}, err
	}
	cfg, err := p.Configuration()
	if err != nil {
		return core.Configuration{}, puzzle.Report{}, err
	}

	return cfg, rep, nil
}

// runSearch solves start with the given settings, feeding progress to the
// debug log and to rec.
func (a *app) runSearch(logger *slog.Logger, start core.Configuration, s settings, rec *metrics.Recorder) (*search.Result, error) {
	strategy, goal, _, err := s.searchOptions()
	if err != nil {
		return nil, err
	}
	hook := func(p search.Progress) {
		logger.Debug("search progress",
			"strategy", p.Strategy.String(),
			"iterations", p.Iterations,
			"visited", p.Visited,
			"frontier", p.Frontier,
			"elapsed", p.Elapsed,
		)
		rec.Progress(p)
	}

	res, err := search.Solve(start,
		search.WithStrategy(strategy),
		search.WithGoal(goal),
		search.WithTimeout(time.Duration(s.Timeout)),
		search.WithReportEvery(s.ReportEvery),
		search.WithProgress(hook),
	)
	if res != nil {
		rec.Observe(res)
		logger.Info("search finished",
			"status", res.Status.String(),
			"moves", len(res.Moves),
			"visited", res.Visited,
			"elapsed", res.Elapsed,
		)
	}

	return res, err
}

func (a *app) solve(s settings, input, inputFormat, output string, verbose bool, metricsFile string) error {
	// 1. Resolve settings before touching the input
	_, goal, format, err := s.searchOptions()
	if err != nil {
		return fail(exitError, "%v", err)
	}
	logger := a.logger.With("puzzle", input)

	// 2. Parse and validate
	start, _, err := load(input, inputFormat)
	if err != nil {
		return fail(exitError, "%v", err)
	}
	if goal.Reached(start) {
		fmt.Fprintln(a.stdout, "Puzzle is already solved.")
		return nil
	}

	// 3. Search
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	res, err := a.runSearch(logger, start, s, rec)
	if metricsFile != "" {
		if werr := metrics.WriteTextfile(metricsFile, reg); werr != nil {
			logger.Warn("metrics export failed", "error", werr)
		}
	}
	switch {
	case errors.Is(err, search.ErrTimeout):
		return fail(exitTimeout, "%v", err)
	case err != nil:
		return fail(exitError, "%v", err)
	case !res.Solved:
		return fail(exitError, "puzzle is unsolvable (%d states visited)", res.Visited)
	}

	// 4. Output
	var w io.Writer = a.stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fail(exitError, "create output: %v", err)
		}
		defer file.Close()
		w = file
	}
	if err := render.Write(w, res, start, format, verbose); err != nil {
		return fail(exitError, "write output: %v", err)
	}

	return nil
}

func newValidateCmd(a *app) *cobra.Command {
	var input, inputFormat string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a puzzle file without searching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validate(input, inputFormat)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "puzzle file (YAML, JSON or text)")
	cmd.Flags().StringVar(&inputFormat, "input-format", "auto", "input format: auto, yaml, json or text")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) validate(input, inputFormat string) error {
	_, rep, err := load(input, inputFormat)
	if err != nil {
		return fail(exitError, "%v", err)
	}
	a.logger.Debug("puzzle validated", "puzzle", input, "colors", rep.Colors, "segments", rep.Segments)
	if rep.AlreadySolved {
		fmt.Fprintln(a.stdout, "Puzzle is already solved (validation only).")
	} else {
		fmt.Fprintln(a.stdout, "Puzzle is valid.")
	}

	return nil
}

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "Describe the accepted input file formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.stdout, puzzle.FormatHelp())
		},
	}
}
