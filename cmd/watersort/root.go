package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	debug      bool

	settings settings
	logger   *slog.Logger
	runID    string
}

// flagValues backs the search flags of solve and batch.
type flagValues struct {
	strategy    string
	timeout     timeout
	goal        string
	format      string
	reportEvery int
	jobs        int
	metricsFile string
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return exitCode(root.Execute(), stderr)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "watersort",
		Short:         "Solve water-sort puzzles with breadth-first or depth-first search",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(a.configPath)
			if err != nil {
				return fail(exitError, "%v", err)
			}
			a.settings = s
			a.runID = uuid.NewString()
			a.logger = newLogger(a.stderr, a.debug).With("run_id", a.runID)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with default settings (strategy, timeout, goal, format, report_every, jobs)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log search progress to stderr")

	root.AddCommand(
		newSolveCmd(a),
		newValidateCmd(a),
		newFormatsCmd(a),
		newBatchCmd(a),
	)

	return root
}

// addSearchFlags registers the flags shared by solve and batch. Defaults shown
// in help are the built-in ones; --config may replace them.
func addSearchFlags(cmd *cobra.Command, f *flagValues) {
	d := defaultSettings()
	f.timeout = d.Timeout
	cmd.Flags().StringVar(&f.strategy, "strategy", d.Strategy, "search strategy: bfs or dfs")
	cmd.Flags().Var(&f.timeout, "timeout", "time budget as seconds or a duration (0 = unlimited)")
	cmd.Flags().StringVar(&f.goal, "goal", d.Goal, "solved condition: monochrome or full")
	cmd.Flags().StringVar(&f.format, "format", d.Format, "output format: text, json or yaml")
	cmd.Flags().IntVar(&f.reportEvery, "report-every", d.ReportEvery, "iterations between progress reports (0 = off)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format to this path")
}
