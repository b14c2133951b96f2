package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/watersort/core"
	"github.com/katalvlaran/watersort/render"
	"github.com/katalvlaran/watersort/search"
)

// settings are the tunables shared by solve and batch. Built-in defaults are
// overlaid by the --config file, which is overlaid by explicit flags.
type settings struct {
	Strategy    string  `yaml:"strategy"`
	Timeout     timeout `yaml:"timeout"`
	Goal        string  `yaml:"goal"`
	Format      string  `yaml:"format"`
	ReportEvery int     `yaml:"report_every"`
	Jobs        int     `yaml:"jobs"`
}

func defaultSettings() settings {
	return settings{
		Strategy:    "bfs",
		Timeout:     timeout(30 * time.Second),
		Goal:        core.GoalMonochrome.String(),
		Format:      render.Text.String(),
		ReportEvery: search.DefaultReportEvery,
		Jobs:        runtime.NumCPU(),
	}
}

// loadSettings overlays the YAML file at path onto the defaults. Keys absent
// from the file keep their default values.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}

	return s, nil
}

// overlay copies every flag the user set explicitly onto s.
func (s *settings) overlay(cmd *cobra.Command, f *flagValues) {
	if cmd.Flags().Changed("strategy") {
		s.Strategy = f.strategy
	}
	if cmd.Flags().Changed("timeout") {
		s.Timeout = f.timeout
	}
	if cmd.Flags().Changed("goal") {
		s.Goal = f.goal
	}
	if cmd.Flags().Changed("format") {
		s.Format = f.format
	}
	if cmd.Flags().Changed("report-every") {
		s.ReportEvery = f.reportEvery
	}
	if cmd.Flags().Changed("jobs") {
		s.Jobs = f.jobs
	}
}

// searchOptions turns the settings into parsed solver and renderer choices.
func (s settings) searchOptions() (search.Strategy, core.Goal, render.Format, error) {
	strategy, err := search.ParseStrategy(s.Strategy)
	if err != nil {
		return 0, 0, 0, err
	}
	goal, err := core.ParseGoal(s.Goal)
	if err != nil {
		return 0, 0, 0, err
	}
	format, err := render.ParseFormat(s.Format)
	if err != nil {
		return 0, 0, 0, err
	}

	return strategy, goal, format, nil
}

// timeout is a duration that also accepts a bare number of seconds ("30", "2.5").
// Zero disables the limit.
type timeout time.Duration

func parseTimeout(s string) (timeout, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("negative timeout %q", s)
		}
		return timeout(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: want seconds or a duration like 30s", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative timeout %q", s)
	}

	return timeout(d), nil
}

// String, Set and Type implement pflag.Value.
func (t *timeout) String() string { return time.Duration(*t).String() }

func (t *timeout) Set(s string) error {
	v, err := parseTimeout(s)
	if err != nil {
		return err
	}
	*t = v

	return nil
}

func (t *timeout) Type() string { return "duration" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *timeout) UnmarshalYAML(node *yaml.Node) error {
	return t.Set(node.Value)
}
