package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watersort/render"
	"github.com/katalvlaran/watersort/report"
)

const (
	twoMovePuzzle = "bottles:\n  - [red, blue]\n  - [blue, red]\n  - []\n  - []\n"
	solvedPuzzle  = "red red\nblue blue\n(empty)\n(empty)\n"
	stuckPuzzle   = "r b g y\ny g b r\nb r y g\ng y r b\n"
	hardPuzzle    = "r g b r\nb r g y\ng y r b\ny b y g\n(empty)\n(empty)\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestSolve_Text(t *testing.T) {
	in := writeFile(t, t.TempDir(), "p.yaml", twoMovePuzzle)
	code, out, _ := runCLI("solve", "-i", in)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Step 1: bottle 1 -> bottle 3\nStep 2: bottle 2 -> bottle 1\nSolved in 2 moves.\n", out)
}

func TestSolve_JSONToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "p.yaml", twoMovePuzzle)
	outPath := filepath.Join(dir, "solution.json")

	code, out, stderr := runCLI("solve", "-i", in, "--format", "json", "-o", outPath, "--strategy", "dfs")
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var doc render.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.True(t, doc.Solved)
	assert.Equal(t, []render.StepMove{{From: 2, To: 4}, {From: 1, To: 2}}, doc.Moves)
	assert.Equal(t, "depth-first", doc.Stats.Strategy)
}

func TestSolve_AlreadySolved(t *testing.T) {
	in := writeFile(t, t.TempDir(), "p.txt", solvedPuzzle)
	code, out, _ := runCLI("solve", "-i", in)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Puzzle is already solved.\n", out)
}

func TestSolve_Unsolvable(t *testing.T) {
	in := writeFile(t, t.TempDir(), "p.txt", stuckPuzzle)
	code, out, stderr := runCLI("solve", "-i", in)
	assert.Equal(t, exitError, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "unsolvable")
}

func TestSolve_Timeout(t *testing.T) {
	in := writeFile(t, t.TempDir(), "p.txt", hardPuzzle)
	code, _, stderr := runCLI("solve", "-i", in, "--timeout", "1ns")
	assert.Equal(t, exitTimeout, code)
	assert.Contains(t, stderr, "timed out")
}

func TestSolve_InputErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]struct {
		args []string
		want string
	}{
		"missing file":   {[]string{"solve", "-i", filepath.Join(dir, "none.yaml")}, "no such file"},
		"too few":        {[]string{"solve", "-i", writeFile(t, dir, "few.txt", "a a\nb b\n")}, "too few bottles"},
		"colour count":   {[]string{"solve", "-i", writeFile(t, dir, "odd.txt", "a b\nb b\n(empty)\n(empty)\n")}, "multiple of capacity"},
		"bad strategy":   {[]string{"solve", "-i", writeFile(t, dir, "ok.yaml", twoMovePuzzle), "--strategy", "astar"}, "unknown strategy"},
		"bad timeout":    {[]string{"solve", "-i", writeFile(t, dir, "ok2.yaml", twoMovePuzzle), "--timeout", "soon"}, "invalid timeout"},
		"missing -i":     {[]string{"solve"}, "input"},
		"unknown option": {[]string{"solve", "--frobnicate"}, "unknown flag"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			code, _, stderr := runCLI(tc.args...)
			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestSolve_ValidateFlagAndCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "p.yaml", twoMovePuzzle)
	done := writeFile(t, dir, "done.txt", solvedPuzzle)

	code, out, _ := runCLI("solve", "-i", in, "--validate")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Puzzle is valid.\n", out)

	code, out, _ = runCLI("validate", "-i", done)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Puzzle is already solved (validation only).\n", out)
}

func TestSolve_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "p.yaml", twoMovePuzzle)
	conf := writeFile(t, dir, "watersort.yaml", "strategy: dfs\nformat: json\ntimeout: 5\n")

	code, out, _ := runCLI("--config", conf, "solve", "-i", in)
	require.Equal(t, exitOK, code)
	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "depth-first", doc.Stats.Strategy)

	code, out, _ = runCLI("--config", conf, "solve", "-i", in, "--strategy", "bfs")
	require.Equal(t, exitOK, code)
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "breadth-first", doc.Stats.Strategy)
	assert.Equal(t, []render.StepMove{{From: 1, To: 3}, {From: 2, To: 1}}, doc.Moves)
}

func TestSolve_DebugProgressAndMetrics(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "p.yaml", twoMovePuzzle)
	prom := filepath.Join(dir, "watersort.prom")

	code, _, stderr := runCLI("--debug", "solve", "-i", in, "--report-every", "1", "--metrics-file", prom)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, `"msg":"search progress"`)
	assert.Contains(t, stderr, `"run_id"`)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `watersort_searches_total{status="solved",strategy="breadth-first"} 1`)
}

func TestFormatsAndVersion(t *testing.T) {
	code, out, _ := runCLI("formats")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "=== YAML format ===")

	code, out, _ = runCLI("--version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, version)
}

func TestBatch_Report(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "a.yaml", twoMovePuzzle),
		writeFile(t, dir, "b.txt", stuckPuzzle),
		writeFile(t, dir, "c.txt", "a\n"),
	}
	out := filepath.Join(dir, "out", "report.parquet")

	code, stdout, _ := runCLI(append([]string{"batch", "--jobs", "2", "--goal", "full", "--report", out}, files...)...)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout, "a.yaml: solved in 3 moves")
	assert.Contains(t, stdout, "b.txt: unsolvable")
	assert.Contains(t, stdout, "c.txt: error:")

	rows, err := report.ReadParquet(out)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, files[0], rows[0].Puzzle)
	assert.Equal(t, "full", rows[0].Goal)
	assert.True(t, rows[0].Solved)
	assert.Equal(t, "exhausted", rows[1].Status)
	assert.Equal(t, "error", rows[2].Status)
	assert.Equal(t, rows[0].RunID, rows[2].RunID)
}

func TestBatch_AllSolved(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", twoMovePuzzle)
	b := writeFile(t, dir, "b.txt", solvedPuzzle)

	code, stdout, _ := runCLI("batch", a, b)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "b.txt: solved in 0 moves")
}

func TestParseTimeout(t *testing.T) {
	for in, want := range map[string]time.Duration{
		"30":   30 * time.Second,
		"2.5":  2500 * time.Millisecond,
		"0":    0,
		"90s":  90 * time.Second,
		"1m5s": 65 * time.Second,
	} {
		got, err := parseTimeout(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, time.Duration(got), in)
	}
	for _, bad := range []string{"-1", "-2s", "later"} {
		_, err := parseTimeout(bad)
		assert.Error(t, err, bad)
	}
}
