// Package watersort is a solver for the water-sort puzzle: containers hold
// stacks of coloured segments, and the goal is to pour until every container
// is empty or holds a single colour.
//
// Packages
//
//	core/           immutable Configuration, pour transition, legal moves, goal predicates
//	search/         breadth-first and depth-first search with timeout and path reconstruction
//	puzzle/         YAML, JSON and text input parsing plus structural validation
//	render/         text, JSON and YAML solution output
//	metrics/        Prometheus collectors fed by the search progress hook
//	report/         parquet table of batch outcomes
//	cmd/watersort/  the command-line tool
//
// Quick start
//
//	p, _ := puzzle.ParseFile("puzzle.yaml", puzzle.FormatAuto)
//	cfg, _ := p.Configuration()
//	res, err := search.Solve(cfg, search.WithTimeout(30*time.Second))
//	if err == nil && res.Solved {
//		_ = render.Write(os.Stdout, res, cfg, render.Text, false)
//	}
//
// Breadth-first search returns a solution with the fewest moves; depth-first
// search usually finishes sooner on large puzzles with no length guarantee.
package watersort
