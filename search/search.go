package search

import (
	"time"

	"github.com/katalvlaran/watersort/core"
)

// node is one arena entry: a configuration and how it was first reached.
type node struct {
	cfg    core.Configuration
	parent int32 // -1 for the start configuration
	move   core.Move
}

// walker encapsulates the mutable state of one search invocation.
type walker struct {
	opts       Options
	began      time.Time
	nodes      []node           // arena of visited configurations
	index      map[string]int32 // configuration key → arena index
	front      frontier
	iterations int
}

// Solve searches for a move sequence turning start into a goal configuration,
// applying any number of functional Options.
//
// The returned Result always carries the final Status:
//   - Solved:    Moves holds the solution (empty when start is already solved).
//   - Exhausted: no reachable configuration is a goal; err is nil.
//   - TimedOut:  err is a *TimeoutError matching ErrTimeout; the Result holds
//     the counters reached so far.
//
// Solve returns a nil Result with ErrOptionViolation or ErrEmptyConfiguration
// for invalid input.
func Solve(start core.Configuration, opts ...Option) (*Result, error) {
	// 1. Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start.Len() == 0 {
		return nil, ErrEmptyConfiguration
	}

	began := o.Now()
	res := &Result{Strategy: o.Strategy, Moves: []core.Move{}}

	// 2. Already terminal: no exploration at all
	if o.Goal.Reached(start) {
		res.Status = Solved
		res.Solved = true
		res.Elapsed = o.Now().Sub(began)

		return res, nil
	}

	// 3. Seed arena and frontier with the start configuration
	w := &walker{
		opts:  o,
		began: began,
		nodes: make([]node, 0, 1024),
		index: make(map[string]int32, 1024),
		front: newFrontier(o.Strategy, 1024),
	}
	w.front.push(w.record(start, -1, core.Move{}, start.Key()))

	// 4. Main loop
	return res, w.loop(res)
}

// loop expands the frontier until a goal is found, it empties, or time runs out.
func (w *walker) loop(res *Result) error {
	for w.front.len() > 0 {
		// timeout check (once per expansion)
		elapsed := w.elapsed()
		if w.opts.Timeout > 0 && elapsed >= w.opts.Timeout {
			res.Status = TimedOut
			res.Visited = len(w.nodes)
			res.Elapsed = elapsed

			return &TimeoutError{Elapsed: elapsed, Visited: len(w.nodes)}
		}

		w.iterations++
		w.report()

		if goal, found := w.expand(w.front.pop()); found {
			res.Status = Solved
			res.Solved = true
			res.Moves = w.pathTo(goal)
			res.Visited = len(w.nodes)
			res.Elapsed = w.elapsed()

			return nil
		}
	}

	res.Status = Exhausted
	res.Visited = len(w.nodes)
	res.Elapsed = w.elapsed()

	return nil
}

// expand records every unseen successor of the node at cur. It stops at the
// first successor that reaches the goal and returns its index.
func (w *walker) expand(cur int32) (int32, bool) {
	cfg := w.nodes[cur].cfg
	for _, m := range core.LegalMoves(cfg) {
		next := cfg.Apply(m)
		key := next.Key()
		if _, seen := w.index[key]; seen {
			continue
		}
		idx := w.record(next, cur, m, key)
		if w.opts.Goal.Reached(next) {
			return idx, true
		}
		w.front.push(idx)
	}

	return -1, false
}

// record appends cfg to the arena and indexes it by key.
func (w *walker) record(cfg core.Configuration, parent int32, m core.Move, key string) int32 {
	idx := int32(len(w.nodes))
	w.nodes = append(w.nodes, node{cfg: cfg, parent: parent, move: m})
	w.index[key] = idx

	return idx
}

// report calls OnProgress every ReportEvery iterations.
func (w *walker) report() {
	if w.opts.OnProgress == nil || w.opts.ReportEvery == 0 || w.iterations%w.opts.ReportEvery != 0 {
		return
	}
	w.opts.OnProgress(Progress{
		Strategy:   w.opts.Strategy,
		Iterations: w.iterations,
		Visited:    len(w.nodes),
		Frontier:   w.front.len(),
		Elapsed:    w.elapsed(),
	})
}

func (w *walker) elapsed() time.Duration {
	return w.opts.Now().Sub(w.began)
}
