// Package search explores the implicit graph of water-sort configurations
// breadth-first or depth-first and reconstructs the move sequence that
// reaches a goal configuration.
//
// What
//
//   - Solve(start, opts...) runs one search and returns a Result with the final
//     Status (Solved, Exhausted, TimedOut), the moves, the number of distinct
//     configurations visited, and the elapsed time.
//   - Both strategies share one walker loop; only the frontier differs:
//     a FIFO queue for BreadthFirst, a LIFO stack for DepthFirst.
//   - Every discovered configuration is stored once in an arena together with
//     its parent index and the move that produced it. The arena doubles as the
//     visited set and as the data for path reconstruction.
//   - Replay re-applies a move list, checking legality at each step.
//
// Why
//
//   - BreadthFirst discovers configurations in non-decreasing depth and accepts
//     the first goal it generates, so its solutions use the fewest moves.
//   - DepthFirst usually reaches some goal much sooner on large puzzles, with no
//     length guarantee.
//
// Determinism
//
//	core.LegalMoves yields moves in a fixed order and successors are pushed in
//	that order. BreadthFirst therefore expands siblings first-generated first,
//	DepthFirst last-generated first. Repeated runs with the same options give
//	the same moves and the same Visited count.
//
// Timeout
//
//	The clock is polled once per expansion, before the frontier is popped.
//	The worst-case overrun is one expansion step. A timeout is reported as a
//	*TimeoutError (errors.Is(err, ErrTimeout)) alongside a Result whose Status
//	is TimedOut; it is never folded into Exhausted.
//
// Complexity (V = reachable configurations, N = containers, S = segments)
//
//   - Time:   O(V · N² · (N + S))  (move generation plus key hashing per successor)
//   - Memory: O(V · (N + S))       (arena, index, and frontier)
//
// Usage
//
//	res, err := search.Solve(cfg,
//		search.WithStrategy(search.DepthFirst),
//		search.WithTimeout(30*time.Second),
//		search.WithGoal(core.GoalFull),
//		search.WithProgress(func(p search.Progress) { /* ... */ }),
//	)
//	switch {
//	case errors.Is(err, search.ErrTimeout):
//		// res.Visited, res.Elapsed hold the counters
//	case err != nil:
//		// ErrOptionViolation, ErrEmptyConfiguration
//	case !res.Solved:
//		// unsolvable
//	}
//
// Options
//
//   - DefaultOptions(): BreadthFirst, no timeout, GoalMonochrome, report every 1000.
//   - WithStrategy(s):     BreadthFirst or DepthFirst.
//   - WithTimeout(d):      time budget; d ≤ 0 means unbounded.
//   - WithGoal(g):         core.GoalMonochrome or core.GoalFull.
//   - WithProgress(fn):    diagnostics hook, called every ReportEvery iterations.
//   - WithReportEvery(n):  n > 0 interval, 0 disables, n < 0 is a violation.
//   - WithClock(now):      clock override.
//
// Errors
//
//   - ErrOptionViolation     for an invalid Option.
//   - ErrEmptyConfiguration  when start has no containers.
//   - *TimeoutError          when the budget is exceeded (matches ErrTimeout).
//   - ErrIllegalMove         from Replay.
package search
