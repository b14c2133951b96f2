package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/watersort/core"
)

// Sentinel errors for search execution.
var (
	// ErrEmptyConfiguration is returned when the start configuration has no containers.
	ErrEmptyConfiguration = errors.New("search: start configuration has no containers")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrTimeout is matched (via errors.Is) by the *TimeoutError a search
	// returns when it exceeds its time budget.
	ErrTimeout = errors.New("search: timed out")

	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognised token.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrIllegalMove is returned by Replay when a move is not legal in the
	// configuration it is applied to.
	ErrIllegalMove = errors.New("search: illegal move")
)

// DefaultReportEvery is the default number of iterations between progress reports.
const DefaultReportEvery = 1000

// Strategy selects the frontier discipline.
type Strategy int

const (
	// BreadthFirst expands configurations in FIFO order; solutions are shortest.
	BreadthFirst Strategy = iota

	// DepthFirst expands configurations in LIFO order; solutions are not minimal.
	DepthFirst
)

// String returns "breadth-first" or "depth-first".
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "breadth-first"/"bfs" and "depth-first"/"dfs".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "breadth-first", "bfs":
		return BreadthFirst, nil
	case "depth-first", "dfs":
		return DepthFirst, nil
	default:
		return BreadthFirst, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Status is the terminal control state of one search.
type Status int

const (
	// Solved means a goal configuration was reached (possibly the start itself).
	Solved Status = iota

	// Exhausted means every reachable configuration was explored without
	// reaching the goal: the puzzle is unsolvable from the start.
	Exhausted

	// TimedOut means the time budget ran out first.
	TimedOut
)

// String returns a lower-case name for the status.
func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case TimedOut:
		return "timed_out"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one search.
//   - Moves is empty when the start was already solved or no solution exists.
//   - Visited counts distinct configurations recorded, including the start and
//     the goal; it is 0 when the start was already solved.
type Result struct {
	Status   Status
	Solved   bool
	Moves    []core.Move
	Visited  int
	Elapsed  time.Duration
	Strategy Strategy
}

// TimeoutError reports a search that exceeded its budget, with the counters
// reached at that point. It matches ErrTimeout under errors.Is.
type TimeoutError struct {
	Elapsed time.Duration
	Visited int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("search: timed out after %s, %d states visited", e.Elapsed.Round(time.Millisecond), e.Visited)
}

// Unwrap lets errors.Is(err, ErrTimeout) succeed.
func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// Progress is a periodic diagnostic snapshot of a running search.
type Progress struct {
	Strategy   Strategy
	Iterations int
	Visited    int
	Frontier   int
	Elapsed    time.Duration
}

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Strategy picks the frontier discipline. Default BreadthFirst.
	Strategy Strategy

	// Timeout bounds wall-clock time; ≤ 0 means unbounded.
	Timeout time.Duration

	// Goal decides which configurations are terminal. Default GoalMonochrome.
	Goal core.Goal

	// OnProgress, if non-nil, is called every ReportEvery iterations.
	// It observes the search and cannot influence it.
	OnProgress func(Progress)

	// ReportEvery is the iteration interval for OnProgress. 0 disables reports.
	ReportEvery int

	// Now is the clock used for timeout and elapsed measurements.
	Now func() time.Time

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - BreadthFirst strategy
//   - no timeout
//   - GoalMonochrome
//   - no progress hook, ReportEvery = DefaultReportEvery
//   - time.Now as the clock
func DefaultOptions() Options {
	return Options{
		Strategy:    BreadthFirst,
		Timeout:     0,
		Goal:        core.GoalMonochrome,
		OnProgress:  nil,
		ReportEvery: DefaultReportEvery,
		Now:         time.Now,
	}
}

// WithStrategy selects BreadthFirst or DepthFirst.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case BreadthFirst, DepthFirst:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithTimeout bounds the search duration. d ≤ 0 means no limit.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.Timeout = d
	}
}

// WithGoal selects the terminal predicate.
func WithGoal(g core.Goal) Option {
	return func(o *Options) {
		switch g {
		case core.GoalMonochrome, core.GoalFull:
			o.Goal = g
		default:
			o.err = fmt.Errorf("%w: unknown goal %d", ErrOptionViolation, int(g))
		}
	}
}

// WithProgress registers a diagnostics callback.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithReportEvery sets the iteration interval between progress reports.
//
//	n > 0: report every n iterations
//	n == 0: never report
//	n < 0: invalid option → ErrOptionViolation
func WithReportEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ReportEvery cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ReportEvery = n
	}
}

// WithClock replaces time.Now, mainly for deterministic timeout tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}
