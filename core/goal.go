package core

import (
	"fmt"
	"strings"
)

// Goal selects which configurations count as solved.
type Goal int

const (
	// GoalMonochrome accepts configurations whose containers are each
	// empty or hold a single colour, regardless of fill level.
	GoalMonochrome Goal = iota

	// GoalFull additionally requires every non-empty container to be
	// filled to capacity. Only meaningful when each colour's total count
	// is a multiple of the capacity.
	GoalFull
)

// String returns the token accepted by ParseGoal.
func (g Goal) String() string {
	switch g {
	case GoalMonochrome:
		return "monochrome"
	case GoalFull:
		return "full"
	default:
		return fmt.Sprintf("Goal(%d)", int(g))
	}
}

// ParseGoal maps "monochrome" or "full" (case-insensitive) to a Goal.
// The empty string yields GoalMonochrome.
func ParseGoal(s string) (Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monochrome":
		return GoalMonochrome, nil
	case "full":
		return GoalFull, nil
	default:
		return GoalMonochrome, fmt.Errorf("%w: %q", ErrUnknownGoal, s)
	}
}

// Reached reports whether c is terminal under g.
func (g Goal) Reached(c Configuration) bool {
	for _, ct := range c.containers {
		if ct.Empty() {
			continue
		}
		if !ct.Monochrome() {
			return false
		}
		if g == GoalFull && ct.Len() != c.capacity {
			return false
		}
	}

	return true
}

// IsSolved reports whether every container of c is empty or single-coloured.
func IsSolved(c Configuration) bool {
	return GoalMonochrome.Reached(c)
}
