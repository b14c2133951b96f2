package puzzle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/watersort/core"
)

// Validate checks that every colour's total segment count is a multiple of
// the capacity, which is necessary for a solution with full bottles to exist.
// On success it reports whether p is already solved.
func Validate(p *Puzzle) (Report, error) {
	cfg, err := p.Configuration()
	if err != nil {
		return Report{}, err
	}

	counts := cfg.ColorCounts()
	var bad []string
	for name, n := range counts {
		if n%p.Capacity != 0 {
			bad = append(bad, fmt.Sprintf("%s(%d)", name, n))
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return Report{}, fmt.Errorf("%w %d: %s", ErrColorCount, p.Capacity, strings.Join(bad, ", "))
	}

	return Report{
		AlreadySolved: core.IsSolved(cfg),
		Colors:        len(counts),
		Segments:      cfg.Segments(),
	}, nil
}
