package search_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watersort/core"
)

// tickClock advances by step on every reading, so timeouts trigger after a
// predictable number of clock polls.
type tickClock struct {
	t    time.Time
	step time.Duration
}

func newTickClock(step time.Duration) *tickClock {
	return &tickClock{t: time.Unix(0, 0), step: step}
}

func (c *tickClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func mustConfig(t testing.TB, bottles [][]string, capacity int) core.Configuration {
	t.Helper()
	c, err := core.NewConfiguration(bottles, capacity)
	require.NoError(t, err)

	return c
}

// swapped is the 4-container, capacity-2 puzzle solvable in two moves.
func swapped(t testing.TB) core.Configuration {
	return mustConfig(t, [][]string{{"red", "blue"}, {"blue", "red"}, {}, {}}, 2)
}

// dealt deals colors×capacity segments into full containers plus spare empties.
func dealt(t testing.TB, rnd *rand.Rand, colors, capacity, spare int) core.Configuration {
	t.Helper()
	segs := make([]string, 0, colors*capacity)
	for c := 0; c < colors; c++ {
		for k := 0; k < capacity; k++ {
			segs = append(segs, fmt.Sprintf("c%d", c))
		}
	}
	rnd.Shuffle(len(segs), func(i, j int) { segs[i], segs[j] = segs[j], segs[i] })

	bottles := make([][]string, colors+spare)
	for i := 0; i < colors; i++ {
		bottles[i] = segs[i*capacity : (i+1)*capacity]
	}
	for i := colors; i < colors+spare; i++ {
		bottles[i] = []string{}
	}

	return mustConfig(t, bottles, capacity)
}

// shortestByEnumeration explores the whole reachable space from start and
// returns the smallest depth at which any goal configuration appears.
func shortestByEnumeration(start core.Configuration, goal core.Goal) (int, bool) {
	if goal.Reached(start) {
		return 0, true
	}
	dist := map[string]int{start.Key(): 0}
	queue := []core.Configuration{start}
	best := -1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur.Key()]
		for _, m := range core.LegalMoves(cur) {
			next := cur.Apply(m)
			k := next.Key()
			if _, seen := dist[k]; seen {
				continue
			}
			dist[k] = d + 1
			if goal.Reached(next) && (best < 0 || d+1 < best) {
				best = d + 1
			}
			queue = append(queue, next)
		}
	}

	return best, best >= 0
}
