package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watersort/core"
)

// mustConfig builds a configuration or fails the test.
func mustConfig(t testing.TB, bottles [][]string, capacity int) core.Configuration {
	t.Helper()
	c, err := core.NewConfiguration(bottles, capacity)
	require.NoError(t, err)

	return c
}

// randomConfig deals colors×capacity segments into colors full containers
// followed by spare empty ones.
func randomConfig(t testing.TB, rnd *rand.Rand, colors, capacity, spare int) core.Configuration {
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

func TestNewConfiguration_Errors(t *testing.T) {
	_, err := core.NewConfiguration(nil, 4)
	assert.ErrorIs(t, err, core.ErrNoContainers)

	_, err = core.NewConfiguration([][]string{{"a", "a", "a"}, {}}, 2)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)

	_, err = core.NewConfiguration([][]string{{"a", ""}, {}}, 2)
	assert.ErrorIs(t, err, core.ErrEmptyColor)

	many := make([][]string, core.MaxColors+1)
	for i := range many {
		many[i] = []string{fmt.Sprintf("c%d", i)}
	}
	_, err = core.NewConfiguration(many, 1)
	assert.ErrorIs(t, err, core.ErrTooManyColors)
}

func TestNewConfiguration_InferCapacity(t *testing.T) {
	c := mustConfig(t, [][]string{{"a", "b", "a"}, {"b"}, {}}, 0)
	assert.Equal(t, 3, c.Capacity())

	empty := mustConfig(t, [][]string{{}, {}, {}, {}}, 0)
	assert.Equal(t, core.DefaultCapacity, empty.Capacity())
}

func TestConfiguration_NamesRoundTrip(t *testing.T) {
	in := [][]string{{"red", "blue"}, {"blue", "red"}, {}, {}}
	c := mustConfig(t, in, 2)

	assert.Equal(t, in, c.Names())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 2, c.Palette().Len())
	assert.Equal(t, "[[red blue] [blue red] [] []]", c.String())
	assert.Equal(t, map[string]int{"red": 2, "blue": 2}, c.ColorCounts())
	assert.Equal(t, 4, c.Segments())
}

func TestConfiguration_KeyIsSeparatorAware(t *testing.T) {
	a := mustConfig(t, [][]string{{"x"}, {"y"}}, 2)
	b := mustConfig(t, [][]string{{"x", "y"}, {}}, 2)
	assert.NotEqual(t, a.Key(), b.Key())
	assert.False(t, a.Equal(b))

	// same contents, separately built palettes
	c := mustConfig(t, [][]string{{"x"}, {"y"}}, 2)
	assert.Equal(t, a.Key(), c.Key())
	assert.True(t, a.Equal(c))

	// interning order differs, names still match
	p := mustConfig(t, [][]string{{"x"}, {"y"}, {}}, 2)
	q := mustConfig(t, [][]string{{"y"}, {"x"}, {}}, 2)
	assert.False(t, p.Equal(q))
	q = q.Apply(core.Move{From: 0, To: 2})
	q = q.Apply(core.Move{From: 1, To: 0})
	q = q.Apply(core.Move{From: 2, To: 1})
	assert.True(t, p.Equal(q))
	assert.NotEqual(t, p.Key(), q.Key(), "keys are palette-relative")
}

func TestLegalMoves_Order(t *testing.T) {
	c := mustConfig(t, [][]string{{"red", "blue"}, {"blue", "red"}, {}, {}}, 2)
	want := []core.Move{{From: 0, To: 2}, {From: 0, To: 3}, {From: 1, To: 2}, {From: 1, To: 3}}
	assert.Equal(t, want, core.LegalMoves(c))
}

func TestLegalMoves_MatchingTopAndFull(t *testing.T) {
	c := mustConfig(t, [][]string{
		{"a", "b"},      // top b
		{"b"},           // top b, room for 2
		{"a", "a", "a"}, // full
		{"c"},           // top c
	}, 3)
	want := []core.Move{
		{From: 0, To: 1},
		{From: 1, To: 0},
	}
	assert.Equal(t, want, core.LegalMoves(c))
}

func TestLegalMoves_NoneWhenAllFullAndMismatched(t *testing.T) {
	c := mustConfig(t, [][]string{
		{"r", "b", "g", "y"},
		{"y", "g", "b", "r"},
		{"b", "r", "y", "g"},
		{"g", "y", "r", "b"},
	}, 4)
	assert.Empty(t, core.LegalMoves(c))
}

func TestApply_BlockMove(t *testing.T) {
	c := mustConfig(t, [][]string{{"a", "b", "b"}, {"b"}, {}, {}}, 4)
	next := c.Apply(core.Move{From: 0, To: 1})

	assert.Equal(t, [][]string{{"a"}, {"b", "b", "b"}, {}, {}}, next.Names())
	// receiver untouched
	assert.Equal(t, [][]string{{"a", "b", "b"}, {"b"}, {}, {}}, c.Names())
}

func TestApply_ClampedToFreeSpace(t *testing.T) {
	c := mustConfig(t, [][]string{{"a", "b", "b", "b"}, {"c", "c", "b"}, {}, {}}, 4)
	next := c.Apply(core.Move{From: 0, To: 1})

	assert.Equal(t, [][]string{{"a", "b", "b"}, {"c", "c", "b", "b"}, {}, {}}, next.Names())
}

func TestApply_IntoEmpty(t *testing.T) {
	c := mustConfig(t, [][]string{{"a", "a"}, {"b", "b"}, {}, {}}, 2)
	next := c.Apply(core.Move{From: 1, To: 3})

	assert.Equal(t, [][]string{{"a", "a"}, {}, {}, {"b", "b"}}, next.Names())
	assert.Equal(t, c.Capacity(), next.Capacity())
	assert.Same(t, c.Palette(), next.Palette())
}

// TestApply_ConservesColours checks that every legal move keeps per-colour totals.
func TestApply_ConservesColours(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		c := randomConfig(t, rnd, 3+rnd.Intn(3), 2+rnd.Intn(3), 2)
		want := c.ColorCounts()

		// walk a few random legal moves
		for step := 0; step < 10; step++ {
			moves := core.LegalMoves(c)
			if len(moves) == 0 {
				break
			}
			for _, m := range moves {
				next := c.Apply(m)
				require.Equal(t, want, next.ColorCounts(), "trial %d move %v", trial, m)
				for i := 0; i < next.Len(); i++ {
					require.LessOrEqual(t, next.Container(i).Len(), next.Capacity())
				}
			}
			c = c.Apply(moves[rnd.Intn(len(moves))])
		}
	}
}

func TestContainer_Accessors(t *testing.T) {
	ct := core.NewContainer(1, 2, 2)
	assert.Equal(t, 3, ct.Len())
	assert.False(t, ct.Empty())
	top, ok := ct.Top()
	assert.True(t, ok)
	assert.Equal(t, core.Color(2), top)
	assert.Equal(t, 2, ct.TopRun())
	assert.False(t, ct.Monochrome())
	assert.Equal(t, []core.Color{1, 2, 2}, ct.Colors())

	var empty core.Container
	_, ok = empty.Top()
	assert.False(t, ok)
	assert.Zero(t, empty.TopRun())
	assert.True(t, empty.Monochrome())
	assert.Equal(t, empty, core.NewContainer())
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "0->3", core.Move{From: 0, To: 3}.String())
}
