package core

import (
	"fmt"
	"strings"
)

// Configuration is one full puzzle state: an ordered sequence of containers
// sharing capacity C. Configurations are immutable; Apply returns a new one.
//
// Two configurations are equal iff every container at every index is equal.
// Key gives a string suitable for map keys with the same equality.
type Configuration struct {
	containers []Container
	capacity   int
	palette    *Palette
}

// NewConfiguration builds a configuration from container contents listed
// bottom to top. A capacity ≤ 0 is inferred as the longest container, or
// DefaultCapacity when every container is empty.
//
// Only structural problems are reported: ErrNoContainers, ErrEmptyColor,
// ErrTooManyColors, and ErrCapacityExceeded. Colour-count legality is left
// to the caller.
func NewConfiguration(bottles [][]string, capacity int) (Configuration, error) {
	// 1. Reject the degenerate shape
	if len(bottles) == 0 {
		return Configuration{}, ErrNoContainers
	}

	// 2. Resolve capacity
	if capacity <= 0 {
		capacity = inferCapacity(bottles)
	}

	// 3. Intern colours and build containers
	pal := newPalette()
	containers := make([]Container, len(bottles))
	for i, bottle := range bottles {
		if len(bottle) > capacity {
			return Configuration{}, fmt.Errorf("%w: container %d holds %d segments, capacity %d",
				ErrCapacityExceeded, i, len(bottle), capacity)
		}
		colors := make([]Color, len(bottle))
		for j, name := range bottle {
			c, err := pal.intern(name)
			if err != nil {
				return Configuration{}, fmt.Errorf("container %d segment %d: %w", i, j, err)
			}
			colors[j] = c
		}
		containers[i] = NewContainer(colors...)
	}

	return Configuration{containers: containers, capacity: capacity, palette: pal}, nil
}

// inferCapacity returns the longest container length, or DefaultCapacity.
func inferCapacity(bottles [][]string) int {
	longest := 0
	for _, b := range bottles {
		if len(b) > longest {
			longest = len(b)
		}
	}
	if longest == 0 {
		return DefaultCapacity
	}

	return longest
}

// Len returns the number of containers.
func (c Configuration) Len() int { return len(c.containers) }

// Capacity returns the per-container capacity C.
func (c Configuration) Capacity() int { return c.capacity }

// Palette returns the palette used to intern colour names.
func (c Configuration) Palette() *Palette { return c.palette }

// Container returns the i-th container.
func (c Configuration) Container(i int) Container { return c.containers[i] }

// Key returns a byte-string key for use in maps. Containers are terminated by
// the reserved 0 byte, so ([a],[b]) and ([a b],[]) never share a key.
func (c Configuration) Key() string {
	n := len(c.containers)
	for _, ct := range c.containers {
		n += ct.Len()
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, ct := range c.containers {
		sb.WriteString(ct.segs)
		sb.WriteByte(0)
	}

	return sb.String()
}

// Equal reports structural equality. Configurations from different palettes
// are compared by colour name.
func (c Configuration) Equal(o Configuration) bool {
	if len(c.containers) != len(o.containers) {
		return false
	}
	if c.palette == o.palette {
		for i := range c.containers {
			if c.containers[i] != o.containers[i] {
				return false
			}
		}

		return true
	}
	a, b := c.Names(), o.Names()
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// Names returns the container contents as colour names, bottom to top.
func (c Configuration) Names() [][]string {
	out := make([][]string, len(c.containers))
	for i, ct := range c.containers {
		names := make([]string, ct.Len())
		for j := 0; j < ct.Len(); j++ {
			names[j] = c.palette.Name(ct.At(j))
		}
		out[i] = names
	}

	return out
}

// ColorCounts returns the total number of segments per colour name.
func (c Configuration) ColorCounts() map[string]int {
	counts := make(map[string]int, c.palette.Len())
	for _, ct := range c.containers {
		for j := 0; j < ct.Len(); j++ {
			counts[c.palette.Name(ct.At(j))]++
		}
	}

	return counts
}

// Segments returns the total number of segments across all containers.
func (c Configuration) Segments() int {
	total := 0
	for _, ct := range c.containers {
		total += ct.Len()
	}

	return total
}

// String renders the configuration as [[red blue] [] ...].
func (c Configuration) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, names := range c.Names() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		sb.WriteString(strings.Join(names, " "))
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
