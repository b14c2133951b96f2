package core

// Container is an immutable bottom-to-top stack of segments.
// The zero value is an empty container. Containers are comparable with ==
// and may be used as map keys.
type Container struct {
	segs string // one byte per segment, bottom first
}

// NewContainer builds a container from colours listed bottom to top.
func NewContainer(colors ...Color) Container {
	b := make([]byte, len(colors))
	for i, c := range colors {
		b[i] = byte(c)
	}

	return Container{segs: string(b)}
}

// Len returns the number of segments.
func (c Container) Len() int { return len(c.segs) }

// Empty reports whether the container holds no segments.
func (c Container) Empty() bool { return len(c.segs) == 0 }

// At returns the i-th segment counted from the bottom.
func (c Container) At(i int) Color { return Color(c.segs[i]) }

// Top returns the colour of the top segment; ok is false for an empty container.
func (c Container) Top() (color Color, ok bool) {
	if len(c.segs) == 0 {
		return 0, false
	}

	return Color(c.segs[len(c.segs)-1]), true
}

// TopRun returns the length of the maximal run of same-coloured segments on top.
func (c Container) TopRun() int {
	n := len(c.segs)
	if n == 0 {
		return 0
	}
	top := c.segs[n-1]
	run := 1
	for i := n - 2; i >= 0 && c.segs[i] == top; i-- {
		run++
	}

	return run
}

// Monochrome reports whether the container holds at most one distinct colour.
// An empty container is monochrome.
func (c Container) Monochrome() bool {
	for i := 1; i < len(c.segs); i++ {
		if c.segs[i] != c.segs[0] {
			return false
		}
	}

	return true
}

// Colors returns the segments bottom to top.
func (c Container) Colors() []Color {
	out := make([]Color, len(c.segs))
	for i := 0; i < len(c.segs); i++ {
		out[i] = Color(c.segs[i])
	}

	return out
}

// split removes the top n segments and returns the remainder and the removed part.
func (c Container) split(n int) (rest Container, top string) {
	cut := len(c.segs) - n

	return Container{segs: c.segs[:cut]}, c.segs[cut:]
}

// push returns a container with segs stacked on top.
func (c Container) push(segs string) Container {
	return Container{segs: c.segs + segs}
}
