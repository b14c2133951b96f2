package core

// LegalMoves enumerates every move permitted from c, sources ascending and
// destinations ascending within each source. A move is legal when:
//   - the source is non-empty,
//   - the destination holds fewer than Capacity segments,
//   - the destination is empty or its top colour equals the source's top colour.
//
// The size of the source's top run does not affect legality; Apply clamps it.
func LegalMoves(c Configuration) []Move {
	n := len(c.containers)
	moves := make([]Move, 0, n)
	for from := 0; from < n; from++ {
		top, ok := c.containers[from].Top()
		if !ok {
			continue // nothing to pour
		}
		for to := 0; to < n; to++ {
			if to == from {
				continue
			}
			dst := c.containers[to]
			if dst.Len() >= c.capacity {
				continue // full
			}
			if dstTop, ok := dst.Top(); !ok || dstTop == top {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}

	return moves
}

// Apply returns the configuration reached by pouring m.
//
// The top run of same-coloured segments of m.From moves onto m.To, limited
// to the free space of m.To; whatever does not fit stays in the source.
// The receiver is not modified and untouched containers are shared.
//
// m must be one of LegalMoves(c); other moves are not checked and their
// result is unspecified.
func (c Configuration) Apply(m Move) Configuration {
	src := c.containers[m.From]
	dst := c.containers[m.To]

	// 1. How many segments actually move
	count := src.TopRun()
	if free := c.capacity - dst.Len(); free < count {
		count = free
	}

	// 2. Copy the container slice; containers themselves are values
	next := make([]Container, len(c.containers))
	copy(next, c.containers)

	rest, poured := src.split(count)
	next[m.From] = rest
	next[m.To] = dst.push(poured)

	return Configuration{containers: next, capacity: c.capacity, palette: c.palette}
}
