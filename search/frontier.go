package search

// frontier holds discovered-but-unexpanded nodes, as arena indices.
type frontier interface {
	push(idx int32)
	pop() int32
	len() int
}

func newFrontier(s Strategy, hint int) frontier {
	if s == DepthFirst {
		return &lifo{items: make([]int32, 0, hint)}
	}

	return &fifo{items: make([]int32, 0, hint)}
}

// fifo is a slice queue; the consumed prefix is dropped once it dominates.
type fifo struct {
	items []int32
	head  int
}

func (q *fifo) push(idx int32) { q.items = append(q.items, idx) }

func (q *fifo) pop() int32 {
	idx := q.items[q.head]
	q.head++
	if q.head > 1024 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return idx
}

func (q *fifo) len() int { return len(q.items) - q.head }

// lifo is a slice stack.
type lifo struct {
	items []int32
}

func (s *lifo) push(idx int32) { s.items = append(s.items, idx) }

func (s *lifo) pop() int32 {
	last := len(s.items) - 1
	idx := s.items[last]
	s.items = s.items[:last]

	return idx
}

func (s *lifo) len() int { return len(s.items) }
