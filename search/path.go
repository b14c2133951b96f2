package search

import (
	"fmt"

	"github.com/katalvlaran/watersort/core"
)

// pathTo walks parent links from the node at goal back to the start and
// returns the moves in chronological order.
func (w *walker) pathTo(goal int32) []core.Move {
	// build reversed path
	moves := []core.Move{}
	for cur := goal; w.nodes[cur].parent >= 0; cur = w.nodes[cur].parent {
		moves = append(moves, w.nodes[cur].move)
	}
	// reverse to get start → goal
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}

// Replay applies moves to start one by one, checking that each is legal in
// the configuration it is applied to, and returns the final configuration.
// It returns ErrIllegalMove (wrapped with the step number) on the first
// move that LegalMoves would not produce.
func Replay(start core.Configuration, moves []core.Move) (core.Configuration, error) {
	cur := start
	for step, m := range moves {
		if !isLegal(cur, m) {
			return cur, fmt.Errorf("%w: step %d (%v) in %v", ErrIllegalMove, step+1, m, cur)
		}
		cur = cur.Apply(m)
	}

	return cur, nil
}

func isLegal(c core.Configuration, m core.Move) bool {
	for _, legal := range core.LegalMoves(c) {
		if legal == m {
			return true
		}
	}

	return false
}
