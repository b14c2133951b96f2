// Package core models a water-sort puzzle as immutable values and defines the
// pure rules of the game: the pour transition, the legal-move generator, and
// the terminal (solved) predicate.
//
// What
//
//   - Container: a bottom-to-top stack of coloured segments, comparable and hashable.
//   - Configuration: the ordered set of all containers plus the shared capacity C.
//   - Move: an ordered (From, To) pair of container indices.
//   - Goal: which configurations count as solved (monochrome, or monochrome and full).
//
// Colours are opaque tokens. NewConfiguration interns them into a Palette so that
// a Container is a compact byte string and a Configuration has a cheap,
// separator-aware Key usable as a map key.
//
// Rules
//
//   - Apply pours the maximal same-colour run from the top of From onto To,
//     clamped to the free space of To. Only the fitting part moves.
//   - LegalMoves enumerates (src, dst) with src ascending, then dst ascending.
//     A move is legal when src is non-empty, dst is not full, and dst is empty or
//     its top colour matches src's top colour. Run length never gates legality.
//   - IsSolved reports whether every container is empty or single-coloured.
//
// Determinism
//
//	LegalMoves always returns moves in the same order for equal configurations,
//	which makes search results reproducible.
//
// Complexity (N = containers, S = total segments)
//
//   - Apply:      O(N + run length)  (untouched containers are shared)
//   - LegalMoves: O(N²)
//   - IsSolved:   O(S)
//   - Key:        O(N + S)
//
// Usage
//
//	cfg, err := core.NewConfiguration([][]string{
//		{"red", "blue"}, {"blue", "red"}, {}, {},
//	}, 2)
//	if err != nil {
//		// ErrNoContainers, ErrCapacityExceeded, ErrEmptyColor, ErrTooManyColors
//	}
//	for _, m := range core.LegalMoves(cfg) {
//		next := cfg.Apply(m)
//		_ = core.IsSolved(next)
//	}
package core
