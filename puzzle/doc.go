// Package puzzle reads water-sort puzzle files and checks them before they
// reach the solver.
//
// What
//
//   - Parse / ParseFile decode one of three input formats into a Puzzle:
//     YAML (`bottles:` list), JSON (`{"bottles": [...]}`), or plain text
//     (one bottle per line, colours separated by whitespace, `(empty)` for an
//     empty bottle, blank lines ignored).
//   - Structural rules are enforced while parsing: 4 to 20 bottles, colour
//     tokens without whitespace, and every non-empty bottle holding the same
//     number of segments. That shared length is the capacity; a puzzle whose
//     bottles are all empty gets core.DefaultCapacity.
//   - Validate checks that each colour's total is a multiple of the capacity
//     and reports whether the puzzle is already solved.
//   - FormatHelp returns the human-readable description of all formats.
//
// Format detection
//
//	FormatAuto picks by file extension: .yaml and .yml are YAML, .json is
//	JSON, anything else is text.
//
// Errors
//
//   - *ParseError wraps every decoding or structural failure; it matches
//     ErrParse and the specific cause (ErrTooFewBottles, ErrTooManyBottles,
//     ErrBadColor, ErrCapacityMismatch, ErrMissingBottles) with errors.Is.
//   - ErrColorCount from Validate.
//   - ErrUnknownFormat from ParseFormat.
package puzzle
