package puzzle

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/watersort/core"
)

// Sentinel errors.
var (
	// ErrParse marks every failure to turn an input into a Puzzle.
	ErrParse = errors.New("puzzle: parse error")

	// ErrMissingBottles indicates a YAML or JSON document without a bottles list.
	ErrMissingBottles = errors.New("puzzle: missing bottles list")

	// ErrTooFewBottles indicates fewer than MinBottles bottles.
	ErrTooFewBottles = errors.New("puzzle: too few bottles")

	// ErrTooManyBottles indicates more than MaxBottles bottles.
	ErrTooManyBottles = errors.New("puzzle: too many bottles")

	// ErrBadColor indicates an empty colour token or one containing whitespace.
	ErrBadColor = errors.New("puzzle: invalid colour token")

	// ErrCapacityMismatch indicates non-empty bottles of different lengths.
	ErrCapacityMismatch = errors.New("puzzle: bottles differ in capacity")

	// ErrColorCount indicates a colour whose total is not a multiple of the capacity.
	ErrColorCount = errors.New("puzzle: colour count is not a multiple of capacity")

	// ErrUnknownFormat is returned by ParseFormat for an unrecognised token.
	ErrUnknownFormat = errors.New("puzzle: unknown input format")
)

// Bottle count limits.
const (
	MinBottles = 4
	MaxBottles = 20
)

// Format selects the input decoder.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	FormatYAML
	FormatJSON
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts auto, yaml (or yml), json, and text (or txt).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat maps a file extension to a concrete Format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Puzzle is a parsed, structurally valid puzzle.
type Puzzle struct {
	// Bottles lists each bottle's colours bottom to top. Empty bottles are empty slices.
	Bottles [][]string `validate:"min=4,max=20,dive,dive,colortoken"`

	// Capacity is the shared length of the non-empty bottles.
	Capacity int `validate:"gte=1"`
}

// Configuration converts p into the solver's state model.
func (p *Puzzle) Configuration() (core.Configuration, error) {
	return core.NewConfiguration(p.Bottles, p.Capacity)
}

// Report summarises a successful Validate.
type Report struct {
	AlreadySolved bool
	Colors        int // distinct colours
	Segments      int // total segments across all bottles
}

// ParseError describes why an input could not be parsed.
type ParseError struct {
	Path string // file path, or "" for a reader
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("puzzle: parse: %v", e.Err)
	}

	return fmt.Sprintf("puzzle: parse %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrParse and the underlying cause to errors.Is.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
