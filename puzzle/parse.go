package puzzle

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/watersort/core"
)

// emptyKeyword marks an empty bottle in the text format.
const emptyKeyword = "(empty)"

// document is the shared YAML/JSON shape. A nil Bottles means the key was absent.
type document struct {
	Bottles *[][]string `yaml:"bottles" json:"bottles"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("colortoken", validateColorToken)
}

// validateColorToken accepts non-empty colour names without whitespace.
func validateColorToken(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && !strings.ContainsFunc(s, unicode.IsSpace)
}

// ParseFile reads the puzzle at path. FormatAuto selects the decoder from the
// file extension. A missing file is reported as the underlying *fs.PathError.
func ParseFile(path string, f Format) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: read %s: %w", path, err)
	}
	if f == FormatAuto {
		f = DetectFormat(path)
	}

	p, err := decode(data, f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return p, nil
}

// Parse decodes a puzzle from r. FormatAuto is treated as FormatText since a
// reader has no extension.
func Parse(r io.Reader, f Format) (*Puzzle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("puzzle: read: %w", err)
	}
	if f == FormatAuto {
		f = FormatText
	}

	p, err := decode(data, f)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return p, nil
}

// decode runs the format decoder and then the structural checks.
func decode(data []byte, f Format) (*Puzzle, error) {
	var (
		bottles [][]string
		err     error
	)
	switch f {
	case FormatYAML:
		bottles, err = decodeYAML(data)
	case FormatJSON:
		bottles, err = decodeJSON(data)
	case FormatText:
		bottles, err = decodeText(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, err
	}

	return build(bottles)
}

func decodeYAML(data []byte) ([][]string, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %w (expected `bottles:` followed by a list of colour lists)", err)
	}
	if doc.Bottles == nil {
		return nil, ErrMissingBottles
	}

	return *doc.Bottles, nil
}

func decodeJSON(data []byte) ([][]string, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(`json: %w (expected {"bottles": [["c1", "c2"], []]})`, err)
	}
	if doc.Bottles == nil {
		return nil, ErrMissingBottles
	}

	return *doc.Bottles, nil
}

func decodeText(data []byte) ([][]string, error) {
	var bottles [][]string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case emptyKeyword:
			bottles = append(bottles, []string{})
		default:
			bottles = append(bottles, strings.Fields(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}

	return bottles, nil
}

// build normalises empty bottles, infers the capacity, and applies the structural rules.
func build(bottles [][]string) (*Puzzle, error) {
	// 1. Null bottles become empty slices
	for i, b := range bottles {
		if b == nil {
			bottles[i] = []string{}
		}
	}

	// 2. Capacity is the longest bottle; all-empty falls back to the default
	capacity := 0
	for _, b := range bottles {
		capacity = max(capacity, len(b))
	}
	if capacity == 0 {
		capacity = core.DefaultCapacity
	}

	// 3. Count and token rules
	p := &Puzzle{Bottles: bottles, Capacity: capacity}
	if err := validate.Struct(p); err != nil {
		return nil, translate(err, len(bottles))
	}

	// 4. Every non-empty bottle must be full
	for i, b := range bottles {
		if len(b) > 0 && len(b) != capacity {
			return nil, fmt.Errorf("%w: bottle %d has %d segments, expected %d (all bottles must share one capacity or be empty)",
				ErrCapacityMismatch, i+1, len(b), capacity)
		}
	}

	return p, nil
}

// translate maps the first validator failure onto a sentinel error.
func translate(err error, n int) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "min":
		return fmt.Errorf("%w: %d bottles (minimum %d)", ErrTooFewBottles, n, MinBottles)
	case "max":
		return fmt.Errorf("%w: %d bottles (maximum %d)", ErrTooManyBottles, n, MaxBottles)
	case "colortoken":
		return fmt.Errorf("%w: %q at %s", ErrBadColor, fe.Value(), fe.Namespace())
	default:
		return fmt.Errorf("%s failed %q", fe.Namespace(), fe.Tag())
	}
}
