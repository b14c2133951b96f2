// Package render writes a search.Result as human-readable text or as a
// JSON / YAML document. Move indices are 1-based in every format.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/watersort/core"
	"github.com/katalvlaran/watersort/search"
)

// ErrUnknownFormat is returned for an unrecognised output format.
var ErrUnknownFormat = errors.New("render: unknown output format")

// ErrNilResult is returned when Write is given no result.
var ErrNilResult = errors.New("render: nil result")

// Format selects the output encoding.
type Format int

const (
	Text Format = iota
	JSON
	YAML
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts text, json, and yaml (or yml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Text, fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
	}
}

// Document is the structured form shared by the JSON and YAML encodings.
type Document struct {
	Solved     bool       `json:"solved" yaml:"solved"`
	Status     string     `json:"status" yaml:"status"`
	TotalMoves int        `json:"total_moves" yaml:"total_moves"`
	Moves      []StepMove `json:"moves" yaml:"moves"`
	Stats      Stats      `json:"stats" yaml:"stats"`
}

// StepMove is one pour with 1-based bottle numbers.
type StepMove struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Stats carries the search counters.
type Stats struct {
	StatesVisited  int     `json:"states_visited" yaml:"states_visited"`
	ElapsedSeconds float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Strategy       string  `json:"strategy" yaml:"strategy"`
}

// NewDocument converts res into its structured form.
func NewDocument(res *search.Result) Document {
	doc := Document{
		Solved:     res.Solved,
		Status:     res.Status.String(),
		TotalMoves: len(res.Moves),
		Moves:      make([]StepMove, len(res.Moves)),
		Stats: Stats{
			StatesVisited:  res.Visited,
			ElapsedSeconds: res.Elapsed.Seconds(),
			Strategy:       res.Strategy.String(),
		},
	}
	for i, m := range res.Moves {
		doc.Moves[i] = StepMove{From: m.From + 1, To: m.To + 1}
	}

	return doc
}

// Write encodes res to w in format f. With verbose set, the text format
// prints the bottle contents after every step, replaying the moves from start.
func Write(w io.Writer, res *search.Result, start core.Configuration, f Format, verbose bool) error {
	if res == nil {
		return ErrNilResult
	}
	switch f {
	case Text:
		return writeText(w, res, start, verbose)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(res))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(res)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

func writeText(w io.Writer, res *search.Result, start core.Configuration, verbose bool) error {
	var sb strings.Builder
	if !res.Solved {
		fmt.Fprintf(&sb, "No solution found (%s, %d states visited).\n", res.Status, res.Visited)
		_, err := io.WriteString(w, sb.String())
		return err
	}

	cur := start
	for i, m := range res.Moves {
		fmt.Fprintf(&sb, "Step %d: bottle %d -> bottle %d\n", i+1, m.From+1, m.To+1)
		if !verbose {
			continue
		}
		next, err := search.Replay(cur, []core.Move{m})
		if err != nil {
			return fmt.Errorf("render: step %d: %w", i+1, err)
		}
		cur = next
		writeState(&sb, cur)
	}
	fmt.Fprintf(&sb, "Solved in %d moves.\n", len(res.Moves))

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeState prints one line per bottle, bottom to top.
func writeState(sb *strings.Builder, c core.Configuration) {
	for i, names := range c.Names() {
		contents := "(empty)"
		if len(names) > 0 {
			contents = strings.Join(names, ", ")
		}
		fmt.Fprintf(sb, "  bottle %d: [%s]\n", i+1, contents)
	}
}
