package core

import "fmt"

// Palette maps colour names to interned Colors and back.
// A Palette is built once by NewConfiguration and never modified afterwards,
// so it is shared freely between every configuration derived from it.
type Palette struct {
	names []string         // names[c-1] is the name of Color c
	index map[string]Color // name → Color
}

func newPalette() *Palette {
	return &Palette{index: make(map[string]Color)}
}

// intern returns the Color for name, assigning the next free one on first use.
func (p *Palette) intern(name string) (Color, error) {
	if name == "" {
		return 0, ErrEmptyColor
	}
	if c, ok := p.index[name]; ok {
		return c, nil
	}
	if len(p.names) >= MaxColors {
		return 0, fmt.Errorf("%w: more than %d", ErrTooManyColors, MaxColors)
	}
	p.names = append(p.names, name)
	c := Color(len(p.names))
	p.index[name] = c

	return c, nil
}

// Len returns the number of distinct colours.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}

	return len(p.names)
}

// Name returns the colour name of c, or "" when c is not part of the palette.
func (p *Palette) Name(c Color) string {
	if p == nil || c == 0 || int(c) > len(p.names) {
		return ""
	}

	return p.names[c-1]
}

// Lookup returns the Color interned for name.
func (p *Palette) Lookup(name string) (Color, bool) {
	if p == nil {
		return 0, false
	}
	c, ok := p.index[name]

	return c, ok
}

// Names returns all colour names in interning order.
func (p *Palette) Names() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}
