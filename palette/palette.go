// Package palette holds named and positional collections of colors that are
// stored and read back through a format.Format.
//
// Palettes are not safe for concurrent mutation; callers sharing one
// between goroutines must serialize writes.
package palette

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
)

// Naming decides when two color names are the same.
type Naming int

const (
	CaseSensitive Naming = iota
	CaseInsensitive
)

type entry struct {
	name  string
	color color.Color
}

// Palette maps names to colors and remembers insertion order. Every color
// is stored in the palette's format system.
type Palette struct {
	Name string

	format  format.Format
	naming  Naming
	entries []entry
	index   map[string]int
}

// Option configures a Palette in New.
type Option func(*Palette)

// WithNaming sets how names are compared.
func WithNaming(n Naming) Option {
	return func(p *Palette) {
		p.naming = n
	}
}

// New returns an empty palette.
func New(name string, f format.Format, opts ...Option) *Palette {
	p := &Palette{
		Name:   name,
		format: f,
		index:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Palette) key(name string) string {
	if p.naming == CaseInsensitive {
		return strings.ToLower(name)
	}
	return name
}

// Add stores input under name.
func (p *Palette) Add(name string, input any) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if i, ok := p.index[p.key(name)]; ok {
		return &NameConflictError{Name: name, Existing: p.entries[i].color}
	}
	c, e := p.format.Coerce(input)
	if e != nil {
		return fmt.Errorf("adding %q: %w", name, e)
	}
	p.index[p.key(name)] = len(p.entries)
	p.entries = append(p.entries, entry{name: name, color: c})
	return nil
}

// Update replaces the color stored under name.
func (p *Palette) Update(name string, input any) error {
	i, ok := p.index[p.key(name)]
	if !ok {
		return notFound(name)
	}
	c, e := p.format.Coerce(input)
	if e != nil {
		return fmt.Errorf("updating %q: %w", name, e)
	}
	p.entries[i].color = c
	return nil
}

// Remove deletes name from the palette.
func (p *Palette) Remove(name string) error {
	i, ok := p.index[p.key(name)]
	if !ok {
		return notFound(name)
	}
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	delete(p.index, p.key(name))
	for j := i; j < len(p.entries); j++ {
		p.index[p.key(p.entries[j].name)] = j
	}
	return nil
}

// Get returns the color stored under name.
func (p *Palette) Get(name string) (color.Color, error) {
	i, ok := p.index[p.key(name)]
	if !ok {
		return color.Color{}, notFound(name)
	}
	return p.entries[i].color, nil
}

// MustGet is like Get but panics when name is missing.
func (p *Palette) MustGet(name string) color.Color {
	c, e := p.Get(name)
	if e != nil {
		panic(e)
	}
	return c
}

// Render returns the color stored under name rendered with the palette's
// format.
func (p *Palette) Render(name string) (format.Rendered, error) {
	c, e := p.Get(name)
	if e != nil {
		return format.Rendered{}, e
	}
	return p.format.Render(c), nil
}

// Names returns the color names in insertion order.
func (p *Palette) Names() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.name
	}
	return out
}

// Colors returns the colors in insertion order.
func (p *Palette) Colors() []color.Color {
	out := make([]color.Color, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.color
	}
	return out
}

// All iterates over names and colors in insertion order.
func (p *Palette) All() iter.Seq2[string, color.Color] {
	return func(yield func(string, color.Color) bool) {
		for _, e := range p.entries {
			if !yield(e.name, e.color) {
				return
			}
		}
	}
}

func (p *Palette) Len() int { return len(p.entries) }

// Has reports whether name is defined.
func (p *Palette) Has(name string) bool {
	_, ok := p.index[p.key(name)]
	return ok
}

// HasColor reports whether some name holds a color equal to input.
func (p *Palette) HasColor(input any) bool {
	names, e := p.NamesOf(input)
	return e == nil && len(names) > 0
}

// NamesOf returns every name whose color equals input once both are
// rendered to 8-bit RGBA.
func (p *Palette) NamesOf(input any) ([]string, error) {
	c, e := p.format.Coerce(input)
	if e != nil {
		return nil, e
	}
	var names []string
	for _, en := range p.entries {
		if en.color.Equal(c) {
			names = append(names, en.name)
		}
	}
	return names, nil
}

func (p *Palette) Format() format.Format { return p.format }

func (p *Palette) Naming() Naming { return p.naming }

// SetFormat converts every stored color to the system of f.
func (p *Palette) SetFormat(f format.Format) {
	p.format = f
	for i := range p.entries {
		p.entries[i].color = color.Convert(p.entries[i].color, f.System)
	}
}

// Grayscale returns a copy with every color replaced by its grayscale.
func (p *Palette) Grayscale() *Palette {
	return p.mapColors(color.Grayscale)
}

// Invert returns a copy with every color replaced by its complement.
func (p *Palette) Invert() *Palette {
	return p.mapColors(color.Invert)
}

func (p *Palette) mapColors(fn func(color.Color) color.Color) *Palette {
	out := p.Clone()
	for i := range out.entries {
		out.entries[i].color = fn(out.entries[i].color)
	}
	return out
}

// Merge adds every color of other that p does not define yet. A name both
// palettes define with different colors is a conflict. On error p is left
// unchanged.
func (p *Palette) Merge(other *Palette) error {
	merged := p.Clone()
	for _, en := range other.entries {
		existing, e := merged.Get(en.name)
		if e != nil {
			if e = merged.Add(en.name, en.color); e != nil {
				return e
			}
			continue
		}
		if !existing.Equal(en.color) {
			return &NameConflictError{Name: en.name, Existing: existing, Incoming: en.color}
		}
	}
	*p = *merged
	return nil
}

// Clone returns a deep copy of p.
func (p *Palette) Clone() *Palette {
	out := &Palette{
		Name:    p.Name,
		format:  p.format,
		naming:  p.naming,
		entries: append([]entry(nil), p.entries...),
		index:   make(map[string]int, len(p.index)),
	}
	for k, v := range p.index {
		out.index[k] = v
	}
	return out
}
