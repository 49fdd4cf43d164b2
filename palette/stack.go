package palette

import (
	"fmt"
	"iter"
	"slices"

	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
	"github.com/mmuldo/chromatic/gradient"
)

// StackPalette is an ordered list of unnamed colors.
type StackPalette struct {
	format format.Format
	colors []color.Color
}

// NewStack coerces inputs with f into a new stack.
func NewStack(f format.Format, inputs ...any) (*StackPalette, error) {
	s := &StackPalette{format: f}
	if e := s.Append(inputs...); e != nil {
		return nil, e
	}
	return s, nil
}

func (s *StackPalette) coerce(inputs []any) ([]color.Color, error) {
	out := make([]color.Color, len(inputs))
	for i, in := range inputs {
		c, e := s.format.Coerce(in)
		if e != nil {
			return nil, fmt.Errorf("color %d: %w", i, e)
		}
		out[i] = c
	}
	return out, nil
}

// Append adds inputs at the end. Nothing is added if any input is invalid.
func (s *StackPalette) Append(inputs ...any) error {
	cs, e := s.coerce(inputs)
	if e != nil {
		return e
	}
	s.colors = append(s.colors, cs...)
	return nil
}

// Insert places input before index i; i == Len appends.
func (s *StackPalette) Insert(i int, input any) error {
	if i < 0 || i > len(s.colors) {
		return badIndex(i, len(s.colors))
	}
	c, e := s.format.Coerce(input)
	if e != nil {
		return e
	}
	s.colors = slices.Insert(s.colors, i, c)
	return nil
}

// Set replaces the color at index i.
func (s *StackPalette) Set(i int, input any) error {
	if i < 0 || i >= len(s.colors) {
		return badIndex(i, len(s.colors))
	}
	c, e := s.format.Coerce(input)
	if e != nil {
		return e
	}
	s.colors[i] = c
	return nil
}

// Remove deletes the color at index i.
func (s *StackPalette) Remove(i int) error {
	if i < 0 || i >= len(s.colors) {
		return badIndex(i, len(s.colors))
	}
	s.colors = slices.Delete(s.colors, i, i+1)
	return nil
}

// At returns the color at index i.
func (s *StackPalette) At(i int) (color.Color, error) {
	if i < 0 || i >= len(s.colors) {
		return color.Color{}, badIndex(i, len(s.colors))
	}
	return s.colors[i], nil
}

// Render returns the color at index i rendered with the stack's format.
func (s *StackPalette) Render(i int) (format.Rendered, error) {
	c, e := s.At(i)
	if e != nil {
		return format.Rendered{}, e
	}
	return s.format.Render(c), nil
}

func (s *StackPalette) Len() int { return len(s.colors) }

func (s *StackPalette) Format() format.Format { return s.format }

// Colors returns a copy of the colors.
func (s *StackPalette) Colors() []color.Color {
	return slices.Clone(s.colors)
}

// All iterates over indices and colors.
func (s *StackPalette) All() iter.Seq2[int, color.Color] {
	return slices.All(s.colors)
}

// Index returns the first index holding a color equal to input, or -1.
func (s *StackPalette) Index(input any) (int, error) {
	c, e := s.format.Coerce(input)
	if e != nil {
		return -1, e
	}
	return slices.IndexFunc(s.colors, c.Equal), nil
}

// Concat returns a new stack holding s followed by other, in s's format.
func (s *StackPalette) Concat(other *StackPalette) *StackPalette {
	out := s.Clone()
	for _, c := range other.colors {
		out.colors = append(out.colors, color.Convert(c, s.format.System))
	}
	return out
}

// Slice returns a new stack with the colors in [i, j).
func (s *StackPalette) Slice(i, j int) (*StackPalette, error) {
	if i < 0 || j > len(s.colors) || i > j {
		return nil, fmt.Errorf("%w: [%d:%d] with length %d", ErrIndex, i, j, len(s.colors))
	}
	return &StackPalette{format: s.format, colors: slices.Clone(s.colors[i:j])}, nil
}

// Resize returns a stack of n colors sampled evenly from a gradient through
// s. A single color is repeated.
func (s *StackPalette) Resize(n int, opts ...gradient.Option) (*StackPalette, error) {
	switch {
	case n < 1:
		return nil, fmt.Errorf("%w: cannot resize to %d colors", ErrIndex, n)
	case len(s.colors) == 0:
		return nil, ErrEmpty
	case len(s.colors) == 1:
		out := &StackPalette{format: s.format, colors: make([]color.Color, n)}
		for i := range out.colors {
			out.colors[i] = s.colors[0]
		}
		return out, nil
	}

	g, e := gradient.New(s.colors, opts...)
	if e != nil {
		return nil, e
	}
	samples, e := g.SampleN(n)
	if e != nil {
		return nil, e
	}
	out := &StackPalette{format: s.format, colors: make([]color.Color, n)}
	for i, c := range samples {
		out.colors[i] = color.Convert(c, s.format.System)
	}
	return out, nil
}

// Grayscale returns a copy with every color replaced by its grayscale.
func (s *StackPalette) Grayscale() *StackPalette {
	return s.mapColors(color.Grayscale)
}

// Invert returns a copy with every color replaced by its complement.
func (s *StackPalette) Invert() *StackPalette {
	return s.mapColors(color.Invert)
}

func (s *StackPalette) mapColors(fn func(color.Color) color.Color) *StackPalette {
	out := s.Clone()
	for i, c := range out.colors {
		out.colors[i] = fn(c)
	}
	return out
}

// SetFormat converts every stored color to the system of f.
func (s *StackPalette) SetFormat(f format.Format) {
	s.format = f
	for i, c := range s.colors {
		s.colors[i] = color.Convert(c, f.System)
	}
}

// Reversed returns a copy in reverse order.
func (s *StackPalette) Reversed() *StackPalette {
	out := s.Clone()
	slices.Reverse(out.colors)
	return out
}

func (s *StackPalette) Clone() *StackPalette {
	return &StackPalette{format: s.format, colors: slices.Clone(s.colors)}
}
