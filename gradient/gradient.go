// Package gradient interpolates between color stops, either channel by
// channel or treating hue as an angle.
package gradient

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
)

var (
	// ErrInvalid is wrapped by every construction error.
	ErrInvalid = errors.New("gradient: invalid gradient")

	// ErrDomain is wrapped by *DomainError.
	ErrDomain = errors.New("gradient: position out of domain")
)

// DomainError is returned by strict gradients for positions outside the
// domain.
type DomainError struct {
	X, Lo, Hi float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("gradient: %g is outside [%g, %g]", e.X, e.Lo, e.Hi)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// Mode selects how channels are interpolated.
type Mode int

const (
	// Linear interpolates every channel, hue included, as a plain number.
	Linear Mode = iota
	// Polar interpolates the hue channel along an arc chosen by HueLerp.
	Polar
)

// HueLerp chooses the arc a Polar gradient takes between two hues.
type HueLerp int

const (
	Shortest HueLerp = iota
	Longest
	Increasing
	Decreasing
)

var hueLerpNames = [...]string{"shortest", "longest", "increasing", "decreasing"}

func (h HueLerp) String() string {
	if h < 0 || int(h) >= len(hueLerpNames) {
		return fmt.Sprintf("HueLerp(%d)", int(h))
	}
	return hueLerpNames[h]
}

// ParseHueLerp reads the name of a hue arc, as printed by String.
func ParseHueLerp(name string) (HueLerp, error) {
	for i, n := range hueLerpNames {
		if strings.EqualFold(n, name) {
			return HueLerp(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown hue interpolation %q", ErrInvalid, name)
}

// Gradient is an immutable sequence of color stops placed on a domain.
// It is safe for concurrent use.
type Gradient struct {
	cfg    config
	stops  []color.Color
	conv   []color.Color
	coords []float64
}

// New builds a gradient through stops. By default stops are evenly spaced
// on [0,1] and interpolated linearly in CIELuv (HCLuv for Polar).
func New(stops []color.Color, opts ...Option) (*Gradient, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.spaceSet && cfg.mode == Polar {
		cfg.space = color.HCLuv
	}

	switch {
	case len(stops) < 2:
		return nil, fmt.Errorf("%w: need at least two stops, got %d", ErrInvalid, len(stops))
	case !cfg.space.Valid():
		return nil, fmt.Errorf("%w: unknown interpolation space %v", ErrInvalid, cfg.space)
	case cfg.space == color.Hex:
		return nil, fmt.Errorf("%w: hex is not an interpolation space", ErrInvalid)
	case cfg.mode == Polar && !cfg.space.IsPolar():
		return nil, fmt.Errorf("%w: polar mode needs a space with hue, got %v", ErrInvalid, cfg.space)
	case !(cfg.lo < cfg.hi):
		return nil, fmt.Errorf("%w: domain [%g, %g] is empty", ErrInvalid, cfg.lo, cfg.hi)
	}

	coords := cfg.coords
	if coords == nil {
		coords = make([]float64, len(stops))
		for i := range coords {
			coords[i] = cfg.lo + (cfg.hi-cfg.lo)*float64(i)/float64(len(stops)-1)
		}
		coords[len(coords)-1] = cfg.hi
	} else {
		if len(coords) != len(stops) {
			return nil, fmt.Errorf("%w: %d coordinates for %d stops", ErrInvalid, len(coords), len(stops))
		}
		if !sort.Float64sAreSorted(coords) {
			return nil, fmt.Errorf("%w: coordinates must not decrease", ErrInvalid)
		}
		coords = append([]float64(nil), coords...)
	}

	g := &Gradient{
		cfg:    cfg,
		stops:  append([]color.Color(nil), stops...),
		conv:   make([]color.Color, len(stops)),
		coords: coords,
	}
	for i, s := range stops {
		g.conv[i] = color.Convert(s, cfg.space)
	}
	return g, nil
}

// FromInputs coerces every input with f and builds a gradient through the
// results.
func FromInputs(inputs []any, f format.Format, opts ...Option) (*Gradient, error) {
	stops := make([]color.Color, len(inputs))
	for i, in := range inputs {
		c, e := format.Coerce(in, f)
		if e != nil {
			return nil, fmt.Errorf("stop %d: %w", i, e)
		}
		stops[i] = c
	}
	return New(stops, opts...)
}

// Stops returns the colors the gradient was built from, in input order.
func (g *Gradient) Stops() []color.Color {
	return append([]color.Color(nil), g.stops...)
}

// Coords returns the position of every stop.
func (g *Gradient) Coords() []float64 {
	return append([]float64(nil), g.coords...)
}

// Space returns the interpolation space. Every color the gradient returns
// is expressed in it.
func (g *Gradient) Space() color.System { return g.cfg.space }

// Domain returns the bounds of At.
func (g *Gradient) Domain() (lo, hi float64) { return g.cfg.lo, g.cfg.hi }

// At returns the color at position x of the domain. Outside the domain x
// is clamped, unless the gradient is strict.
func (g *Gradient) At(x float64) (color.Color, error) {
	lo, hi := g.cfg.lo, g.cfg.hi
	if math.IsNaN(x) || ((x < lo || x > hi) && g.cfg.strict) {
		return color.Color{}, &DomainError{X: x, Lo: lo, Hi: hi}
	}
	x = math.Max(lo, math.Min(hi, x))

	// first stop placed after x
	i := sort.Search(len(g.coords), func(j int) bool { return g.coords[j] > x })
	switch {
	case i == 0:
		return g.conv[0], nil
	case i == len(g.coords):
		return g.conv[len(g.conv)-1], nil
	}

	p := (x - g.coords[i-1]) / (g.coords[i] - g.coords[i-1])
	if g.cfg.discrete {
		return g.conv[i-1+int(math.Round(p))], nil
	}
	return g.lerp(g.conv[i-1], g.conv[i], p)
}

// Sample returns the color at fraction t of the domain.
func (g *Gradient) Sample(t float64) (color.Color, error) {
	lo, hi := g.cfg.lo, g.cfg.hi
	if t == 1 {
		return g.At(hi)
	}
	return g.At(lo + t*(hi-lo))
}

// SampleN returns n evenly spaced colors, both ends included. A single
// sample is taken from the middle.
func (g *Gradient) SampleN(n int) ([]color.Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: cannot take %d samples", ErrInvalid, n)
	}
	if n == 1 {
		c, e := g.Sample(0.5)
		return []color.Color{c}, e
	}
	return g.sample(n, func(i int) float64 { return float64(i) / float64(n-1) })
}

// SampleInner is SampleN without the two ends: sampling 2 colors from a
// two stop gradient does not just return its stops.
func (g *Gradient) SampleInner(n int) ([]color.Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: cannot take %d samples", ErrInvalid, n)
	}
	return g.sample(n, func(i int) float64 { return float64(i+1) / float64(n+1) })
}

func (g *Gradient) sample(n int, at func(i int) float64) ([]color.Color, error) {
	out := make([]color.Color, n)
	for i := range out {
		c, e := g.Sample(at(i))
		if e != nil {
			return nil, e
		}
		out[i] = c
	}
	return out, nil
}

// Invert returns the same gradient through the complements of its stops.
func (g *Gradient) Invert() *Gradient {
	return g.mapStops(color.Invert)
}

// Grayscale returns the same gradient through the grayscale of its stops.
func (g *Gradient) Grayscale() *Gradient {
	return g.mapStops(color.Grayscale)
}

func (g *Gradient) mapStops(fn func(color.Color) color.Color) *Gradient {
	out := &Gradient{
		cfg:    g.cfg,
		stops:  make([]color.Color, len(g.stops)),
		conv:   make([]color.Color, len(g.stops)),
		coords: g.coords,
	}
	for i, s := range g.stops {
		out.stops[i] = fn(s)
		out.conv[i] = color.Convert(out.stops[i], g.cfg.space)
	}
	return out
}
