package gradient

import "github.com/mmuldo/chromatic/color"

// Option configures a Gradient in New.
type Option func(*config)

type config struct {
	space    color.System
	spaceSet bool
	mode     Mode
	hue      HueLerp
	coords   []float64
	lo, hi   float64
	discrete bool
	strict   bool
}

func defaultConfig() config {
	return config{
		space: color.CIELuv,
		mode:  Linear,
		hue:   Shortest,
		lo:    0,
		hi:    1,
	}
}

// WithSpace sets the system colors are interpolated in.
func WithSpace(sys color.System) Option {
	return func(c *config) {
		c.space = sys
		c.spaceSet = true
	}
}

// WithMode sets the interpolation mode.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithHueLerp sets the arc taken between hues and switches to Polar mode.
func WithHueLerp(h HueLerp) Option {
	return func(c *config) {
		c.mode = Polar
		c.hue = h
	}
}

// WithCoords places stop i at coords[i]. Coordinates must not decrease.
func WithCoords(coords []float64) Option {
	return func(c *config) {
		c.coords = append([]float64(nil), coords...)
	}
}

// WithDomain sets the range of positions accepted by At.
func WithDomain(lo, hi float64) Option {
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// Discrete makes the gradient return the nearest stop instead of
// interpolating, which suits categorical data.
func Discrete() Option {
	return func(c *config) {
		c.discrete = true
	}
}

// Strict makes positions outside the domain an error instead of clamping
// them.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}
