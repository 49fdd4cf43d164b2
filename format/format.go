// Package format describes how colors are read from and written to plain
// values: hex strings and numeric tuples in a chosen system and scale.
//
// A Format is the single entry point for turning "anything color-like" into
// a color.Color (Coerce) and for turning a color.Color back into something
// another program can consume directly (Render).
package format

import (
	"strings"

	"github.com/mmuldo/chromatic/color"
)

// NoRounding keeps full precision when rendering.
const NoRounding = -1

// Policy decides what happens to tuple input outside the native ranges.
type Policy int

const (
	// Reject returns a *color.ParseError.
	Reject Policy = iota
	// Clamp pulls the value back into range.
	Clamp
)

func (p Policy) String() string {
	if p == Clamp {
		return "clamp"
	}
	return "reject"
}

// Format is a comparable value describing a target system and its numeric
// conventions. Build one with New; the zero Format renders RGB rounded to
// integers, which is rarely what anyone wants.
type Format struct {
	System color.System `json:"system"`

	// Max is the rendered upper bound of channels whose native range is
	// [0,1], e.g. 255 for RGB bytes or 100 for HSL percentages. 0 means 1.
	Max float64 `json:"max,omitempty"`
	// HueMax is the rendered size of a full turn. 0 means 360.
	HueMax float64 `json:"hue_max,omitempty"`
	// AlphaMax is the rendered upper bound of alpha. 0 means 1.
	AlphaMax float64 `json:"alpha_max,omitempty"`

	IncludeAlpha bool `json:"include_alpha,omitempty"`

	// Round is the number of decimals kept by Render, or NoRounding.
	Round int `json:"round"`

	// Uppercase and OmitHash only affect Hex output.
	Uppercase bool `json:"uppercase,omitempty"`
	OmitHash  bool `json:"omit_hash,omitempty"`

	Policy Policy `json:"policy,omitempty"`
}

// Option configures a Format in New.
type Option func(*Format)

// New returns a Format for sys. Byte systems round to integers by default,
// every other system keeps full precision.
func New(sys color.System, opts ...Option) Format {
	f := Format{System: sys, Round: NoRounding}
	if sys.IsByte() {
		f.Round = 0
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithMax sets the rendered upper bound of unit channels.
func WithMax(max float64) Option {
	return func(f *Format) {
		f.Max = max
	}
}

// WithHueMax sets the rendered size of a full hue turn, e.g. 1 for unit hue.
func WithHueMax(max float64) Option {
	return func(f *Format) {
		f.HueMax = max
	}
}

// WithAlphaMax sets the rendered upper bound of alpha.
func WithAlphaMax(max float64) Option {
	return func(f *Format) {
		f.AlphaMax = max
	}
}

// WithAlpha makes Render include alpha.
func WithAlpha() Option {
	return func(f *Format) {
		f.IncludeAlpha = true
	}
}

// WithRound sets the number of decimals kept by Render.
func WithRound(decimals int) Option {
	return func(f *Format) {
		f.Round = decimals
	}
}

// Uppercase renders hex digits in upper case.
func Uppercase() Option {
	return func(f *Format) {
		f.Uppercase = true
	}
}

// OmitHash renders hex strings without the leading '#'.
func OmitHash() Option {
	return func(f *Format) {
		f.OmitHash = true
	}
}

// WithPolicy sets how out of range tuple input is handled.
func WithPolicy(p Policy) Option {
	return func(f *Format) {
		f.Policy = p
	}
}

var (
	// Web renders #rrggbb strings as used by HTML and CSS.
	Web = New(color.Hex)
	// Tkinter accepts the same strings as the web.
	Tkinter = Web
	// Matplotlib renders #rrggbbaa strings.
	Matplotlib = New(color.Hex, WithAlpha())
	// Pygame renders integer RGB tuples in 0..255.
	Pygame = New(color.RGB, WithMax(255), WithAlphaMax(255), WithRound(0))
	// Kivy renders unrounded RGBA tuples in 0..1.
	Kivy = New(color.RGB, WithAlpha())
)

// Default is used wherever a format is optional.
var Default = Web

var named = map[string]Format{
	"web":        Web,
	"tkinter":    Tkinter,
	"matplotlib": Matplotlib,
	"pygame":     Pygame,
	"kivy":       Kivy,
}

// Lookup returns the predefined format called name, or the default format
// of the system called name.
func Lookup(name string) (Format, error) {
	if f, ok := named[strings.ToLower(name)]; ok {
		return f, nil
	}
	sys, e := color.ParseSystem(name)
	if e != nil {
		return Format{}, e
	}
	return New(sys), nil
}

func (f Format) Equal(other Format) bool {
	return f == other
}

// Coerce is Coerce(input, f).
func (f Format) Coerce(input any) (color.Color, error) {
	return Coerce(input, f)
}

// Render is Render(c, f).
func (f Format) Render(c color.Color) Rendered {
	return Render(c, f)
}

// New builds a color from values expressed in f's scale.
func (f Format) New(values ...float64) (color.Color, error) {
	return Coerce(values, f)
}

func (f Format) max() float64 {
	if f.Max == 0 {
		return 1
	}
	return f.Max
}

func (f Format) hueMax() float64 {
	if f.HueMax == 0 {
		return 360
	}
	return f.HueMax
}

func (f Format) alphaMax() float64 {
	if f.AlphaMax == 0 {
		return 1
	}
	return f.AlphaMax
}

// scale returns the factor between native and rendered values of channel i.
func (f Format) scale(i int) float64 {
	if i == f.System.HueIndex() {
		return f.hueMax() / 360
	}
	if lo, hi := f.System.Range(i); lo == 0 && hi == 1 {
		return f.max()
	}
	return 1
}
