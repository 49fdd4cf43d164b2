// Package color holds the color value type and the conversion engine that
// moves values between color systems.
//
// Every system converts to and from CIE XYZ (D65, sRGB white at Y = 1), so
// any pair of systems is connected by composing two transforms. Systems that
// are plain reparametrizations of sRGB (HSL, HSV, CMY, ...) skip XYZ and go
// through sRGB directly.
package color

import (
	"encoding/json"
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an immutable color value tagged with its system. The zero value
// is transparent black in RGB.
type Color struct {
	sys System
	v   [4]float64
	a   float64
}

// New builds a color from channel values, optionally followed by alpha.
// Hue channels wrap modulo 360; any other value outside its range is
// rejected.
func New(sys System, values ...float64) (Color, error) {
	return build(sys, values, false)
}

// Clamped is like New but clamps out of range values instead of rejecting
// them.
func Clamped(sys System, values ...float64) (Color, error) {
	return build(sys, values, true)
}

// MustNew is like New but panics on error. Meant for literals in tests and
// package level variables.
func MustNew(sys System, values ...float64) Color {
	c, e := New(sys, values...)
	if e != nil {
		panic(e)
	}
	return c
}

func build(sys System, values []float64, clamp bool) (Color, error) {
	if !sys.Valid() {
		return Color{}, &ConversionError{From: sys, To: sys}
	}
	n := sys.Channels()
	if len(values) != n && len(values) != n+1 {
		return Color{}, parseErrorf(formatValues(values), "%v takes %d or %d values, got %d", sys, n, n+1, len(values))
	}

	c := Color{sys: sys, a: 1}
	for i := 0; i < n; i++ {
		x := values[i]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Color{}, parseErrorf(formatValues(values), "channel %s is not a finite number", systems[sys].channels[i])
		}
		if i == sys.HueIndex() {
			c.v[i] = wrapHue(x)
			continue
		}
		lo, hi := sys.Range(i)
		if x < lo || x > hi {
			if !clamp {
				return Color{}, parseErrorf(formatValues(values), "channel %s = %g outside [%g, %g]", systems[sys].channels[i], x, lo, hi)
			}
			x = clampTo(x, lo, hi)
		}
		c.v[i] = x
	}
	if len(values) == n+1 {
		a := values[n]
		if math.IsNaN(a) || ((a < 0 || a > 1) && !clamp) {
			return Color{}, parseErrorf(formatValues(values), "alpha = %g outside [0, 1]", a)
		}
		c.a = clampTo(a, 0, 1)
	}
	return c, nil
}

// FromStd converts a standard library color to an RGB255 color.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{
		sys: RGB255,
		v:   [4]float64{float64(n.R), float64(n.G), float64(n.B)},
		a:   float64(n.A) / 255,
	}
}

// System returns the system c is expressed in.
func (c Color) System() System { return c.sys }

// Values returns a copy of the channel values, alpha excluded.
func (c Color) Values() []float64 {
	out := make([]float64, c.sys.Channels())
	copy(out, c.v[:])
	return out
}

// Value returns channel i.
func (c Color) Value(i int) float64 { return c.v[i] }

// Alpha returns the opacity in [0,1].
func (c Color) Alpha() float64 { return c.a }

// WithAlpha returns c with its alpha replaced. a is clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	if math.IsNaN(a) {
		a = 1
	}
	c.a = clampTo(a, 0, 1)
	return c
}

// Std returns c as an 8-bit non-premultiplied color.
func (c Color) Std() stdcolor.NRGBA {
	rgb := Convert(c, RGB255)
	return stdcolor.NRGBA{
		R: uint8(math.Round(rgb.v[0])),
		G: uint8(math.Round(rgb.v[1])),
		B: uint8(math.Round(rgb.v[2])),
		A: uint8(math.Round(c.a * 255)),
	}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Std().RGBA()
}

// Equal reports whether a and b render to the same 8-bit RGBA color,
// whatever their systems.
func (c Color) Equal(other Color) bool {
	return c.Std() == other.Std()
}

// Hex renders c as #rrggbb, with an alpha byte appended when c is not
// fully opaque.
func (c Color) Hex() string {
	n := c.Std()
	if n.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func (c Color) String() string {
	var sb strings.Builder
	sb.WriteString(c.sys.String())
	sb.WriteByte('(')
	sb.WriteString(formatValues(c.Values()))
	if c.a != 1 {
		sb.WriteString(" / ")
		sb.WriteString(strconv.FormatFloat(c.a, 'g', 6, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

type colorJSON struct {
	System System    `json:"system"`
	Values []float64 `json:"values"`
	Alpha  *float64  `json:"alpha,omitempty"`
}

func (c Color) MarshalJSON() ([]byte, error) {
	a := c.a
	return json.Marshal(colorJSON{System: c.sys, Values: c.Values(), Alpha: &a})
}

// UnmarshalJSON validates ranges like New. A missing alpha means opaque.
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw colorJSON
	if e := json.Unmarshal(data, &raw); e != nil {
		return e
	}
	values := raw.Values
	if raw.Alpha != nil {
		values = append(values, *raw.Alpha)
	}
	v, e := New(raw.System, values...)
	if e != nil {
		return e
	}
	*c = v
	return nil
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strings.Join(parts, ", ")
}

func clampTo(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// wrapHue maps h onto [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
