package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Convert expresses c in another system. Converting to c's own system
// returns c unchanged. Results are clamped to the destination's ranges,
// hue is normalized to [0,360) and set to 0 for achromatic colors. Alpha
// is carried over. An undeclared destination returns c unchanged; use
// ConvertChecked to detect it.
func Convert(c Color, to System) Color {
	out, e := ConvertChecked(c, to)
	if e != nil {
		return c
	}
	return out
}

// ConvertChecked is Convert with an error for undeclared systems.
func ConvertChecked(c Color, to System) (Color, error) {
	if !c.sys.Valid() || !to.Valid() {
		return Color{}, &ConversionError{From: c.sys, To: to}
	}
	if c.sys == to {
		return c, nil
	}

	var v [4]float64
	if c.sys.rgbDerived() && to.rgbDerived() {
		r, g, b := toSRGB(c.sys, c.v)
		v = fromSRGB(to, unitClean(r), unitClean(g), unitClean(b))
	} else {
		v = fromXYZ(to, toXYZ(c.sys, c.v))
	}
	return Color{sys: to, v: settle(to, v), a: c.a}, nil
}

// settle clamps every channel of v into sys's ranges and wraps hue.
func settle(sys System, v [4]float64) [4]float64 {
	hue := sys.HueIndex()
	for i := 0; i < sys.Channels(); i++ {
		x := v[i]
		if math.IsNaN(x) {
			x = 0
		}
		if i == hue {
			v[i] = wrapHue(x)
			continue
		}
		lo, hi := sys.Range(i)
		v[i] = clampTo(x, lo, hi)
	}
	return v
}

// In returns c converted to sys.
func (c Color) In(sys System) Color {
	return Convert(c, sys)
}

// Grayscale replaces c by the neutral gray of the same CIELuv lightness,
// expressed in c's system.
func Grayscale(c Color) Color {
	luv := Convert(c, CIELuv)
	gray := Color{sys: CIELuv, v: [4]float64{luv.v[0]}, a: c.a}
	return Convert(gray, c.sys)
}

// Invert returns the RGB complement of c, expressed in c's system.
func Invert(c Color) Color {
	rgb := Convert(c, RGB)
	inv := Color{sys: RGB, v: [4]float64{1 - rgb.v[0], 1 - rgb.v[1], 1 - rgb.v[2]}, a: c.a}
	return Convert(inv, c.sys)
}

// Distance is a cheap perceptual distance between two colors, the
// redmean-weighted RGB distance described by Thiadmer Riemersma.
func Distance(a, b Color) float64 {
	return colorfulOf(a).DistanceRiemersma(colorfulOf(b))
}

func colorfulOf(c Color) colorful.Color {
	rgb := Convert(c, RGB)
	return colorful.Color{R: rgb.v[0], G: rgb.v[1], B: rgb.v[2]}
}
