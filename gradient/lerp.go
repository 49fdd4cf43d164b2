package gradient

import (
	"math"

	"github.com/mmuldo/chromatic/color"
)

// chroma below which a stop's hue is meaningless
const achromatic = 1e-9

func (g *Gradient) lerp(a, b color.Color, p float64) (color.Color, error) {
	return lerp(a, b, p, g.cfg.mode, g.cfg.hue)
}

// lerp expects a and b in the same system.
func lerp(a, b color.Color, p float64, mode Mode, hl HueLerp) (color.Color, error) {
	sys := a.System()
	n := sys.Channels()
	hue := -1
	if mode == Polar {
		hue = sys.HueIndex()
	}

	values := make([]float64, n+1)
	for i := 0; i < n; i++ {
		if i == hue {
			values[i] = lerpHue(a, b, p, hl)
			continue
		}
		x, y := a.Value(i), b.Value(i)
		values[i] = x + (y-x)*p
	}
	values[n] = a.Alpha() + (b.Alpha()-a.Alpha())*p
	return color.Clamped(sys, values...)
}

func lerpHue(a, b color.Color, p float64, hl HueLerp) float64 {
	sys := a.System()
	hi, ci := sys.HueIndex(), sys.ChromaIndex()
	ha, hb := a.Value(hi), b.Value(hi)

	// a gray endpoint takes the hue of the other one
	switch {
	case a.Value(ci) < achromatic && b.Value(ci) >= achromatic:
		ha = hb
	case b.Value(ci) < achromatic && a.Value(ci) >= achromatic:
		hb = ha
	}

	d := hueDelta(ha, hb, hl)
	return wrap(ha + d*p)
}

// hueDelta returns the signed angle travelled from ha to hb.
func hueDelta(ha, hb float64, hl HueLerp) float64 {
	d := hb - ha
	switch hl {
	case Longest:
		d = shortest(d)
		switch {
		case d > 0:
			d -= 360
		case d < 0:
			d += 360
		}
	case Increasing:
		d = wrap(d)
	case Decreasing:
		if d = wrap(d); d > 0 {
			d -= 360
		}
	default:
		d = shortest(d)
	}
	return d
}

// shortest maps d onto (-180, 180]; exactly opposite hues go the positive
// way.
func shortest(d float64) float64 {
	d = wrap(d+180) - 180
	if d == -180 {
		d = 180
	}
	return d
}

func wrap(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
