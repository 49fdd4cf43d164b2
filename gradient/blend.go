package gradient

import (
	"math"

	"github.com/mmuldo/chromatic/color"
)

// Blend mixes a and b in sys, t = 0 giving a and t = 1 giving b. Hue takes
// the shortest arc when sys has one. t is clamped to [0,1] and the result
// is expressed in a's system.
func Blend(a, b color.Color, t float64, sys color.System) color.Color {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))
	mode := Linear
	if sys.IsPolar() {
		mode = Polar
	}
	c, e := lerp(color.Convert(a, sys), color.Convert(b, sys), t, mode, Shortest)
	if e != nil {
		return a
	}
	return color.Convert(c, a.System())
}

// Mix is the halfway blend of a and b in CIELuv.
func Mix(a, b color.Color) color.Color {
	return Blend(a, b, 0.5, color.CIELuv)
}
