package format

import (
	"math/rand/v2"

	"github.com/mmuldo/chromatic/color"
)

// Random returns a color with random 8-bit RGB channels expressed in
// f.System. Alpha is random too when randomAlpha is set, opaque otherwise.
func Random(f Format, randomAlpha bool) color.Color {
	return RandomFrom(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), f, randomAlpha)
}

// RandomFrom is like Random with an explicit source.
func RandomFrom(r *rand.Rand, f Format, randomAlpha bool) color.Color {
	a := 255
	if randomAlpha {
		a = r.IntN(256)
	}
	c := color.MustNew(color.RGB255, float64(r.IntN(256)), float64(r.IntN(256)), float64(r.IntN(256)), float64(a)/255)
	return color.Convert(c, f.System)
}
