package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/lucasb-eyer/go-colorful"
)

// xyz is a tristimulus value scaled so that sRGB white has Y = 1.
type xyz [3]float64

// achromatic threshold for saturation derived from sRGB
const rgbEpsilon = 1e-9

var (
	// sRGB companding and primaries, no adaptation: XYZ stays relative to D65
	rgb2Xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil)

	rawWhite = rgb2Xyz.Convert(chromath.RGB{1, 1, 1})
	whiteY   = rawWhite[1]

	// reference white shared by every CIE system
	white = [3]float64{rawWhite[0] / whiteY, 1, rawWhite[2] / whiteY}
)

func srgbToXYZ(r, g, b float64) xyz {
	p := rgb2Xyz.Convert(chromath.RGB{r, g, b})
	return xyz{p[0] / whiteY, p[1] / whiteY, p[2] / whiteY}
}

// xyzToSRGB returns sRGB channels clamped to [0,1].
func xyzToSRGB(c xyz) (r, g, b float64) {
	p := rgb2Xyz.Invert(chromath.XYZ{c[0] * whiteY, c[1] * whiteY, c[2] * whiteY})
	return unitClean(p.R()), unitClean(p.G()), unitClean(p.B())
}

func unitClean(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return clampTo(x, 0, 1)
}

// toSRGB handles the systems for which rgbDerived is true.
func toSRGB(sys System, v [4]float64) (r, g, b float64) {
	switch sys {
	case RGB:
		return v[0], v[1], v[2]
	case RGB255, Hex:
		return v[0] / 255, v[1] / 255, v[2] / 255
	case LinearRGB:
		c := colorful.LinearRgb(v[0], v[1], v[2])
		return c.R, c.G, c.B
	case HSL:
		c := colorful.Hsl(v[0], v[1], v[2])
		return c.R, c.G, c.B
	case HSV:
		c := colorful.Hsv(v[0], v[1], v[2])
		return c.R, c.G, c.B
	case CMY:
		return 1 - v[0], 1 - v[1], 1 - v[2]
	case CMYK:
		k := 1 - v[3]
		return (1 - v[0]) * k, (1 - v[1]) * k, (1 - v[2]) * k
	}
	panic("color: toSRGB on " + sys.String())
}

// fromSRGB expects channels already clamped to [0,1].
func fromSRGB(sys System, r, g, b float64) [4]float64 {
	switch sys {
	case RGB:
		return [4]float64{r, g, b}
	case RGB255, Hex:
		return [4]float64{r * 255, g * 255, b * 255}
	case LinearRGB:
		lr, lg, lb := colorful.Color{R: r, G: g, B: b}.LinearRgb()
		return [4]float64{lr, lg, lb}
	case HSL:
		h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()
		if s < rgbEpsilon {
			h, s = 0, 0
		}
		return [4]float64{h, s, l}
	case HSV:
		h, s, v := colorful.Color{R: r, G: g, B: b}.Hsv()
		if s < rgbEpsilon {
			h, s = 0, 0
		}
		return [4]float64{h, s, v}
	case CMY:
		return [4]float64{1 - r, 1 - g, 1 - b}
	case CMYK:
		k := 1 - math.Max(r, math.Max(g, b))
		if k > 1-rgbEpsilon {
			return [4]float64{0, 0, 0, 1}
		}
		return [4]float64{(1 - r - k) / (1 - k), (1 - g - k) / (1 - k), (1 - b - k) / (1 - k), k}
	}
	panic("color: fromSRGB on " + sys.String())
}

// ParseHex reads "#rgb", "#rrggbb" or "#rrggbbaa", with or without the
// leading '#', in any case. The result is an RGB255 color.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6, 8:
	default:
		return Color{}, parseErrorf(s, "hex color needs 3, 6 or 8 digits, got %d", len(digits))
	}

	var ch [4]float64
	ch[3] = 255
	for i := 0; i < len(digits)/2; i++ {
		n, e := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if e != nil {
			return Color{}, parseErrorf(s, "invalid hex digits %q", digits[2*i:2*i+2])
		}
		ch[i] = float64(n)
	}
	return Color{sys: RGB255, v: [4]float64{ch[0], ch[1], ch[2]}, a: ch[3] / 255}, nil
}
