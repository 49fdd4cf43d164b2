package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmuldo/chromatic/color"
)

// Rendered is the plain value a Format produces: a string for Hex formats,
// a tuple otherwise. Hex renderings also carry their byte values.
type Rendered struct {
	Text   string
	Values []float64
}

// IsText reports whether r is a hex string.
func (r Rendered) IsText() bool {
	return r.Text != ""
}

func (r Rendered) String() string {
	if r.IsText() {
		return r.Text
	}
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Render converts c to f.System and writes it in f's scale. Rounding
// happens here and nowhere else.
func Render(c color.Color, f Format) Rendered {
	cv := color.Convert(c, f.System)
	if f.System == color.Hex {
		return renderHex(cv, f)
	}

	n := f.System.Channels()
	out := make([]float64, 0, n+1)
	hue := f.System.HueIndex()
	for i := 0; i < n; i++ {
		v := round(cv.Value(i)*f.scale(i), f.Round)
		if i == hue && v >= f.hueMax() {
			// rounding up to a full turn
			v -= f.hueMax()
		}
		out = append(out, v)
	}
	if f.IncludeAlpha {
		out = append(out, round(cv.Alpha()*f.alphaMax(), f.Round))
	}
	return Rendered{Values: out}
}

func renderHex(c color.Color, f Format) Rendered {
	b := make([]float64, 0, 4)
	for i := 0; i < 3; i++ {
		b = append(b, math.Round(c.Value(i)))
	}
	digits := "%02x%02x%02x"
	args := []any{uint8(b[0]), uint8(b[1]), uint8(b[2])}
	if f.IncludeAlpha {
		a := math.Round(c.Alpha() * 255)
		b = append(b, a)
		digits += "%02x"
		args = append(args, uint8(a))
	}
	if f.Uppercase {
		digits = strings.ReplaceAll(digits, "x", "X")
	}
	if !f.OmitHash {
		digits = "#" + digits
	}
	return Rendered{Text: fmt.Sprintf(digits, args...), Values: b}
}

func round(x float64, decimals int) float64 {
	if decimals < 0 {
		return x
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
