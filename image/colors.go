package image

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mmuldo/chromatic/color"
)

// DefaultStep is the pixel stride Extract samples with.
const DefaultStep = 5

var ErrTooFewColors = errors.New("image: not enough color variation")

// Swatch is a color and the number of sampled pixels that have it.
type Swatch struct {
	Color color.Color
	Count int
}

type byCount []Swatch

func (s byCount) Len() int { return len(s) }
func (s byCount) Less(i, j int) bool {
	if s[i].Count != s[j].Count {
		return s[i].Count > s[j].Count
	}
	return s[i].Color.Hex() < s[j].Color.Hex()
}
func (s byCount) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Quantize reduces img to at most n colors without dithering.
func Quantize(img image.Image, n int) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	colorquant.NoDither.Quantize(img, out, n, false, true)
	return out
}

// Count maps every color of img to the number of pixels that have it,
// visiting one pixel out of step in each direction. Fully transparent
// pixels are skipped.
func Count(img image.Image, step int) map[stdcolor.NRGBA]int {
	if step < 1 {
		step = 1
	}
	m := make(map[stdcolor.NRGBA]int)
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := stdcolor.NRGBAModel.Convert(img.At(x, y)).(stdcolor.NRGBA)
			if c.A == 0 {
				continue
			}
			m[c]++
		}
	}
	return m
}

// Rank turns a census from Count into swatches, most common first.
func Rank(m map[stdcolor.NRGBA]int) []Swatch {
	out := make([]Swatch, 0, len(m))
	for c, n := range m {
		out = append(out, Swatch{Color: color.FromStd(c), Count: n})
	}
	sort.Sort(byCount(out))
	return out
}

// ExtractImage quantizes img to n colors and ranks them.
func ExtractImage(img image.Image, n, step int) ([]Swatch, error) {
	m := Count(Quantize(img, n), step)
	if len(m) < n {
		return nil, fmt.Errorf("%w: found %d distinct colors, need %d", ErrTooFewColors, len(m), n)
	}
	return Rank(m), nil
}

// Extract loads the image at path and returns its n most representative
// colors.
func Extract(path string, n int) ([]Swatch, error) {
	i, e := Load(path)
	if e != nil {
		return nil, e
	}
	s, e := ExtractImage(i, n, DefaultStep)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}
	return s, nil
}
