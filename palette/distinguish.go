package palette

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/mmuldo/chromatic/color"
)

var klch = &deltae.KLChDefault

func toLab(c color.Color) chromath.Lab {
	lab := color.Convert(c, color.CIELab)
	return chromath.Lab{lab.Value(0), lab.Value(1), lab.Value(2)}
}

// DeltaE returns the CIEDE2000 difference between two colors.
func DeltaE(a, b color.Color) float64 {
	return deltae.CIE2000(toLab(a), toLab(b), klch)
}

// FindClosest returns the name and color of the entry perceptually closest
// to input.
func (p *Palette) FindClosest(input any) (string, color.Color, error) {
	if len(p.entries) == 0 {
		return "", color.Color{}, ErrEmpty
	}
	c, e := p.format.Coerce(input)
	if e != nil {
		return "", color.Color{}, e
	}
	i := closest(c, p.Colors())
	return p.entries[i].name, p.entries[i].color, nil
}

// FindClosest returns the index and color of the entry perceptually closest
// to input.
func (s *StackPalette) FindClosest(input any) (int, color.Color, error) {
	if len(s.colors) == 0 {
		return -1, color.Color{}, ErrEmpty
	}
	c, e := s.format.Coerce(input)
	if e != nil {
		return -1, color.Color{}, e
	}
	i := closest(c, s.colors)
	return i, s.colors[i], nil
}

func closest(c color.Color, candidates []color.Color) int {
	base := toLab(c)
	best, bestDiff := 0, deltae.CIE2000(base, toLab(candidates[0]), klch)
	for i := 1; i < len(candidates); i++ {
		if d := deltae.CIE2000(base, toLab(candidates[i]), klch); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}
