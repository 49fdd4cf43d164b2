package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// achromatic thresholds for chroma in CIE units and in OkLab units
const (
	cieEpsilon = 1e-6
	okEpsilon  = 1e-4
)

// go-colorful works with L in [0,1] and a, b, u, v scaled by 1/100.
const cieScale = 100

func toXYZ(sys System, v [4]float64) xyz {
	switch sys {
	case CIELab:
		x, y, z := colorful.LabToXyzWhiteRef(v[0]/cieScale, v[1]/cieScale, v[2]/cieScale, white)
		return xyz{x, y, z}
	case CIELuv:
		x, y, z := colorful.LuvToXyzWhiteRef(v[0]/cieScale, v[1]/cieScale, v[2]/cieScale, white)
		return xyz{x, y, z}
	case HCLab:
		l, a, b := colorful.HclToLab(v[0], v[1], v[2])
		return toXYZ(CIELab, [4]float64{l, a, b})
	case HCLuv:
		l, u, w := colorful.LuvLChToLuv(v[2], v[1], v[0])
		return toXYZ(CIELuv, [4]float64{l, u, w})
	case OkLab:
		return okLabToXYZ(v[0], v[1], v[2])
	case OkLCh:
		l, a, b := colorful.OkLchToOkLab(v[0], v[1], v[2])
		return toXYZ(OkLab, [4]float64{l, a, b})
	}
	r, g, b := toSRGB(sys, v)
	return srgbToXYZ(r, g, b)
}

func fromXYZ(sys System, c xyz) [4]float64 {
	switch sys {
	case CIELab:
		l, a, b := colorful.XyzToLabWhiteRef(c[0], c[1], c[2], white)
		return [4]float64{l * cieScale, a * cieScale, b * cieScale}
	case CIELuv:
		l, u, v := colorful.XyzToLuvWhiteRef(c[0], c[1], c[2], white)
		return [4]float64{l * cieScale, u * cieScale, v * cieScale}
	case HCLab:
		lab := fromXYZ(CIELab, c)
		h, ch := polar(lab[1], lab[2], cieEpsilon)
		return [4]float64{h, ch, lab[0]}
	case HCLuv:
		luv := fromXYZ(CIELuv, c)
		h, ch := polar(luv[1], luv[2], cieEpsilon)
		return [4]float64{h, ch, luv[0]}
	case OkLab:
		ok := xyzToOkLab(c)
		return [4]float64{ok[0], ok[1], ok[2]}
	case OkLCh:
		ok := fromXYZ(OkLab, c)
		h, ch := polar(ok[1], ok[2], okEpsilon)
		return [4]float64{ok[0], ch, h}
	}
	r, g, b := xyzToSRGB(c)
	return fromSRGB(sys, r, g, b)
}

// polar returns the hue in degrees and the chroma of (a, b). Chroma below
// eps counts as achromatic: hue and chroma are both 0.
func polar(a, b, eps float64) (h, c float64) {
	c = math.Hypot(a, b)
	if c < eps {
		return 0, 0
	}
	return wrapHue(math.Atan2(b, a) * 180 / math.Pi), c
}
