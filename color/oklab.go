package color

import "math"

type mat3 [3][3]float64

func (m *mat3) apply(v [3]float64) [3]float64 {
	var out [3]float64
	for i := range m {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

func (m *mat3) inverse() mat3 {
	a := m
	det := a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	return mat3{
		{
			(a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det,
			(a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det,
			(a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det,
		},
		{
			(a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det,
			(a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det,
			(a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det,
		},
		{
			(a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det,
			(a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det,
			(a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det,
		},
	}
}

// Björn Ottosson's OkLab matrices. The XYZ to LMS rows are rescaled so the
// reference white lands on LMS (1, 1, 1) and greys get zero a and b.
var (
	xyzToLMS = func() mat3 {
		m := mat3{
			{0.8189330101, 0.3618667424, -0.1288597137},
			{0.0329845436, 0.9293118715, 0.0361456387},
			{0.0482003018, 0.2643662691, 0.6338517070},
		}
		w := m.apply(white)
		for i := range m {
			for j := range m[i] {
				m[i][j] /= w[i]
			}
		}
		return m
	}()
	lmsToOkLab = mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}

	lmsToXYZ   = xyzToLMS.inverse()
	okLabToLMS = lmsToOkLab.inverse()
)

func xyzToOkLab(c xyz) [3]float64 {
	lms := xyzToLMS.apply(c)
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	return lmsToOkLab.apply(lms)
}

func okLabToXYZ(l, a, b float64) xyz {
	lms := okLabToLMS.apply([3]float64{l, a, b})
	for i := range lms {
		lms[i] = lms[i] * lms[i] * lms[i]
	}
	return xyz(lmsToXYZ.apply(lms))
}
