package color

import "math"

type mat3 [3][3]float64

func (m mat3) apply(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// inverse assumes m is non-singular.
func (m mat3) inverse() mat3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C

	return mat3{
		{A / det, -(b*i - c*h) / det, (b*f - c*e) / det},
		{B / det, (a*i - c*g) / det, -(a*f - c*d) / det},
		{C / det, -(a*h - b*g) / det, (a*e - b*d) / det},
	}
}

// Björn Ottosson's OKLab matrices: linear sRGB to cone response, and
// cube-rooted cone response to Lab. The reverse direction uses their exact
// inverses so that sRGB survives a trip through OKLCH.
var (
	linearToLMS = mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	lmsToLab = mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}

	lmsToLinear = linearToLMS.inverse()
	labToLMS    = lmsToLab.inverse()
)

func linearToOklab(r, g, b float64) (l, a, bb float64) {
	lc, mc, sc := linearToLMS.apply(r, g, b)
	return lmsToLab.apply(math.Cbrt(lc), math.Cbrt(mc), math.Cbrt(sc))
}

func oklabToLinear(l, a, b float64) (r, g, bb float64) {
	lc, mc, sc := labToLMS.apply(l, a, b)
	return lmsToLinear.apply(lc*lc*lc, mc*mc*mc, sc*sc*sc)
}
