// Package color parses CSS color notations into a perceptual OKLCH
// representation and re-emits them in the notation a target requires.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color in OKLCH space with straight alpha.
// L is in [0, 1], C is non-negative, H is in degrees.
type Color struct {
	L     float64
	C     float64
	H     float64
	Alpha float64
}

// FromRGB builds a Color from sRGB channels and alpha in [0, 1].
func FromRGB(r, g, b, alpha float64) Color {
	lr, lg, lb := colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}.LinearRgb()
	l, a, bb := linearToOklab(lr, lg, lb)
	return fromLab(l, a, bb, alpha)
}

// OKLCH builds a Color from its perceptual components.
func OKLCH(l, c, h, alpha float64) Color {
	if c < 0 {
		c = 0
	}
	return Color{L: clamp01(l), C: c, H: normalizeHue(h), Alpha: clamp01(alpha)}
}

// RGB returns the sRGB channels in [0, 1], clamped into gamut.
func (c Color) RGB() (r, g, b float64) {
	col := colorful.LinearRgb(oklabToLinear(c.Lab())).Clamped()
	return col.R, col.G, col.B
}

// Components returns sRGB channels and alpha in [0, 1].
func (c Color) Components() (r, g, b, alpha float64) {
	r, g, b = c.RGB()
	return r, g, b, clamp01(c.Alpha)
}

// Lab returns the OKLab coordinates of c.
func (c Color) Lab() (l, a, b float64) {
	rad := c.H * math.Pi / 180
	return c.L, c.C * math.Cos(rad), c.C * math.Sin(rad)
}

func fromLab(l, a, b, alpha float64) Color {
	chroma := math.Hypot(a, b)
	hue := math.Atan2(b, a) * 180 / math.Pi
	return OKLCH(l, chroma, hue, alpha)
}

// Luminance returns the WCAG relative luminance of c.
func (c Color) Luminance() float64 {
	r, g, b := c.RGB()
	lr, lg, lb := colorful.Color{R: r, G: g, B: b}.LinearRgb()
	return 0.2126*lr + 0.7152*lg + 0.0722*lb
}

// IsLight reports whether c reads as a light surface.
func (c Color) IsLight() bool {
	return c.L >= 0.6
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
