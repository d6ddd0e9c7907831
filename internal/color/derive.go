package color

import "math"

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.Alpha = clamp01(alpha)
	return c
}

// WithLightness returns c with its perceptual lightness replaced.
func (c Color) WithLightness(l float64) Color {
	c.L = clamp01(l)
	return c
}

// ShiftLightness moves the perceptual lightness of c by delta.
func (c Color) ShiftLightness(delta float64) Color {
	return c.WithLightness(c.L + delta)
}

// WithHue returns c rotated to hue h (degrees).
func (c Color) WithHue(h float64) Color {
	c.H = normalizeHue(h)
	return c
}

// WithChroma returns c with chroma replaced.
func (c Color) WithChroma(chroma float64) Color {
	if chroma < 0 {
		chroma = 0
	}
	c.C = chroma
	return c
}

// Mix interpolates a toward b by t in OKLab space. Alpha is interpolated linearly.
func Mix(a, b Color, t float64) Color {
	t = clamp01(t)
	al, aa, ab := a.Lab()
	bl, ba, bb := b.Lab()
	return fromLab(
		al+(bl-al)*t,
		aa+(ba-aa)*t,
		ab+(bb-ab)*t,
		a.Alpha+(b.Alpha-a.Alpha)*t,
	)
}

// ContrastRatio returns the WCAG 2.x contrast ratio between a and b, in [1, 21].
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastGrade names the WCAG level a normal-size text pair reaches.
func ContrastGrade(ratio float64) string {
	switch {
	case ratio >= 7:
		return "AAA"
	case ratio >= 4.5:
		return "AA"
	case ratio >= 3:
		return "AA Large"
	default:
		return "Fail"
	}
}

// Readable returns the raw candidate with the highest contrast against surface.
// Ties keep the earliest candidate.
func Readable(surface string, candidates ...string) (string, error) {
	bg, err := Parse(surface)
	if err != nil {
		return "", err
	}

	best := ""
	bestRatio := -1.0
	for _, raw := range candidates {
		c, err := Parse(raw)
		if err != nil {
			return "", err
		}
		if ratio := ContrastRatio(bg, c); ratio > bestRatio {
			best, bestRatio = raw, ratio
		}
	}
	return best, nil
}

// HueDistance returns the shortest angular distance between two hues, in [0, 180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(normalizeHue(a) - normalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// NearestHue returns the index of the candidate whose hue is closest to target,
// ignoring candidates with chroma below minChroma. ok is false when no candidate
// lies within tolerance degrees.
func NearestHue(target float64, candidates []Color, tolerance, minChroma float64) (int, bool) {
	best := -1
	bestDist := math.MaxFloat64
	for i, c := range candidates {
		if c.C < minChroma {
			continue
		}
		if d := HueDistance(target, c.H); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > tolerance {
		return -1, false
	}
	return best, true
}
