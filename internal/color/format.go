package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Notation names a textual color syntax.
type Notation string

const (
	NotationHex       Notation = "hex"
	NotationHexOpaque Notation = "hex-opaque"
	NotationRGB       Notation = "rgb"
	NotationHSL       Notation = "hsl"
	NotationOKLCH     Notation = "oklch"
)

// Notations lists every supported output notation.
func Notations() []Notation {
	return []Notation{NotationHex, NotationHexOpaque, NotationRGB, NotationHSL, NotationOKLCH}
}

// ParseNotation resolves a user-supplied notation name.
func ParseNotation(s string) (Notation, error) {
	n := Notation(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Notations() {
		if n == known {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown color notation %q", s)
}

// DefaultPrecision is the number of decimals used by Format for n.
func DefaultPrecision(n Notation) int {
	switch n {
	case NotationOKLCH:
		return 4
	case NotationHSL:
		return 2
	default:
		return 0
	}
}

// Format renders c in notation n at the notation's default precision.
func Format(c Color, n Notation) string {
	return FormatPrecision(c, n, DefaultPrecision(n))
}

// FormatPrecision renders c in notation n with numeric fields rounded to precision decimals.
// Hex and RGB channels are always integral.
func FormatPrecision(c Color, n Notation, precision int) string {
	if precision < 0 {
		precision = 0
	}

	switch n {
	case NotationHex:
		return formatHex(c, true)
	case NotationHexOpaque:
		return formatHex(c, false)
	case NotationRGB:
		return formatRGB(c)
	case NotationHSL:
		return formatHSL(c, precision)
	default:
		return formatOKLCH(c, precision)
	}
}

// Reformat parses raw and renders it in notation n.
func Reformat(raw string, n Notation) (string, error) {
	c, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Format(c, n), nil
}

func formatOKLCH(c Color, p int) string {
	l := round(c.L, p)
	chroma := round(c.C, p)
	hue := 0.0
	if chroma > 0 {
		hue = round(normalizeHue(c.H), p)
		if hue >= 360 {
			hue = 0
		}
	} else {
		chroma = 0
	}

	out := "oklch(" + fixed(l, p) + " " + fixed(chroma, p) + " " + fixed(hue, p)
	if a := round(c.Alpha, p); a < 1 {
		out += " / " + fixed(a, p)
	}
	return out + ")"
}

func formatHex(c Color, withAlpha bool) string {
	r, g, b := c.RGB()
	out := fmt.Sprintf("#%02x%02x%02x", to255(r), to255(g), to255(b))
	if withAlpha {
		if a := to255(c.Alpha); a < 255 {
			out += fmt.Sprintf("%02x", a)
		}
	}
	return out
}

func formatRGB(c Color) string {
	r, g, b := c.RGB()
	out := fmt.Sprintf("rgb(%d %d %d", to255(r), to255(g), to255(b))
	return out + alphaSuffix(c.Alpha) + ")"
}

func formatHSL(c Color, p int) string {
	r, g, b := c.RGB()
	h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()

	sat := round(s*100, p)
	light := round(l*100, p)
	hue := 0.0
	// Black and white carry no hue or saturation once lightness rounds to an end.
	if sat > 0 && light > 0 && light < 100 {
		hue = round(normalizeHue(h), p)
		if hue >= 360 {
			hue = 0
		}
	} else {
		sat = 0
	}

	out := "hsl(" + fixed(hue, p) + " " + fixed(sat, p) + "% " + fixed(light, p) + "%"
	return out + alphaSuffix(c.Alpha) + ")"
}

func alphaSuffix(alpha float64) string {
	a := round(alpha, 4)
	if a >= 1 {
		return ""
	}
	return " / " + strconv.FormatFloat(a, 'f', -1, 64)
}

func to255(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

func round(v float64, p int) float64 {
	scale := math.Pow(10, float64(p))
	v = math.Round(v*scale) / scale
	if v == 0 {
		return 0
	}
	return v
}

func fixed(v float64, p int) string {
	return strconv.FormatFloat(v, 'f', p, 64)
}
