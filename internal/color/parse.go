package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

var funcPattern = regexp.MustCompile(`^([a-z]+)\s*\((.*)\)$`)

// Parse reads a color written as hex, rgb(), hsl() or oklch().
func Parse(raw string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Color{}, tinteerrors.NewUnparseableColorError(raw)
	}

	if strings.HasPrefix(s, "#") {
		c, ok := parseHex(s[1:])
		if !ok {
			return Color{}, tinteerrors.NewUnparseableColorError(raw)
		}
		return c, nil
	}

	m := funcPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, tinteerrors.NewUnparseableColorError(raw)
	}

	channels, alpha, ok := splitArgs(m[2])
	if !ok {
		return Color{}, tinteerrors.NewUnparseableColorError(raw)
	}

	var c Color
	switch m[1] {
	case "rgb", "rgba":
		c, ok = parseRGB(channels)
	case "hsl", "hsla":
		c, ok = parseHSL(channels)
	case "oklch":
		c, ok = parseOKLCH(channels)
	default:
		ok = false
	}
	if !ok {
		return Color{}, tinteerrors.NewUnparseableColorError(raw)
	}

	if alpha != "" {
		a, ok := parseAlpha(alpha)
		if !ok {
			return Color{}, tinteerrors.NewUnparseableColorError(raw)
		}
		c.Alpha = a
	}

	return c, nil
}

// MustParse is Parse for compile-time constants; it panics on failure.
func MustParse(raw string) Color {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether raw parses as a color.
func Valid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

func parseHex(digits string) (Color, bool) {
	switch len(digits) {
	case 3, 4:
		expanded := make([]byte, 0, len(digits)*2)
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6, 8:
	default:
		return Color{}, false
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, false
	}

	alpha := 1.0
	if len(digits) == 8 {
		alpha = float64(value&0xff) / 255
		value >>= 8
	}

	r := float64((value>>16)&0xff) / 255
	g := float64((value>>8)&0xff) / 255
	b := float64(value&0xff) / 255
	return FromRGB(r, g, b, alpha), true
}

// splitArgs accepts both "a b c / d" and legacy "a, b, c, d" argument lists.
func splitArgs(body string) ([]string, string, bool) {
	body = strings.TrimSpace(body)
	alpha := ""

	if strings.Contains(body, "/") {
		parts := strings.Split(body, "/")
		if len(parts) != 2 {
			return nil, "", false
		}
		body = strings.TrimSpace(parts[0])
		alpha = strings.TrimSpace(parts[1])
		if alpha == "" {
			return nil, "", false
		}
	}

	var fields []string
	if strings.Contains(body, ",") {
		for _, f := range strings.Split(body, ",") {
			fields = append(fields, strings.TrimSpace(f))
		}
	} else {
		fields = strings.Fields(body)
	}

	if len(fields) == 4 && alpha == "" {
		if fields[3] == "" {
			return nil, "", false
		}
		alpha = fields[3]
		fields = fields[:3]
	}
	if len(fields) != 3 {
		return nil, "", false
	}
	for _, f := range fields {
		if f == "" {
			return nil, "", false
		}
	}

	return fields, alpha, true
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseScaled reads a plain number or a percentage; percentages map 100% to full.
func parseScaled(s string, full float64) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		v, ok := parseNumber(strings.TrimSuffix(s, "%"))
		if !ok {
			return 0, false
		}
		return v / 100 * full, true
	}
	return parseNumber(s)
}

func parsePercent(s string) (float64, bool) {
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	return parseNumber(strings.TrimSuffix(s, "%"))
}

func parseHue(s string) (float64, bool) {
	return parseNumber(strings.TrimSuffix(s, "deg"))
}

func parseAlpha(s string) (float64, bool) {
	v, ok := parseScaled(s, 1)
	if !ok {
		return 0, false
	}
	return clamp01(v), true
}

func parseRGB(ch []string) (Color, bool) {
	var rgb [3]float64
	for i, s := range ch {
		v, ok := parseScaled(s, 255)
		if !ok {
			return Color{}, false
		}
		rgb[i] = v / 255
	}
	return FromRGB(rgb[0], rgb[1], rgb[2], 1), true
}

func parseHSL(ch []string) (Color, bool) {
	h, ok := parseHue(ch[0])
	if !ok {
		return Color{}, false
	}
	s, ok := parsePercent(ch[1])
	if !ok {
		return Color{}, false
	}
	l, ok := parsePercent(ch[2])
	if !ok {
		return Color{}, false
	}

	col := colorful.Hsl(normalizeHue(h), clamp01(s/100), clamp01(l/100))
	return FromRGB(col.R, col.G, col.B, 1), true
}

func parseOKLCH(ch []string) (Color, bool) {
	l, ok := parseScaled(ch[0], 1)
	if !ok {
		return Color{}, false
	}
	c, ok := parseScaled(ch[1], 0.4)
	if !ok {
		return Color{}, false
	}
	h, ok := parseHue(ch[2])
	if !ok {
		return Color{}, false
	}
	return OKLCH(l, c, h, 1), true
}
