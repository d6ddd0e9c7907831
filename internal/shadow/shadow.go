// Package shadow derives an eight-step elevation scale from six base shadow parameters.
package shadow

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

// Spec holds the base shadow parameters as raw strings.
type Spec struct {
	Color   string
	Opacity string
	OffsetX string
	OffsetY string
	Blur    string
	Spread  string
}

// Defaults fill any parameter that is absent or unparseable.
var Defaults = Spec{
	Color:   "#0a0a0a",
	Opacity: "0.1",
	OffsetX: "0px",
	OffsetY: "0px",
	Blur:    "3px",
	Spread:  "0px",
}

// Merge returns s with every empty field taken from base.
func (s Spec) Merge(base Spec) Spec {
	pick := func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return v
	}
	return Spec{
		Color:   pick(s.Color, base.Color),
		Opacity: pick(s.Opacity, base.Opacity),
		OffsetX: pick(s.OffsetX, base.OffsetX),
		OffsetY: pick(s.OffsetY, base.OffsetY),
		Blur:    pick(s.Blur, base.Blur),
		Spread:  pick(s.Spread, base.Spread),
	}
}

type stepDef struct {
	name   string
	token  string
	factor float64
}

// Step-to-step growth strictly increases: 0.2, 0.25, 0.4, 0.5, 0.75, 1, 1.5.
var steps = []stepDef{
	{name: "2xs", token: "shadow-2xs", factor: 0.15},
	{name: "xs", token: "shadow-xs", factor: 0.35},
	{name: "sm", token: "shadow-sm", factor: 0.6},
	{name: "base", token: "shadow", factor: 1},
	{name: "md", token: "shadow-md", factor: 1.5},
	{name: "lg", token: "shadow-lg", factor: 2.25},
	{name: "xl", token: "shadow-xl", factor: 3.25},
	{name: "2xl", token: "shadow-2xl", factor: 4.75},
}

// Base parameter token names.
const (
	TokenColor   = "shadow-color"
	TokenOpacity = "shadow-opacity"
	TokenOffsetX = "shadow-offset-x"
	TokenOffsetY = "shadow-offset-y"
	TokenBlur    = "shadow-blur"
	TokenSpread  = "shadow-spread"
)

// StepNames returns the elevation step names, smallest first.
func StepNames() []string {
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.name)
	}
	return names
}

// Factors returns the per-step scale factors, smallest first.
func Factors() []float64 {
	out := make([]float64, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.factor)
	}
	return out
}

// Specs returns the 14 shadow token specs: six base parameters then eight steps.
func Specs() []tokens.Spec {
	specs := []tokens.Spec{
		{Name: TokenColor, Kind: tokens.KindColor},
		{Name: TokenOpacity, Kind: tokens.KindNumber},
		{Name: TokenOffsetX, Kind: tokens.KindLength},
		{Name: TokenOffsetY, Kind: tokens.KindLength},
		{Name: TokenBlur, Kind: tokens.KindLength},
		{Name: TokenSpread, Kind: tokens.KindLength},
	}
	for _, s := range steps {
		specs = append(specs, tokens.Spec{Name: s.token, Kind: tokens.KindShadow})
	}
	return specs
}

// Length is a numeric CSS length with its unit.
type Length struct {
	Value float64
	Unit  string
}

var lengthPattern = regexp.MustCompile(`^(-?(?:\d+\.?\d*|\.\d+))([a-z%]*)$`)

// ParseLength reads values such as "4px", "0.25rem" or "0".
func ParseLength(raw string) (Length, bool) {
	m := lengthPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if m == nil {
		return Length{}, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Length{}, false
	}
	unit := m[2]
	if unit == "" {
		unit = "px"
	}
	return Length{Value: v, Unit: unit}, true
}

// Scale multiplies the length. Results keep four decimals, or four
// significant digits below one, so neighbouring steps of a small base stay
// distinct.
func (l Length) Scale(f float64) Length {
	v := l.Value * f
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{Value: 0, Unit: l.Unit}
	}

	decimals := 4
	if mag := int(math.Floor(math.Log10(math.Abs(v)))); mag < 0 {
		decimals = 3 - mag
	}
	v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	return Length{Value: v, Unit: l.Unit}
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit
}

// Step is one resolved elevation level.
type Step struct {
	Name    string
	Token   string
	OffsetX Length
	OffsetY Length
	Blur    Length
	Spread  Length
	Color   string
	Opacity string

	tint color.Color
}

// String renders the step as a box-shadow value:
// offsetX offsetY blur spread color-with-opacity.
func (s Step) String() string {
	return strings.Join([]string{
		s.OffsetX.String(),
		s.OffsetY.String(),
		s.Blur.String(),
		s.Spread.String(),
		color.Format(s.tint, color.NotationOKLCH),
	}, " ")
}

// Scale is the resolved base spec plus its eight elevation steps.
type Scale struct {
	Base  Spec
	Steps []Step
}

// Elevate derives the elevation scale from spec. It never fails: missing or
// unparseable parameters fall back to Defaults, and a non-positive blur uses
// the default blur so the scale keeps growing.
func Elevate(spec Spec) Scale {
	base := spec.Merge(Defaults)

	tint, err := color.Parse(base.Color)
	if err != nil {
		base.Color = Defaults.Color
		tint = color.MustParse(Defaults.Color)
	}

	opacity, err := strconv.ParseFloat(strings.TrimSpace(base.Opacity), 64)
	if err != nil || math.IsNaN(opacity) || opacity < 0 || opacity > 1 {
		base.Opacity = Defaults.Opacity
		opacity, _ = strconv.ParseFloat(Defaults.Opacity, 64)
	}
	tint = tint.WithAlpha(opacity)

	offsetX := lengthOr(&base.OffsetX, Defaults.OffsetX)
	offsetY := lengthOr(&base.OffsetY, Defaults.OffsetY)
	spread := lengthOr(&base.Spread, Defaults.Spread)
	blur := lengthOr(&base.Blur, Defaults.Blur)
	if blur.Value <= 0 {
		base.Blur = Defaults.Blur
		blur, _ = ParseLength(Defaults.Blur)
	}

	scale := Scale{Base: base, Steps: make([]Step, 0, len(steps))}
	for _, def := range steps {
		scale.Steps = append(scale.Steps, Step{
			Name:    def.name,
			Token:   def.token,
			OffsetX: offsetX.Scale(def.factor),
			OffsetY: offsetY.Scale(def.factor),
			Blur:    blur.Scale(def.factor),
			Spread:  spread.Scale(def.factor),
			Color:   base.Color,
			Opacity: base.Opacity,
			tint:    tint,
		})
	}
	return scale
}

func lengthOr(raw *string, fallback string) Length {
	if l, ok := ParseLength(*raw); ok {
		return l
	}
	*raw = fallback
	l, _ := ParseLength(fallback)
	return l
}

// Tokens flattens the scale into the six base tokens and eight step tokens.
func (s Scale) Tokens() tokens.Map {
	m := tokens.Map{
		TokenColor:   s.Base.Color,
		TokenOpacity: s.Base.Opacity,
		TokenOffsetX: s.Base.OffsetX,
		TokenOffsetY: s.Base.OffsetY,
		TokenBlur:    s.Base.Blur,
		TokenSpread:  s.Base.Spread,
	}
	for _, step := range s.Steps {
		m[step.Token] = step.String()
	}
	return m
}
