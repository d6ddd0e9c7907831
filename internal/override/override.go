// Package override merges a user-supplied partial layer over a provider's raw
// token map. Every field of the layer is a pointer: nil means "not set", so an
// explicit value always wins over the theme and the defaults beneath it.
package override

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Railly/tinte-sub004/internal/shadow"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

// Fonts overrides individual font families.
type Fonts struct {
	Sans  *string `yaml:"sans,omitempty" json:"sans,omitempty"`
	Serif *string `yaml:"serif,omitempty" json:"serif,omitempty"`
	Mono  *string `yaml:"mono,omitempty" json:"mono,omitempty"`
}

// Radius overrides the radius scale. All applies to every step; an explicitly
// set step wins over All.
type Radius struct {
	All        *string `yaml:"all,omitempty" json:"all,omitempty"`
	Small      *string `yaml:"sm,omitempty" json:"sm,omitempty"`
	Medium     *string `yaml:"md,omitempty" json:"md,omitempty"`
	Large      *string `yaml:"lg,omitempty" json:"lg,omitempty"`
	ExtraLarge *string `yaml:"xl,omitempty" json:"xl,omitempty"`
}

// UnmarshalYAML accepts either a mapping or a scalar shorthand for All.
func (r *Radius) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v := node.Value
		*r = Radius{All: &v}
		return nil
	}

	type plain Radius
	var out plain
	if err := node.Decode(&out); err != nil {
		return err
	}
	*r = Radius(out)
	return nil
}

// Shadow overrides individual base shadow parameters.
type Shadow struct {
	Color   *string `yaml:"color,omitempty" json:"color,omitempty"`
	Opacity *string `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	OffsetX *string `yaml:"offset_x,omitempty" json:"offset_x,omitempty"`
	OffsetY *string `yaml:"offset_y,omitempty" json:"offset_y,omitempty"`
	Blur    *string `yaml:"blur,omitempty" json:"blur,omitempty"`
	Spread  *string `yaml:"spread,omitempty" json:"spread,omitempty"`
}

// ModeLayer is the override for a single appearance mode.
type ModeLayer struct {
	Tokens map[string]string `yaml:"tokens,omitempty" json:"tokens,omitempty"`
	Fonts  *Fonts            `yaml:"fonts,omitempty" json:"fonts,omitempty"`
	Radius *Radius           `yaml:"radius,omitempty" json:"radius,omitempty"`
	Shadow *Shadow           `yaml:"shadow,omitempty" json:"shadow,omitempty"`
}

// Layer holds the optional per-mode overrides.
type Layer struct {
	Light *ModeLayer `yaml:"light,omitempty" json:"light,omitempty"`
	Dark  *ModeLayer `yaml:"dark,omitempty" json:"dark,omitempty"`
}

// For returns the layer for mode, or nil.
func (l *Layer) For(mode theme.Mode) *ModeLayer {
	if l == nil {
		return nil
	}
	if mode == theme.Dark {
		return l.Dark
	}
	return l.Light
}

// Options configures one Compose call.
type Options struct {
	// Mode labels errors.
	Mode theme.Mode
	// Style enables the font, radius and shadow steps.
	Style bool
	// Vocabulary lists the token names a direct override may target.
	Vocabulary []tokens.Spec
}

// Style token names.
const (
	TokenFontSans  = "font-sans"
	TokenFontSerif = "font-serif"
	TokenFontMono  = "font-mono"
	TokenRadius    = "radius"
	TokenRadiusSm  = "radius-sm"
	TokenRadiusMd  = "radius-md"
	TokenRadiusLg  = "radius-lg"
	TokenRadiusXl  = "radius-xl"
)

// StyleSpecs returns the font, radius and shadow token specs added to
// style-capable providers' vocabularies.
func StyleSpecs() []tokens.Spec {
	specs := []tokens.Spec{
		{Name: TokenFontSans, Kind: tokens.KindFont},
		{Name: TokenFontSerif, Kind: tokens.KindFont},
		{Name: TokenFontMono, Kind: tokens.KindFont},
		{Name: TokenRadius, Kind: tokens.KindLength},
		{Name: TokenRadiusSm, Kind: tokens.KindLength},
		{Name: TokenRadiusMd, Kind: tokens.KindLength},
		{Name: TokenRadiusLg, Kind: tokens.KindLength},
		{Name: TokenRadiusXl, Kind: tokens.KindLength},
	}
	return append(specs, shadow.Specs()...)
}

// Compose produces the final token map for one mode. Precedence, lowest
// first: raw conversion, fonts, radius, shadow and its elevation scale, then
// direct token overrides. Direct overrides are written verbatim and are never
// fed back into derived values. raw is not modified.
func Compose(raw tokens.Map, base theme.Style, layer *ModeLayer, opts Options) (tokens.Map, error) {
	out := raw.Clone()
	mode := string(opts.Mode)

	if layer != nil {
		if err := checkLayer(layer, mode); err != nil {
			return nil, err
		}
	}

	if opts.Style {
		var (
			fonts  *Fonts
			radius *Radius
			shdw   *Shadow
		)
		if layer != nil {
			fonts, radius, shdw = layer.Fonts, layer.Radius, layer.Shadow
		}

		f := mergeFonts(base.Fonts, fonts)
		out[TokenFontSans] = f.Sans
		out[TokenFontSerif] = f.Serif
		out[TokenFontMono] = f.Mono

		r := mergeRadius(base.Radius, radius)
		out[TokenRadiusSm] = r.Small
		out[TokenRadiusMd] = r.Medium
		out[TokenRadiusLg] = r.Large
		out[TokenRadiusXl] = r.ExtraLarge
		out[TokenRadius] = r.Large

		for k, v := range shadow.Elevate(mergeShadow(base.Shadow, shdw)).Tokens() {
			out[k] = v
		}
	}

	if layer == nil || len(layer.Tokens) == 0 {
		return out, nil
	}

	vocab := tokens.Index(opts.Vocabulary)
	for _, name := range tokens.Map(layer.Tokens).Keys() {
		if _, ok := vocab[name]; !ok {
			return nil, tinteerrors.NewInvalidOverrideError(mode, name, "unknown token")
		}
		out[name] = layer.Tokens[name]
	}
	return out, nil
}

type field struct {
	name  string
	value *string
}

func (m *ModeLayer) fields() []field {
	var out []field
	if f := m.Fonts; f != nil {
		out = append(out,
			field{"fonts.sans", f.Sans},
			field{"fonts.serif", f.Serif},
			field{"fonts.mono", f.Mono},
		)
	}
	if r := m.Radius; r != nil {
		out = append(out,
			field{"radius.all", r.All},
			field{"radius.sm", r.Small},
			field{"radius.md", r.Medium},
			field{"radius.lg", r.Large},
			field{"radius.xl", r.ExtraLarge},
		)
	}
	if s := m.Shadow; s != nil {
		out = append(out,
			field{"shadow.color", s.Color},
			field{"shadow.opacity", s.Opacity},
			field{"shadow.offset_x", s.OffsetX},
			field{"shadow.offset_y", s.OffsetY},
			field{"shadow.blur", s.Blur},
			field{"shadow.spread", s.Spread},
		)
	}
	return out
}

// checkLayer rejects explicitly empty values: presence means intent.
func checkLayer(layer *ModeLayer, mode string) error {
	for _, name := range tokens.Map(layer.Tokens).Keys() {
		if layer.Tokens[name] == "" {
			return tinteerrors.NewInvalidOverrideError(mode, name, "empty value")
		}
	}
	for _, f := range layer.fields() {
		if f.value != nil && *f.value == "" {
			return tinteerrors.NewInvalidOverrideError(mode, f.name, "empty value")
		}
	}
	return nil
}

func pick(over *string, base, fallback string) string {
	if over != nil {
		return *over
	}
	if base != "" {
		return base
	}
	return fallback
}

func mergeFonts(base theme.Fonts, over *Fonts) theme.Fonts {
	if over == nil {
		over = &Fonts{}
	}
	return theme.Fonts{
		Sans:  pick(over.Sans, base.Sans, theme.DefaultFonts.Sans),
		Serif: pick(over.Serif, base.Serif, theme.DefaultFonts.Serif),
		Mono:  pick(over.Mono, base.Mono, theme.DefaultFonts.Mono),
	}
}

func mergeRadius(base theme.Radius, over *Radius) theme.Radius {
	r := theme.Radius{
		Small:      pick(nil, base.Small, theme.DefaultRadius.Small),
		Medium:     pick(nil, base.Medium, theme.DefaultRadius.Medium),
		Large:      pick(nil, base.Large, theme.DefaultRadius.Large),
		ExtraLarge: pick(nil, base.ExtraLarge, theme.DefaultRadius.ExtraLarge),
	}
	if over == nil {
		return r
	}
	if over.All != nil {
		r = theme.Radius{Small: *over.All, Medium: *over.All, Large: *over.All, ExtraLarge: *over.All}
	}
	r.Small = pick(over.Small, r.Small, "")
	r.Medium = pick(over.Medium, r.Medium, "")
	r.Large = pick(over.Large, r.Large, "")
	r.ExtraLarge = pick(over.ExtraLarge, r.ExtraLarge, "")
	return r
}

func mergeShadow(base theme.Shadow, over *Shadow) shadow.Spec {
	if over == nil {
		over = &Shadow{}
	}
	return shadow.Spec{
		Color:   pick(over.Color, base.Color, ""),
		Opacity: pick(over.Opacity, base.Opacity, ""),
		OffsetX: pick(over.OffsetX, base.OffsetX, ""),
		OffsetY: pick(over.OffsetY, base.OffsetY, ""),
		Blur:    pick(over.Blur, base.Blur, ""),
		Spread:  pick(over.Spread, base.Spread, ""),
	}
}

// String summarises which parts of the layer are set, for logging.
func (m *ModeLayer) String() string {
	if m == nil {
		return "none"
	}
	return fmt.Sprintf("tokens=%d fonts=%t radius=%t shadow=%t", len(m.Tokens), m.Fonts != nil, m.Radius != nil, m.Shadow != nil)
}
