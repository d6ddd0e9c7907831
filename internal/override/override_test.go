package override

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Railly/tinte-sub004/internal/shadow"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

func str(s string) *string { return &s }

func vocabulary() []tokens.Spec {
	return append(tokens.Colors("background", "primary"), StyleSpecs()...)
}

func TestStyleSpecsCount(t *testing.T) {
	t.Parallel()

	specs := StyleSpecs()
	require.Len(t, specs, 22)
	require.Len(t, tokens.Index(specs), 22, "names must be unique")
}

func TestComposeWithoutStyleOnlyAppliesTokens(t *testing.T) {
	t.Parallel()

	raw := tokens.Map{"background": "#ffffff", "primary": "#3b82f6"}
	layer := &ModeLayer{
		Tokens: map[string]string{"primary": "#ff0000"},
		Fonts:  &Fonts{Sans: str("Geist")},
	}

	out, err := Compose(raw, theme.Style{}, layer, Options{Vocabulary: tokens.Colors("background", "primary")})
	require.NoError(t, err)
	require.Equal(t, tokens.Map{"background": "#ffffff", "primary": "#ff0000"}, out)
	require.Equal(t, "#3b82f6", raw["primary"], "input map must not be mutated")
}

func TestComposeStyleDefaults(t *testing.T) {
	t.Parallel()

	out, err := Compose(tokens.Map{"background": "#fff"}, theme.Style{}, nil, Options{Style: true, Vocabulary: vocabulary()})
	require.NoError(t, err)

	require.Equal(t, "Inter, sans-serif", out[TokenFontSans])
	require.Equal(t, "Georgia, serif", out[TokenFontSerif])
	require.Equal(t, "JetBrains Mono, monospace", out[TokenFontMono])
	require.Equal(t, "0.25rem", out[TokenRadiusSm])
	require.Equal(t, "0.5rem", out[TokenRadius])
	require.Equal(t, "#0a0a0a", out[shadow.TokenColor])
	require.Empty(t, out.Missing(vocabulary()))
}

func TestComposePrecedence(t *testing.T) {
	t.Parallel()

	base := theme.Style{
		Fonts:  theme.Fonts{Sans: "Lato", Mono: "Iosevka"},
		Radius: theme.Radius{Small: "1px", Medium: "2px", Large: "3px", ExtraLarge: "4px"},
		Shadow: theme.Shadow{Color: "#000000", Blur: "4px"},
	}

	cases := []struct {
		name   string
		layer  *ModeLayer
		expect map[string]string
	}{
		{
			name:  "theme style beats defaults",
			layer: nil,
			expect: map[string]string{
				TokenFontSans:  "Lato",
				TokenFontSerif: "Georgia, serif",
				TokenFontMono:  "Iosevka",
				TokenRadiusMd:  "2px",
				TokenRadius:    "3px",
			},
		},
		{
			name:  "override fonts beat theme per field",
			layer: &ModeLayer{Fonts: &Fonts{Mono: str("Berkeley Mono")}},
			expect: map[string]string{
				TokenFontSans: "Lato",
				TokenFontMono: "Berkeley Mono",
			},
		},
		{
			name:  "scalar radius applies to every step",
			layer: &ModeLayer{Radius: &Radius{All: str("0")}},
			expect: map[string]string{
				TokenRadiusSm: "0",
				TokenRadiusMd: "0",
				TokenRadiusLg: "0",
				TokenRadiusXl: "0",
				TokenRadius:   "0",
			},
		},
		{
			name:  "structured radius step beats scalar",
			layer: &ModeLayer{Radius: &Radius{All: str("0.5rem"), Large: str("1rem")}},
			expect: map[string]string{
				TokenRadiusSm: "0.5rem",
				TokenRadiusLg: "1rem",
				TokenRadius:   "1rem",
			},
		},
		{
			name:  "shadow override feeds the elevation scale",
			layer: &ModeLayer{Shadow: &Shadow{Blur: str("10px")}},
			expect: map[string]string{
				shadow.TokenBlur:  "10px",
				shadow.TokenColor: "#000000",
				"shadow":          "0px 0px 10px 0px oklch(0.0000 0.0000 0.0000 / 0.1000)",
			},
		},
		{
			name: "direct token wins last and is not re-derived",
			layer: &ModeLayer{
				Shadow: &Shadow{Color: str("#111111")},
				Tokens: map[string]string{shadow.TokenColor: "#ff0000", TokenRadius: "9px"},
			},
			expect: map[string]string{
				shadow.TokenColor: "#ff0000",
				TokenRadius:       "9px",
				TokenRadiusLg:     "3px",
				"shadow":          shadow.Elevate(shadow.Spec{Color: "#111111", Blur: "4px"}).Steps[3].String(),
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := Compose(tokens.Map{"background": "#fff"}, base, tc.layer, Options{Style: true, Vocabulary: vocabulary()})
			require.NoError(t, err)
			for k, v := range tc.expect {
				assert.Equal(t, v, out[k], k)
			}
		})
	}
}

func TestComposeRejectsUnknownToken(t *testing.T) {
	t.Parallel()

	layer := &ModeLayer{Tokens: map[string]string{"sparkle": "#fff"}}
	_, err := Compose(tokens.Map{}, theme.Style{}, layer, Options{Mode: theme.Dark, Vocabulary: vocabulary()})

	var overrideErr *tinteerrors.InvalidOverrideError
	require.ErrorAs(t, err, &overrideErr)
	require.Equal(t, "dark", overrideErr.Mode)
	require.Equal(t, "sparkle", overrideErr.Field)
}

func TestComposeRejectsStyleTokenOnPlainProvider(t *testing.T) {
	t.Parallel()

	layer := &ModeLayer{Tokens: map[string]string{TokenFontSans: "Geist"}}
	_, err := Compose(tokens.Map{}, theme.Style{}, layer, Options{Vocabulary: tokens.Colors("background")})

	var overrideErr *tinteerrors.InvalidOverrideError
	require.ErrorAs(t, err, &overrideErr)
}

func TestComposeRejectsEmptyValues(t *testing.T) {
	t.Parallel()

	layer := &ModeLayer{Radius: &Radius{Small: str("")}}
	_, err := Compose(tokens.Map{}, theme.Style{}, layer, Options{Mode: theme.Light, Style: true})

	var overrideErr *tinteerrors.InvalidOverrideError
	require.ErrorAs(t, err, &overrideErr)
	require.Equal(t, "radius.sm", overrideErr.Field)
}

func TestLayerFor(t *testing.T) {
	t.Parallel()

	light := &ModeLayer{}
	dark := &ModeLayer{}
	l := &Layer{Light: light, Dark: dark}

	require.Same(t, light, l.For(theme.Light))
	require.Same(t, dark, l.For(theme.Dark))

	var none *Layer
	require.Nil(t, none.For(theme.Dark))
}

func TestDecodeLayer(t *testing.T) {
	t.Parallel()

	doc := `light:
  radius: "0.75rem"
  tokens:
    primary: "#ff0000"
dark:
  radius:
    all: "1rem"
    sm: "2px"
  fonts:
    sans: Geist
  shadow:
    opacity: "0.2"
`
	l, err := DecodeLayer([]byte(doc), "overrides.yaml")
	require.NoError(t, err)

	require.NotNil(t, l.Light.Radius)
	require.Equal(t, "0.75rem", *l.Light.Radius.All)
	require.Nil(t, l.Light.Radius.Small)
	require.Equal(t, "#ff0000", l.Light.Tokens["primary"])

	require.Equal(t, "1rem", *l.Dark.Radius.All)
	require.Equal(t, "2px", *l.Dark.Radius.Small)
	require.Equal(t, "Geist", *l.Dark.Fonts.Sans)
	require.Nil(t, l.Dark.Fonts.Mono)
	require.Equal(t, "0.2", *l.Dark.Shadow.Opacity)
}

func TestDecodeLayerUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := DecodeLayer([]byte("light:\n  colours: {}\n"), "overrides.yaml")

	var parseErr *tinteerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)
}

func TestLoadLayer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dark:\n  tokens:\n    background: \"#000\"\n"), 0o644))

	l, err := LoadLayer(path)
	require.NoError(t, err)
	require.Nil(t, l.Light)
	require.Equal(t, "#000", l.Dark.Tokens["background"])
}
