package shadcn

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/override"
	"github.com/Railly/tinte-sub004/internal/provider/providertest"
	"github.com/Railly/tinte-sub004/internal/theme"
)

func TestCSSContract(t *testing.T) {
	providertest.RunContract(t, NewCSS())
}

func TestRegistryContract(t *testing.T) {
	providertest.RunContract(t, NewRegistry())
}

func TestSpecsCount(t *testing.T) {
	t.Parallel()
	require.Len(t, Specs(), 32)
}

func TestConvertMapping(t *testing.T) {
	t.Parallel()

	th := theme.Sample()
	modes, err := NewCSS().Convert(th)
	require.NoError(t, err)

	light := modes.Light
	require.Equal(t, th.Light.BG, light["background"])
	require.Equal(t, th.Light.BG2, light["card"])
	require.Equal(t, th.Light.BG2, light["popover"])
	require.Equal(t, th.Light.TX, light["card-foreground"])
	require.Equal(t, th.Light.PR, light["primary"])
	require.Equal(t, th.Light.PR, light["ring"])
	require.Equal(t, th.Light.UI, light["border"])
	require.Equal(t, th.Light.UI2, light["input"])
	require.Equal(t, th.Light.AC2, light["chart-2"])

	// Flexoki's first tertiary accent is its red.
	require.Equal(t, th.Light.AC1, light["destructive"])
	require.Equal(t, th.Dark.AC1, modes.Dark["destructive"])

	// Dark blue primary reads best with the light paper tone.
	require.Equal(t, th.Light.BG, light["primary-foreground"])
	require.Equal(t, th.Dark.BG, modes.Dark["primary-foreground"])
}

func TestDestructiveFallbackWithoutRedAccent(t *testing.T) {
	t.Parallel()

	th := theme.Sample()
	th.Light.AC1 = "#205ea6"

	modes, err := NewCSS().Convert(th)
	require.NoError(t, err)
	require.Equal(t, "oklch(0.5770 0.2450 25.0000)", modes.Light["destructive"])
}

func TestCSSLayout(t *testing.T) {
	t.Parallel()

	radius := "0.75rem"
	layer := &override.Layer{Dark: &override.ModeLayer{Radius: &override.Radius{All: &radius}}}

	artifact, err := compiler.Render(NewCSS(), theme.Sample(), layer, nil)
	require.NoError(t, err)
	css := string(artifact.Content)

	require.Equal(t, "flexoki.css", artifact.Filename)
	require.True(t, strings.HasPrefix(css, ":root {\n  --background: oklch("))

	rootIdx := strings.Index(css, ":root {")
	darkIdx := strings.Index(css, ".dark {")
	inlineIdx := strings.Index(css, "@theme inline {")
	require.True(t, rootIdx < darkIdx && darkIdx < inlineIdx)

	require.Contains(t, css[:darkIdx], "  --radius: 0.5rem;\n")
	require.Contains(t, css[darkIdx:inlineIdx], "  --radius: 0.75rem;\n")
	require.Contains(t, css, "  --font-sans: Inter, sans-serif;\n")
	require.Contains(t, css, "  --shadow-2xl: ")
	require.Contains(t, css[inlineIdx:], "  --color-background: var(--background);\n")
	require.Contains(t, css[inlineIdx:], "  --shadow-color: var(--shadow-color);\n")
	require.Contains(t, css[inlineIdx:], "  --radius-lg: var(--radius-lg);\n")
	require.NotContains(t, css, "#")
}

func TestRegistryItemShape(t *testing.T) {
	t.Parallel()

	artifact, err := compiler.Render(NewRegistry(), theme.Sample(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, "flexoki.json", artifact.Filename)

	var item RegistryItem
	require.NoError(t, json.Unmarshal(artifact.Content, &item))
	require.Equal(t, RegistrySchema, item.Schema)
	require.Equal(t, "flexoki", item.Name)
	require.Equal(t, "registry:style", item.Type)

	require.Equal(t, "Inter, sans-serif", item.CSSVars.Theme["font-sans"])
	require.Equal(t, "0.5rem", item.CSSVars.Theme["radius"])
	require.Len(t, item.CSSVars.Light, 32+14)
	require.Len(t, item.CSSVars.Dark, 32+14)
	require.NotEqual(t, item.CSSVars.Light["background"], item.CSSVars.Dark["background"])
	require.True(t, strings.HasPrefix(item.CSSVars.Dark["primary"], "oklch("))
}
