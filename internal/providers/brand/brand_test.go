package brand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/provider/providertest"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

func TestContract(t *testing.T) {
	providertest.RunContract(t, New())
}

func TestConvertRoles(t *testing.T) {
	t.Parallel()

	th := theme.Sample()
	modes, err := New().Convert(th)
	require.NoError(t, err)

	require.Len(t, modes.Light, 15)
	require.Equal(t, th.Light.BG, modes.Light["surface"])
	require.Equal(t, th.Light.UI3, modes.Light["border-strong"])
	require.Equal(t, th.Dark.TX2, modes.Dark["ink-muted"])
	require.Equal(t, th.Light.BG, modes.Light["on-primary"])
}

func TestSerializeDocument(t *testing.T) {
	t.Parallel()

	artifact, err := compiler.Render(New(), theme.Sample(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, "flexoki.md", artifact.Filename)
	require.Equal(t, "text/markdown", artifact.Kind)

	doc := string(artifact.Content)
	require.True(t, strings.HasPrefix(doc, "# Flexoki brand guidelines\n"))
	require.Less(t, strings.Index(doc, "## Light mode"), strings.Index(doc, "## Dark mode"))
	require.Contains(t, doc, "| Surface | `surface` | `#fffcf0` | `rgb(255 252 240)` | `oklch(")
	require.Contains(t, doc, "| `ink` | `surface` | ")
	require.Contains(t, doc, "| AAA |")
	require.Contains(t, doc, "| Sans | `Inter, sans-serif` |")
	require.Contains(t, doc, "| lg | `0.5rem` |")
	require.Contains(t, doc, "| 2xl | `")
	require.Equal(t, 2, strings.Count(doc, "### Elevation"))
}

func TestValidateChecksRolesOnly(t *testing.T) {
	t.Parallel()

	p := New()
	full, err := p.Convert(theme.Sample())
	require.NoError(t, err)
	require.True(t, p.Validate(full.Light))

	lowContrast := tokens.Map{}
	for k, v := range full.Light {
		lowContrast[k] = v
	}
	lowContrast["ink"] = "#777777"
	lowContrast["surface"] = "#888888"
	require.True(t, p.Validate(lowContrast))

	broken := tokens.Map{}
	for k, v := range full.Light {
		broken[k] = v
	}
	broken["ink"] = "nope"
	require.False(t, p.Validate(broken))

	delete(broken, "ink")
	require.False(t, p.Validate(broken))
}

func TestLowContrastThemeStillCompiles(t *testing.T) {
	t.Parallel()

	th := theme.Sample()
	th.Light.TX = "#999999"
	require.NoError(t, theme.Validate(th))

	artifact, err := compiler.Render(New(), th, nil, nil)
	require.NoError(t, err)

	doc := string(artifact.Content)
	require.Contains(t, doc, "| `ink` | `surface` | 2.77:1 | Fail |")
}
