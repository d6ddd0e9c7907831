package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

func TestViewRendersTabsAndTokens(t *testing.T) {
	t.Parallel()

	m := NewModel(theme.Sample(), []string{"kitty", "vscode"}, fakeResolver(map[string]int{}), theme.Light)
	view := m.View()

	require.Contains(t, view, "Tinte • Flexoki • light")
	require.Contains(t, view, "kitty")
	require.Contains(t, view, "vscode")
	require.Contains(t, view, "kitty-background")
	require.Contains(t, view, "#ffffff")
	require.Contains(t, view, "q quit")
}

func TestViewShowsResolveErrors(t *testing.T) {
	t.Parallel()

	m := NewModel(theme.Sample(), []string{"broken"}, fakeResolver(map[string]int{}), theme.Light)
	require.Contains(t, m.View(), "provider exploded")
}

func TestSwatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		blank bool
	}{
		{"hex color", "#ff0000", false},
		{"oklch color", "oklch(0.5 0.1 200)", false},
		{"font family", "Inter, sans-serif", true},
		{"shadow value", "0px 2px 4px 0px oklch(0 0 0 / 0.1)", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.blank {
				require.Equal(t, "   ", Swatch(tt.raw))
				return
			}
			require.Contains(t, Swatch(tt.raw), swatchBlock)
		})
	}
}

func TestTokenListIsSorted(t *testing.T) {
	t.Parallel()

	out := TokenList(tokens.Map{"zeta": "#000000", "alpha": "1rem"})
	require.Less(t, strings.Index(out, "alpha"), strings.Index(out, "zeta"))
	require.Contains(t, out, "1rem")
}

func TestPreviewCoversRequestedModes(t *testing.T) {
	t.Parallel()

	th := theme.Sample()
	out := Preview(th, []theme.Mode{theme.Dark})

	require.Contains(t, out, "Flexoki")
	require.Contains(t, out, "dark palette")
	require.NotContains(t, out, "light palette")
	require.Contains(t, out, "#100f0f")
	require.Contains(t, out, "ac_3")
	require.Contains(t, out, "tx on bg")
	require.Contains(t, out, "pairs reach AA")
}
