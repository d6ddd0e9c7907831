// Package providertest holds the shared contract suite every provider's tests run.
package providertest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/compiler"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

// Themes returns the fixtures the contract suite converts: the sample theme
// and a monochrome theme whose accents carry no usable hue.
func Themes() map[string]*theme.Theme {
	mono := theme.Sample()
	mono.Name = "Mono Chrome"
	for _, p := range []*theme.Palette{&mono.Light, &mono.Dark} {
		p.PR, p.SC = "#777777", "#888888"
		p.AC1, p.AC2, p.AC3 = "#666666", "#999999", "#aaaaaa"
	}
	return map[string]*theme.Theme{"sample": theme.Sample(), "monochrome": mono}
}

// RunContract checks the behavior every provider must honor.
func RunContract(t *testing.T, p provider.Provider) {
	t.Helper()

	meta := p.Metadata()

	t.Run("metadata is valid and stable", func(t *testing.T) {
		require.NoError(t, meta.Validate())
		assert.Equal(t, meta, p.Metadata())
	})

	t.Run("vocabulary is unique", func(t *testing.T) {
		specs := p.Tokens()
		require.NotEmpty(t, specs)
		require.Len(t, tokens.Index(specs), len(specs))
		require.Len(t, tokens.Index(provider.Vocabulary(p)), len(provider.Vocabulary(p)))
	})

	for name, th := range Themes() {
		th := th
		t.Run("conversion fills every slot/"+name, func(t *testing.T) {
			modes, err := p.Convert(th)
			require.NoError(t, err)
			for _, mode := range theme.Modes() {
				m := modes.Get(string(mode))
				require.Empty(t, provider.Missing(m, p.Tokens()), "mode %s", mode)
				for _, spec := range p.Tokens() {
					if spec.Kind == tokens.KindColor {
						assert.True(t, color.Valid(m[spec.Name]), "%s/%s: %q", mode, spec.Name, m[spec.Name])
					}
				}
			}
		})

		t.Run("render is deterministic/"+name, func(t *testing.T) {
			first, err := compiler.Render(p, th, nil, nil)
			require.NoError(t, err)
			second, err := compiler.Render(p, th, nil, nil)
			require.NoError(t, err)

			require.Equal(t, first, second)
			require.NotEmpty(t, first.Content)
			require.Equal(t, meta.ID, first.Provider)
			require.Equal(t, meta.Artifact.Kind, first.Kind)
			require.Equal(t, provider.Filename(th.Name, meta), first.Filename)
		})
	}

	t.Run("conversion does not mutate the theme", func(t *testing.T) {
		th := theme.Sample()
		_, err := p.Convert(th)
		require.NoError(t, err)
		require.Equal(t, theme.Sample(), th)
	})
}
