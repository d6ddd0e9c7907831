// Package ghostty emits a Ghostty theme file.
package ghostty

import (
	"fmt"
	"strings"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers/ansi"
	"github.com/Railly/tinte-sub004/internal/theme"
)

// Provider emits Ghostty themes.
type Provider struct {
	ansi.Terminal
}

// New returns the Ghostty provider.
func New() *Provider { return &Provider{} }

func (*Provider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "ghostty",
		Name:        "Ghostty",
		Category:    provider.CategoryTerminal,
		Version:     "1.0.0",
		Description: "Ghostty theme with palette entries, light and dark sections",
		Artifact:    provider.ArtifactInfo{Extension: ".conf", Kind: "text/plain"},
	}
}

func (g *Provider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	light, dark, err := ansi.RenderModes(doc.Modes, color.NotationHexOpaque)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", doc.Name)
	for _, section := range []struct {
		mode   theme.Mode
		scheme ansi.Scheme
	}{{theme.Light, light}, {theme.Dark, dark}} {
		s := section.scheme
		fmt.Fprintf(&b, "\n# %s\n", section.mode)
		for i := 0; i < 16; i++ {
			fmt.Fprintf(&b, "palette = %d=%s\n", i, s.Color(i))
		}
		fmt.Fprintf(&b, "background = %s\n", s.Background)
		fmt.Fprintf(&b, "foreground = %s\n", s.Foreground)
		fmt.Fprintf(&b, "cursor-color = %s\n", s.Cursor)
		fmt.Fprintf(&b, "cursor-text = %s\n", s.CursorText)
		fmt.Fprintf(&b, "selection-background = %s\n", s.SelectionBackground)
		fmt.Fprintf(&b, "selection-foreground = %s\n", s.SelectionForeground)
	}
	return provider.NewArtifact(g.Metadata(), doc, []byte(b.String())), nil
}
