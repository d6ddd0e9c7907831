// Package kitty emits a kitty terminal color configuration.
package kitty

import (
	"fmt"
	"strings"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers/ansi"
	"github.com/Railly/tinte-sub004/internal/theme"
)

// Provider emits kitty color configs.
type Provider struct {
	ansi.Terminal
}

// New returns the kitty provider.
func New() *Provider { return &Provider{} }

func (*Provider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "kitty",
		Name:        "kitty",
		Category:    provider.CategoryTerminal,
		Version:     "1.0.0",
		Description: "kitty.conf color block, light section then dark section",
		Artifact:    provider.ArtifactInfo{Extension: ".conf", Kind: "text/plain"},
	}
}

func (k *Provider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	light, dark, err := ansi.RenderModes(doc.Modes, color.NotationHexOpaque)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", doc.Name)
	writeSection(&b, theme.Light, light)
	writeSection(&b, theme.Dark, dark)
	return provider.NewArtifact(k.Metadata(), doc, []byte(b.String())), nil
}

func writeSection(b *strings.Builder, mode theme.Mode, s ansi.Scheme) {
	fmt.Fprintf(b, "\n# --- %s ---\n", mode)
	pairs := [][2]string{
		{"background", s.Background},
		{"foreground", s.Foreground},
		{"cursor", s.Cursor},
		{"cursor_text_color", s.CursorText},
		{"selection_background", s.SelectionBackground},
		{"selection_foreground", s.SelectionForeground},
	}
	for _, kv := range pairs {
		fmt.Fprintf(b, "%-21s %s\n", kv[0], kv[1])
	}
	for i := 0; i < 16; i++ {
		fmt.Fprintf(b, "%-21s %s\n", fmt.Sprintf("color%d", i), s.Color(i))
	}
}
