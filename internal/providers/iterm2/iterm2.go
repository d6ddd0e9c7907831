// Package iterm2 emits an iTerm2 `.itermcolors` property list with light and
// dark variants of every color.
package iterm2

import (
	"fmt"

	"howett.net/plist"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers/ansi"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

// Provider emits iTerm2 color presets.
type Provider struct {
	ansi.Terminal
}

// New returns the iTerm2 provider.
func New() *Provider { return &Provider{} }

func (*Provider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "iterm2",
		Name:        "iTerm2",
		Category:    provider.CategoryTerminal,
		Version:     "1.0.0",
		Description: "itermcolors plist with (Light) and (Dark) variants",
		Artifact:    provider.ArtifactInfo{Extension: ".itermcolors", Kind: "application/x-plist"},
	}
}

// Entry is one plist color dictionary.
type Entry struct {
	ColorSpace string  `plist:"Color Space"`
	Red        float64 `plist:"Red Component"`
	Green      float64 `plist:"Green Component"`
	Blue       float64 `plist:"Blue Component"`
	Alpha      float64 `plist:"Alpha Component"`
}

// special maps iTerm2 preset keys to terminal tokens.
var special = []struct {
	key   string
	token string
}{
	{"Background Color", ansi.Background},
	{"Foreground Color", ansi.Foreground},
	{"Bold Color", ansi.Foreground},
	{"Cursor Color", ansi.Cursor},
	{"Cursor Text Color", ansi.CursorText},
	{"Selection Color", ansi.SelectionBackground},
	{"Selected Text Color", ansi.SelectionForeground},
	{"Link Color", ansi.Cursor},
}

func entry(raw string) (Entry, error) {
	c, err := color.Parse(raw)
	if err != nil {
		return Entry{}, err
	}
	r, g, b, a := c.Components()
	return Entry{ColorSpace: "sRGB", Red: r, Green: g, Blue: b, Alpha: a}, nil
}

func ansiToken(i int) string {
	if i < 8 {
		return ansi.Names[i]
	}
	return ansi.Bright(ansi.Names[i-8])
}

// keys lists every preset key with the token it reads.
func keys() [][2]string {
	out := make([][2]string, 0, len(special)+16)
	for _, s := range special {
		out = append(out, [2]string{s.key, s.token})
	}
	for i := 0; i < 16; i++ {
		out = append(out, [2]string{fmt.Sprintf("Ansi %d Color", i), ansiToken(i)})
	}
	return out
}

func (p *Provider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	preset := map[string]Entry{}
	add := func(key string, m tokens.Map, token string) error {
		e, err := entry(m[token])
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		preset[key] = e
		return nil
	}

	for _, kv := range keys() {
		if err := add(kv[0]+" (Light)", doc.Modes.Light, kv[1]); err != nil {
			return nil, err
		}
		if err := add(kv[0]+" (Dark)", doc.Modes.Dark, kv[1]); err != nil {
			return nil, err
		}
		// Unsuffixed keys are read by iTerm2 versions without appearance switching.
		if err := add(kv[0], doc.Modes.Dark, kv[1]); err != nil {
			return nil, err
		}
	}

	data, err := plist.MarshalIndent(preset, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("encode itermcolors: %w", err)
	}
	return provider.NewArtifact(p.Metadata(), doc, append(data, '\n')), nil
}
