// Package alacritty emits an Alacritty color scheme in TOML.
package alacritty

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers/ansi"
)

// Provider emits Alacritty schemes.
type Provider struct {
	ansi.Terminal
}

// New returns the Alacritty provider.
func New() *Provider { return &Provider{} }

func (*Provider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "alacritty",
		Name:        "Alacritty",
		Category:    provider.CategoryTerminal,
		Version:     "1.0.0",
		Description: "TOML color tables, one set per mode",
		Artifact:    provider.ArtifactInfo{Extension: ".toml", Kind: "application/toml"},
	}
}

type primary struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
}

type cursor struct {
	Text   string `toml:"text"`
	Cursor string `toml:"cursor"`
}

type selection struct {
	Text       string `toml:"text"`
	Background string `toml:"background"`
}

type palette struct {
	Black   string `toml:"black"`
	Red     string `toml:"red"`
	Green   string `toml:"green"`
	Yellow  string `toml:"yellow"`
	Blue    string `toml:"blue"`
	Magenta string `toml:"magenta"`
	Cyan    string `toml:"cyan"`
	White   string `toml:"white"`
}

func newPalette(c [8]string) palette {
	return palette{Black: c[0], Red: c[1], Green: c[2], Yellow: c[3], Blue: c[4], Magenta: c[5], Cyan: c[6], White: c[7]}
}

// Colors mirrors Alacritty's `[colors]` table.
type Colors struct {
	Primary   primary   `toml:"primary"`
	Cursor    cursor    `toml:"cursor"`
	Selection selection `toml:"selection"`
	Normal    palette   `toml:"normal"`
	Bright    palette   `toml:"bright"`
	Dim       palette   `toml:"dim"`
}

type mode struct {
	Colors Colors `toml:"colors"`
}

// Document is the serialized artifact.
type Document struct {
	Light mode `toml:"light"`
	Dark  mode `toml:"dark"`
}

func colorsOf(s ansi.Scheme) Colors {
	return Colors{
		Primary:   primary{Background: s.Background, Foreground: s.Foreground},
		Cursor:    cursor{Text: s.CursorText, Cursor: s.Cursor},
		Selection: selection{Text: s.SelectionForeground, Background: s.SelectionBackground},
		Normal:    newPalette(s.Normal),
		Bright:    newPalette(s.Bright),
		Dim:       newPalette(s.Dim),
	}
}

func (a *Provider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	light, dark, err := ansi.RenderModes(doc.Modes, color.NotationHexOpaque)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", doc.Name)
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(Document{Light: mode{colorsOf(light)}, Dark: mode{colorsOf(dark)}}); err != nil {
		return nil, fmt.Errorf("encode alacritty scheme: %w", err)
	}
	return provider.NewArtifact(a.Metadata(), doc, buf.Bytes()), nil
}
