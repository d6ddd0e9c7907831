// Package warp emits Warp terminal themes, one YAML document per mode.
package warp

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers/ansi"
	"github.com/Railly/tinte-sub004/internal/theme"
)

// Provider emits Warp themes.
type Provider struct {
	ansi.Terminal
}

// New returns the Warp provider.
func New() *Provider { return &Provider{} }

func (*Provider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "warp",
		Name:        "Warp",
		Category:    provider.CategoryTerminal,
		Version:     "1.0.0",
		Description: "Warp theme YAML, light document then dark document",
		Artifact:    provider.ArtifactInfo{Extension: ".yaml", Kind: "application/yaml"},
	}
}

// Colors is one of the normal or bright blocks.
type Colors struct {
	Black   string `yaml:"black"`
	Red     string `yaml:"red"`
	Green   string `yaml:"green"`
	Yellow  string `yaml:"yellow"`
	Blue    string `yaml:"blue"`
	Magenta string `yaml:"magenta"`
	Cyan    string `yaml:"cyan"`
	White   string `yaml:"white"`
}

func colorsOf(c [8]string) Colors {
	return Colors{Black: c[0], Red: c[1], Green: c[2], Yellow: c[3], Blue: c[4], Magenta: c[5], Cyan: c[6], White: c[7]}
}

// TerminalColors groups the ANSI blocks.
type TerminalColors struct {
	Normal Colors `yaml:"normal"`
	Bright Colors `yaml:"bright"`
}

// Theme is one Warp theme document.
type Theme struct {
	Name           string         `yaml:"name"`
	Accent         string         `yaml:"accent"`
	Cursor         string         `yaml:"cursor"`
	Background     string         `yaml:"background"`
	Foreground     string         `yaml:"foreground"`
	Details        string         `yaml:"details"`
	TerminalColors TerminalColors `yaml:"terminal_colors"`
}

func themeOf(name string, mode theme.Mode, s ansi.Scheme) Theme {
	details := "lighter"
	if mode == theme.Dark {
		details = "darker"
	}
	return Theme{
		Name:       name,
		Accent:     s.Cursor,
		Cursor:     s.Cursor,
		Background: s.Background,
		Foreground: s.Foreground,
		Details:    details,
		TerminalColors: TerminalColors{
			Normal: colorsOf(s.Normal),
			Bright: colorsOf(s.Bright),
		},
	}
}

func (w *Provider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	light, dark, err := ansi.RenderModes(doc.Modes, color.NotationHexOpaque)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, th := range []Theme{
		themeOf(doc.Name+" Light", theme.Light, light),
		themeOf(doc.Name+" Dark", theme.Dark, dark),
	} {
		if err := enc.Encode(th); err != nil {
			return nil, fmt.Errorf("encode warp theme: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode warp theme: %w", err)
	}
	return provider.NewArtifact(w.Metadata(), doc, buf.Bytes()), nil
}
