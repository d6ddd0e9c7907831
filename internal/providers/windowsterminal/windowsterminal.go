// Package windowsterminal emits Windows Terminal color schemes.
package windowsterminal

import (
	"encoding/json"
	"fmt"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers/ansi"
)

// Provider emits Windows Terminal schemes.
type Provider struct {
	ansi.Terminal
}

// New returns the Windows Terminal provider.
func New() *Provider { return &Provider{} }

func (*Provider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "windows-terminal",
		Name:        "Windows Terminal",
		Category:    provider.CategoryTerminal,
		Version:     "1.0.0",
		Description: "settings.json schemes entries named <theme> Light and <theme> Dark",
		Artifact:    provider.ArtifactInfo{Extension: ".json", Kind: "application/json"},
	}
}

// Scheme is a single entry of the `schemes` array in settings.json.
type Scheme struct {
	Name                string `json:"name"`
	Background          string `json:"background"`
	Foreground          string `json:"foreground"`
	CursorColor         string `json:"cursorColor"`
	SelectionBackground string `json:"selectionBackground"`
	Black               string `json:"black"`
	Red                 string `json:"red"`
	Green               string `json:"green"`
	Yellow              string `json:"yellow"`
	Blue                string `json:"blue"`
	Purple              string `json:"purple"`
	Cyan                string `json:"cyan"`
	White               string `json:"white"`
	BrightBlack         string `json:"brightBlack"`
	BrightRed           string `json:"brightRed"`
	BrightGreen         string `json:"brightGreen"`
	BrightYellow        string `json:"brightYellow"`
	BrightBlue          string `json:"brightBlue"`
	BrightPurple        string `json:"brightPurple"`
	BrightCyan          string `json:"brightCyan"`
	BrightWhite         string `json:"brightWhite"`
}

func schemeOf(name string, s ansi.Scheme) Scheme {
	n, b := s.Normal, s.Bright
	return Scheme{
		Name:                name,
		Background:          s.Background,
		Foreground:          s.Foreground,
		CursorColor:         s.Cursor,
		SelectionBackground: s.SelectionBackground,
		Black:               n[0],
		Red:                 n[1],
		Green:               n[2],
		Yellow:              n[3],
		Blue:                n[4],
		Purple:              n[5],
		Cyan:                n[6],
		White:               n[7],
		BrightBlack:         b[0],
		BrightRed:           b[1],
		BrightGreen:         b[2],
		BrightYellow:        b[3],
		BrightBlue:          b[4],
		BrightPurple:        b[5],
		BrightCyan:          b[6],
		BrightWhite:         b[7],
	}
}

func (w *Provider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	light, dark, err := ansi.RenderModes(doc.Modes, color.NotationHexOpaque)
	if err != nil {
		return nil, err
	}

	schemes := []Scheme{
		schemeOf(doc.Name+" Light", light),
		schemeOf(doc.Name+" Dark", dark),
	}
	data, err := json.MarshalIndent(schemes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode windows terminal schemes: %w", err)
	}
	return provider.NewArtifact(w.Metadata(), doc, append(data, '\n')), nil
}
