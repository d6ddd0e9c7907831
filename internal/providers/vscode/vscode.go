// Package vscode emits a Visual Studio Code color theme carrying both a light
// and a dark variant.
package vscode

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers/ansi"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

type source int

const (
	fromSlot source = iota
	readableOn
	mixWithText
)

// workbench maps each workbench color key to the slot it is derived from.
var workbench = []struct {
	key  string
	slot theme.Slot
	how  source
}{
	{"editor.background", theme.SlotBackground, fromSlot},
	{"editor.foreground", theme.SlotText, fromSlot},
	{"editor.lineHighlightBackground", theme.SlotBackground2, fromSlot},
	{"editor.selectionBackground", theme.SlotInterface2, fromSlot},
	{"editor.findMatchBackground", theme.SlotInterface3, fromSlot},
	{"editorLineNumber.foreground", theme.SlotText3, fromSlot},
	{"editorLineNumber.activeForeground", theme.SlotText2, fromSlot},
	{"editorCursor.foreground", theme.SlotPrimary, fromSlot},
	{"editorIndentGuide.background1", theme.SlotInterface, fromSlot},
	{"editorWhitespace.foreground", theme.SlotInterface3, fromSlot},
	{"editorBracketMatch.border", theme.SlotInterface3, fromSlot},
	{"editorGutter.background", theme.SlotBackground, fromSlot},
	{"editorWidget.background", theme.SlotBackground2, fromSlot},
	{"sideBar.background", theme.SlotBackground2, fromSlot},
	{"sideBar.foreground", theme.SlotText2, fromSlot},
	{"sideBar.border", theme.SlotInterface, fromSlot},
	{"sideBarTitle.foreground", theme.SlotText, fromSlot},
	{"activityBar.background", theme.SlotBackground2, fromSlot},
	{"activityBar.foreground", theme.SlotText, fromSlot},
	{"activityBar.inactiveForeground", theme.SlotText3, fromSlot},
	{"activityBarBadge.background", theme.SlotPrimary, fromSlot},
	{"activityBarBadge.foreground", theme.SlotPrimary, readableOn},
	{"statusBar.background", theme.SlotBackground2, fromSlot},
	{"statusBar.foreground", theme.SlotText2, fromSlot},
	{"statusBar.border", theme.SlotInterface, fromSlot},
	{"titleBar.activeBackground", theme.SlotBackground2, fromSlot},
	{"titleBar.activeForeground", theme.SlotText, fromSlot},
	{"titleBar.inactiveForeground", theme.SlotText3, fromSlot},
	{"tab.activeBackground", theme.SlotBackground, fromSlot},
	{"tab.activeForeground", theme.SlotText, fromSlot},
	{"tab.inactiveBackground", theme.SlotBackground2, fromSlot},
	{"tab.inactiveForeground", theme.SlotText3, fromSlot},
	{"tab.border", theme.SlotInterface, fromSlot},
	{"panel.background", theme.SlotBackground, fromSlot},
	{"panel.border", theme.SlotInterface, fromSlot},
	{"input.background", theme.SlotBackground2, fromSlot},
	{"input.border", theme.SlotInterface2, fromSlot},
	{"input.foreground", theme.SlotText, fromSlot},
	{"input.placeholderForeground", theme.SlotText3, fromSlot},
	{"dropdown.background", theme.SlotBackground2, fromSlot},
	{"dropdown.border", theme.SlotInterface2, fromSlot},
	{"focusBorder", theme.SlotPrimary, fromSlot},
	{"button.background", theme.SlotPrimary, fromSlot},
	{"button.foreground", theme.SlotPrimary, readableOn},
	{"button.hoverBackground", theme.SlotPrimary, mixWithText},
	{"badge.background", theme.SlotSecondary, fromSlot},
	{"badge.foreground", theme.SlotSecondary, readableOn},
	{"list.activeSelectionBackground", theme.SlotInterface2, fromSlot},
	{"list.activeSelectionForeground", theme.SlotText, fromSlot},
	{"list.hoverBackground", theme.SlotInterface, fromSlot},
	{"list.highlightForeground", theme.SlotPrimary, fromSlot},
	{"textLink.foreground", theme.SlotPrimary, fromSlot},
	{"textLink.activeForeground", theme.SlotSecondary, fromSlot},
	{"scrollbarSlider.background", theme.SlotInterface, fromSlot},
	{"scrollbarSlider.hoverBackground", theme.SlotInterface2, fromSlot},
	{"terminal.background", theme.SlotBackground, fromSlot},
	{"terminal.foreground", theme.SlotText, fromSlot},
	{"terminalCursor.foreground", theme.SlotPrimary, fromSlot},
}

// syntax maps each syntax category to its slot, TextMate scopes and font style.
var syntax = []struct {
	name      string
	slot      theme.Slot
	fontStyle string
	scopes    []string
}{
	{"comment", theme.SlotText3, "italic", []string{"comment", "punctuation.definition.comment"}},
	{"keyword", theme.SlotPrimary, "", []string{"keyword", "storage.type", "storage.modifier"}},
	{"string", theme.SlotAccent2, "", []string{"string", "string.quoted", "string.template"}},
	{"number", theme.SlotAccent3, "", []string{"constant.numeric"}},
	{"constant", theme.SlotAccent3, "", []string{"constant.language", "constant.character", "variable.other.constant"}},
	{"function", theme.SlotSecondary, "", []string{"entity.name.function", "support.function", "meta.function-call"}},
	{"type", theme.SlotAccent, "", []string{"entity.name.type", "entity.name.class", "support.type", "support.class"}},
	{"variable", theme.SlotText, "", []string{"variable", "variable.other.readwrite"}},
	{"parameter", theme.SlotText2, "italic", []string{"variable.parameter"}},
	{"property", theme.SlotText2, "", []string{"variable.other.property", "support.type.property-name", "meta.object-literal.key"}},
	{"operator", theme.SlotText2, "", []string{"keyword.operator"}},
	{"punctuation", theme.SlotText3, "", []string{"punctuation", "meta.brace"}},
	{"tag", theme.SlotPrimary, "", []string{"entity.name.tag"}},
	{"attribute", theme.SlotSecondary, "italic", []string{"entity.other.attribute-name"}},
}

const syntaxPrefix = "syntax."

// terminalKey names the VS Code integrated terminal color for an ANSI token.
func terminalKey(name string, bright bool) string {
	title := strings.ToUpper(name[:1]) + name[1:]
	if bright {
		return "terminal.ansiBright" + title
	}
	return "terminal.ansi" + title
}

// Provider emits VS Code themes.
type Provider struct{}

// New returns the VS Code provider.
func New() *Provider { return &Provider{} }

func (*Provider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:          "vscode",
		Name:        "Visual Studio Code",
		Category:    provider.CategoryEditor,
		Version:     "1.0.0",
		Description: "workbench colors and TextMate token colors for both modes",
		Artifact:    provider.ArtifactInfo{Extension: ".json", Kind: "application/json"},
	}
}

func (*Provider) Tokens() []tokens.Spec {
	names := make([]string, 0, len(workbench)+16+len(syntax))
	for _, w := range workbench {
		names = append(names, w.key)
	}
	for _, n := range ansi.Names {
		names = append(names, terminalKey(n, false))
	}
	for _, n := range ansi.Names {
		names = append(names, terminalKey(n, true))
	}
	for _, s := range syntax {
		names = append(names, syntaxPrefix+s.name)
	}
	return tokens.Colors(names...)
}

func (*Provider) Convert(t *theme.Theme) (tokens.Modes, error) {
	light, err := convertMode(t.Light, theme.Light)
	if err != nil {
		return tokens.Modes{}, err
	}
	dark, err := convertMode(t.Dark, theme.Dark)
	if err != nil {
		return tokens.Modes{}, err
	}
	return tokens.Modes{Light: light, Dark: dark}, nil
}

func convertMode(p theme.Palette, mode theme.Mode) (tokens.Map, error) {
	text, err := color.Parse(p.TX)
	if err != nil {
		return nil, err
	}

	m := tokens.Map{}
	for _, w := range workbench {
		raw := p.Get(w.slot)
		switch w.how {
		case readableOn:
			if raw, err = color.Readable(raw, p.BG, p.TX); err != nil {
				return nil, err
			}
		case mixWithText:
			c, err := color.Parse(raw)
			if err != nil {
				return nil, err
			}
			raw = color.Format(color.Mix(c, text, 0.15), color.NotationOKLCH)
		}
		m[w.key] = raw
	}

	term, err := ansi.Derive(p, mode)
	if err != nil {
		return nil, err
	}
	for _, n := range ansi.Names {
		m[terminalKey(n, false)] = term[n]
		m[terminalKey(n, true)] = term[ansi.Bright(n)]
	}

	for _, s := range syntax {
		m[syntaxPrefix+s.name] = p.Get(s.slot)
	}
	return m, nil
}

// Theme is one mode of the serialized document.
type Theme struct {
	Type        string            `json:"type"`
	Colors      map[string]string `json:"colors"`
	TokenColors []TokenColor      `json:"tokenColors"`
}

// TokenColor is a TextMate scope rule.
type TokenColor struct {
	Name     string        `json:"name"`
	Scope    []string      `json:"scope"`
	Settings TokenSettings `json:"settings"`
}

// TokenSettings styles a TextMate scope.
type TokenSettings struct {
	Foreground string `json:"foreground"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Document is the serialized artifact.
type Document struct {
	Name  string           `json:"name"`
	Modes map[string]Theme `json:"modes"`
}

func (v *Provider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	out := Document{Name: doc.Name, Modes: map[string]Theme{}}
	for _, mode := range theme.Modes() {
		th, err := renderMode(doc.Modes.Get(string(mode)), mode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mode, err)
		}
		out.Modes[string(mode)] = th
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode vscode theme: %w", err)
	}
	return provider.NewArtifact(v.Metadata(), doc, append(data, '\n')), nil
}

func renderMode(m tokens.Map, mode theme.Mode) (Theme, error) {
	th := Theme{Type: string(mode), Colors: map[string]string{}}
	for name, value := range m {
		if strings.HasPrefix(name, syntaxPrefix) {
			continue
		}
		hex, err := color.Reformat(value, color.NotationHex)
		if err != nil {
			return Theme{}, fmt.Errorf("token %s: %w", name, err)
		}
		th.Colors[name] = hex
	}

	for _, s := range syntax {
		hex, err := color.Reformat(m[syntaxPrefix+s.name], color.NotationHex)
		if err != nil {
			return Theme{}, fmt.Errorf("token %s%s: %w", syntaxPrefix, s.name, err)
		}
		th.TokenColors = append(th.TokenColors, TokenColor{
			Name:     s.name,
			Scope:    s.scopes,
			Settings: TokenSettings{Foreground: hex, FontStyle: s.fontStyle},
		})
	}
	return th, nil
}
