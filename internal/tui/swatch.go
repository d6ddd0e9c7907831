package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
	"github.com/Railly/tinte-sub004/internal/tui/components"
)

const swatchBlock = "███"

// Swatch renders raw as a colored block, or blank space when raw is not a color.
func Swatch(raw string) string {
	hex, err := color.Reformat(raw, color.NotationHexOpaque)
	if err != nil {
		return strings.Repeat(" ", len([]rune(swatchBlock)))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(swatchBlock)
}

// PaletteView renders the thirteen slots of p with a swatch and hex value each.
func PaletteView(p theme.Palette) string {
	lines := make([]string, 0, len(theme.Slots()))
	for _, slot := range theme.Slots() {
		raw := p.Get(slot)
		hex, err := color.Reformat(raw, color.NotationHex)
		if err != nil {
			hex = raw
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", Swatch(raw), nameStyle.Render(string(slot)), valueStyle.Render(hex)))
	}
	return strings.Join(lines, "\n")
}

// LegibilityPairs returns the text-on-surface pairs graded in previews.
func LegibilityPairs(p theme.Palette) []components.Pair {
	return []components.Pair{
		{Label: "tx on bg", Foreground: p.TX, Background: p.BG},
		{Label: "tx on bg_2", Foreground: p.TX, Background: p.BG2},
		{Label: "tx_2 on bg", Foreground: p.TX2, Background: p.BG},
		{Label: "tx_3 on bg", Foreground: p.TX3, Background: p.BG},
		{Label: "pr on bg", Foreground: p.PR, Background: p.BG},
		{Label: "sc on bg", Foreground: p.SC, Background: p.BG},
	}
}

// TokenList renders every token of m in name order with a swatch for colors.
func TokenList(m tokens.Map) string {
	keys := m.Keys()
	lines := make([]string, 0, len(keys))
	for _, name := range keys {
		lines = append(lines, fmt.Sprintf("%s %s %s", Swatch(m[name]), nameStyle.Render(name), valueStyle.Render(m[name])))
	}
	return strings.Join(lines, "\n")
}

// Preview renders a static, non-interactive preview of th for the given modes.
func Preview(th *theme.Theme, modes []theme.Mode) string {
	sections := []string{titleStyle.Render(th.DisplayName())}
	for _, mode := range modes {
		p := th.Palette(mode)
		sections = append(sections,
			sectionStyle.Render(fmt.Sprintf("%s palette", mode)),
			PaletteView(p),
			sectionStyle.Render(fmt.Sprintf("%s legibility", mode)),
			components.NewLegibility(LegibilityPairs(p)).View(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
