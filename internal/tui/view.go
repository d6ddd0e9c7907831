package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpText = "←/→ provider • m mode • ↑/↓ scroll • q quit"

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render(fmt.Sprintf("Tinte • %s • %s", m.theme.DisplayName(), m.mode))
	scroll := helpStyle.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.tabs(),
		"",
		m.viewport.View(),
		"",
		helpStyle.Render(helpText)+" "+scroll,
	)
}

func (m Model) tabs() string {
	if len(m.providers) == 0 {
		return helpStyle.Render("(none)")
	}

	rendered := make([]string, 0, len(m.providers))
	for i, id := range m.providers {
		if i == m.cursor {
			rendered = append(rendered, activeTabStyle.Render(id))
			continue
		}
		rendered = append(rendered, tabStyle.Render(id))
	}
	return strings.Join(rendered, "")
}
