package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Railly/tinte-sub004/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerLines-footerLines)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "tab":
		if len(m.providers) > 0 {
			m.cursor = (m.cursor + 1) % len(m.providers)
			m.refresh()
		}
		return m, nil
	case "left", "h", "shift+tab":
		if len(m.providers) > 0 {
			m.cursor = (m.cursor - 1 + len(m.providers)) % len(m.providers)
			m.refresh()
		}
		return m, nil
	case "m":
		if m.mode == theme.Dark {
			m.mode = theme.Light
		} else {
			m.mode = theme.Dark
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
