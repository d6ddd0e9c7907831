// Package tui renders palette previews: static swatches for plain output and
// an interactive browser across providers and modes.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

// Resolver returns the final token maps a provider produces for the theme.
type Resolver func(providerID string) (tokens.Modes, error)

type resolution struct {
	modes tokens.Modes
	err   error
}

const (
	headerLines = 3
	footerLines = 2
)

// Model is the Bubbletea state of the interactive preview.
type Model struct {
	theme     *theme.Theme
	providers []string
	resolve   Resolver
	cache     map[string]resolution

	cursor   int
	mode     theme.Mode
	viewport viewport.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates a browser over providerIDs starting in mode.
func NewModel(th *theme.Theme, providerIDs []string, resolve Resolver, mode theme.Mode) Model {
	if mode != theme.Dark {
		mode = theme.Light
	}

	m := Model{
		theme:     th,
		providers: providerIDs,
		resolve:   resolve,
		cache:     make(map[string]resolution),
		mode:      mode,
		width:     80,
		height:    24,
	}
	m.viewport = viewport.New(m.width, m.height-headerLines-footerLines)
	m.refresh()
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Provider returns the id currently shown, or "" when there are none.
func (m Model) Provider() string {
	if len(m.providers) == 0 {
		return ""
	}
	return m.providers[m.cursor]
}

// Mode returns the mode currently shown.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) current() resolution {
	id := m.Provider()
	if id == "" || m.resolve == nil {
		return resolution{}
	}
	if r, ok := m.cache[id]; ok {
		return r
	}
	modes, err := m.resolve(id)
	r := resolution{modes: modes, err: err}
	m.cache[id] = r
	return r
}

// refresh loads the current provider's tokens into the viewport.
func (m *Model) refresh() {
	r := m.current()
	switch {
	case m.Provider() == "":
		m.viewport.SetContent("No providers registered.")
	case r.err != nil:
		m.viewport.SetContent(errorStyle.Render(r.err.Error()))
	default:
		m.viewport.SetContent(TokenList(r.modes.Get(string(m.mode))))
	}
	m.viewport.GotoTop()
}
