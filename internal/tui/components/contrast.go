package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Railly/tinte-sub004/internal/color"
)

// maxContrast is the WCAG ratio of black on white.
const maxContrast = 21.0

// ContrastMeter renders a contrast ratio as a labelled bar.
type ContrastMeter struct {
	bar progress.Model
}

// NewContrastMeter creates a meter whose bar is width cells wide.
func NewContrastMeter(width int) ContrastMeter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return ContrastMeter{bar: bar}
}

// View renders ratio as "7.12:1 AAA" followed by the bar.
func (c ContrastMeter) View(ratio float64) string {
	fill := 0.0
	if ratio > 1 {
		fill = math.Min(1, (ratio-1)/(maxContrast-1))
	}
	label := lipgloss.NewStyle().Bold(true).Width(16).Render(fmt.Sprintf("%5.2f:1 %s", ratio, color.ContrastGrade(ratio)))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", c.bar.ViewAs(fill))
}
