package components

import (
	"fmt"
	"strings"

	"github.com/Railly/tinte-sub004/internal/color"
)

// Pair names a foreground drawn on a background.
type Pair struct {
	Label      string
	Foreground string
	Background string
}

// Check is the graded outcome of one Pair.
type Check struct {
	Pair
	Ratio float64
	Err   error
}

// Passed reports whether the pair reaches WCAG AA for normal text.
func (c Check) Passed() bool {
	return c.Err == nil && c.Ratio >= 4.5
}

// Grade computes the contrast of every pair in order.
func Grade(pairs []Pair) []Check {
	checks := make([]Check, 0, len(pairs))
	for _, p := range pairs {
		check := Check{Pair: p}
		fg, err := color.Parse(p.Foreground)
		if err == nil {
			var bg color.Color
			bg, err = color.Parse(p.Background)
			if err == nil {
				check.Ratio = color.ContrastRatio(fg, bg)
			}
		}
		check.Err = err
		checks = append(checks, check)
	}
	return checks
}

// Legibility renders a list of graded pairs with a meter each.
type Legibility struct {
	checks []Check
	meter  ContrastMeter
}

// NewLegibility grades pairs for rendering.
func NewLegibility(pairs []Pair) Legibility {
	return Legibility{checks: Grade(pairs), meter: NewContrastMeter(20)}
}

// Checks returns the graded pairs.
func (l Legibility) Checks() []Check {
	return l.checks
}

// View renders one line per pair followed by a pass count.
func (l Legibility) View() string {
	if len(l.checks) == 0 {
		return ""
	}

	lines := make([]string, 0, len(l.checks)+1)
	passed := 0
	for _, c := range l.checks {
		status := "✗"
		if c.Passed() {
			status = "✓"
			passed++
		}
		if c.Err != nil {
			lines = append(lines, fmt.Sprintf("  %s %-22s %v", status, c.Label, c.Err))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s %-22s %s", status, c.Label, l.meter.View(c.Ratio)))
	}
	lines = append(lines, fmt.Sprintf("  %d/%d pairs reach AA", passed, len(l.checks)))
	return strings.Join(lines, "\n")
}
