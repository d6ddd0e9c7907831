// Package shadcn emits shadcn/ui theme variables, both as a CSS file and as a
// registry item.
package shadcn

import (
	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

var colorNames = []string{
	"background", "foreground",
	"card", "card-foreground",
	"popover", "popover-foreground",
	"primary", "primary-foreground",
	"secondary", "secondary-foreground",
	"muted", "muted-foreground",
	"accent", "accent-foreground",
	"destructive", "destructive-foreground",
	"border", "input", "ring",
	"chart-1", "chart-2", "chart-3", "chart-4", "chart-5",
	"sidebar", "sidebar-foreground",
	"sidebar-primary", "sidebar-primary-foreground",
	"sidebar-accent", "sidebar-accent-foreground",
	"sidebar-border", "sidebar-ring",
}

// Specs returns the 32 shadcn color tokens.
func Specs() []tokens.Spec {
	return tokens.Colors(colorNames...)
}

const destructiveHue = 25

// fallback destructive reds per mode, used when no accent reads as red.
var destructiveFallback = map[theme.Mode]color.Color{
	theme.Light: color.OKLCH(0.577, 0.245, destructiveHue, 1),
	theme.Dark:  color.OKLCH(0.704, 0.191, destructiveHue, 1),
}

// convertMode maps one canonical palette onto the shadcn vocabulary.
func convertMode(p theme.Palette, mode theme.Mode) (tokens.Map, error) {
	m := tokens.Map{
		"background":                p.BG,
		"foreground":                p.TX,
		"card":                      p.BG2,
		"card-foreground":           p.TX,
		"popover":                   p.BG2,
		"popover-foreground":        p.TX,
		"primary":                   p.PR,
		"secondary":                 p.SC,
		"muted":                     p.UI,
		"muted-foreground":          p.TX2,
		"accent":                    p.UI2,
		"accent-foreground":         p.TX,
		"border":                    p.UI,
		"input":                     p.UI2,
		"ring":                      p.PR,
		"chart-1":                   p.AC1,
		"chart-2":                   p.AC2,
		"chart-3":                   p.AC3,
		"sidebar":                   p.BG2,
		"sidebar-foreground":        p.TX2,
		"sidebar-primary":           p.PR,
		"sidebar-accent":            p.UI,
		"sidebar-border":            p.UI,
		"sidebar-ring":              p.PR,
		"sidebar-accent-foreground": p.TX,
	}

	destructive, err := pickDestructive(p, mode)
	if err != nil {
		return nil, err
	}
	m["destructive"] = destructive

	ac1, err := color.Parse(p.AC1)
	if err != nil {
		return nil, err
	}
	ac2, err := color.Parse(p.AC2)
	if err != nil {
		return nil, err
	}
	ac3, err := color.Parse(p.AC3)
	if err != nil {
		return nil, err
	}
	m["chart-4"] = color.Format(color.Mix(ac1, ac2, 0.5), color.NotationOKLCH)
	m["chart-5"] = color.Format(color.Mix(ac2, ac3, 0.5), color.NotationOKLCH)

	for _, pair := range [][2]string{
		{"primary-foreground", "primary"},
		{"secondary-foreground", "secondary"},
		{"destructive-foreground", "destructive"},
		{"sidebar-primary-foreground", "sidebar-primary"},
	} {
		fg, err := color.Readable(m[pair[1]], p.BG, p.TX)
		if err != nil {
			return nil, err
		}
		m[pair[0]] = fg
	}
	return m, nil
}

func pickDestructive(p theme.Palette, mode theme.Mode) (string, error) {
	raw := p.Accents()
	accents := make([]color.Color, 0, len(raw))
	for _, r := range raw {
		c, err := color.Parse(r)
		if err != nil {
			return "", err
		}
		accents = append(accents, c)
	}
	if i, ok := color.NearestHue(destructiveHue, accents, 35, 0.05); ok {
		return raw[i], nil
	}
	return color.Format(destructiveFallback[mode], color.NotationOKLCH), nil
}

func convert(t *theme.Theme) (tokens.Modes, error) {
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
