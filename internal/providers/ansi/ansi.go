// Package ansi derives the 16-color terminal scheme shared by every terminal
// provider: six special roles, eight normal colors, their bright variants and
// dimmed variants.
package ansi

import (
	"fmt"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
)

// Special role token names.
const (
	Background          = "background"
	Foreground          = "foreground"
	Cursor              = "cursor"
	CursorText          = "cursor-text"
	SelectionBackground = "selection-background"
	SelectionForeground = "selection-foreground"
)

// Names lists the eight base colors in ANSI order.
var Names = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Target OKLCH hues of the six chromatic ANSI colors.
var hues = map[string]float64{
	"red":     25,
	"yellow":  95,
	"green":   145,
	"cyan":    195,
	"blue":    255,
	"magenta": 330,
}

const (
	hueTolerance = 35
	minChroma    = 0.03
	synthChroma  = 0.12
	brightMix    = 0.25
	dimMix       = 0.35
	brightPrefix = "bright-"
	dimPrefix    = "dim-"
)

// Bright returns the token name of the bright variant of name.
func Bright(name string) string { return brightPrefix + name }

// Dim returns the token name of the dimmed variant of name.
func Dim(name string) string { return dimPrefix + name }

// Specs returns the 30 color tokens every terminal provider declares.
func Specs() []tokens.Spec {
	names := []string{Background, Foreground, Cursor, CursorText, SelectionBackground, SelectionForeground}
	names = append(names, Names[:]...)
	for _, n := range Names {
		names = append(names, Bright(n))
	}
	for _, n := range Names {
		names = append(names, Dim(n))
	}
	return tokens.Colors(names...)
}

// Derive maps one palette onto the terminal vocabulary.
func Derive(p theme.Palette, mode theme.Mode) (tokens.Map, error) {
	parsed := make(map[theme.Slot]color.Color, len(theme.Slots()))
	for _, slot := range theme.Slots() {
		c, err := color.Parse(p.Get(slot))
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot, err)
		}
		parsed[slot] = c
	}

	m := tokens.Map{
		Background:          p.BG,
		Foreground:          p.TX,
		Cursor:              p.PR,
		CursorText:          p.BG,
		SelectionBackground: p.UI2,
		SelectionForeground: p.TX,
	}

	if mode == theme.Dark {
		m["black"], m[Bright("black")] = p.UI, p.UI3
		m["white"], m[Bright("white")] = p.TX2, p.TX
	} else {
		m["black"], m[Bright("black")] = p.TX, p.TX3
		m["white"], m[Bright("white")] = p.UI2, p.UI
	}

	accentSlots := []theme.Slot{theme.SlotPrimary, theme.SlotSecondary, theme.SlotAccent, theme.SlotAccent2, theme.SlotAccent3}
	accents := make([]color.Color, 0, len(accentSlots))
	for _, slot := range accentSlots {
		accents = append(accents, parsed[slot])
	}

	primary := parsed[theme.SlotPrimary]
	ink := parsed[theme.SlotText]
	paper := parsed[theme.SlotBackground]

	for _, name := range Names[1:7] {
		var base color.Color
		if i, ok := color.NearestHue(hues[name], accents, hueTolerance, minChroma); ok {
			base = accents[i]
			m[name] = p.Get(accentSlots[i])
		} else {
			chroma := primary.C
			if chroma < synthChroma {
				chroma = synthChroma
			}
			base = color.OKLCH(primary.L, chroma, hues[name], 1)
			m[name] = color.Format(base, color.NotationOKLCH)
		}
		m[Bright(name)] = color.Format(color.Mix(base, ink, brightMix), color.NotationOKLCH)
	}

	for _, name := range Names {
		base, err := color.Parse(m[name])
		if err != nil {
			return nil, err
		}
		m[Dim(name)] = color.Format(color.Mix(base, paper, dimMix), color.NotationOKLCH)
	}
	return m, nil
}

// Scheme is a final terminal map rendered in one notation.
type Scheme struct {
	Background          string
	Foreground          string
	Cursor              string
	CursorText          string
	SelectionBackground string
	SelectionForeground string
	Normal              [8]string
	Bright              [8]string
	Dim                 [8]string
}

// Color returns ANSI color i in [0, 16): normal colors then bright ones.
func (s Scheme) Color(i int) string {
	if i < 8 {
		return s.Normal[i]
	}
	return s.Bright[i-8]
}

// Render reads a final map into a Scheme with every color in notation n.
func Render(m tokens.Map, n color.Notation) (Scheme, error) {
	get := func(name string) (string, error) {
		v, err := color.Reformat(m[name], n)
		if err != nil {
			return "", fmt.Errorf("token %s: %w", name, err)
		}
		return v, nil
	}

	var (
		s   Scheme
		err error
	)
	specials := []struct {
		name string
		dst  *string
	}{
		{Background, &s.Background},
		{Foreground, &s.Foreground},
		{Cursor, &s.Cursor},
		{CursorText, &s.CursorText},
		{SelectionBackground, &s.SelectionBackground},
		{SelectionForeground, &s.SelectionForeground},
	}
	for _, sp := range specials {
		if *sp.dst, err = get(sp.name); err != nil {
			return Scheme{}, err
		}
	}
	for i, name := range Names {
		if s.Normal[i], err = get(name); err != nil {
			return Scheme{}, err
		}
		if s.Bright[i], err = get(Bright(name)); err != nil {
			return Scheme{}, err
		}
		if s.Dim[i], err = get(Dim(name)); err != nil {
			return Scheme{}, err
		}
	}
	return s, nil
}

// RenderModes renders both modes of doc in notation n.
func RenderModes(modes tokens.Modes, n color.Notation) (light, dark Scheme, err error) {
	if light, err = Render(modes.Light, n); err != nil {
		return Scheme{}, Scheme{}, fmt.Errorf("light: %w", err)
	}
	if dark, err = Render(modes.Dark, n); err != nil {
		return Scheme{}, Scheme{}, fmt.Errorf("dark: %w", err)
	}
	return light, dark, nil
}

// Convert derives both modes of t.
func Convert(t *theme.Theme) (tokens.Modes, error) {
	light, err := Derive(t.Light, theme.Light)
	if err != nil {
		return tokens.Modes{}, err
	}
	dark, err := Derive(t.Dark, theme.Dark)
	if err != nil {
		return tokens.Modes{}, err
	}
	return tokens.Modes{Light: light, Dark: dark}, nil
}

// Terminal supplies the vocabulary and conversion halves of the provider
// contract; terminal providers embed it and add Metadata and Serialize.
type Terminal struct{}

// Tokens returns Specs.
func (Terminal) Tokens() []tokens.Spec { return Specs() }

// Convert derives both modes of t.
func (Terminal) Convert(t *theme.Theme) (tokens.Modes, error) { return Convert(t) }
