// Package theme holds the canonical theme model: two 13-slot palettes plus
// optional font, radius and shadow metadata.
package theme

// Mode is an appearance mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes returns the appearance modes in canonical order.
func Modes() []Mode {
	return []Mode{Light, Dark}
}

// Slot names one of the 13 canonical palette colors.
type Slot string

const (
	SlotBackground  Slot = "bg"
	SlotBackground2 Slot = "bg_2"
	SlotInterface   Slot = "ui"
	SlotInterface2  Slot = "ui_2"
	SlotInterface3  Slot = "ui_3"
	SlotText        Slot = "tx"
	SlotText2       Slot = "tx_2"
	SlotText3       Slot = "tx_3"
	SlotPrimary     Slot = "pr"
	SlotSecondary   Slot = "sc"
	SlotAccent      Slot = "ac_1"
	SlotAccent2     Slot = "ac_2"
	SlotAccent3     Slot = "ac_3"
)

// Slots returns every canonical slot in palette order.
func Slots() []Slot {
	return []Slot{
		SlotBackground, SlotBackground2,
		SlotInterface, SlotInterface2, SlotInterface3,
		SlotText, SlotText2, SlotText3,
		SlotPrimary, SlotSecondary,
		SlotAccent, SlotAccent2, SlotAccent3,
	}
}

// Palette is the canonical 13-slot color set for one mode.
type Palette struct {
	BG  string `yaml:"bg" json:"bg" validate:"required,color"`
	BG2 string `yaml:"bg_2" json:"bg_2" validate:"required,color"`
	UI  string `yaml:"ui" json:"ui" validate:"required,color"`
	UI2 string `yaml:"ui_2" json:"ui_2" validate:"required,color"`
	UI3 string `yaml:"ui_3" json:"ui_3" validate:"required,color"`
	TX  string `yaml:"tx" json:"tx" validate:"required,color"`
	TX2 string `yaml:"tx_2" json:"tx_2" validate:"required,color"`
	TX3 string `yaml:"tx_3" json:"tx_3" validate:"required,color"`
	PR  string `yaml:"pr" json:"pr" validate:"required,color"`
	SC  string `yaml:"sc" json:"sc" validate:"required,color"`
	AC1 string `yaml:"ac_1" json:"ac_1" validate:"required,color"`
	AC2 string `yaml:"ac_2" json:"ac_2" validate:"required,color"`
	AC3 string `yaml:"ac_3" json:"ac_3" validate:"required,color"`
}

// Get returns the raw value of slot, or "" for an unknown slot.
func (p Palette) Get(slot Slot) string {
	switch slot {
	case SlotBackground:
		return p.BG
	case SlotBackground2:
		return p.BG2
	case SlotInterface:
		return p.UI
	case SlotInterface2:
		return p.UI2
	case SlotInterface3:
		return p.UI3
	case SlotText:
		return p.TX
	case SlotText2:
		return p.TX2
	case SlotText3:
		return p.TX3
	case SlotPrimary:
		return p.PR
	case SlotSecondary:
		return p.SC
	case SlotAccent:
		return p.AC1
	case SlotAccent2:
		return p.AC2
	case SlotAccent3:
		return p.AC3
	default:
		return ""
	}
}

// Accents returns the five chromatic slots: primary, secondary and the three tertiary accents.
func (p Palette) Accents() []string {
	return []string{p.PR, p.SC, p.AC1, p.AC2, p.AC3}
}

// Fonts names the sans, serif and monospace families.
type Fonts struct {
	Sans  string `yaml:"sans,omitempty" json:"sans,omitempty"`
	Serif string `yaml:"serif,omitempty" json:"serif,omitempty"`
	Mono  string `yaml:"mono,omitempty" json:"mono,omitempty"`
}

// Radius is the four-step corner radius scale.
type Radius struct {
	Small      string `yaml:"sm,omitempty" json:"sm,omitempty"`
	Medium     string `yaml:"md,omitempty" json:"md,omitempty"`
	Large      string `yaml:"lg,omitempty" json:"lg,omitempty"`
	ExtraLarge string `yaml:"xl,omitempty" json:"xl,omitempty"`
}

// Shadow holds the six base shadow parameters.
type Shadow struct {
	Color   string `yaml:"color,omitempty" json:"color,omitempty"`
	Opacity string `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	OffsetX string `yaml:"offset_x,omitempty" json:"offset_x,omitempty"`
	OffsetY string `yaml:"offset_y,omitempty" json:"offset_y,omitempty"`
	Blur    string `yaml:"blur,omitempty" json:"blur,omitempty"`
	Spread  string `yaml:"spread,omitempty" json:"spread,omitempty"`
}

// Style bundles the optional non-color metadata of a theme.
type Style struct {
	Fonts  Fonts
	Radius Radius
	Shadow Shadow
}

// Theme is a light/dark pair of canonical palettes plus optional style metadata.
type Theme struct {
	Name   string  `yaml:"name,omitempty" json:"name,omitempty"`
	Light  Palette `yaml:"light" json:"light"`
	Dark   Palette `yaml:"dark" json:"dark"`
	Fonts  Fonts   `yaml:"fonts,omitempty" json:"fonts,omitempty"`
	Radius Radius  `yaml:"radius,omitempty" json:"radius,omitempty"`
	Shadow Shadow  `yaml:"shadow,omitempty" json:"shadow,omitempty"`
}

// Palette returns the palette for mode.
func (t *Theme) Palette(mode Mode) Palette {
	if mode == Dark {
		return t.Dark
	}
	return t.Light
}

// Style returns the theme's font, radius and shadow metadata.
func (t *Theme) Style() Style {
	return Style{Fonts: t.Fonts, Radius: t.Radius, Shadow: t.Shadow}
}

// DisplayName returns the theme name, or a fallback when unset.
func (t *Theme) DisplayName() string {
	if t == nil || t.Name == "" {
		return "Untitled"
	}
	return t.Name
}
