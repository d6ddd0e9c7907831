package theme

// DefaultFonts is used for any font family a theme leaves unset.
var DefaultFonts = Fonts{
	Sans:  "Inter, sans-serif",
	Serif: "Georgia, serif",
	Mono:  "JetBrains Mono, monospace",
}

// DefaultRadius is used for any radius step a theme leaves unset.
var DefaultRadius = Radius{
	Small:      "0.25rem",
	Medium:     "0.375rem",
	Large:      "0.5rem",
	ExtraLarge: "0.75rem",
}

// Sample returns a complete theme, handy for previews and tests.
// The palettes follow the Flexoki scheme.
func Sample() *Theme {
	return &Theme{
		Name: "Flexoki",
		Light: Palette{
			BG:  "#fffcf0",
			BG2: "#f2f0e5",
			UI:  "#e6e4d9",
			UI2: "#dad8ce",
			UI3: "#cecdc3",
			TX:  "#100f0f",
			TX2: "#6f6e69",
			TX3: "#b7b5ac",
			PR:  "#205ea6",
			SC:  "#5e409d",
			AC1: "#af3029",
			AC2: "#66800b",
			AC3: "#ad8301",
		},
		Dark: Palette{
			BG:  "#100f0f",
			BG2: "#1c1b1a",
			UI:  "#282726",
			UI2: "#343331",
			UI3: "#403e3c",
			TX:  "#cecdc3",
			TX2: "#878580",
			TX3: "#575653",
			PR:  "#4385be",
			SC:  "#8b7ec8",
			AC1: "#d14d41",
			AC2: "#879a39",
			AC3: "#d0a215",
		},
		Fonts: Fonts{Sans: "Inter, sans-serif", Mono: "JetBrains Mono, monospace"},
		Radius: Radius{
			Small:      "0.25rem",
			Medium:     "0.375rem",
			Large:      "0.5rem",
			ExtraLarge: "0.75rem",
		},
		Shadow: Shadow{
			Color:   "#000000",
			Opacity: "0.1",
			OffsetX: "0px",
			OffsetY: "2px",
			Blur:    "4px",
			Spread:  "0px",
		},
	}
}
