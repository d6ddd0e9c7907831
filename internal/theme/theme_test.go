package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

func TestValidateAcceptsCompleteTheme(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Sample()))
}

func TestValidateReportsMissingDarkSlot(t *testing.T) {
	t.Parallel()

	th := Sample()
	th.Dark.AC3 = ""

	err := Validate(th)
	require.Error(t, err)

	var themeErr *tinteerrors.InvalidThemeError
	require.ErrorAs(t, err, &themeErr)
	require.Len(t, themeErr.Issues, 1)

	first, ok := themeErr.First()
	require.True(t, ok)
	require.Equal(t, tinteerrors.Issue{Kind: tinteerrors.MissingSlot, Mode: "dark", Slot: "ac_3"}, first)
}

func TestValidateReportsInvalidColorSyntax(t *testing.T) {
	t.Parallel()

	th := Sample()
	th.Light.PR = "bluish"

	err := Validate(th)

	var themeErr *tinteerrors.InvalidThemeError
	require.ErrorAs(t, err, &themeErr)
	require.Equal(t, []tinteerrors.Issue{
		{Kind: tinteerrors.InvalidColorSyntax, Mode: "light", Slot: "pr", Raw: "bluish"},
	}, themeErr.Issues)
}

func TestValidateOrdersIssuesCanonically(t *testing.T) {
	t.Parallel()

	th := Sample()
	th.Dark.BG = ""
	th.Light.TX3 = "#zzz"
	th.Light.BG2 = ""

	err := Validate(th)

	var themeErr *tinteerrors.InvalidThemeError
	require.ErrorAs(t, err, &themeErr)
	require.Len(t, themeErr.Issues, 3)
	require.Equal(t, "light", themeErr.Issues[0].Mode)
	require.Equal(t, "bg_2", themeErr.Issues[0].Slot)
	require.Equal(t, "tx_3", themeErr.Issues[1].Slot)
	require.Equal(t, tinteerrors.InvalidColorSyntax, themeErr.Issues[1].Kind)
	require.Equal(t, "dark", themeErr.Issues[2].Mode)
	require.Equal(t, "bg", themeErr.Issues[2].Slot)
}

func TestValidateRejectsNilTheme(t *testing.T) {
	t.Parallel()

	var themeErr *tinteerrors.InvalidThemeError
	require.ErrorAs(t, Validate(nil), &themeErr)
}

func TestPaletteGetFollowsSlotOrder(t *testing.T) {
	t.Parallel()

	p := Sample().Light
	values := make([]string, 0, len(Slots()))
	for _, slot := range Slots() {
		values = append(values, p.Get(slot))
	}

	require.Len(t, values, 13)
	require.Equal(t, p.BG, values[0])
	require.Equal(t, p.PR, values[8])
	require.Equal(t, p.AC3, values[12])
	require.Equal(t, "", p.Get(Slot("nope")))
	require.Equal(t, []string{p.PR, p.SC, p.AC1, p.AC2, p.AC3}, p.Accents())
}

func TestThemeAccessors(t *testing.T) {
	t.Parallel()

	th := Sample()
	require.Equal(t, th.Dark, th.Palette(Dark))
	require.Equal(t, th.Light, th.Palette(Light))
	require.Equal(t, th.Shadow, th.Style().Shadow)
	require.Equal(t, "Flexoki", th.DisplayName())

	var unnamed *Theme
	require.Equal(t, "Untitled", unnamed.DisplayName())
}

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	valid := `name: Paper
light:
  bg: "#ffffff"
  bg_2: "#f5f5f5"
  ui: "#e5e5e5"
  ui_2: "#d4d4d4"
  ui_3: "#a3a3a3"
  tx: "#0a0a0a"
  tx_2: "#404040"
  tx_3: "#737373"
  pr: "#3b82f6"
  sc: "#8b5cf6"
  ac_1: "#ef4444"
  ac_2: "#22c55e"
  ac_3: "#eab308"
dark:
  bg: "#0a0a0a"
fonts:
  mono: "Fira Code"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, th *Theme, err error)
	}{
		{
			name:     "valid document is decoded",
			contents: valid,
			assert: func(t *testing.T, th *Theme, err error) {
				require.NoError(t, err)
				require.Equal(t, "Paper", th.Name)
				require.Equal(t, "#3b82f6", th.Light.PR)
				require.Equal(t, "#0a0a0a", th.Dark.BG)
				require.Equal(t, "Fira Code", th.Fonts.Mono)
			},
		},
		{
			name:     "json is accepted",
			contents: `{"name": "J", "light": {"bg": "#fff"}, "dark": {"bg": "#000"}}`,
			assert: func(t *testing.T, th *Theme, err error) {
				require.NoError(t, err)
				require.Equal(t, "#fff", th.Light.BG)
			},
		},
		{
			name:     "unknown slot is a parse error with line",
			contents: "name: X\nlight:\n  bg: \"#fff\"\n  ac3: \"#000\"\n",
			assert: func(t *testing.T, th *Theme, err error) {
				var parseErr *tinteerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 4, parseErr.Line)
			},
		},
		{
			name:     "empty document is rejected",
			contents: "",
			assert: func(t *testing.T, th *Theme, err error) {
				var parseErr *tinteerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "empty")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "theme.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			th, err := Load(path)
			tc.assert(t, th, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *tinteerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}
