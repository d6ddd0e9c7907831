package compiler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Railly/tinte-sub004/internal/color"
	"github.com/Railly/tinte-sub004/internal/logger"
	"github.com/Railly/tinte-sub004/internal/override"
	"github.com/Railly/tinte-sub004/internal/provider"
	"github.com/Railly/tinte-sub004/internal/providers"
	"github.com/Railly/tinte-sub004/internal/theme"
	"github.com/Railly/tinte-sub004/internal/tokens"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

type fakeProvider struct {
	id       string
	calls    atomic.Int32
	omit     string
	fail     error
	rejected bool
}

func (f *fakeProvider) Metadata() provider.Metadata {
	return provider.Metadata{
		ID:       f.id,
		Name:     f.id,
		Category: provider.CategoryUI,
		Version:  "0.1.0",
		Artifact: provider.ArtifactInfo{Extension: ".txt", Kind: "text/plain"},
	}
}

func (f *fakeProvider) Tokens() []tokens.Spec {
	return append(tokens.Colors("bg", "fg"), tokens.Spec{Name: "label", Kind: tokens.KindText})
}

func (f *fakeProvider) Convert(t *theme.Theme) (tokens.Modes, error) {
	f.calls.Add(1)
	if f.fail != nil {
		return tokens.Modes{}, f.fail
	}
	build := func(p theme.Palette) tokens.Map {
		m := tokens.Map{"bg": p.BG, "fg": p.TX, "label": "#not-a-color"}
		delete(m, f.omit)
		return m
	}
	return tokens.Modes{Light: build(t.Light), Dark: build(t.Dark)}, nil
}

func (f *fakeProvider) Serialize(doc provider.Document) (*provider.Artifact, error) {
	content := doc.Modes.Light["bg"] + "\n" + doc.Modes.Dark["bg"] + "\n"
	return provider.NewArtifact(f.Metadata(), doc, []byte(content)), nil
}

func (f *fakeProvider) Validate(tokens.Map) bool { return !f.rejected }

func newCompiler(t *testing.T, ps ...provider.Provider) *Compiler {
	t.Helper()

	reg := provider.NewRegistry(nil)
	for _, p := range ps {
		require.NoError(t, reg.Register(p))
	}
	reg.Freeze()
	return New(reg, nil)
}

func builtinCompiler(t *testing.T) *Compiler {
	t.Helper()

	reg, err := providers.NewRegistry(provider.NewRegistry(nil))
	require.NoError(t, err)
	return New(reg, nil)
}

func TestCompileRoundTrip(t *testing.T) {
	t.Parallel()

	th := theme.Sample()
	th.Light.BG = "#ffffff"
	th.Light.PR = "#3b82f6"

	modes, err := builtinCompiler(t).Resolve(Request{Theme: th, ProviderID: "vscode"})
	require.NoError(t, err)

	require.Equal(t, "oklch(1.0000 0.0000 0.0000)", modes.Light["editor.background"])
	require.Equal(t, color.Format(color.MustParse("#3b82f6"), color.NotationOKLCH), modes.Light["editorCursor.foreground"])
	require.Equal(t, modes.Light["editorCursor.foreground"], modes.Light["focusBorder"])
}

func TestCompileIsDeterministic(t *testing.T) {
	t.Parallel()

	c := builtinCompiler(t)
	for _, id := range []string{"shadcn", "vscode", "iterm2", "brand"} {
		first, err := c.Compile(Request{Theme: theme.Sample(), ProviderID: id})
		require.NoError(t, err)
		second, err := c.Compile(Request{Theme: theme.Sample(), ProviderID: id})
		require.NoError(t, err)
		require.Equal(t, first.Content, second.Content, id)
	}
}

func TestCompileNormalizesColorTokensOnly(t *testing.T) {
	t.Parallel()

	fake := &fakeProvider{id: "fake"}
	modes, err := newCompiler(t, fake).Resolve(Request{Theme: theme.Sample(), ProviderID: "fake"})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(modes.Light["bg"], "oklch("))
	require.Equal(t, "#not-a-color", modes.Light["label"])
}

func TestCompileRejectsInvalidThemeBeforeConvert(t *testing.T) {
	t.Parallel()

	fake := &fakeProvider{id: "fake"}
	th := theme.Sample()
	th.Dark.UI2 = ""

	_, err := newCompiler(t, fake).Compile(Request{Theme: th, ProviderID: "fake"})

	var compileErr *tinteerrors.CompileError
	require.ErrorAs(t, err, &compileErr)
	require.Equal(t, "fake", compileErr.Provider)

	var themeErr *tinteerrors.InvalidThemeError
	require.ErrorAs(t, err, &themeErr)
	first, ok := themeErr.First()
	require.True(t, ok)
	require.Equal(t, tinteerrors.Issue{Kind: tinteerrors.MissingSlot, Mode: "dark", Slot: "ui_2"}, first)
	require.Zero(t, fake.calls.Load())
}

func TestCompileUnknownProvider(t *testing.T) {
	t.Parallel()

	_, err := newCompiler(t).Compile(Request{Theme: theme.Sample(), ProviderID: "emacs"})

	var unknown *tinteerrors.UnknownProviderError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "emacs", unknown.ID)
}

func TestCompileProviderBugs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		fake   *fakeProvider
		assert func(t *testing.T, v *tinteerrors.ContractViolationError)
	}{
		{
			name: "omitted token",
			fake: &fakeProvider{id: "omits", omit: "fg"},
			assert: func(t *testing.T, v *tinteerrors.ContractViolationError) {
				require.Equal(t, "light", v.Mode)
				require.Equal(t, []string{"fg"}, v.Missing)
			},
		},
		{
			name: "conversion failure",
			fake: &fakeProvider{id: "fails", fail: errors.New("boom")},
			assert: func(t *testing.T, v *tinteerrors.ContractViolationError) {
				require.ErrorContains(t, v, "boom")
			},
		},
		{
			name: "final map rejected",
			fake: &fakeProvider{id: "picky", rejected: true},
			assert: func(t *testing.T, v *tinteerrors.ContractViolationError) {
				require.Equal(t, "light", v.Mode)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := newCompiler(t, tc.fake).Compile(Request{Theme: theme.Sample(), ProviderID: tc.fake.id})

			var violation *tinteerrors.ContractViolationError
			require.ErrorAs(t, err, &violation)
			require.Equal(t, tc.fake.id, violation.Provider)
			tc.assert(t, violation)
			require.EqualValues(t, 1, tc.fake.calls.Load(), "conversion is never retried")
		})
	}
}

func TestCompileAppliesOverrides(t *testing.T) {
	t.Parallel()

	c := builtinCompiler(t)
	layer := &override.Layer{
		Dark: &override.ModeLayer{Tokens: map[string]string{"primary": "hsl(0 100% 50%)"}},
	}

	modes, err := c.Resolve(Request{Theme: theme.Sample(), ProviderID: "shadcn", Overrides: layer})
	require.NoError(t, err)
	require.Equal(t, color.Format(color.MustParse("#ff0000"), color.NotationOKLCH), modes.Dark["primary"])
	require.NotEqual(t, modes.Dark["primary"], modes.Light["primary"])
	require.Equal(t, "Inter, sans-serif", modes.Dark["font-sans"])
}

func TestCompileOverrideFailures(t *testing.T) {
	t.Parallel()

	c := builtinCompiler(t)

	_, err := c.Compile(Request{
		Theme:      theme.Sample(),
		ProviderID: "vscode",
		Overrides:  &override.Layer{Light: &override.ModeLayer{Tokens: map[string]string{"font-sans": "Geist"}}},
	})
	var overrideErr *tinteerrors.InvalidOverrideError
	require.ErrorAs(t, err, &overrideErr)

	_, err = c.Compile(Request{
		Theme:      theme.Sample(),
		ProviderID: "vscode",
		Overrides:  &override.Layer{Light: &override.ModeLayer{Tokens: map[string]string{"editor.background": "blurple"}}},
	})
	var colorErr *tinteerrors.UnparseableColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "editor.background", colorErr.Token)
	require.Equal(t, "blurple", colorErr.Raw)
}

func TestCompileAllKeepsOrder(t *testing.T) {
	t.Parallel()

	c := builtinCompiler(t)
	ids := []string{"warp", "alacritty", "brand", "shadcn"}

	artifacts, err := c.CompileAll(context.Background(), theme.Sample(), nil, ids)
	require.NoError(t, err)
	require.Len(t, artifacts, len(ids))
	for i, id := range ids {
		require.Equal(t, id, artifacts[i].Provider)
	}

	all, err := c.CompileAll(context.Background(), theme.Sample(), nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 10)
	require.Equal(t, "alacritty", all[0].Provider)
}

func TestCompileAllFailsAtomically(t *testing.T) {
	t.Parallel()

	c := builtinCompiler(t)
	artifacts, err := c.CompileAll(context.Background(), theme.Sample(), nil, []string{"kitty", "nope"})
	require.Nil(t, artifacts)

	var unknown *tinteerrors.UnknownProviderError
	require.ErrorAs(t, err, &unknown)
}

func TestCompileLogsPerMode(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	reg := provider.NewRegistry(nil)
	require.NoError(t, reg.Register(&fakeProvider{id: "fake"}))

	_, err = New(reg, log).Compile(Request{Theme: theme.Sample(), ProviderID: "fake"})
	require.NoError(t, err)

	out := buf.String()
	require.Equal(t, 2, strings.Count(out, `"message":"mode composed"`))
	require.Contains(t, out, `"mode":"dark"`)
	require.Contains(t, out, `"message":"artifact compiled"`)
}
