package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml:12")
}

func TestInvalidThemeErrorListsIssues(t *testing.T) {
	t.Parallel()

	err := NewInvalidThemeError([]Issue{
		{Kind: MissingSlot, Mode: "dark", Slot: "ac_3"},
		{Kind: InvalidColorSyntax, Mode: "dark", Slot: "pr", Raw: "blue-ish"},
	}, nil)

	var themeErr *InvalidThemeError
	require.ErrorAs(t, err, &themeErr)
	first, ok := themeErr.First()
	require.True(t, ok)
	require.Equal(t, MissingSlot, first.Kind)
	require.Equal(t, "dark", first.Mode)
	require.Equal(t, "ac_3", first.Slot)
	require.Contains(t, err.Error(), "dark.ac_3: missing slot")
	require.Contains(t, err.Error(), `dark.pr: invalid color "blue-ish"`)
}

func TestInvalidThemeErrorWithoutIssues(t *testing.T) {
	t.Parallel()

	var empty *InvalidThemeError
	_, ok := empty.First()
	require.False(t, ok)

	err := NewInvalidThemeError(nil, stdErrors.New("theme is nil"))
	require.Equal(t, "invalid theme: theme is nil", err.Error())
}

func TestUnknownProviderErrorIncludesID(t *testing.T) {
	t.Parallel()

	err := NewUnknownProviderError("emacs")

	var unknown *UnknownProviderError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "emacs", unknown.ID)
	require.Contains(t, err.Error(), "'emacs'")
}

func TestContractViolationErrorFormatsMissingTokens(t *testing.T) {
	t.Parallel()

	err := NewContractViolationError("kitty", "dark", []string{"color1", "color9"}, nil)
	require.Equal(t, "provider contract violation [kitty/dark]: missing tokens color1, color9", err.Error())

	underlying := stdErrors.New("boom")
	wrapped := NewContractViolationError("kitty", "", nil, underlying)
	require.True(t, stdErrors.Is(wrapped, underlying))
}

func TestCompileErrorPreservesTypedCause(t *testing.T) {
	t.Parallel()

	err := NewCompileError("vscode", NewUnknownProviderError("vscode"))

	var unknown *UnknownProviderError
	require.ErrorAs(t, err, &unknown)
	require.Contains(t, err.Error(), "compile [vscode]")
}

func TestUnparseableColorErrorMentionsToken(t *testing.T) {
	t.Parallel()

	err := &UnparseableColorError{Raw: "nope", Token: "primary"}
	require.Equal(t, `unparseable color "nope" for token primary`, err.Error())
	require.Equal(t, `unparseable color "x"`, NewUnparseableColorError("x").Error())
}
