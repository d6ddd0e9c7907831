package color

import (
	"github.com/Railly/tinte-sub004/internal/tokens"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

// NormalizeTokens re-emits every color-role token of m in OKLCH.
// Tokens that are not declared as colors pass through untouched.
// The input map is not modified.
func NormalizeTokens(m tokens.Map, specs []tokens.Spec) (tokens.Map, error) {
	out := m.Clone()
	for _, spec := range specs {
		if spec.Kind != tokens.KindColor {
			continue
		}
		raw, ok := m[spec.Name]
		if !ok {
			continue
		}
		c, err := Parse(raw)
		if err != nil {
			return nil, &tinteerrors.UnparseableColorError{Raw: raw, Token: spec.Name}
		}
		out[spec.Name] = Format(c, NotationOKLCH)
	}
	return out, nil
}

// FormatToken renders value in notation n when the token is a color role,
// and returns it unchanged otherwise.
func FormatToken(spec tokens.Spec, value string, n Notation) (string, error) {
	if spec.Kind != tokens.KindColor {
		return value, nil
	}
	c, err := Parse(value)
	if err != nil {
		return "", &tinteerrors.UnparseableColorError{Raw: value, Token: spec.Name}
	}
	return Format(c, n), nil
}
