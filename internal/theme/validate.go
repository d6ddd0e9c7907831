package theme

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Railly/tinte-sub004/internal/color"
	tinteerrors "github.com/Railly/tinte-sub004/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for themes.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return color.Valid(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks that both palettes define all 13 slots with parseable colors.
// Every failure is reported, light mode first, slots in palette order.
func Validate(t *Theme) error {
	if t == nil {
		return tinteerrors.NewInvalidThemeError(nil, errors.New("theme is nil"))
	}

	err := validatorInstance().Struct(t)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return tinteerrors.NewInvalidThemeError(nil, err)
	}

	issues := make([]tinteerrors.Issue, 0, len(ves))
	for _, fe := range ves {
		issues = append(issues, issueFor(fe))
	}
	return tinteerrors.NewInvalidThemeError(issues, err)
}

func issueFor(fe validator.FieldError) tinteerrors.Issue {
	parts := strings.Split(fe.Namespace(), ".")
	mode := ""
	if len(parts) >= 2 {
		mode = parts[len(parts)-2]
	}

	issue := tinteerrors.Issue{Mode: mode, Slot: fe.Field()}
	switch fe.Tag() {
	case "required":
		issue.Kind = tinteerrors.MissingSlot
	default:
		issue.Kind = tinteerrors.InvalidColorSyntax
		if raw, ok := fe.Value().(string); ok {
			issue.Raw = raw
		}
	}
	return issue
}
