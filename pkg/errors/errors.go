package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a theme or override file decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IssueKind classifies a single theme validation failure.
type IssueKind string

const (
	// MissingSlot marks a canonical slot that is absent or empty.
	MissingSlot IssueKind = "missing_slot"
	// InvalidColorSyntax marks a slot whose value is not a parseable color.
	InvalidColorSyntax IssueKind = "invalid_color_syntax"
)

// Issue describes one failed slot in one mode.
type Issue struct {
	Kind IssueKind
	Mode string
	Slot string
	Raw  string
}

func (i Issue) String() string {
	switch i.Kind {
	case MissingSlot:
		return fmt.Sprintf("%s.%s: missing slot", i.Mode, i.Slot)
	case InvalidColorSyntax:
		return fmt.Sprintf("%s.%s: invalid color %q", i.Mode, i.Slot, i.Raw)
	default:
		return fmt.Sprintf("%s.%s: %s", i.Mode, i.Slot, i.Kind)
	}
}

// InvalidThemeError reports every slot that failed validation, in canonical order.
type InvalidThemeError struct {
	Issues []Issue
	Err    error
}

// NewInvalidThemeError constructs an InvalidThemeError.
func NewInvalidThemeError(issues []Issue, err error) error {
	return &InvalidThemeError{Issues: issues, Err: err}
}

func (e *InvalidThemeError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Issues) == 0 {
		if e.Err != nil {
			return fmt.Sprintf("invalid theme: %v", e.Err)
		}
		return "invalid theme"
	}

	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return "invalid theme: " + strings.Join(parts, "; ")
}

// First returns the first recorded issue.
func (e *InvalidThemeError) First() (Issue, bool) {
	if e == nil || len(e.Issues) == 0 {
		return Issue{}, false
	}
	return e.Issues[0], true
}

// Unwrap exposes the underlying validator error, if any.
func (e *InvalidThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownProviderError is returned when a provider id is not registered.
type UnknownProviderError struct {
	ID string
}

// NewUnknownProviderError constructs an UnknownProviderError.
func NewUnknownProviderError(id string) error {
	return &UnknownProviderError{ID: id}
}

func (e *UnknownProviderError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("provider '%s' not found in registry\nHint: run 'tinte providers' to list available targets", e.ID)
}

// UnparseableColorError is returned when a color string cannot be parsed.
// Token is set when the failure happened while normalizing an output token.
type UnparseableColorError struct {
	Raw   string
	Token string
}

// NewUnparseableColorError constructs an UnparseableColorError.
func NewUnparseableColorError(raw string) error {
	return &UnparseableColorError{Raw: raw}
}

func (e *UnparseableColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Token != "" {
		return fmt.Sprintf("unparseable color %q for token %s", e.Raw, e.Token)
	}
	return fmt.Sprintf("unparseable color %q", e.Raw)
}

// ContractViolationError signals a provider bug: a conversion failed or omitted declared tokens.
type ContractViolationError struct {
	Provider string
	Mode     string
	Missing  []string
	Err      error
}

// NewContractViolationError constructs a ContractViolationError.
func NewContractViolationError(provider, mode string, missing []string, err error) error {
	return &ContractViolationError{Provider: provider, Mode: mode, Missing: missing, Err: err}
}

func (e *ContractViolationError) Error() string {
	if e == nil {
		return ""
	}

	scope := e.Provider
	if e.Mode != "" {
		scope = e.Provider + "/" + e.Mode
	}
	if len(e.Missing) > 0 {
		return fmt.Sprintf("provider contract violation [%s]: missing tokens %s", scope, strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("provider contract violation [%s]: %v", scope, e.Err)
	}
	return fmt.Sprintf("provider contract violation [%s]", scope)
}

// Unwrap exposes the underlying error.
func (e *ContractViolationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidOverrideError captures an override layer entry that cannot be applied.
type InvalidOverrideError struct {
	Mode    string
	Field   string
	Message string
}

// NewInvalidOverrideError constructs an InvalidOverrideError.
func NewInvalidOverrideError(mode, field, message string) error {
	return &InvalidOverrideError{Mode: mode, Field: field, Message: message}
}

func (e *InvalidOverrideError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid override: %s.%s: %s", e.Mode, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid override: %s: %s", e.Mode, e.Message)
}

// CompileError is the single externally visible failure of a compilation.
type CompileError struct {
	Provider string
	Err      error
}

// NewCompileError constructs a CompileError.
func NewCompileError(provider string, err error) error {
	return &CompileError{Provider: provider, Err: err}
}

func (e *CompileError) Error() string {
	if e == nil {
		return ""
	}
	if e.Provider != "" {
		return fmt.Sprintf("compile [%s]: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("compile: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *CompileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
