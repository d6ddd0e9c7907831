package main

import (
	"errors"
	"fmt"
)

var errDrift = errors.New("generated artifacts differ from the files on disk")

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
