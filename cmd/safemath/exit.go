package main

import (
	"errors"
	"fmt"

	safemath "novamath/core/math"
)

// Exit codes.
const (
	exitFailure      = 1 // arithmetic error or failing vectors
	exitCommandError = 2 // bad arguments, unreadable files, bad config
)

// exitError carries a process exit code.
type exitError struct {
	Code    int
	Message string
	Err     error
}

func (e *exitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *exitError) Unwrap() error { return e.Err }

func wrapExitError(code int, message string, err error) *exitError {
	return &exitError{Code: code, Message: message, Err: err}
}

// exitCode maps err to a process exit code. Arithmetic errors are
// failures; anything else is a command error.
func exitCode(err error) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, safemath.ErrArithmetic) {
		return exitFailure
	}
	return exitCommandError
}
