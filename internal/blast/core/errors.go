package core

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a parse or detonation failure.
type ErrorCode string

const (
	CodeMalformedToken    ErrorCode = "MALFORMED_TOKEN"
	CodeNonPositive       ErrorCode = "NON_POSITIVE_PAYLOAD"
	CodeHealthOutOfRange  ErrorCode = "HEALTH_OUT_OF_RANGE"
	CodeInvalidDetour     ErrorCode = "INVALID_DETOUR"
	CodeEmptyGrid         ErrorCode = "EMPTY_GRID"
	CodeRaggedGrid        ErrorCode = "RAGGED_GRID"
	CodeTargetOutOfBounds ErrorCode = "TARGET_OUT_OF_BOUNDS"
	CodeNotABomb          ErrorCode = "TARGET_NOT_A_BOMB"
	CodeInternal          ErrorCode = "INTERNAL"
)

// Error contains details about a parse or detonation failure.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s]", e.Code)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches any *Error with the same code, so callers can compare
// against the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrMalformedToken    = &Error{Code: CodeMalformedToken}
	ErrNonPositive       = &Error{Code: CodeNonPositive}
	ErrHealthOutOfRange  = &Error{Code: CodeHealthOutOfRange}
	ErrInvalidDetour     = &Error{Code: CodeInvalidDetour}
	ErrEmptyGrid         = &Error{Code: CodeEmptyGrid}
	ErrRaggedGrid        = &Error{Code: CodeRaggedGrid}
	ErrTargetOutOfBounds = &Error{Code: CodeTargetOutOfBounds}
	ErrNotABomb          = &Error{Code: CodeNotABomb}
	ErrInternal          = &Error{Code: CodeInternal}
)

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the error code from err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
