// Package errors defines the coded errors shared by the stackuml packages,
// the CLI and the HTTP API.
//
// An [Error] carries a [Code] for callers that branch on the failure kind,
// a message for people, and an optional cause. Low-level packages such as
// dag keep plain sentinel errors; the model packages wrap those with a code,
// so both errors.Is on the sentinel and [Is] on the code hold:
//
//	err := errors.Wrap(errors.ErrCodeCycleDetected, dag.ErrCycleDetected, "layout %q", name)
//	errors.Is(err, errors.ErrCodeCycleDetected) // true
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a failure kind.
type Code string

const (
	ErrCodeInvalidInput         Code = "INVALID_INPUT"
	ErrCodeInvalidFormat        Code = "INVALID_FORMAT"
	ErrCodeInvalidTheme         Code = "INVALID_THEME"
	ErrCodeInvalidEdge          Code = "INVALID_EDGE"
	ErrCodeCycleDetected        Code = "CYCLE_DETECTED"
	ErrCodeUnknownParticipant   Code = "UNKNOWN_PARTICIPANT"
	ErrCodeDuplicateParticipant Code = "DUPLICATE_PARTICIPANT"
	ErrCodeUnsupported          Code = "UNSUPPORTED"
	ErrCodeNotFound             Code = "NOT_FOUND"
	ErrCodeInternal             Code = "INTERNAL_ERROR"
)

var clientCodes = map[Code]bool{
	ErrCodeInvalidInput:         true,
	ErrCodeInvalidFormat:        true,
	ErrCodeInvalidTheme:         true,
	ErrCodeInvalidEdge:          true,
	ErrCodeCycleDetected:        true,
	ErrCodeUnknownParticipant:   true,
	ErrCodeDuplicateParticipant: true,
	ErrCodeUnsupported:          true,
}

// IsClientError reports whether code blames the caller's input. The HTTP
// API answers such errors with 400.
func IsClientError(code Code) bool { return clientCodes[code] }

// Error is a coded error.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error formats as "CODE: message" or "CODE: message: cause".
func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message whose cause is cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

func first(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether the outermost Error in err's chain has code.
func Is(err error, code Code) bool {
	e := first(err)
	return e != nil && e.Code == code
}

// GetCode returns the code of the outermost Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e := first(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost Error without its code
// prefix or cause. Uncoded errors are returned as err.Error().
func UserMessage(err error) string {
	if e := first(err); e != nil {
		return e.Message
	}
	return err.Error()
}
