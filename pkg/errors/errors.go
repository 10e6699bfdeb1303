// Package errors carries coded errors for sketchboard.
//
// The controller itself never fails: pointer input is clamped instead of
// rejected. Errors appear where documents, scripts and config files are
// read, where outputs are written, and when the text measurement surface is
// asked for before a host registered one.
//
// Every error carries a [Code]. Hosts branch on the code, not the message:
// the HTTP service maps codes to statuses, the live session and the CLI
// print the message and the code separately.
//
//	err := errors.New(errors.ErrCodeDuplicateKey, "duplicate item key %q", key)
//	if errors.Is(err, errors.ErrCodeDuplicateKey) {
//	    // reject the document
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error class.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidScript   Code = "INVALID_SCRIPT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Item identity inside a document or script.
	ErrCodeDuplicateKey Code = "DUPLICATE_KEY"
	ErrCodeUnknownKey   Code = "UNKNOWN_KEY"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// A replay step left the controller in an unexpected state.
	ErrCodeExpectation Code = "EXPECTATION_FAILED"

	// The text surface was used before registration. Programming error.
	ErrCodeSurfaceNotInitialized Code = "SURFACE_NOT_INITIALIZED"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Rejected reports whether c blames the caller's input: a malformed value,
// document or script, or a bad item key.
func (c Code) Rejected() bool {
	return strings.HasPrefix(string(c), "INVALID_") || strings.HasSuffix(string(c), "_KEY")
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is [New] with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := find(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := find(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix, or err.Error()
// for uncoded errors.
func UserMessage(err error) string {
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}
