package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Error is this library's error type. It adds on top of the go std lib errors package:
// - A Code field to categorize the error.
// - A Stacktrace that pretty prints with wrapped errors.
// - A Conversion to slog.Value to log the error in a structured way.
// - A Conversion to JSON to log the error in a structured way.
type Error struct {
	Code        string
	Message     string
	wrappedErrs []error
	stack       _Stack
}

// Keys for the JSON and slog.Value representations of the error.
// The current values are compatible with DataDog.
var (
	CodeKey    = "kind"
	MessageKey = "message"
	StackKey   = "stack"
)

// Newf creates a new error with the given code and message format/args.
// The error will have a stacktrace attached to it.
// It follows the same rules as fmt.Errorf, where the message is formatted with fmt.Sprintf.
func Newf(code string, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)

	var wrappedErrs []error
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		if w := x.Unwrap(); w != nil {
			wrappedErrs = []error{w}
		}
	case interface{ Unwrap() []error }:
		wrappedErrs = x.Unwrap()
	}

	return &Error{
		Code:        code,
		Message:     err.Error(),
		wrappedErrs: wrappedErrs,
		stack:       currStack(),
	}
}

// NewUnknownf creates a new error with the ErrCodeUnknown code and the given message format/args.
func NewUnknownf(format string, args ...any) *Error {
	return Newf(ErrCodeUnknown, format, args...)
}

func (e *Error) Error() string {
	return fmt.Sprintf("{%s} %s", e.Code, e.Message)
}

// Unwrap returns the errors that have been directly wrapped by err, if any.
func (e *Error) Unwrap() []error {
	return e.wrappedErrs
}

// Stacktrace returns the error stack trace as a string. The output is produced by calling
// WriteStacktrace.
func (e *Error) Stacktrace() string {
	buf := strings.Builder{}
	_ = e.WriteStacktrace(&buf)
	return buf.String()
}

// WriteStacktrace writes the error stack trace to the writer. It also includes the stack trace
// of any wrapped errors.
func (e *Error) WriteStacktrace(w io.Writer) error {
	err := e.writeSelfStacktrace(w)
	if err != nil {
		return err
	}
	return writeWrappedStacktrace(e, w, "[")
}

// LogValue returns a slog.Value that can be used to log the error.
// The format is compatible with DataDog.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(CodeKey, e.Code),
		slog.String(MessageKey, e.Message),
		slog.String(StackKey, e.Stacktrace()),
	)
}

// MarshalJSON implements the json.Marshaler interface.
// The format is compatible with DataDog.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		CodeKey:    e.Code,
		MessageKey: e.Message,
		StackKey:   e.Stacktrace(),
	})
}

// IsCode returns true if the error, or any wrapped error, is of type Error and has the given code.
func IsCode(err error, code string) bool {
	var libErr *Error
	if As(err, &libErr) && libErr.Code == code {
		return true
	}

	// As will only return the first match, so we need to manually walk the error chain.
	for _, wrappedErr := range UnwrapMulti(err) {
		if IsCode(wrappedErr, code) {
			return true
		}
	}
	return false
}

// AsCode returns true if the error, or any wrapped error, is of type Error and has the given code.
// The found error is assigned to target.
func AsCode(err error, target **Error, code string) bool {
	if As(err, target) && (*target).Code == code {
		return true
	}

	for _, wrappedErr := range UnwrapMulti(err) {
		if AsCode(wrappedErr, target, code) {
			return true
		}
	}
	return false
}

// UnwrapMulti returns all the errors that have been directly wrapped by err, if any.
// This is similar to Unwrap, but it also unwraps errors that implement:
//
//	interface { Unwrap() []error }
func UnwrapMulti(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		if w := e.Unwrap(); w != nil {
			return []error{w}
		}
	case interface{ Unwrap() []error }:
		return e.Unwrap()
	}
	return nil
}

//#region copy from errors.go

// ErrUnsupported is a copy of the errors.ErrUnsupported variable from the go std core.
var ErrUnsupported = errors.ErrUnsupported

// Join is a copy of the errors.Join function from the go std core.
var Join = errors.Join

// Unwrap is a copy of the errors.Unwrap function from the go std core.
var Unwrap = errors.Unwrap

// As is a copy of the errors.As function from the go std core.
var As = errors.As

// Is is a copy of the errors.Is function from the go std core.
var Is = errors.Is

//#endregion
