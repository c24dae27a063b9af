// Package errors provides structured error handling for the chips module.
//
// Index errors returned by the data source are surfaced directly to callers.
// Errors that cannot be returned (for example failures while replaying a
// scripted session in the CLI) are sent to a pluggable [Handler].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrOutOfRange is matched by every [IndexError] via errors.Is.
var ErrOutOfRange = stderrors.New("index out of range")

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindRange indicates a position that does not address an existing chip.
	KindRange
	// KindConfig indicates a malformed or invalid chip pool file.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ChipError represents a structured error raised by a chips operation.
type ChipError struct {
	// Op is the operation that failed (e.g., "chip.ListDataSource.TakeChipAt").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ChipError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ChipError) Unwrap() error {
	return e.Err
}

// IndexError returns the position error wrapped by e, or nil.
func (e *ChipError) IndexError() *IndexError {
	var ie *IndexError
	if As(e.Err, &ie) {
		return ie
	}
	return nil
}

// IndexError reports a position outside of a chip sequence.
type IndexError struct {
	// Op is the operation that received the position.
	Op string
	// Index is the requested position.
	Index int
	// Len is the length of the addressed sequence at the time of the call.
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CheckIndex returns an *IndexError when index does not address one of n
// elements, and nil otherwise.
func CheckIndex(op string, index, n int) error {
	if index < 0 || index >= n {
		return &IndexError{Op: op, Index: index, Len: n}
	}
	return nil
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported through [Report], [ReportPanic], and
// [Guard].
type Handler interface {
	// HandleError is called when an error is reported. For KindRange errors,
	// err.IndexError() carries the rejected position and sequence length.
	HandleError(err *ChipError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
