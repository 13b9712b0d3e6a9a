// Package errors provides structured error handling for the sol widget
// library, and the fail-fast assertion primitive its interaction models
// use for contract violations.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a violated API contract: the caller did
	// something the documentation forbids, such as attaching the same
	// engagement source twice.
	KindContract
	// KindValue indicates a bound store holding a value outside its
	// two-value domain.
	KindValue
	// KindDisposed indicates an operation on a disposed model.
	KindDisposed
	// KindTimer indicates a scheduled-callback failure.
	KindTimer
	// KindConfig indicates a configuration parsing error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindValue:
		return "value"
	case KindDisposed:
		return "disposed"
	case KindTimer:
		return "timer"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SolError represents a structured error in the sol library.
type SolError struct {
	// Op is the operation that failed (e.g., "button.Model.AttachSource").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SolError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SolError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "timing.Step").
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

// ErrorHandler receives errors reported by the sol library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SolError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
