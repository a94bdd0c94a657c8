package ratchetstore

import (
	"errors"
	"fmt"
)

// Code is a machine-readable classification of a store or crypto failure.
// Absence ("no record for this key") is not an error and has no code: it is
// reported as a nil record or a false boolean by the operation itself. The
// exception is the pre-key stores, where a missing key id is a protocol
// error and loads fail with CodeInvalidKeyID.
type Code string

const (
	// CodeInvalidKeyID indicates a pre-key or signed pre-key load for an
	// id that is not in the store.
	CodeInvalidKeyID Code = "INVALID_KEY_ID"
	// CodeInvalidArgument indicates a caller error (bad IV length,
	// unsupported cipher/key-size combination) rejected before any
	// primitive was invoked.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNoMemory indicates resource exhaustion in a backing store.
	// Kept for contract compatibility; in Go an allocation failure aborts
	// the process, so in-process stores never return it.
	CodeNoMemory Code = "NO_MEMORY"
	// CodeInternal indicates an underlying primitive or backend failure.
	// Callers should abort the protocol operation in progress rather than
	// retry.
	CodeInternal Code = "INTERNAL"
)

// Error is a coded error. Op names the failing operation in
// "package: operation" form.
type Error struct {
	Code Code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a coded error. err may be nil.
func E(code Code, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// Errorf builds a coded error from a format string.
func Errorf(code Code, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Err: fmt.Errorf(format, args...)}
}

// CodeOf extracts the Code from err, unwrapping as needed. Returns
// CodeInternal for non-nil errors that carry no code, and "" for nil.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
