// Package errors provides error handling for sfcgen.
//
// This package re-exports github.com/cockroachdb/errors and adds the
// sentinel errors the generator and the export path report:
//
//	// Unknown element kind or missing component
//	if errors.IsLookupError(err) { ... }
//
//	// Destination prompt failed
//	if errors.IsDialogError(err) { ... }
//
//	// Directory creation or file write failed
//	if errors.IsFilesystemError(err) { ... }
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Assertions
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors. Check with errors.Is(); wrap with errors.Wrap() to add
// context while preserving the kind.
var (
	// ErrNotFound indicates the requested component does not exist
	ErrNotFound = New("not found")

	// ErrLookup indicates a name could not be resolved: an element kind
	// missing from the catalog, or an active component missing from the registry
	ErrLookup = New("lookup failed")

	// ErrInvalidRequest indicates malformed input (bad registry file, bad config)
	ErrInvalidRequest = New("invalid request")

	// ErrDialog indicates the destination prompt failed
	ErrDialog = New("dialog failed")

	// ErrFilesystem indicates a directory or file operation failed
	ErrFilesystem = New("filesystem operation failed")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsLookupError checks if an error is or wraps ErrLookup
func IsLookupError(err error) bool {
	return err != nil && Is(err, ErrLookup)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsDialogError checks if an error is or wraps ErrDialog
func IsDialogError(err error) bool {
	return err != nil && Is(err, ErrDialog)
}

// IsFilesystemError checks if an error is or wraps ErrFilesystem
func IsFilesystemError(err error) bool {
	return err != nil && Is(err, ErrFilesystem)
}

// NewNotFoundError creates a not-found error with a formatted message.
// The result also counts as a lookup error.
func NewNotFoundError(format string, args ...interface{}) error {
	return Mark(Wrap(ErrNotFound, Newf(format, args...).Error()), ErrLookup)
}

// NewLookupError creates a lookup error with a formatted message
func NewLookupError(format string, args ...interface{}) error {
	return Wrap(ErrLookup, Newf(format, args...).Error())
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}

// WrapDialog marks err as a dialog failure with context
func WrapDialog(err error, context string) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, context), ErrDialog)
}

// WrapFilesystem marks err as a filesystem failure with context
func WrapFilesystem(err error, context string) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, context), ErrFilesystem)
}
