// Package errors provides error handling for tlgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for the person running the generator
//   - Marker-based classification with errors.Is
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := loadSchema(); err != nil {
//	    return errors.Wrap(err, "failed to load schema")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "rename one of the definitions")
//
//	// Classify
//	if errors.Is(err, errors.ErrIdentifierCollision) {
//	    // report both schema names
//	}
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
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Classification
var (
	Mark = crdb.Mark
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors shared across tlgen.
// Use these with errors.Is(); attach them to concrete errors with errors.Mark().
var (
	// ErrSchemaInconsistency indicates a definition references a type that has
	// no constructors and is not special-cased
	ErrSchemaInconsistency = New("schema inconsistency")

	// ErrIdentifierCollision indicates two schema names resolved to the same
	// target identifier even after disambiguation
	ErrIdentifierCollision = New("identifier collision")

	// ErrInvalidSchema indicates serialized definitions could not be decoded
	ErrInvalidSchema = New("invalid schema")

	// ErrUnsupportedLanguage indicates no backend exists for the requested language
	ErrUnsupportedLanguage = New("unsupported language")

	// ErrOutOfDate indicates generated files differ from a fresh generation
	ErrOutOfDate = New("generated code is out of date")

	// ErrClosed indicates an operation on a closed client or dispatcher
	ErrClosed = New("closed")
)

// IsSchemaInconsistency checks if an error is or wraps ErrSchemaInconsistency
func IsSchemaInconsistency(err error) bool {
	return err != nil && Is(err, ErrSchemaInconsistency)
}

// IsIdentifierCollision checks if an error is or wraps ErrIdentifierCollision
func IsIdentifierCollision(err error) bool {
	return err != nil && Is(err, ErrIdentifierCollision)
}

// IsInvalidSchema checks if an error is or wraps ErrInvalidSchema
func IsInvalidSchema(err error) bool {
	return err != nil && Is(err, ErrInvalidSchema)
}

// NewInvalidSchemaError creates an invalid-schema error with a formatted message
func NewInvalidSchemaError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidSchema)
}

// WrapInvalidSchema wraps a decoding error as an invalid-schema error with context
func WrapInvalidSchema(err error, context string) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, context), ErrInvalidSchema)
}
