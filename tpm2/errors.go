package tpm2

import (
	"errors"
	"fmt"

	"github.com/google/go-tpm-wire/tpmutil"
)

// Errors produced by the cursor are re-exported here so that callers of
// Marshal and Unmarshal only need to import this package.
var (
	ErrTruncatedInput = tpmutil.ErrTruncatedInput
	ErrTrailingBytes  = tpmutil.ErrTrailingBytes
	ErrSizeMismatch   = tpmutil.ErrSizeMismatch
	ErrValueTooLarge  = tpmutil.ErrValueTooLarge
)

var (
	// ErrUnknownConstant is returned when a wire value or name is not a
	// member of the constant family it was decoded as.
	ErrUnknownConstant = errors.New("unknown constant")
	// ErrUnresolvedUnionVariant is returned when a decoded selector has no
	// payload type registered in the union family.
	ErrUnresolvedUnionVariant = errors.New("unresolved union variant")
	// ErrUnencodableValue is returned when a value cannot be written, for
	// example a union whose contents disagree with its selector.
	ErrUnencodableValue = errors.New("unencodable value")
	// ErrInvalidDefinition indicates a Go type whose gotpm tags cannot be
	// interpreted. It is always a programming error.
	ErrInvalidDefinition = errors.New("invalid structure definition")
)

// UnknownConstantError describes a value or name missing from a family.
type UnknownConstantError struct {
	Family string
	// Value is set when a wire value was looked up.
	Value uint64
	// Name is set when a name was looked up.
	Name string
}

func (e *UnknownConstantError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%v: %q is not a %s name", ErrUnknownConstant, e.Name, e.Family)
	}
	return fmt.Sprintf("%v: 0x%x is not a %s value", ErrUnknownConstant, e.Value, e.Family)
}

// Unwrap returns ErrUnknownConstant.
func (e *UnknownConstantError) Unwrap() error { return ErrUnknownConstant }

// UnresolvedUnionVariantError describes a selector with no registered
// payload type.
type UnresolvedUnionVariantError struct {
	Family   string
	Selector uint64
}

func (e *UnresolvedUnionVariantError) Error() string {
	return fmt.Sprintf("%v: %s has no member for selector 0x%x", ErrUnresolvedUnionVariant, e.Family, e.Selector)
}

// Unwrap returns ErrUnresolvedUnionVariant.
func (e *UnresolvedUnionVariantError) Unwrap() error { return ErrUnresolvedUnionVariant }

// UnencodableValueError describes why a value could not be encoded.
type UnencodableValueError struct {
	Type   string
	Reason string
}

func (e *UnencodableValueError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrUnencodableValue, e.Type, e.Reason)
}

// Unwrap returns ErrUnencodableValue.
func (e *UnencodableValueError) Unwrap() error { return ErrUnencodableValue }

func unencodable(typeName string, format string, args ...interface{}) error {
	return &UnencodableValueError{Type: typeName, Reason: fmt.Sprintf(format, args...)}
}

func invalidDefinition(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}
