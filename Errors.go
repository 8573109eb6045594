package Go_DS

import (
	"errors"
	"fmt"
)

// EmptyCollectionError is returned when an element is requested from an empty collection.
type EmptyCollectionError struct {
}

func (e *EmptyCollectionError) Error() string {
	return "collection is empty: no element to access."
}

// IndexOutOfBoundsError is returned when a position falls outside [0, Bound).
type IndexOutOfBoundsError struct {
	Index, Bound int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("string index out of range: %d. Expected a non-negative integer less than %d.", e.Index, e.Bound)
}

// IllegalArgumentError is returned for well-formed arguments that make no sense
// for the operation, e.g. an inverted range.
type IllegalArgumentError struct {
	msg string
}

func NewIllegalArgumentError(format string, args ...any) *IllegalArgumentError {
	return &IllegalArgumentError{fmt.Sprintf(format, args...)}
}

func (e *IllegalArgumentError) Error() string {
	return e.msg
}

// ImplementationError signals a broken internal invariant of a container. It is
// never caused by the caller; seeing one means the container itself has a bug.
type ImplementationError struct {
	msg string
}

func NewImplementationError(msg string) *ImplementationError {
	return &ImplementationError{msg}
}

func (e *ImplementationError) Error() string {
	if e.msg == "" {
		return "implementation error: internal invariant violated."
	}
	return "implementation error: " + e.msg
}

// IsEmptyCollectionError reports whether err, or any error it wraps, is an *EmptyCollectionError.
func IsEmptyCollectionError(err error) bool {
	var e *EmptyCollectionError
	return errors.As(err, &e)
}

// IsImplementationError reports whether err, or any error it wraps, is an *ImplementationError.
func IsImplementationError(err error) bool {
	var e *ImplementationError
	return errors.As(err, &e)
}

func IsIndexOutOfBoundsError(err error) bool {
	var e *IndexOutOfBoundsError
	return errors.As(err, &e)
}

func IsIllegalArgumentError(err error) bool {
	var e *IllegalArgumentError
	return errors.As(err, &e)
}
