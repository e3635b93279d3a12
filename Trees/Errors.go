package Trees

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCorrupt         = errors.New("corrupt tree")
)

// IndexOutOfRangeError is returned when an index isn't in [0, Size).
type IndexOutOfRangeError struct {
	Index, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// InvalidArgumentError is the panic value when a nil element is passed to Op.
// Storing nil is a contract violation, not a no-op.
type InvalidArgumentError struct {
	Op string
}

func (e *InvalidArgumentError) Error() string {
	return e.Op + ": nil element"
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// UnsupportedOperationError is returned by the list operations that would place
// an element somewhere other than its sorted position.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return e.Op + " is not supported by a sorted list, use Insert"
}

func (e *UnsupportedOperationError) Unwrap() error {
	return errors.ErrUnsupported
}

// CorruptError means a structural invariant is broken. It indicates a bug in
// the tree, not something a caller can recover from.
type CorruptError struct {
	Reason string
}

func (e *CorruptError) Error() string {
	return "corrupt tree: " + e.Reason
}

func (e *CorruptError) Unwrap() error {
	return ErrCorrupt
}
