package property

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReadable indicates a Get on a property without a query template.
	ErrNotReadable = errors.New("property is not readable")

	// ErrNotWritable indicates a Set on a property without a set template.
	ErrNotWritable = errors.New("property is not writable")

	// ErrInvalidSpec indicates a property or action declaration that violates its invariants.
	ErrInvalidSpec = errors.New("invalid property spec")

	// ErrUnknownProperty indicates a lookup of a name absent from a Table.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrInvalidCommand indicates command text that is empty or spans several lines.
	ErrInvalidCommand = errors.New("command must be a single non-empty line")

	// ErrValueType indicates a dynamically typed value that does not match the property's type.
	ErrValueType = errors.New("value type mismatch")
)

// Error records the property and operation a failure occurred in. It unwraps to the underlying cause,
// so errors.Is and errors.As see through it.
type Error struct {
	Property string
	Op       string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Property, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(name, op string, err error) *Error {
	return &Error{Property: name, Op: op, Err: err}
}
