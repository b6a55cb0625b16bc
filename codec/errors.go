package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedReply indicates that reply text did not parse as the expected kind.
	ErrMalformedReply = errors.New("malformed reply")

	// ErrOutOfDomain indicates that a value cannot be encoded by a codec.
	ErrOutOfDomain = errors.New("value outside codec domain")
)

// MalformedReplyError records a reply that failed to decode.
type MalformedReplyError struct {
	// Text is the offending reply text.
	Text string
	// Kind is the kind the reply was expected to be.
	Kind Kind
	// Err is the underlying parse error, if any.
	Err error
}

// NewMalformedReplyError creates a MalformedReplyError for text expected to be of kind k.
func NewMalformedReplyError(text string, k Kind, cause error) *MalformedReplyError {
	return &MalformedReplyError{Text: text, Kind: k, Err: cause}
}

func (e *MalformedReplyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed reply %q: expected %s: %v", e.Text, e.Kind, e.Err)
	}

	return fmt.Sprintf("malformed reply %q: expected %s", e.Text, e.Kind)
}

func (e *MalformedReplyError) Is(target error) bool {
	return target == ErrMalformedReply
}

func (e *MalformedReplyError) Unwrap() error {
	return e.Err
}

// outOfDomain wraps ErrOutOfDomain with a description of the rejected value.
func outOfDomain(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOutOfDomain, fmt.Sprintf(format, args...))
}
