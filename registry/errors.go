package registry

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/go-scpikit/codec"
)

var (
	// ErrUnknownToken indicates that a device token is not registered in an enum mapping.
	ErrUnknownToken = errors.New("unknown token")

	// ErrUnknownValue indicates that a symbolic value is not registered and cannot be encoded.
	ErrUnknownValue = errors.New("unknown value")

	// ErrOutOfRange indicates that a numeric value lies below every classification threshold.
	ErrOutOfRange = errors.New("value out of classification range")

	// ErrInvalidTable indicates a mapping or table that violates its construction invariants.
	ErrInvalidTable = errors.New("invalid table")
)

// UnknownTokenError records a token that failed to decode.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q", e.Token)
}

func (e *UnknownTokenError) Is(target error) bool {
	return target == ErrUnknownToken
}

// UnknownValueError records a symbolic value without a registered token or threshold.
// It also matches codec.ErrOutOfDomain, as it is the encode-time failure of a registry codec.
type UnknownValueError struct {
	Value any
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown value %v", e.Value)
}

func (e *UnknownValueError) Is(target error) bool {
	return target == ErrUnknownValue || target == codec.ErrOutOfDomain
}

// OutOfRangeError records a numeric value below the lowest classification threshold, or NaN.
type OutOfRangeError struct {
	Value float64
	Lower float64
}

func (e *OutOfRangeError) Error() string {
	if math.IsNaN(e.Value) {
		return fmt.Sprintf("value NaN is not classifiable, lowest threshold %g", e.Lower)
	}

	return fmt.Sprintf("value %g is below the lowest threshold %g", e.Value, e.Lower)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
