// Package errqueue decodes an instrument's error queue report, a comma-separated list of numeric error codes,
// into symbolic error identifiers through an immutable code table.
//
// The order of the decoded identifiers is the order reported by the device; it is never re-sorted.
package errqueue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arloliu/go-scpikit/codec"
)

// ErrUnmappedCode indicates an error code that is absent from the code table.
var ErrUnmappedCode = errors.New("unmapped error code")

// UnmappedCodeError records an unmapped code and its position in the report.
type UnmappedCodeError struct {
	Code     int
	Position int
}

func (e *UnmappedCodeError) Error() string {
	return fmt.Sprintf("unmapped error code %d at position %d", e.Code, e.Position)
}

func (e *UnmappedCodeError) Is(target error) bool {
	return target == ErrUnmappedCode
}

// Option configures a CodeTable.
type Option[T any] func(*CodeTable[T])

// WithFallback maps every unknown code to v instead of failing. The default is a hard failure.
func WithFallback[T any](v T) Option[T] {
	return func(t *CodeTable[T]) {
		t.fallback = v
		t.hasFallback = true
	}
}

// CodeTable is an immutable mapping from numeric error codes to symbolic identifiers.
// A table is built once and shared by reference between decoders.
type CodeTable[T any] struct {
	codes       map[int]T
	fallback    T
	hasFallback bool
}

// NewCodeTable copies codes into a new table.
func NewCodeTable[T any](codes map[int]T, opts ...Option[T]) *CodeTable[T] {
	t := &CodeTable[T]{codes: make(map[int]T, len(codes))}
	for code, v := range codes {
		t.codes[code] = v
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Lookup returns the identifier of code.
func (t *CodeTable[T]) Lookup(code int) (T, bool) {
	v, ok := t.codes[code]
	if !ok && t.hasFallback {
		return t.fallback, true
	}

	return v, ok
}

// Len returns the number of mapped codes.
func (t *CodeTable[T]) Len() int { return len(t.codes) }

// Decoder decodes error queue reports against a CodeTable.
type Decoder[T any] struct {
	table *CodeTable[T]
}

// NewDecoder returns a decoder bound to table.
func NewDecoder[T any](table *CodeTable[T]) *Decoder[T] {
	return &Decoder[T]{table: table}
}

// Decode splits text on commas and maps every field through the code table.
//
// A fully empty report decodes to an empty slice. An empty or non-numeric field fails with a
// *codec.MalformedReplyError; an unknown code fails with an *UnmappedCodeError unless the table has a fallback.
func (d *Decoder[T]) Decode(text string) ([]T, error) {
	if strings.TrimSpace(text) == "" {
		return []T{}, nil
	}

	fields := strings.Split(text, ",")
	result := make([]T, 0, len(fields))
	for i, field := range fields {
		code, err := codec.ParseInteger(field)
		if err != nil || strings.TrimSpace(field) == "" {
			return nil, codec.NewMalformedReplyError(text, codec.KindErrorQueue,
				fmt.Errorf("field %d %q is not an integer", i, field))
		}

		v, ok := d.table.Lookup(int(code))
		if !ok {
			return nil, &UnmappedCodeError{Code: int(code), Position: i}
		}
		result = append(result, v)
	}

	return result, nil
}

// Decode is a shortcut for NewDecoder(table).Decode(text).
func Decode[T any](text string, table *CodeTable[T]) ([]T, error) {
	return NewDecoder(table).Decode(text)
}
