package registry

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-scpikit/codec"
)

// Pair associates a symbolic value with its device token.
type Pair[T comparable] struct {
	Value T
	Token string
}

// EnumMapping is an immutable bidirectional mapping between symbolic values and device tokens.
// Both sides are unique; tokens compare case-insensitively.
type EnumMapping[T comparable] struct {
	pairs   []Pair[T]
	byValue map[T]string
	byToken map[string]T
	policy  policy[T]
}

var _ codec.Codec[int] = (*EnumMapping[int])(nil)

// NewEnumMapping builds a mapping from pairs. It fails when a value or a token (ignoring case) is repeated,
// or when a token is empty.
func NewEnumMapping[T comparable](pairs []Pair[T], opts ...Option[T]) (*EnumMapping[T], error) {
	m := &EnumMapping[T]{
		pairs:   make([]Pair[T], 0, len(pairs)),
		byValue: make(map[T]string, len(pairs)),
		byToken: make(map[string]T, len(pairs)),
		policy:  newPolicy(opts),
	}

	for _, p := range pairs {
		if p.Token == "" {
			return nil, fmt.Errorf("%w: empty token for %v", ErrInvalidTable, p.Value)
		}
		if _, ok := m.byValue[p.Value]; ok {
			return nil, fmt.Errorf("%w: duplicate value %v", ErrInvalidTable, p.Value)
		}
		key := strings.ToUpper(p.Token)
		if _, ok := m.byToken[key]; ok {
			return nil, fmt.Errorf("%w: duplicate token %q", ErrInvalidTable, p.Token)
		}

		m.byValue[p.Value] = p.Token
		m.byToken[key] = p.Value
		m.pairs = append(m.pairs, p)
	}

	return m, nil
}

// MustEnumMapping is like NewEnumMapping but panics on error. It is meant for package-level tables.
func MustEnumMapping[T comparable](pairs []Pair[T], opts ...Option[T]) *EnumMapping[T] {
	m, err := NewEnumMapping(pairs, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Token returns the device token of v.
func (m *EnumMapping[T]) Token(v T) (string, error) {
	token, ok := m.byValue[v]
	if !ok {
		return "", &UnknownValueError{Value: v}
	}

	return token, nil
}

// Value returns the symbolic value of token, compared case-insensitively.
func (m *EnumMapping[T]) Value(token string) (T, error) {
	if v, ok := m.byToken[strings.ToUpper(token)]; ok {
		return v, nil
	}
	if m.policy.hasFallback {
		return m.policy.fallback, nil
	}

	var zero T
	return zero, &UnknownTokenError{Token: token}
}

// Pairs returns the registered pairs in registration order.
func (m *EnumMapping[T]) Pairs() []Pair[T] {
	pairs := make([]Pair[T], len(m.pairs))
	copy(pairs, m.pairs)

	return pairs
}

func (m *EnumMapping[T]) Kind() codec.Kind { return codec.KindEnum }

func (m *EnumMapping[T]) Encode(v T) (string, error) { return m.Token(v) }

func (m *EnumMapping[T]) Decode(text string) (T, error) { return m.Value(text) }
