package property

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-scpikit/codec"
)

// Spec declares a property: its name, the query template, the set template and the value codec.
//
// Query is the literal command text that reads the property, e.g. "VOLT?". Set contains exactly one %s
// placeholder that receives the encoded value, e.g. "VOLT %s"; the rest of Set is sent literally, including any
// other % sign. An empty Query makes the property write-only, an empty Set makes it read-only; at least one must
// be present.
type Spec[T any] struct {
	Name  string
	Query string
	Set   string
	Codec codec.Codec[T]
}

// Validate reports a declaration that cannot be bound.
func (s Spec[T]) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}
	if s.Codec == nil {
		return fmt.Errorf("%w: %s has no codec", ErrInvalidSpec, s.Name)
	}
	if s.Query == "" && s.Set == "" {
		return fmt.Errorf("%w: %s has neither a query nor a set template", ErrInvalidSpec, s.Name)
	}
	if s.Set != "" && strings.Count(s.Set, "%s") != 1 {
		return fmt.Errorf("%w: set template %q of %s needs exactly one %%s", ErrInvalidSpec, s.Set, s.Name)
	}

	return nil
}

// Descriptor is the type-independent view of a bound property, used by Table.
type Descriptor interface {
	Name() string
	Access() Access
	QueryTemplate() string
	SetTemplate() string
	Kind() codec.Kind

	// GetValue is Get with the result boxed in an any.
	GetValue() (any, error)
	// SetValue is Set for a value boxed in an any; a value of the wrong type fails with ErrValueType.
	SetValue(v any) error
}

// Property is a typed property bound to a session.
type Property[T any] struct {
	spec    Spec[T]
	access  Access
	session *Session
}

var _ Descriptor = (*Property[bool])(nil)

// New binds spec to session. The access mode is fixed here from the templates present in spec.
func New[T any](session *Session, spec Spec[T]) (*Property[T], error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: %s has no session", ErrInvalidSpec, spec.Name)
	}

	return &Property[T]{
		spec:    spec,
		access:  accessOf(spec.Query, spec.Set),
		session: session,
	}, nil
}

// Must panics if err is non-nil. It is meant for wrapping New and NewAction in static instrument tables.
func Must[P any](p P, err error) P {
	if err != nil {
		panic(err)
	}

	return p
}

func (p *Property[T]) Name() string          { return p.spec.Name }
func (p *Property[T]) Access() Access        { return p.access }
func (p *Property[T]) QueryTemplate() string { return p.spec.Query }
func (p *Property[T]) SetTemplate() string   { return p.spec.Set }
func (p *Property[T]) Kind() codec.Kind      { return p.spec.Codec.Kind() }

// Get queries the property and decodes the reply.
//
// A reply that fails to decode is reported as an error, but the exchange itself has completed: the reply line
// has been consumed, so the next exchange on the session is unaffected.
func (p *Property[T]) Get() (T, error) {
	var zero T

	if !p.access.CanRead() {
		return zero, newError(p.spec.Name, "get", ErrNotReadable)
	}

	reply, err := p.session.Query(p.spec.Query)
	if err != nil {
		return zero, newError(p.spec.Name, "get", err)
	}

	v, err := p.spec.Codec.Decode(reply)
	if err != nil {
		p.session.decodeFailed(p.spec.Name, reply, err)
		return zero, newError(p.spec.Name, "get", err)
	}

	return v, nil
}

// Set encodes v, substitutes it into the set template and writes the command. No reply is read.
func (p *Property[T]) Set(v T) error {
	if !p.access.CanWrite() {
		return newError(p.spec.Name, "set", ErrNotWritable)
	}

	cmd, err := p.Command(v)
	if err != nil {
		return newError(p.spec.Name, "set", err)
	}

	if err := p.session.SendCmd(cmd); err != nil {
		return newError(p.spec.Name, "set", err)
	}

	return nil
}

// Command returns the command text Set would write for v, without sending it.
func (p *Property[T]) Command(v T) (string, error) {
	if !p.access.CanWrite() {
		return "", ErrNotWritable
	}

	arg, err := p.spec.Codec.Encode(v)
	if err != nil {
		return "", err
	}

	return strings.Replace(p.spec.Set, "%s", arg, 1), nil
}

func (p *Property[T]) GetValue() (any, error) {
	return p.Get()
}

func (p *Property[T]) SetValue(v any) error {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return newError(p.spec.Name, "set", fmt.Errorf("%w: got %T, want %T", ErrValueType, v, zero))
	}

	return p.Set(tv)
}
