package property

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-scpikit/codec"
)

// ActionSpec declares an acknowledged write: a command that performs an action and answers with one line
// that only signals completion.
//
// With a nil Codec the Template is sent verbatim; otherwise it contains exactly one %s placeholder that receives
// the encoded argument and the rest is sent literally. Ack, when set, validates the completion reply.
type ActionSpec[T any] struct {
	Name     string
	Template string
	Codec    codec.Codec[T]
	Ack      func(reply string) error
}

// NoArg is the argument type of parameterless actions.
type NoArg = struct{}

// Action is an acknowledged write bound to a session. Every invocation sends one line and consumes exactly one
// reply line.
type Action[T any] struct {
	spec    ActionSpec[T]
	session *Session
}

// NewAction binds spec to session.
func NewAction[T any](session *Session, spec ActionSpec[T]) (*Action[T], error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: empty action name", ErrInvalidSpec)
	}
	if spec.Template == "" {
		return nil, fmt.Errorf("%w: action %s has no template", ErrInvalidSpec, spec.Name)
	}
	verbs := strings.Count(spec.Template, "%s")
	if (spec.Codec == nil && verbs != 0) || (spec.Codec != nil && verbs != 1) {
		return nil, fmt.Errorf("%w: template %q of action %s does not match its argument", ErrInvalidSpec, spec.Template, spec.Name)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: action %s has no session", ErrInvalidSpec, spec.Name)
	}

	return &Action[T]{spec: spec, session: session}, nil
}

// Name returns the action name.
func (a *Action[T]) Name() string { return a.spec.Name }

// Do sends the action with argument v and returns the completion reply.
// The argument is ignored by parameterless actions.
func (a *Action[T]) Do(v T) (string, error) {
	cmd := a.spec.Template
	if a.spec.Codec != nil {
		arg, err := a.spec.Codec.Encode(v)
		if err != nil {
			return "", newError(a.spec.Name, "do", err)
		}
		cmd = strings.Replace(a.spec.Template, "%s", arg, 1)
	}

	reply, err := a.session.AckWrite(cmd)
	if err != nil {
		return "", newError(a.spec.Name, "do", err)
	}

	if a.spec.Ack != nil {
		if err := a.spec.Ack(reply); err != nil {
			return reply, newError(a.spec.Name, "do", err)
		}
	}

	return reply, nil
}

// Fire runs a parameterless action.
func (a *Action[T]) Fire() (string, error) {
	var zero T
	return a.Do(zero)
}

// ExpectReply returns an Ack validator accepting exactly want.
func ExpectReply(want string) func(string) error {
	return func(reply string) error {
		if reply != want {
			return fmt.Errorf("unexpected completion reply %q, want %q", reply, want)
		}

		return nil
	}
}
