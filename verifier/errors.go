package verifier

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProtocolMismatch indicates that traffic deviated from the scripted exchange.
var ErrProtocolMismatch = errors.New("protocol mismatch")

// MismatchKind classifies a protocol mismatch.
type MismatchKind uint8

const (
	// WriteMismatch is a write that differs from the next expected write.
	WriteMismatch MismatchKind = iota + 1
	// UnexpectedWrite is a write after every expected write was consumed.
	UnexpectedWrite
	// UnexpectedRead is a read after every canned reply was served.
	UnexpectedRead
	// PendingWrites reports expected writes that never occurred.
	PendingWrites
	// PendingReads reports canned replies that were never read.
	PendingReads
)

func (k MismatchKind) String() string {
	switch k {
	case WriteMismatch:
		return "write mismatch"
	case UnexpectedWrite:
		return "unexpected write"
	case UnexpectedRead:
		return "unexpected read, no canned reply available"
	case PendingWrites:
		return "expected write never occurred"
	case PendingReads:
		return "expected read never occurred"
	default:
		return "unknown mismatch"
	}
}

// MismatchError describes a protocol mismatch.
type MismatchError struct {
	Kind MismatchKind
	// Position is the cursor position (number of lines consumed before the failure) of the
	// write or read script concerned.
	Position int
	// Expected is the expected write for WriteMismatch.
	Expected string
	// Actual is the offending write for WriteMismatch and UnexpectedWrite.
	Actual string
	// Remaining lists the unconsumed lines for PendingWrites and PendingReads.
	Remaining []string
}

func (e *MismatchError) Error() string {
	switch e.Kind {
	case WriteMismatch:
		return fmt.Sprintf("%v: %s at write #%d: expected %q, got %q", ErrProtocolMismatch, e.Kind, e.Position, e.Expected, e.Actual)
	case UnexpectedWrite:
		return fmt.Sprintf("%v: %s #%d: %q", ErrProtocolMismatch, e.Kind, e.Position, e.Actual)
	case UnexpectedRead:
		return fmt.Sprintf("%v: %s at read #%d", ErrProtocolMismatch, e.Kind, e.Position)
	default:
		quoted := make([]string, len(e.Remaining))
		for i, line := range e.Remaining {
			quoted[i] = fmt.Sprintf("%q", line)
		}

		return fmt.Sprintf("%v: %s: %d left from #%d: [%s]", ErrProtocolMismatch, e.Kind, len(e.Remaining), e.Position, strings.Join(quoted, ", "))
	}
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrProtocolMismatch
}
