package verifier

import (
	"errors"

	"github.com/arloliu/go-scpikit/internal/queue"
	"github.com/arloliu/go-scpikit/logger"
	"github.com/arloliu/go-scpikit/transport"
)

// Exchange is the scripted transport. It implements transport.Transport.
//
// The write and read scripts have independent cursors: writes only advance the write cursor, reads only the
// read cursor. An Exchange is strictly sequential and not goroutine-safe.
type Exchange struct {
	writes queue.Queue[string]
	reads  queue.Queue[string]

	consumedWrites int
	consumedReads  int

	// failed is the first mismatch; it poisons every later operation.
	failed *MismatchError

	logger logger.Logger
}

var _ transport.Transport = (*Exchange)(nil)

// Option configures an Exchange.
type Option func(*Exchange)

// WithLogger sets the logger mismatches are reported to.
func WithLogger(l logger.Logger) Option {
	return func(e *Exchange) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Exchange expecting writes and serving reads, both in order.
func New(writes, reads []string, opts ...Option) *Exchange {
	e := &Exchange{
		writes: queue.NewSliceQueue(writes...),
		reads:  queue.NewSliceQueue(reads...),
		logger: logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Write consumes the next expected write if it equals cmd.
func (e *Exchange) Write(cmd string) error {
	if e.failed != nil {
		return e.failed
	}

	expected, ok := e.writes.Peek()
	switch {
	case !ok:
		return e.fail(&MismatchError{Kind: UnexpectedWrite, Position: e.consumedWrites, Actual: cmd})
	case expected != cmd:
		return e.fail(&MismatchError{Kind: WriteMismatch, Position: e.consumedWrites, Expected: expected, Actual: cmd})
	}

	_, _ = e.writes.Dequeue()
	e.consumedWrites++

	return nil
}

// ReadLine serves the next canned reply.
func (e *Exchange) ReadLine() (string, error) {
	if e.failed != nil {
		return "", e.failed
	}

	reply, ok := e.reads.Dequeue()
	if !ok {
		return "", e.fail(&MismatchError{Kind: UnexpectedRead, Position: e.consumedReads})
	}
	e.consumedReads++

	return reply, nil
}

// Verify reports the scenario outcome: the first mismatch if one occurred, otherwise any expected writes or
// canned replies that were never consumed.
func (e *Exchange) Verify() error {
	if e.failed != nil {
		return e.failed
	}

	var errs []error
	if !e.writes.IsEmpty() {
		errs = append(errs, &MismatchError{Kind: PendingWrites, Position: e.consumedWrites, Remaining: e.writes.Items()})
	}
	if !e.reads.IsEmpty() {
		errs = append(errs, &MismatchError{Kind: PendingReads, Position: e.consumedReads, Remaining: e.reads.Items()})
	}

	for _, err := range errs {
		e.logger.Error("scripted exchange left unconsumed", "error", err)
	}

	return errors.Join(errs...)
}

// ConsumedWrites returns how many expected writes have occurred.
func (e *Exchange) ConsumedWrites() int { return e.consumedWrites }

// ConsumedReads returns how many canned replies have been served.
func (e *Exchange) ConsumedReads() int { return e.consumedReads }

// Failed returns the first mismatch, or nil.
func (e *Exchange) Failed() error {
	if e.failed == nil {
		return nil
	}

	return e.failed
}

func (e *Exchange) fail(err *MismatchError) error {
	e.failed = err
	e.logger.Error("protocol mismatch", "kind", err.Kind.String(), "position", err.Position,
		"expected", err.Expected, "actual", err.Actual)

	return err
}
