package transcript

import (
	"io"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/arloliu/go-scpikit/logger"
	"github.com/arloliu/go-scpikit/transport"
)

// Recorder is a transport.Transport that forwards to another transport and records every line.
//
// Events are kept in memory and, when an output is set, streamed to it as they happen. Recording never
// alters the outcome of a write or read: an output failure is logged and recording to the output stops.
type Recorder struct {
	tr        transport.Transport
	sessionID string
	now       func() time.Time
	logger    logger.Logger

	mu      sync.Mutex
	seq     uint64
	events  []Event
	encoder *cbor.Encoder
}

var _ transport.Transport = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*Recorder)

// WithOutput streams every event to w as CBOR.
func WithOutput(w io.Writer) Option {
	return func(r *Recorder) {
		if w != nil {
			r.encoder = encMode.NewEncoder(w)
		}
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(r *Recorder) {
		if id != "" {
			r.sessionID = id
		}
	}
}

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger output failures are reported to.
func WithLogger(l logger.Logger) Option {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRecorder wraps tr.
func NewRecorder(tr transport.Transport, opts ...Option) *Recorder {
	r := &Recorder{
		tr:        tr,
		sessionID: uuid.NewString(),
		now:       time.Now,
		logger:    logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("session", r.sessionID)

	return r
}

// SessionID returns the id stamped on every event.
func (r *Recorder) SessionID() string { return r.sessionID }

func (r *Recorder) Write(cmd string) error {
	err := r.tr.Write(cmd)
	r.record(DirectionOut, cmd, err)

	return err
}

func (r *Recorder) ReadLine() (string, error) {
	line, err := r.tr.ReadLine()
	r.record(DirectionIn, line, err)

	return line, err
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]Event, len(r.events))
	copy(events, r.events)

	return events
}

func (r *Recorder) record(dir Direction, text string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event := Event{
		Seq:       r.seq,
		Timestamp: r.now(),
		SessionID: r.sessionID,
		Direction: dir,
		Text:      text,
	}
	if err != nil {
		event.Err = err.Error()
	}
	r.seq++
	r.events = append(r.events, event)

	if r.encoder == nil {
		return
	}
	if encErr := r.encoder.Encode(event); encErr != nil {
		r.logger.Error("failed to write transcript event, recording to output stopped", "seq", event.Seq, "error", encErr)
		r.encoder = nil
	}
}
