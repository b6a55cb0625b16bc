// Package transcript records the traffic of a transport as a stream of CBOR encoded events, and turns a
// recorded session back into a scripted verifier scenario so that it can be replayed without hardware.
package transcript

import (
	"time"
)

// Event is one line that crossed the transport.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Seq numbers the events of a session from 0.
	Seq uint64 `cbor:"1,keyasint"`

	// Timestamp when the line was written or read (nanosecond precision).
	Timestamp time.Time `cbor:"2,keyasint"`

	// SessionID uniquely identifies the recording session (UUID).
	SessionID string `cbor:"3,keyasint"`

	// Direction indicates whether the line was sent or received.
	Direction Direction `cbor:"4,keyasint"`

	// Text is the line without its terminator.
	Text string `cbor:"5,keyasint"`

	// Err is the transport error of a failed write or read.
	Err string `cbor:"6,keyasint,omitempty"`
}

// Failed reports whether the event records a transport failure.
func (e Event) Failed() bool { return e.Err != "" }

// Direction indicates the direction of a line.
type Direction uint8

const (
	// DirectionIn indicates a reply read from the instrument.
	DirectionIn Direction = 0
	// DirectionOut indicates a command written to the instrument.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}
