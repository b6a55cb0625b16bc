// Package transport defines the line-oriented channel an instrument is driven through, and provides a
// newline-framed implementation over any io.ReadWriter (TCP sockets, serial ports, pipes).
//
// Connection setup and device addressing belong to the caller; OpenSerial is a convenience for the common
// case of an RS-232 attached instrument.
package transport

import (
	"errors"
)

// Transport is the wire channel consumed by property bindings.
//
// Write sends one command line; the terminator is added by the transport. ReadLine blocks until one reply
// line is available and returns it without its terminator.
//
// A Transport is not safe for concurrent use: one exchange must complete before the next begins.
type Transport interface {
	Write(cmd string) error
	ReadLine() (string, error)
}

var (
	// ErrClosed indicates an operation on a closed transport.
	ErrClosed = errors.New("transport closed")

	// ErrReadTimeout indicates that no complete reply line arrived within the read timeout.
	ErrReadTimeout = errors.New("read timeout")

	// ErrConfigNil indicates that a nil Config was provided.
	ErrConfigNil = errors.New("transport config is nil")
)
