package property

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-scpikit/logger"
	"github.com/arloliu/go-scpikit/transport"
)

// Metrics receives one notification per completed or failed exchange.
type Metrics interface {
	ObserveWrite()
	ObserveQuery()
	ObserveAck()
	ObserveFailure()
}

// Session issues exchanges to one instrument over a transport.
//
// Each method performs one complete exchange. A Session is not goroutine-safe: callers sharing an instrument
// must serialize whole exchanges, including the decoding of replies.
type Session struct {
	tr      transport.Transport
	logger  logger.Logger
	metrics Metrics
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. Exchanges are logged at debug level.
func WithLogger(l logger.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the exchange metrics sink.
func WithMetrics(m Metrics) SessionOption {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewSession creates a session over tr.
func NewSession(tr transport.Transport, opts ...SessionOption) *Session {
	s := &Session{
		tr:      tr,
		logger:  logger.GetLogger(),
		metrics: nopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Transport returns the underlying transport.
func (s *Session) Transport() transport.Transport { return s.tr }

// SendCmd writes cmd; no reply is read.
func (s *Session) SendCmd(cmd string) error {
	if err := s.write(cmd); err != nil {
		return err
	}

	s.logger.Debug("sendcmd", "cmd", cmd)
	s.metrics.ObserveWrite()

	return nil
}

// Query writes cmd and returns the single reply line with surrounding whitespace removed.
func (s *Session) Query(cmd string) (string, error) {
	reply, err := s.exchange(cmd)
	if err != nil {
		return "", err
	}

	s.logger.Debug("query", "cmd", cmd, "reply", reply)
	s.metrics.ObserveQuery()

	return reply, nil
}

// AckWrite writes cmd and consumes exactly one reply line, which is returned as the completion signal.
func (s *Session) AckWrite(cmd string) (string, error) {
	reply, err := s.exchange(cmd)
	if err != nil {
		return "", err
	}

	s.logger.Debug("ack write", "cmd", cmd, "reply", reply)
	s.metrics.ObserveAck()

	return reply, nil
}

func (s *Session) exchange(cmd string) (string, error) {
	if err := s.write(cmd); err != nil {
		return "", err
	}

	reply, err := s.tr.ReadLine()
	if err != nil {
		s.logger.Error("failed to read reply", "cmd", cmd, "error", err)
		s.metrics.ObserveFailure()

		return "", err
	}

	return strings.TrimSpace(reply), nil
}

func (s *Session) write(cmd string) error {
	if cmd == "" || strings.ContainsAny(cmd, "\r\n") {
		s.metrics.ObserveFailure()
		return fmt.Errorf("%w: %q", ErrInvalidCommand, cmd)
	}

	if err := s.tr.Write(cmd); err != nil {
		s.logger.Error("failed to write command", "cmd", cmd, "error", err)
		s.metrics.ObserveFailure()

		return err
	}

	return nil
}

// decodeFailed records a reply that was read successfully but did not decode.
func (s *Session) decodeFailed(name, reply string, err error) {
	s.logger.Warn("failed to decode reply", "property", name, "reply", reply, "error", err)
	s.metrics.ObserveFailure()
}

type nopMetrics struct{}

func (nopMetrics) ObserveWrite()   {}
func (nopMetrics) ObserveQuery()   {}
func (nopMetrics) ObserveAck()     {}
func (nopMetrics) ObserveFailure() {}
