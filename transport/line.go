package transport

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arloliu/go-scpikit/internal/pool"
	"github.com/arloliu/go-scpikit/logger"
)

// deadliner is implemented by net.Conn and friends.
type deadliner interface {
	SetReadDeadline(t time.Time) error
}

// LineTransport frames commands and replies as terminator-delimited lines over an io.ReadWriter.
//
// When the underlying stream supports read deadlines (net.Conn), the configured read timeout is applied to every
// ReadLine call. Other streams are read by a background goroutine and ReadLine waits for its next line up to the
// read timeout.
//
// A read timeout leaves the reply stream out of step: the late reply, or the rest of a partial one, would be taken
// as the answer to the next query. After the first ErrReadTimeout every Write and ReadLine therefore fails with
// ErrReadTimeout until the transport is closed.
//
// This type is NOT goroutine-safe.
type LineTransport struct {
	rw     io.ReadWriter
	reader *bufio.Reader
	cfg    *Config
	logger logger.Logger
	closed atomic.Bool
	// timedOut poisons the transport after the first read timeout
	timedOut atomic.Bool

	// background reader, only for streams without read deadlines
	startOnce sync.Once
	lines     chan lineResult
	readErr   error
	done      chan struct{}
	closeOnce sync.Once
}

type lineResult struct {
	line string
	err  error
}

var _ Transport = (*LineTransport)(nil)

// NewLineTransport creates a LineTransport over rw.
func NewLineTransport(rw io.ReadWriter, opts ...Option) (*LineTransport, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newLineTransport(rw, cfg), nil
}

func newLineTransport(rw io.ReadWriter, cfg *Config) *LineTransport {
	return &LineTransport{
		rw:     rw,
		reader: bufio.NewReader(rw),
		cfg:    cfg,
		logger: cfg.logger,
		done:   make(chan struct{}),
	}
}

// Write sends cmd followed by the terminator.
func (t *LineTransport) Write(cmd string) error {
	if t.closed.Load() {
		return ErrClosed
	}
	if t.timedOut.Load() {
		return ErrReadTimeout
	}

	data := []byte(cmd + t.cfg.terminator)
	for written := 0; written < len(data); {
		n, err := t.rw.Write(data[written:])
		written += n

		if err != nil {
			t.logger.Error("failed to write command", "cmd", cmd, "error", err)
			return err
		}
	}

	return nil
}

// ReadLine returns the next reply line with its terminator removed.
func (t *LineTransport) ReadLine() (string, error) {
	if t.closed.Load() {
		return "", ErrClosed
	}
	if t.timedOut.Load() {
		return "", ErrReadTimeout
	}

	line, err := t.readLine()
	if errors.Is(err, ErrReadTimeout) && t.timedOut.CompareAndSwap(false, true) {
		t.logger.Error("read timed out, transport is out of step", "timeout", t.cfg.readTimeout)
	}

	return line, err
}

func (t *LineTransport) readLine() (string, error) {
	d, ok := t.rw.(deadliner)
	switch {
	case t.cfg.readTimeout <= 0:
		return finishLine(t.reader.ReadString('\n'))
	case ok:
		if err := d.SetReadDeadline(time.Now().Add(t.cfg.readTimeout)); err != nil {
			return "", err
		}
		return finishLine(t.reader.ReadString('\n'))
	default:
		return t.readAsync()
	}
}

func (t *LineTransport) readAsync() (string, error) {
	t.startOnce.Do(t.startReader)

	timer := pool.GetTimer(t.cfg.readTimeout)
	defer pool.PutTimer(timer)

	select {
	case res, ok := <-t.lines:
		if !ok {
			return "", t.readErr
		}
		return finishLine(res.line, res.err)
	case <-timer.C:
		return "", ErrReadTimeout
	case <-t.done:
		return "", ErrClosed
	}
}

func (t *LineTransport) startReader() {
	t.lines = make(chan lineResult, 1)

	go func() {
		defer close(t.lines)
		for {
			line, err := t.reader.ReadString('\n')
			if err != nil {
				t.readErr = err
			}

			select {
			case t.lines <- lineResult{line: line, err: err}:
			case <-t.done:
				return
			}

			if err != nil {
				return
			}
		}
	}()
}

func finishLine(line string, err error) (string, error) {
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return "", ErrReadTimeout
		}
		if errors.Is(err, io.EOF) && line != "" {
			// unterminated final line
			return strings.TrimRight(line, "\r"), nil
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Close closes the underlying stream when it is an io.Closer.
func (t *LineTransport) Close() error {
	if !t.closed.CompareAndSwap(false, true) {
		return nil
	}
	t.closeOnce.Do(func() { close(t.done) })
	if c, ok := t.rw.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
