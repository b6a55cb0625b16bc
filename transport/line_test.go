package transport

import (
	"bufio"
	"bytes"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestTransport creates a LineTransport backed by the local end of net.Pipe().
// Returns the transport and the remote end standing in for the instrument.
func newTestTransport(t *testing.T, opts ...Option) (*LineTransport, net.Conn) {
	t.Helper()

	local, remote := net.Pipe()
	t.Cleanup(func() {
		_ = local.Close()
		_ = remote.Close()
	})

	tr, err := NewLineTransport(local, opts...)
	require.NoError(t, err)

	return tr, remote
}

func TestLineTransport_Query(t *testing.T) {
	require := require.New(t)
	tr, remote := newTestTransport(t)

	go func() {
		r := bufio.NewReader(remote)
		cmd, _ := r.ReadString('\n')
		if cmd == "VOLT?\n" {
			_, _ = remote.Write([]byte("10.0\n"))
		}
	}()

	require.NoError(tr.Write("VOLT?"))
	reply, err := tr.ReadLine()
	require.NoError(err)
	require.Equal("10.0", reply)
}

func TestLineTransport_CRLF(t *testing.T) {
	require := require.New(t)
	tr, remote := newTestTransport(t, WithTerminator("\r\n"))

	received := make(chan string, 1)
	go func() {
		buf := make([]byte, 64)
		n, _ := io.ReadAtLeast(remote, buf, len("OUTP 1\r\n"))
		received <- string(buf[:n])
		_, _ = remote.Write([]byte("\r\n"))
	}()

	require.NoError(tr.Write("OUTP 1"))
	require.Equal("OUTP 1\r\n", <-received)

	reply, err := tr.ReadLine()
	require.NoError(err)
	require.Empty(reply)
}

func TestLineTransport_ReadTimeout(t *testing.T) {
	tr, _ := newTestTransport(t, WithReadTimeout(20*time.Millisecond))

	_, err := tr.ReadLine()
	require.ErrorIs(t, err, ErrReadTimeout)
}

func TestLineTransport_StreamWithoutDeadline(t *testing.T) {
	require := require.New(t)

	pr, pw := io.Pipe()
	rw := &struct {
		io.Reader
		io.Writer
	}{Reader: pr, Writer: io.Discard}

	tr, err := NewLineTransport(rw, WithReadTimeout(time.Second))
	require.NoError(err)

	go func() {
		_, _ = pw.Write([]byte("1.000000e+01\r\n0\n"))
	}()

	reply, err := tr.ReadLine()
	require.NoError(err)
	require.Equal("1.000000e+01", reply)

	reply, err = tr.ReadLine()
	require.NoError(err)
	require.Equal("0", reply)

	require.NoError(pw.CloseWithError(io.ErrUnexpectedEOF))
	_, err = tr.ReadLine()
	require.ErrorIs(err, io.ErrUnexpectedEOF)
	_, err = tr.ReadLine()
	require.ErrorIs(err, io.ErrUnexpectedEOF)

	require.NoError(tr.Close())
	_, err = tr.ReadLine()
	require.ErrorIs(err, ErrClosed)
}

func TestLineTransport_TimeoutPoisonsDeadlineStream(t *testing.T) {
	require := require.New(t)
	tr, remote := newTestTransport(t, WithReadTimeout(50*time.Millisecond))

	sent := make(chan struct{})
	go func() {
		_, _ = remote.Write([]byte("10."))
		close(sent)
	}()

	_, err := tr.ReadLine()
	require.ErrorIs(err, ErrReadTimeout)
	<-sent

	// the rest of the partial reply must not be served as a complete line
	go func() {
		_, _ = remote.Write([]byte("5\n"))
	}()
	_, err = tr.ReadLine()
	require.ErrorIs(err, ErrReadTimeout)
	require.ErrorIs(tr.Write("VOLT?"), ErrReadTimeout)

	require.NoError(tr.Close())
	require.ErrorIs(tr.Write("VOLT?"), ErrClosed)
}

func TestLineTransport_TimeoutPoisonsBackgroundReader(t *testing.T) {
	require := require.New(t)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	rw := &struct {
		io.Reader
		io.Writer
	}{Reader: pr, Writer: io.Discard}

	tr, err := NewLineTransport(rw, WithReadTimeout(30*time.Millisecond))
	require.NoError(err)

	require.NoError(tr.Write("MEAS:VOLT?"))
	_, err = tr.ReadLine()
	require.ErrorIs(err, ErrReadTimeout)

	go func() {
		_, _ = pw.Write([]byte("REPLY-A\nREPLY-B\n"))
	}()

	// the late reply to the first query is never handed to the next one
	require.ErrorIs(tr.Write("MEAS:CURR?"), ErrReadTimeout)
	_, err = tr.ReadLine()
	require.ErrorIs(err, ErrReadTimeout)

	require.NoError(tr.Close())
}

func TestLineTransport_UnterminatedLine(t *testing.T) {
	require := require.New(t)

	rw := &struct {
		io.Reader
		io.Writer
	}{Reader: bytes.NewBufferString("213,216"), Writer: io.Discard}

	tr, err := NewLineTransport(rw)
	require.NoError(err)

	reply, err := tr.ReadLine()
	require.NoError(err)
	require.Equal("213,216", reply)

	_, err = tr.ReadLine()
	require.ErrorIs(err, io.EOF)
}

func TestLineTransport_Close(t *testing.T) {
	require := require.New(t)
	tr, _ := newTestTransport(t)

	require.NoError(tr.Close())
	require.NoError(tr.Close())
	require.ErrorIs(tr.Write("*RST"), ErrClosed)

	_, err := tr.ReadLine()
	require.ErrorIs(err, ErrClosed)
}

func TestConfigOptions(t *testing.T) {
	require := require.New(t)

	cfg, err := NewConfig()
	require.NoError(err)
	require.Equal("\n", cfg.Terminator())
	require.Equal(5*time.Second, cfg.ReadTimeout())
	require.Equal(9600, cfg.BaudRate())

	cfg, err = NewConfig(WithTerminator("\r\n"), WithReadTimeout(0), WithBaudRate(115200))
	require.NoError(err)
	require.Equal("\r\n", cfg.Terminator())
	require.Zero(cfg.ReadTimeout())
	require.Equal(115200, cfg.BaudRate())

	_, err = NewConfig(WithTerminator(";"))
	require.Error(err)
	_, err = NewConfig(WithReadTimeout(-time.Second))
	require.Error(err)
	_, err = NewConfig(WithBaudRate(0))
	require.Error(err)
	_, err = NewConfig(WithLogger(nil))
	require.Error(err)
}
