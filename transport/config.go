package transport

import (
	"errors"
	"time"

	"github.com/arloliu/go-scpikit/logger"
)

// Config holds the line framing and timing parameters of a transport.
type Config struct {
	// terminator is appended to every written command and ends every reply line.
	// Defaults to "\n".
	terminator string

	// readTimeout bounds the wait for a complete reply line. Zero waits forever.
	// Defaults to 5 seconds.
	readTimeout time.Duration

	// baudRate is only relevant to OpenSerial.
	// Defaults to 9600.
	baudRate int

	logger logger.Logger
}

// NewConfig creates a Config with default values and applies opts.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		terminator:  "\n",
		readTimeout: 5 * time.Second,
		baudRate:    9600,
		logger:      logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func (cfg *Config) Terminator() string         { return cfg.terminator }
func (cfg *Config) ReadTimeout() time.Duration { return cfg.readTimeout }
func (cfg *Config) BaudRate() int              { return cfg.baudRate }

// Option represents a functional option for configuring a transport.
type Option interface {
	apply(*Config) error
}

type optFunc func(*Config) error

func (f optFunc) apply(cfg *Config) error {
	if cfg == nil {
		return ErrConfigNil
	}

	return f(cfg)
}

// WithTerminator sets the line terminator, either "\n" or "\r\n".
//
// The default value is "\n".
func WithTerminator(term string) Option {
	return optFunc(func(cfg *Config) error {
		if term != "\n" && term != "\r\n" {
			return errors.New(`terminator must be "\n" or "\r\n"`)
		}
		cfg.terminator = term

		return nil
	})
}

// WithReadTimeout sets the maximum wait for one reply line. Zero disables the timeout.
//
// The default value is 5 seconds.
func WithReadTimeout(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if d < 0 {
			return errors.New("read timeout must not be negative")
		}
		cfg.readTimeout = d

		return nil
	})
}

// WithBaudRate sets the serial line speed used by OpenSerial.
//
// The default value is 9600.
func WithBaudRate(baud int) Option {
	return optFunc(func(cfg *Config) error {
		if baud <= 0 {
			return errors.New("baud rate must be positive")
		}
		cfg.baudRate = baud

		return nil
	})
}

// WithLogger sets the logger used for transport level failures.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(cfg *Config) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l

		return nil
	})
}
