package transport

import (
	"fmt"

	"go.bug.st/serial"
)

// OpenSerial opens portName (e.g. "/dev/ttyUSB0" or "COM3") at 8N1 with the configured baud rate and returns a
// LineTransport over it.
//
// The port itself blocks on reads; the read timeout is enforced by the transport's background reader, and Close
// releases a blocked read.
func OpenSerial(portName string, opts ...Option) (*LineTransport, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	port, err := serial.Open(portName, &serial.Mode{
		BaudRate: cfg.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}

	cfg.logger.Debug("serial port opened", "port", portName, "baud", cfg.baudRate)

	return newLineTransport(port, cfg), nil
}
