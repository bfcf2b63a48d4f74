// Package link opens the point-to-point serial line between the nodes.
package link

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tarm/serial"
)

// Config is the serial port configuration shared by send and receive.
type Config struct {
	Port        string        `help:"Serial device connecting the two nodes" default:"/dev/ttyS0" env:"WIIBRIDGE_SERIAL_PORT"`
	Baud        int           `help:"Serial baud rate (8N1)" default:"115200" env:"WIIBRIDGE_SERIAL_BAUD"`
	ReadTimeout time.Duration `help:"Per-read timeout; a quiet line is polled again after each timeout" default:"100ms" env:"WIIBRIDGE_SERIAL_READ_TIMEOUT"`
}

// Validate checks the configuration before the port is opened.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("serial port must be set")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Baud)
	}
	return nil
}

// serialConfig maps Config onto the driver's 8N1 configuration.
func (c Config) serialConfig() *serial.Config {
	return &serial.Config{
		Name:        c.Port,
		Baud:        c.Baud,
		ReadTimeout: c.ReadTimeout,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
	}
}

// Open opens the serial port described by c.
func Open(c Config, logger *slog.Logger) (io.ReadWriteCloser, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, err := serial.OpenPort(c.serialConfig())
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", c.Port, err)
	}
	if err := p.Flush(); err != nil {
		logger.Warn("failed to flush serial buffers", "port", c.Port, "error", err)
	}
	logger.Info("serial link open", "port", c.Port, "baud", c.Baud)
	return p, nil
}
