package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wiibridge/wiibridge/internal/link"
	"github.com/wiibridge/wiibridge/internal/log"
	"github.com/wiibridge/wiibridge/internal/sender"
	"github.com/wiibridge/wiibridge/internal/source"
)

// SourceConfig selects the controller input device.
type SourceConfig struct {
	Device string `help:"evdev node of the remote (empty: find it by name)" env:"WIIBRIDGE_SOURCE_DEVICE"`
}

type Send struct {
	Serial   link.Config   `embed:"" prefix:"serial."`
	Source   SourceConfig  `embed:"" prefix:"source."`
	Interval time.Duration `help:"Transmit interval; one packet is sent per tick" default:"20ms" env:"WIIBRIDGE_SEND_INTERVAL"`
}

// Run is called by Kong when the send command is executed.
func (s *Send) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.StartSender(ctx, logger, rawLogger)
}

func (s *Send) StartSender(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	logger.Info("Starting wiibridge sender", "serial", s.Serial.Port, "interval", s.Interval)

	in, err := source.OpenEvdev(s.Source.Device, logger)
	if err != nil {
		return err
	}
	defer in.Close()

	port, err := link.Open(s.Serial, logger)
	if err != nil {
		return err
	}
	defer port.Close()

	return runSender(ctx, in, port, s.Interval, logger, rawLogger)
}

// inputSource is a Source that also needs its own event loop.
type inputSource interface {
	source.Source
	Run(ctx context.Context) error
}

func runSender(ctx context.Context, in inputSource, port io.Writer, interval time.Duration, logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inErrCh := make(chan error, 1)
	go func() { inErrCh <- in.Run(ctx) }()

	snd := sender.New(in, port, interval, logger, rawLogger)
	sndErrCh := make(chan error, 1)
	go func() { sndErrCh <- snd.Run(ctx) }()

	select {
	case err := <-inErrCh:
		cancel()
		<-sndErrCh
		if err != nil {
			return fmt.Errorf("controller input: %w", err)
		}
		return nil
	case err := <-sndErrCh:
		cancel()
		<-inErrCh
		if err != nil {
			return fmt.Errorf("serial link: %w", err)
		}
		return nil
	}
}
