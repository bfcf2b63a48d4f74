// Package sender runs the sender node's fixed-cadence transmit loop.
package sender

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/wiibridge/wiibridge/internal/log"
	"github.com/wiibridge/wiibridge/internal/source"
	"github.com/wiibridge/wiibridge/packet"
)

// DefaultInterval is 50 Hz.
const DefaultInterval = 20 * time.Millisecond

// Sender polls a Source and writes one packet per interval, whether or not
// the state changed since the previous packet.
type Sender struct {
	src      source.Source
	w        *packet.Writer
	interval time.Duration
	logger   *slog.Logger
	sent     uint64
}

// New returns a Sender writing to w.
func New(src source.Source, w io.Writer, interval time.Duration, logger *slog.Logger, raw log.RawLogger) *Sender {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sender{
		src:      src,
		w:        packet.NewWriter(w, raw),
		interval: interval,
		logger:   logger,
	}
}

// Run transmits until ctx is done. A write error ends the loop.
func (s *Sender) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sender running", "interval", s.interval)
	var last packet.ButtonMask
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sender stopped", "packets", s.sent)
			return nil
		case <-ticker.C:
			m := s.src.PollButtonMask()
			if err := s.w.Write(m); err != nil {
				if ctx.Err() != nil || errors.Is(err, io.ErrClosedPipe) {
					return nil
				}
				return err
			}
			s.sent++
			if m != last {
				s.logger.Debug("sent state", "mask", m)
				last = m
			}
		}
	}
}

// Sent returns the number of packets written so far. Only valid after Run
// has returned.
func (s *Sender) Sent() uint64 { return s.sent }
