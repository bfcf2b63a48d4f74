// Package receiver runs the receiver node's packet loop: read a mask off the
// link, translate it, hand it to the gamepad.
package receiver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/wiibridge/wiibridge/internal/log"
	"github.com/wiibridge/wiibridge/packet"
	"github.com/wiibridge/wiibridge/translator"
)

// underrunBackoff is the pause after a read returns no data before the link
// is polled again.
const underrunBackoff = 5 * time.Millisecond

// Stats counts what one Run saw.
type Stats struct {
	Packets      uint64
	CommitErrors uint64
	// Underruns counts reads that timed out before a packet completed.
	Underruns uint64
}

// Receiver reads packets from a byte stream in arrival order.
type Receiver struct {
	r      *packet.Reader
	tr     *translator.Translator
	logger *slog.Logger
	stats  Stats
}

// New returns a Receiver reading from r and feeding tr. raw may be nil.
func New(r io.Reader, tr *translator.Translator, logger *slog.Logger, raw log.RawLogger) *Receiver {
	return &Receiver{
		r:      packet.NewReader(r, raw),
		tr:     tr,
		logger: logger,
	}
}

// Run processes packets until ctx is done or the link is closed. A read that
// times out on a quiet line is retried, keeping any half-received packet.
// Closing the underlying stream is the caller's job; a read error after ctx
// is done is treated as a clean shutdown. Gamepad commit failures are logged
// and the loop keeps going so the next packet can resync the host.
func (rc *Receiver) Run(ctx context.Context) error {
	rc.logger.Info("receiver running", "mode", rc.tr.Mode())
	var last packet.ButtonMask
	for {
		m, err := rc.r.Next()
		if err != nil {
			switch {
			case ctx.Err() != nil, errors.Is(err, os.ErrClosed), errors.Is(err, io.ErrClosedPipe):
				rc.stopped()
				return nil
			case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
				rc.stats.Underruns++
				select {
				case <-ctx.Done():
					rc.stopped()
					return nil
				case <-time.After(underrunBackoff):
				}
				continue
			}
			return err
		}
		rc.stats.Packets++
		if m != last {
			rc.logger.Debug("received state", "mask", m)
			last = m
		}
		if _, err := rc.tr.Process(m); err != nil {
			rc.stats.CommitErrors++
			rc.logger.Warn("gamepad update failed", "error", err)
		}
	}
}

func (rc *Receiver) stopped() {
	if n := rc.r.Buffered(); n > 0 {
		rc.logger.Warn("link closed mid-packet", "buffered", n, "packets", rc.stats.Packets)
	}
	rc.logger.Info("receiver stopped", "packets", rc.stats.Packets)
}

// Stats returns counters for the last Run. Only valid after Run has
// returned.
func (rc *Receiver) Stats() Stats { return rc.stats }
