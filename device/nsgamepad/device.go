// Package nsgamepad provides the emulated Nintendo Switch wired gamepad that
// receives translated controller state and writes HID input reports.
package nsgamepad

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/wiibridge/wiibridge/device"
)

var _ device.ReportBuilder = (*InputState)(nil)

// Gamepad buffers the next report and flushes it to the host on Commit.
// Every Commit sends the complete state; fields not set since the last
// Commit keep their previous value.
type Gamepad struct {
	w       io.Writer
	logger  *slog.Logger
	stateMu sync.Mutex
	pending InputState
	sent    InputState
	commits uint64
	dropped atomic.Uint64
}

// New returns a Gamepad writing reports to w (typically /dev/hidg0).
func New(w io.Writer, logger *slog.Logger) *Gamepad {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gamepad{
		w:       w,
		logger:  logger,
		pending: NeutralState(),
		sent:    NeutralState(),
	}
}

// SetDigitalButtons replaces the pressed button set.
func (g *Gamepad) SetDigitalButtons(b Buttons) {
	g.stateMu.Lock()
	defer g.stateMu.Unlock()
	g.pending.Buttons = b
}

// SetDirectionPad replaces the direction pad flags.
func (g *Gamepad) SetDirectionPad(d DPad) {
	g.stateMu.Lock()
	defer g.stateMu.Unlock()
	g.pending.Hat = d.Hat()
}

// SetStickAxes sets the left stick and the right stick X axis. The right
// stick Y axis is never driven and stays centered.
func (g *Gamepad) SetStickAxes(lx, ly, rx uint8) {
	g.stateMu.Lock()
	defer g.stateMu.Unlock()
	g.pending.LX = lx
	g.pending.LY = ly
	g.pending.RX = rx
	g.pending.RY = AxisCentered
}

// Commit writes the pending state as one input report.
// A host that is not currently polling the endpoint makes the write fail
// with a busy error; that frame is dropped and counted, not reported.
func (g *Gamepad) Commit() error {
	g.stateMu.Lock()
	st := g.pending
	g.stateMu.Unlock()

	report := st.BuildReport()
	if _, err := g.w.Write(report); err != nil {
		if isBusy(err) {
			n := g.dropped.Add(1)
			g.logger.Debug("gamepad endpoint busy, report dropped", "dropped", n)
			return nil
		}
		return fmt.Errorf("write report: %w", err)
	}

	g.stateMu.Lock()
	g.sent = st
	g.commits++
	g.stateMu.Unlock()
	return nil
}

// State returns the last state successfully written to the host.
func (g *Gamepad) State() InputState {
	g.stateMu.Lock()
	defer g.stateMu.Unlock()
	return g.sent
}

// Dropped returns how many reports were skipped because the host was busy.
func (g *Gamepad) Dropped() uint64 { return g.dropped.Load() }
