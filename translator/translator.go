// Package translator turns controller button masks into emulated gamepad
// state under a runtime-selectable direction mode.
package translator

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/wiibridge/wiibridge/device/nsgamepad"
	"github.com/wiibridge/wiibridge/internal/log"
	"github.com/wiibridge/wiibridge/packet"
)

// Sink is the emulated gamepad. Process hands it a full replacement of
// every field and then calls Commit exactly once.
type Sink interface {
	SetDigitalButtons(b nsgamepad.Buttons)
	SetDirectionPad(d nsgamepad.DPad)
	SetStickAxes(lx, ly, rx uint8)
	Commit() error
}

// Translator owns the current mode. The control plane writes it and the
// packet loop reads it from different goroutines; a reader may see the
// previous mode for at most the packet already in flight.
type Translator struct {
	mode   atomic.Uint32
	sink   Sink
	logger *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(t *Translator) { t.mode.Store(uint32(m)) }
}

// WithLogger sets the logger used for mode changes and per-packet tracing.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) { t.logger = l }
}

// New returns a Translator feeding sink, starting in DefaultMode.
func New(sink Sink, opts ...Option) *Translator {
	t := &Translator{sink: sink, logger: slog.Default()}
	t.mode.Store(uint32(DefaultMode))
	for _, o := range opts {
		o(t)
	}
	return t
}

// Mode returns the current mode.
func (t *Translator) Mode() Mode { return Mode(t.mode.Load()) }

// SetMode switches the mode starting with the next processed mask.
// Setting the current mode again is a no-op.
func (t *Translator) SetMode(m Mode) {
	old := Mode(t.mode.Swap(uint32(m)))
	if old != m {
		t.logger.Info("translation mode changed", "from", old, "to", m)
	}
}

// Process translates b with the current mode and pushes the result to the
// sink.
func (t *Translator) Process(b packet.ButtonMask) (OutputState, error) {
	mode := t.Mode()
	out := Translate(b, mode)
	t.logger.Log(context.Background(), log.LevelTrace, "translate",
		"mask", b, "mode", mode, "buttons", out.Buttons, "hat", out.Hat(),
		"lx", out.LeftX, "ly", out.LeftY)

	if t.sink == nil {
		return out, nil
	}
	t.sink.SetDigitalButtons(out.Buttons)
	t.sink.SetDirectionPad(out.DPad)
	t.sink.SetStickAxes(out.LeftX, out.LeftY, out.RightX)
	if err := t.sink.Commit(); err != nil {
		return out, fmt.Errorf("commit gamepad state: %w", err)
	}
	return out, nil
}
