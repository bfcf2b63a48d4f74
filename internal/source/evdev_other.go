//go:build !linux

package source

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wiibridge/wiibridge/packet"
)

// Evdev is only available on Linux.
type Evdev struct{}

// OpenEvdev always fails outside Linux.
func OpenEvdev(string, *slog.Logger) (*Evdev, error) {
	return nil, errors.New("evdev input is only supported on linux")
}

func (*Evdev) Run(context.Context) error         { return nil }
func (*Evdev) PollButtonMask() packet.ButtonMask { return 0 }
func (*Evdev) Close() error                      { return nil }
