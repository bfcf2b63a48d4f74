//go:build linux

package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/viamrobotics/evdev"

	"github.com/wiibridge/wiibridge/packet"
)

// Evdev reads a Wii Remote exposed by the kernel hid-wiimote driver.
type Evdev struct {
	dev    *evdev.Evdev
	mask   atomic.Uint32
	logger *slog.Logger
}

// OpenEvdev opens path, or the first input device named DeviceName when
// path is empty.
func OpenEvdev(path string, logger *slog.Logger) (*Evdev, error) {
	if path == "" {
		found, err := findDevice(DeviceName)
		if err != nil {
			return nil, err
		}
		path = found
	}
	dev, err := evdev.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}
	logger.Info("controller input opened", "path", path, "name", dev.Name())
	return &Evdev{dev: dev, logger: logger}, nil
}

func findDevice(name string) (string, error) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		d, err := evdev.OpenFile(p)
		if err != nil {
			continue
		}
		n := d.Name()
		_ = d.Close()
		if n == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("no input device named %q (is the remote paired?)", name)
}

// Run folds key events into the held mask until ctx is done or the device
// goes away.
func (e *Evdev) Run(ctx context.Context) error {
	events := e.dev.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("input device closed")
			}
			if ev == nil || ev.Event.Type != evdev.EventKey {
				continue
			}
			old := packet.ButtonMask(e.mask.Load())
			next := ApplyKey(old, evdev.KeyType(ev.Event.Code), ev.Event.Value)
			if next != old {
				e.mask.Store(uint32(next))
				e.logger.Debug("buttons changed", "mask", next)
			}
		}
	}
}

// PollButtonMask implements Source.
func (e *Evdev) PollButtonMask() packet.ButtonMask {
	return packet.ButtonMask(e.mask.Load())
}

// Close releases the input device.
func (e *Evdev) Close() error { return e.dev.Close() }
