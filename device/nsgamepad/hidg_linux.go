//go:build linux

package nsgamepad

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenHIDG opens a USB gadget HID node (e.g. /dev/hidg0) for non-blocking
// writes, so a host that stops polling cannot stall the receive loop.
func OpenHIDG(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open hid gadget %s: %w", path, err)
	}
	return f, nil
}

func isBusy(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ESHUTDOWN)
}
