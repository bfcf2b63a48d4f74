//go:build !linux

package nsgamepad

import (
	"fmt"
	"os"
)

// OpenHIDG opens a HID output node for writing. Only Linux exposes USB
// gadget nodes; elsewhere this is useful for writing reports to a file.
func OpenHIDG(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open hid output %s: %w", path, err)
	}
	return f, nil
}

func isBusy(error) bool { return false }
