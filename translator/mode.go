package translator

import (
	"errors"
	"fmt"
)

// Mode selects how the four direction bits are presented to the host.
type Mode uint32

const (
	// ModeDPad drives the discrete direction pad; sticks stay centered.
	ModeDPad Mode = iota
	// ModeAnalog drives the left analog stick; the direction pad stays centered.
	ModeAnalog
)

// DefaultMode is the mode every Translator starts in.
const DefaultMode = ModeDPad

// ErrInvalidMode is returned by ParseMode for anything but "dpad" or "analog".
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode accepts exactly the literals "dpad" and "analog".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dpad":
		return ModeDPad, nil
	case "analog":
		return ModeAnalog, nil
	case "":
		return 0, fmt.Errorf("%w: missing value", ErrInvalidMode)
	default:
		return 0, fmt.Errorf("%w: %q (expected dpad or analog)", ErrInvalidMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeDPad:
		return "dpad"
	case ModeAnalog:
		return "analog"
	default:
		return fmt.Sprintf("mode(%d)", uint32(m))
	}
}

// IsDPad reports whether direction bits go to the direction pad.
func (m Mode) IsDPad() bool { return m != ModeAnalog }
