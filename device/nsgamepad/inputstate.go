package nsgamepad

import (
	"encoding/binary"
	"io"
	"strings"
)

// Buttons is the set of pressed digital buttons, one bit per Button.
type Buttons uint16

// Press returns b with btn pressed.
func (b Buttons) Press(btn Button) Buttons {
	return b | 1<<btn
}

// Pressed reports whether btn is set.
func (b Buttons) Pressed(btn Button) bool {
	return b&(1<<btn) != 0
}

func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	for i, name := range buttonNames {
		if b.Pressed(Button(i)) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// dpadLookup resolves the four flags (up, down, left, right in bits 0..3) to
// a hat value. Opposing flags cannot be expressed by a hat and resolve to
// centered.
var dpadLookup = [16]Hat{
	HatCentered,  // none
	HatUp,        // up
	HatDown,      // down
	HatCentered,  // up+down
	HatLeft,      // left
	HatUpLeft,    // up+left
	HatDownLeft,  // down+left
	HatCentered,  // up+down+left
	HatRight,     // right
	HatUpRight,   // up+right
	HatDownRight, // down+right
	HatCentered,  // up+down+right
	HatCentered,  // left+right
	HatCentered,  // up+left+right
	HatCentered,  // down+left+right
	HatCentered,  // all
}

// Hat resolves the flags into the 9-state value sent to the host.
func (d DPad) Hat() Hat {
	return dpadLookup[d&0x0F]
}

func (h Hat) String() string {
	switch h {
	case HatUp:
		return "up"
	case HatUpRight:
		return "up-right"
	case HatRight:
		return "right"
	case HatDownRight:
		return "down-right"
	case HatDown:
		return "down"
	case HatDownLeft:
		return "down-left"
	case HatLeft:
		return "left"
	case HatUpLeft:
		return "up-left"
	default:
		return "centered"
	}
}

// InputState is the full controller state encoded into one input report.
type InputState struct {
	Buttons Buttons
	Hat     Hat
	// Sticks: 0-255, 128 centered
	LX, LY uint8
	RX, RY uint8
}

// NeutralState returns a state with nothing pressed and both sticks centered.
func NeutralState() InputState {
	return InputState{
		Hat: HatCentered,
		LX:  AxisCentered,
		LY:  AxisCentered,
		RX:  AxisCentered,
		RY:  AxisCentered,
	}
}

// BuildReport encodes the state into the 8-byte HID input report.
// Layout:
//
//	0-1: Buttons (little-endian)
//	  2: Hat (0-7, 0x0F centered)
//	  3: LX
//	  4: LY
//	  5: RX
//	  6: RY
//	  7: Vendor specific / zero
func (s *InputState) BuildReport() []byte {
	b := make([]byte, InputReportSize)
	binary.LittleEndian.PutUint16(b[0:2], uint16(s.Buttons))
	b[2] = uint8(s.Hat)
	b[3] = s.LX
	b[4] = s.LY
	b[5] = s.RX
	b[6] = s.RY
	return b
}

// MarshalBinary encodes InputState to InputReportSize bytes.
func (s *InputState) MarshalBinary() ([]byte, error) {
	return s.BuildReport(), nil
}

// UnmarshalBinary decodes a report back into InputState.
func (s *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < InputReportSize {
		return io.ErrUnexpectedEOF
	}
	s.Buttons = Buttons(binary.LittleEndian.Uint16(data[0:2]))
	s.Hat = Hat(data[2])
	s.LX = data[3]
	s.LY = data[4]
	s.RX = data[5]
	s.RY = data[6]
	return nil
}
