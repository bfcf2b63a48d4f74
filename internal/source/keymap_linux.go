//go:build linux

package source

import (
	"github.com/viamrobotics/evdev"

	"github.com/wiibridge/wiibridge/packet"
)

// DeviceName is the input device name the hid-wiimote driver registers for
// the remote's core buttons.
const DeviceName = "Nintendo Wii Remote"

// Linux input key codes emitted by the hid-wiimote driver for the remote
// and Nunchuk buttons.
const (
	keyUp       evdev.KeyType = 103
	keyLeft     evdev.KeyType = 105
	keyRight    evdev.KeyType = 106
	keyDown     evdev.KeyType = 108
	keyNext     evdev.KeyType = 407 // plus
	keyPrevious evdev.KeyType = 412 // minus
	btn1        evdev.KeyType = 0x101
	btn2        evdev.KeyType = 0x102
	btnA        evdev.KeyType = 0x130
	btnB        evdev.KeyType = 0x131
	btnC        evdev.KeyType = 0x132
	btnZ        evdev.KeyType = 0x135
	btnMode     evdev.KeyType = 0x13c // home
)

// KeyMap maps evdev key codes to ButtonMask bits.
var KeyMap = map[evdev.KeyType]packet.ButtonMask{
	keyLeft:     packet.ButtonLeft,
	keyRight:    packet.ButtonRight,
	keyUp:       packet.ButtonUp,
	keyDown:     packet.ButtonDown,
	keyNext:     packet.ButtonPlus,
	keyPrevious: packet.ButtonMinus,
	btn1:        packet.ButtonOne,
	btn2:        packet.ButtonTwo,
	btnA:        packet.ButtonA,
	btnB:        packet.ButtonB,
	btnC:        packet.ButtonC,
	btnZ:        packet.ButtonZ,
	btnMode:     packet.ButtonHome,
}

// ApplyKey folds one key event into m. value follows evdev semantics:
// 0 release, 1 press, 2 autorepeat (treated as held). Unknown codes leave m
// unchanged.
func ApplyKey(m packet.ButtonMask, code evdev.KeyType, value int32) packet.ButtonMask {
	bit, ok := KeyMap[code]
	if !ok {
		return m
	}
	if value == 0 {
		return m &^ bit
	}
	return m | bit
}
