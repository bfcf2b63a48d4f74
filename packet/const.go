package packet

// Button bits as reported by the Wii Remote (and Nunchuk C/Z).
const (
	ButtonLeft  ButtonMask = 0x0001
	ButtonRight ButtonMask = 0x0002
	ButtonDown  ButtonMask = 0x0004
	ButtonUp    ButtonMask = 0x0008
	ButtonPlus  ButtonMask = 0x0010
	ButtonZ     ButtonMask = 0x0080 // Nunchuk
	ButtonTwo   ButtonMask = 0x0100
	ButtonOne   ButtonMask = 0x0200
	ButtonB     ButtonMask = 0x0400
	ButtonA     ButtonMask = 0x0800
	ButtonMinus ButtonMask = 0x1000
	ButtonC     ButtonMask = 0x4000 // Nunchuk
	ButtonHome  ButtonMask = 0x8000
)

// DirectionMask covers the four cross-pad bits.
const DirectionMask = ButtonUp | ButtonDown | ButtonLeft | ButtonRight

// Size is the wire size of one packet in bytes.
const Size = 2

var buttonNames = []struct {
	bit  ButtonMask
	name string
}{
	{ButtonLeft, "left"},
	{ButtonRight, "right"},
	{ButtonDown, "down"},
	{ButtonUp, "up"},
	{ButtonPlus, "plus"},
	{ButtonZ, "z"},
	{ButtonTwo, "two"},
	{ButtonOne, "one"},
	{ButtonB, "b"},
	{ButtonA, "a"},
	{ButtonMinus, "minus"},
	{ButtonC, "c"},
	{ButtonHome, "home"},
}
