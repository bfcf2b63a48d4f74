package nsgamepad

// Button is a bit index in the report's 16-bit button field.
type Button uint8

const (
	ButtonY Button = iota
	ButtonB
	ButtonA
	ButtonX
	ButtonL  // left shoulder
	ButtonR  // right shoulder
	ButtonZL // left throttle
	ButtonZR // right throttle
	ButtonMinus
	ButtonPlus
	ButtonLStick
	ButtonRStick
	ButtonHome
	ButtonCapture
)

// Hat is the 9-state direction pad value carried in the report.
type Hat uint8

const (
	HatUp        Hat = 0x00
	HatUpRight   Hat = 0x01
	HatRight     Hat = 0x02
	HatDownRight Hat = 0x03
	HatDown      Hat = 0x04
	HatDownLeft  Hat = 0x05
	HatLeft      Hat = 0x06
	HatUpLeft    Hat = 0x07
	HatCentered  Hat = 0x0F
)

// DPad holds the four independent direction flags before they are resolved
// into a Hat.
type DPad uint8

const (
	DPadUp    DPad = 0x01
	DPadDown  DPad = 0x02
	DPadLeft  DPad = 0x04
	DPadRight DPad = 0x08

	DPadCentered DPad = 0x00
)

// Axis values.
const (
	AxisMin      uint8 = 0x00
	AxisCentered uint8 = 0x80
	AxisMax      uint8 = 0xFF
)

const (
	DefaultVID = 0x0F0D // HORI
	DefaultPID = 0x0092 // Pokken Tournament pad, accepted by the Switch as a wired pad

	InputReportSize = 8
)

var buttonNames = [...]string{
	ButtonY:       "y",
	ButtonB:       "b",
	ButtonA:       "a",
	ButtonX:       "x",
	ButtonL:       "l",
	ButtonR:       "r",
	ButtonZL:      "zl",
	ButtonZR:      "zr",
	ButtonMinus:   "minus",
	ButtonPlus:    "plus",
	ButtonLStick:  "lstick",
	ButtonRStick:  "rstick",
	ButtonHome:    "home",
	ButtonCapture: "capture",
}
