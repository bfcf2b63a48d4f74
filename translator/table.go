package translator

import (
	"github.com/wiibridge/wiibridge/device/nsgamepad"
	"github.com/wiibridge/wiibridge/packet"
)

// ButtonMapping routes one controller bit to one gamepad button.
type ButtonMapping struct {
	Mask   packet.ButtonMask
	Button nsgamepad.Button
}

// DirectionMapping places the left stick when Mask is held in analog mode.
type DirectionMapping struct {
	Mask        packet.ButtonMask
	X, Y        uint8
	Description string
}

// DPadMapping routes one controller bit to one direction pad flag.
type DPadMapping struct {
	Mask packet.ButtonMask
	Flag nsgamepad.DPad
}

// Both direction tables rotate the cross pad a quarter turn relative to the
// console's axes (remote right -> up). The permutation is part of the
// mapping contract.
var (
	buttonMappings = []ButtonMapping{
		{packet.ButtonTwo, nsgamepad.ButtonA},
		{packet.ButtonOne, nsgamepad.ButtonB},
		{packet.ButtonA, nsgamepad.ButtonL},
		{packet.ButtonB, nsgamepad.ButtonR},

		{packet.ButtonPlus, nsgamepad.ButtonPlus},
		{packet.ButtonMinus, nsgamepad.ButtonMinus},
		{packet.ButtonHome, nsgamepad.ButtonHome},

		{packet.ButtonZ, nsgamepad.ButtonX},
		{packet.ButtonC, nsgamepad.ButtonY},
	}

	directionMappings = []DirectionMapping{
		{packet.ButtonUp, nsgamepad.AxisMin, nsgamepad.AxisCentered, "remote up -> stick left"},
		{packet.ButtonDown, nsgamepad.AxisMax, nsgamepad.AxisCentered, "remote down -> stick right"},
		{packet.ButtonLeft, nsgamepad.AxisCentered, nsgamepad.AxisMax, "remote left -> stick down"},
		{packet.ButtonRight, nsgamepad.AxisCentered, nsgamepad.AxisMin, "remote right -> stick up"},
	}

	dpadMappings = []DPadMapping{
		{packet.ButtonRight, nsgamepad.DPadUp},
		{packet.ButtonLeft, nsgamepad.DPadDown},
		{packet.ButtonUp, nsgamepad.DPadLeft},
		{packet.ButtonDown, nsgamepad.DPadRight},
	}
)

// ButtonMappings returns a copy of the digital button table in evaluation order.
func ButtonMappings() []ButtonMapping {
	return append([]ButtonMapping(nil), buttonMappings...)
}

// DirectionMappings returns a copy of the analog direction table in
// evaluation order.
func DirectionMappings() []DirectionMapping {
	return append([]DirectionMapping(nil), directionMappings...)
}

// DPadMappings returns a copy of the direction pad table.
func DPadMappings() []DPadMapping {
	return append([]DPadMapping(nil), dpadMappings...)
}
