package translator

import (
	"github.com/wiibridge/wiibridge/device/nsgamepad"
	"github.com/wiibridge/wiibridge/packet"
)

// OutputState is the complete gamepad state derived from one ButtonMask.
// It is recomputed from scratch for every mask, never patched.
type OutputState struct {
	Buttons nsgamepad.Buttons
	DPad    nsgamepad.DPad
	LeftX   uint8
	LeftY   uint8
	RightX  uint8
	RightY  uint8
}

// Hat is the direction pad value the host will see.
func (o OutputState) Hat() nsgamepad.Hat { return o.DPad.Hat() }

// Translate maps b under mode m. It has no state: equal inputs always give
// equal outputs.
func Translate(b packet.ButtonMask, m Mode) OutputState {
	out := OutputState{
		Buttons: mapButtons(b),
		DPad:    nsgamepad.DPadCentered,
		LeftX:   nsgamepad.AxisCentered,
		LeftY:   nsgamepad.AxisCentered,
		RightX:  nsgamepad.AxisCentered,
		RightY:  nsgamepad.AxisCentered,
	}
	if !b.Any(packet.DirectionMask) {
		return out
	}
	if m == ModeAnalog {
		out.LeftX, out.LeftY = mapStick(b)
		return out
	}
	out.DPad = mapDPad(b)
	return out
}

func mapButtons(b packet.ButtonMask) nsgamepad.Buttons {
	var out nsgamepad.Buttons
	for _, bm := range buttonMappings {
		if b.Has(bm.Mask) {
			out = out.Press(bm.Button)
		}
	}
	return out
}

// mapDPad passes opposing flags through; resolving them is up to the pad.
func mapDPad(b packet.ButtonMask) nsgamepad.DPad {
	var d nsgamepad.DPad
	for _, dm := range dpadMappings {
		if b.Has(dm.Mask) {
			d |= dm.Flag
		}
	}
	return d
}

// mapStick walks the direction table with last-match-wins on the (X, Y)
// pair, then re-centers an axis whose two opposing bits are both held.
func mapStick(b packet.ButtonMask) (x, y uint8) {
	x, y = nsgamepad.AxisCentered, nsgamepad.AxisCentered
	for _, dm := range directionMappings {
		if b.Has(dm.Mask) {
			x, y = dm.X, dm.Y
		}
	}
	if b.Has(packet.ButtonUp | packet.ButtonDown) {
		x = nsgamepad.AxisCentered
	}
	if b.Has(packet.ButtonLeft | packet.ButtonRight) {
		y = nsgamepad.AxisCentered
	}
	return x, y
}
