package nsgamepad_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiibridge/wiibridge/device/nsgamepad"
)

func TestInputReports(t *testing.T) {
	cases := []struct {
		name           string
		inputState     nsgamepad.InputState
		expectedReport []byte
	}{
		{
			name:           "neutral defaults",
			inputState:     nsgamepad.NeutralState(),
			expectedReport: []byte{0x00, 0x00, 0x0f, 0x80, 0x80, 0x80, 0x80, 0x00},
		},
		{
			name: "a and home",
			inputState: func() nsgamepad.InputState {
				s := nsgamepad.NeutralState()
				s.Buttons = nsgamepad.Buttons(0).Press(nsgamepad.ButtonA).Press(nsgamepad.ButtonHome)
				return s
			}(),
			expectedReport: []byte{0x04, 0x10, 0x0f, 0x80, 0x80, 0x80, 0x80, 0x00},
		},
		{
			name: "hat left, stick extremes",
			inputState: nsgamepad.InputState{
				Hat: nsgamepad.HatLeft,
				LX:  0x00,
				LY:  0xff,
				RX:  0x80,
				RY:  0x80,
			},
			expectedReport: []byte{0x00, 0x00, 0x06, 0x00, 0xff, 0x80, 0x80, 0x00},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.inputState.BuildReport()
			assert.Equal(t, tc.expectedReport, got)

			var back nsgamepad.InputState
			require.NoError(t, back.UnmarshalBinary(got))
			assert.Equal(t, tc.inputState, back)
		})
	}
}

func TestDPadHat(t *testing.T) {
	cases := []struct {
		flags nsgamepad.DPad
		want  nsgamepad.Hat
	}{
		{nsgamepad.DPadCentered, nsgamepad.HatCentered},
		{nsgamepad.DPadUp, nsgamepad.HatUp},
		{nsgamepad.DPadDown, nsgamepad.HatDown},
		{nsgamepad.DPadLeft, nsgamepad.HatLeft},
		{nsgamepad.DPadRight, nsgamepad.HatRight},
		{nsgamepad.DPadUp | nsgamepad.DPadRight, nsgamepad.HatUpRight},
		{nsgamepad.DPadUp | nsgamepad.DPadLeft, nsgamepad.HatUpLeft},
		{nsgamepad.DPadDown | nsgamepad.DPadRight, nsgamepad.HatDownRight},
		{nsgamepad.DPadDown | nsgamepad.DPadLeft, nsgamepad.HatDownLeft},
		{nsgamepad.DPadUp | nsgamepad.DPadDown, nsgamepad.HatCentered},
		{nsgamepad.DPadLeft | nsgamepad.DPadRight, nsgamepad.HatCentered},
		{nsgamepad.DPadUp | nsgamepad.DPadDown | nsgamepad.DPadLeft | nsgamepad.DPadRight, nsgamepad.HatCentered},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.flags.Hat(), "flags 0x%02x", uint8(tc.flags))
	}
}

func TestButtonsString(t *testing.T) {
	assert.Equal(t, "none", nsgamepad.Buttons(0).String())
	b := nsgamepad.Buttons(0).Press(nsgamepad.ButtonA).Press(nsgamepad.ButtonZL)
	assert.Equal(t, "a|zl", b.String())
	assert.True(t, b.Pressed(nsgamepad.ButtonZL))
	assert.False(t, b.Pressed(nsgamepad.ButtonB))
}

func TestGamepadCommit(t *testing.T) {
	var out bytes.Buffer
	g := nsgamepad.New(&out, nil)

	g.SetDigitalButtons(nsgamepad.Buttons(0).Press(nsgamepad.ButtonB))
	g.SetDirectionPad(nsgamepad.DPadDown | nsgamepad.DPadRight)
	g.SetStickAxes(0x10, 0x20, 0x30)
	require.NoError(t, g.Commit())

	assert.Equal(t, []byte{0x02, 0x00, 0x03, 0x10, 0x20, 0x30, 0x80, 0x00}, out.Bytes())
	st := g.State()
	assert.Equal(t, nsgamepad.HatDownRight, st.Hat)
	assert.Equal(t, uint8(0x80), st.RY)

	out.Reset()
	require.NoError(t, g.Commit())
	assert.Len(t, out.Bytes(), nsgamepad.InputReportSize, "every commit sends a full report")
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestGamepadCommitError(t *testing.T) {
	sentinel := errors.New("boom")
	g := nsgamepad.New(failWriter{err: sentinel}, nil)
	g.SetDigitalButtons(nsgamepad.Buttons(0).Press(nsgamepad.ButtonA))
	err := g.Commit()
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, nsgamepad.NeutralState(), g.State(), "failed commit does not update sent state")
}
