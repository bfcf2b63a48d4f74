package packet_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiibridge/wiibridge/packet"
)

func TestRoundTripAllMasks(t *testing.T) {
	for v := 0; v <= 0xffff; v++ {
		m := packet.ButtonMask(v)
		b := packet.Encode(m)
		if len(b) != packet.Size {
			t.Fatalf("encode 0x%04x: got %d bytes", v, len(b))
		}
		got, err := packet.Decode(b)
		if err != nil || got != m {
			t.Fatalf("round trip 0x%04x: got 0x%04x err=%v", v, uint16(got), err)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    packet.ButtonMask
		wantErr error
	}{
		{name: "button a little-endian", in: []byte{0x00, 0x08}, want: packet.ButtonA},
		{name: "two and up", in: []byte{0x08, 0x01}, want: packet.ButtonTwo | packet.ButtonUp},
		{name: "unknown bits pass through", in: []byte{0x60, 0x20}, want: 0x2060},
		{name: "trailing bytes ignored", in: []byte{0x01, 0x00, 0xff}, want: packet.ButtonLeft},
		{name: "underrun", in: []byte{0x01}, wantErr: io.ErrUnexpectedEOF},
		{name: "empty", in: nil, wantErr: io.ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := packet.Decode(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalBinary(t *testing.T) {
	m := packet.ButtonHome | packet.ButtonLeft
	b, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x80}, b)

	var out packet.ButtonMask
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, m, out)
	assert.ErrorIs(t, out.UnmarshalBinary([]byte{0x01}), io.ErrUnexpectedEOF)
}

func TestButtonMaskString(t *testing.T) {
	assert.Equal(t, "none", packet.ButtonMask(0).String())
	assert.Equal(t, "up|a", (packet.ButtonA | packet.ButtonUp).String())
	assert.Equal(t, "home|0x2000", (packet.ButtonHome | 0x2000).String())
}

func TestHas(t *testing.T) {
	m := packet.ButtonUp | packet.ButtonDown
	assert.True(t, m.Has(packet.ButtonUp))
	assert.True(t, m.Has(packet.ButtonUp|packet.ButtonDown))
	assert.False(t, m.Has(packet.ButtonUp|packet.ButtonLeft))
	assert.False(t, m.Has(0))
	assert.True(t, m.Any(packet.DirectionMask))
	assert.False(t, packet.ButtonA.Any(packet.DirectionMask))
}

// trickleReader hands out one byte per Read call.
type trickleReader struct{ data []byte }

func (r *trickleReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func TestReaderWaitsForFullPacket(t *testing.T) {
	src := &trickleReader{data: []byte{0x00, 0x08, 0x08, 0x01, 0x04}}
	r := packet.NewReader(src, nil)

	m, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, packet.ButtonA, m)

	m, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, packet.ButtonTwo|packet.ButtonUp, m)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

// idleReader replays chunks one Read at a time; an empty chunk is a read
// timeout on a quiet line.
type idleReader struct{ chunks [][]byte }

func (r *idleReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	c := r.chunks[0]
	r.chunks = r.chunks[1:]
	if len(c) == 0 {
		return 0, io.EOF
	}
	return copy(p, c), nil
}

func TestReaderKeepsPartialPacketAcrossTimeouts(t *testing.T) {
	src := &idleReader{chunks: [][]byte{{0x08}, {}, {}, {0x01}, {}, {0x00, 0x04}}}
	r := packet.NewReader(src, nil)

	_, err := r.Next()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, 1, r.Buffered())
	_, err = r.Next()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	m, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, packet.ButtonTwo|packet.ButtonUp, m)
	assert.Zero(t, r.Buffered())

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.NotErrorIs(t, err, io.ErrUnexpectedEOF)

	m, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, packet.ButtonDown, m)
}

func TestReaderCleanEOF(t *testing.T) {
	r := packet.NewReader(bytes.NewReader(nil), nil)
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

type rawCapture struct {
	in  [][]byte
	out [][]byte
}

func (c *rawCapture) Log(in bool, data []byte) {
	cp := append([]byte(nil), data...)
	if in {
		c.in = append(c.in, cp)
	} else {
		c.out = append(c.out, cp)
	}
}

func TestWriterReaderPipe(t *testing.T) {
	var buf bytes.Buffer
	raw := &rawCapture{}
	w := packet.NewWriter(&buf, raw)
	masks := []packet.ButtonMask{0, packet.ButtonA, packet.ButtonLeft | packet.ButtonRight, 0xffff}
	for _, m := range masks {
		require.NoError(t, w.Write(m))
	}
	assert.Equal(t, len(masks)*packet.Size, buf.Len())
	assert.Len(t, raw.out, len(masks))

	r := packet.NewReader(&buf, raw)
	for _, want := range masks {
		got, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Len(t, raw.in, len(masks))
	assert.Equal(t, []byte{0x00, 0x08}, raw.in[1])
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return 1, nil }

func TestWriterShortWrite(t *testing.T) {
	w := packet.NewWriter(shortWriter{}, nil)
	assert.ErrorIs(t, w.Write(packet.ButtonA), io.ErrShortWrite)
}
