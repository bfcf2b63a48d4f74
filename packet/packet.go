// Package packet implements the serial wire format exchanged between the
// sender and receiver nodes.
//
// A packet is exactly one ButtonMask: Size bytes, little-endian, with no
// header, length prefix, sequence number or checksum. The receiver stays in
// sync purely by consuming Size bytes at a time.
package packet

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// ButtonMask is the 16-bit set of currently pressed physical controls.
type ButtonMask uint16

// Has reports whether every bit in bits is set.
func (m ButtonMask) Has(bits ButtonMask) bool {
	return bits != 0 && m&bits == bits
}

// Any reports whether at least one bit in bits is set.
func (m ButtonMask) Any(bits ButtonMask) bool {
	return m&bits != 0
}

// String lists the names of set buttons, e.g. "a|up". Unknown bits are
// rendered as a hex remainder.
func (m ButtonMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	rest := m
	for _, bn := range buttonNames {
		if m&bn.bit != 0 {
			parts = append(parts, bn.name)
			rest &^= bn.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%04x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

// MarshalBinary encodes the mask into Size bytes.
func (m ButtonMask) MarshalBinary() ([]byte, error) {
	return Encode(m), nil
}

// UnmarshalBinary decodes the first Size bytes of data.
func (m *ButtonMask) UnmarshalBinary(data []byte) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Encode returns the Size-byte wire representation of m.
func Encode(m ButtonMask) []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint16(b, uint16(m))
	return b
}

// Decode parses one packet from the front of b. It never interprets a
// partial packet: fewer than Size bytes yield io.ErrUnexpectedEOF and the
// caller is expected to wait for more data.
func Decode(b []byte) (ButtonMask, error) {
	if len(b) < Size {
		return 0, io.ErrUnexpectedEOF
	}
	return ButtonMask(binary.LittleEndian.Uint16(b[:Size])), nil
}
