// Package source provides controller input sources for the sender node.
package source

import (
	"sync/atomic"

	"github.com/wiibridge/wiibridge/packet"
)

// Source returns the most recently decoded physical button state.
// The value persists across polls until the controller reports new data.
type Source interface {
	PollButtonMask() packet.ButtonMask
}

// Static is a Source whose state is set explicitly. It is safe for
// concurrent use.
type Static struct {
	mask atomic.Uint32
}

// NewStatic returns a Static source holding m.
func NewStatic(m packet.ButtonMask) *Static {
	s := &Static{}
	s.Set(m)
	return s
}

// Set replaces the held mask.
func (s *Static) Set(m packet.ButtonMask) { s.mask.Store(uint32(m)) }

// PollButtonMask implements Source.
func (s *Static) PollButtonMask() packet.ButtonMask {
	return packet.ButtonMask(s.mask.Load())
}
