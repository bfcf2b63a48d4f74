package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiibridge/wiibridge/internal/source"
	"github.com/wiibridge/wiibridge/packet"
)

func TestStatic(t *testing.T) {
	s := source.NewStatic(packet.ButtonHome)
	assert.Equal(t, packet.ButtonHome, s.PollButtonMask())
	assert.Equal(t, packet.ButtonHome, s.PollButtonMask(), "state persists across polls")
	s.Set(0)
	assert.Equal(t, packet.ButtonMask(0), s.PollButtonMask())
}
