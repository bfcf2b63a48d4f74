//go:build linux

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemdUnitContent(t *testing.T) {
	unit := systemdUnitContent("receive", "/usr/local/bin/wiibridge")
	assert.Contains(t, unit, "Description=wiibridge receive node")
	assert.Contains(t, unit, `ExecStart="/usr/local/bin/wiibridge" receive`)
	assert.Contains(t, unit, "WorkingDirectory=/usr/local/bin")
	assert.Contains(t, unit, "Wants=network-online.target")

	unit = systemdUnitContent("send", "/opt/wb/wiibridge")
	assert.Contains(t, unit, `ExecStart="/opt/wb/wiibridge" send`)
	assert.Contains(t, unit, "After=bluetooth.target")
	assert.Equal(t, "wiibridge-send.service", serviceName("send"))
}
