package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Port":        "port",
		"ReadTimeout": "read_timeout",
		"APAddress":   "ap_address",
		"TTL":         "ttl",
		"Enabled":     "enabled",
	}
	for in, want := range tests {
		assert.Equal(t, want, snakeCase(in), in)
	}
}

func TestDefaultValueForField(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		def  string
		want any
	}{
		{"string", reflect.TypeOf((*string)(nil)).Elem(), "/dev/ttyS0", "/dev/ttyS0"},
		{"empty string", reflect.TypeOf((*string)(nil)).Elem(), "", ""},
		{"bool", reflect.TypeOf((*bool)(nil)).Elem(), "true", true},
		{"bad bool", reflect.TypeOf((*bool)(nil)).Elem(), "maybe", false},
		{"int", reflect.TypeOf((*int)(nil)).Elem(), "115200", 115200},
		{"bad int", reflect.TypeOf((*int)(nil)).Elem(), "fast", 0},
		{"duration", reflect.TypeOf((*time.Duration)(nil)).Elem(), "100ms", "100ms"},
		{"unset duration", reflect.TypeOf((*time.Duration)(nil)).Elem(), "", "0s"},
		{"pointer", reflect.TypeOf((**string)(nil)).Elem(), "x", "x"},
		{"unsupported", reflect.TypeOf((*float64)(nil)).Elem(), "1.5", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultValueForField(tt.typ, tt.def))
		})
	}
}

func TestConfigInitReceiveJSON(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "receive.json")
	require.NoError(t, (&ConfigInit{Command: "receive", Format: "json", Output: dest}).Run())

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, map[string]any{"port": "/dev/ttyS0", "baud": float64(115200), "read_timeout": "100ms"}, got["serial"])
	assert.Equal(t, map[string]any{"device": "/dev/hidg0"}, got["gamepad"])
	assert.Equal(t, map[string]any{"addr": ":80", "ap_address": "192.168.4.1"}, got["api"])
	assert.Equal(t, map[string]any{"enabled": true, "addr": ":53", "ttl": "60s"}, got["dns"])
	assert.Equal(t, "dpad", got["mode"])
}

func TestConfigInitSendYAML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "send.yaml")
	require.NoError(t, (&ConfigInit{Command: "send", Format: "yml", Output: dest}).Run())

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, "20ms", got["interval"])
	assert.Equal(t, map[string]any{"device": ""}, got["source"])
}

func TestConfigInitTOML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "receive.toml")
	require.NoError(t, (&ConfigInit{Command: "receive", Format: "toml", Output: dest}).Run())

	tree, err := toml.LoadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "/dev/hidg0", tree.Get("gamepad.device"))
	assert.Equal(t, "192.168.4.1", tree.Get("api.ap_address"))
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "send.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	err := (&ConfigInit{Command: "send", Format: "json", Output: dest}).Run()
	assert.ErrorContains(t, err, "--force")

	require.NoError(t, (&ConfigInit{Command: "send", Format: "json", Output: dest, Force: true}).Run())
}

func TestConfigInitBadFormat(t *testing.T) {
	err := (&ConfigInit{Command: "send", Format: "ini", Output: filepath.Join(t.TempDir(), "x")}).Run()
	assert.Error(t, err)
}
