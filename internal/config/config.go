// Package config defines the CLI structure and configuration for wiibridge.
package config

import (
	"github.com/wiibridge/wiibridge/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"WIIBRIDGE_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"WIIBRIDGE_LOG_FILE"`
	RawFile string `help:"Raw serial packet log file path (default: none)" env:"WIIBRIDGE_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Config string `help:"Config file path (json, yaml or toml)" env:"WIIBRIDGE_CONFIG" type:"path"`
	Log    `embed:"" prefix:"log."`

	Send      cmd.Send          `cmd:"" help:"Run the sender node: read the remote and transmit its buttons over serial"`
	Receive   cmd.Receive       `cmd:"" help:"Run the receiver node: translate serial packets into gamepad reports"`
	Mode      cmd.ModeCommand   `cmd:"" help:"Query or change a running receiver's translation mode"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
	Install   cmd.Install       `cmd:"" help:"Install a node role as a systemd service"`
	Uninstall cmd.Uninstall     `cmd:"" help:"Remove a node role's systemd service"`
}
