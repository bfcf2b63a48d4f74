//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

func install(string, string, *slog.Logger) error {
	return errors.New("install is only supported on linux (systemd)")
}

func uninstall(string, *slog.Logger) error {
	return errors.New("uninstall is only supported on linux (systemd)")
}
