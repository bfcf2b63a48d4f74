//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const systemdDir = "/etc/systemd/system"

func serviceName(role string) string { return "wiibridge-" + role + ".service" }

func install(role, exePath string, logger *slog.Logger) error {
	name := serviceName(role)
	path := filepath.Join(systemdDir, name)
	if err := os.WriteFile(path, []byte(systemdUnitContent(role, exePath)), 0o644); err != nil {
		return err
	}

	steps := [][]string{
		{"daemon-reload"},
		{"enable", name},
		{"restart", name},
	}
	for _, args := range steps {
		if err := runSystemctl(args...); err != nil {
			return err
		}
	}

	logger.Info("wiibridge systemd service installed", "path", path, "exe", exePath)
	return nil
}

func uninstall(role string, logger *slog.Logger) error {
	name := serviceName(role)
	path := filepath.Join(systemdDir, name)
	var errs []error

	if err := runSystemctl("stop", name); err != nil {
		errs = append(errs, err)
	}
	if err := runSystemctl("disable", name); err != nil {
		errs = append(errs, err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	if err := runSystemctl("daemon-reload"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info("wiibridge systemd service removed", "path", path)
	return nil
}

// The receiver binds :80 and :53, so it runs as root; the sender only needs
// the serial and input devices.
func systemdUnitContent(role, exePath string) string {
	after := "After=network-online.target\nWants=network-online.target"
	if role == "send" {
		after = "After=bluetooth.target\nWants=bluetooth.target"
	}
	return fmt.Sprintf(`[Unit]
Description=wiibridge %s node
%s

[Service]
Type=simple
ExecStart=%q %s
WorkingDirectory=%s
Restart=on-failure
RestartSec=2

[Install]
WantedBy=multi-user.target
`, role, after, exePath, role, filepath.Dir(exePath))
}

func runSystemctl(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
