package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Install sets up a node role to run at boot.
type Install struct {
	Role string `arg:"" help:"Node role to install" enum:"send,receive"`
}

// Uninstall removes a node role's startup configuration.
type Uninstall struct {
	Role string `arg:"" help:"Node role to remove" enum:"send,receive"`
}

func (c *Install) Run(logger *slog.Logger) error {
	exe, err := currentExecutable()
	if err != nil {
		return err
	}
	if strings.Contains(exe, "go-build") {
		return errors.New("cannot install from 'go run'")
	}
	return install(c.Role, exe, logger)
}

func (c *Uninstall) Run(logger *slog.Logger) error {
	return uninstall(c.Role, logger)
}

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Abs(exe)
}
