package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/wiibridge/wiibridge/apiclient"
)

// ClientConfig locates a running receiver's control page.
type ClientConfig struct {
	Addr    string        `help:"Receiver control page address (host[:port] or URL)" default:"192.168.4.1" env:"WIIBRIDGE_CLIENT_ADDR"`
	Timeout time.Duration `help:"Request timeout" default:"5s" env:"WIIBRIDGE_CLIENT_TIMEOUT"`

	out io.Writer
}

func (c *ClientConfig) client() *apiclient.Client {
	return apiclient.NewWithConfig(c.Addr, &apiclient.Config{Timeout: c.Timeout})
}

func (c *ClientConfig) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// ModeCommand groups the control page client subcommands.
type ModeCommand struct {
	Get    ModeGet    `cmd:"" help:"Print the current translation mode"`
	Set    ModeSet    `cmd:"" help:"Switch the translation mode"`
	Status ModeStatus `cmd:"" help:"Print the receiver status"`
}

type ModeGet struct {
	ClientConfig `embed:""`
}

func (c *ModeGet) Run(logger *slog.Logger) error {
	m, err := c.client().GetMode()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.stdout(), m.Mode)
	return err
}

type ModeSet struct {
	ClientConfig `embed:""`
	Mode         string `arg:"" help:"Mode to switch to" enum:"dpad,analog"`
}

func (c *ModeSet) Run(logger *slog.Logger) error {
	msg, err := c.client().SetMode(c.Mode)
	if err != nil {
		return err
	}
	logger.Debug("mode switched", "addr", c.Addr, "mode", c.Mode)
	_, err = fmt.Fprintln(c.stdout(), msg)
	return err
}

type ModeStatus struct {
	ClientConfig `embed:""`
}

// Run prints the status as JSON, indented when stdout is a terminal.
func (c *ModeStatus) Run(logger *slog.Logger) error {
	st, err := c.client().Status()
	if err != nil {
		return err
	}
	var b []byte
	if f, ok := c.stdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err = json.MarshalIndent(st, "", "  ")
	} else {
		b, err = json.Marshal(st)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.stdout(), string(b))
	return err
}
