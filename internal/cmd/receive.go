package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wiibridge/wiibridge/device/nsgamepad"
	"github.com/wiibridge/wiibridge/internal/link"
	"github.com/wiibridge/wiibridge/internal/log"
	"github.com/wiibridge/wiibridge/internal/receiver"
	"github.com/wiibridge/wiibridge/internal/server/api"
	"github.com/wiibridge/wiibridge/internal/server/api/handler"
	"github.com/wiibridge/wiibridge/internal/server/dns"
	"github.com/wiibridge/wiibridge/translator"
)

// GamepadConfig selects where gamepad reports go.
type GamepadConfig struct {
	Device string `help:"USB HID gadget node the gamepad reports are written to" default:"/dev/hidg0" env:"WIIBRIDGE_GAMEPAD_DEVICE"`
}

type Receive struct {
	Serial          link.Config      `embed:"" prefix:"serial."`
	Gamepad         GamepadConfig    `embed:"" prefix:"gamepad."`
	ApiServerConfig api.ServerConfig `embed:"" prefix:"api."`
	DNSServerConfig dns.ServerConfig `embed:"" prefix:"dns."`
	Mode            string           `help:"Initial translation mode" enum:"dpad,analog" default:"dpad" env:"WIIBRIDGE_MODE"`
}

// Run is called by Kong when the receive command is executed.
func (r *Receive) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.StartReceiver(ctx, logger, rawLogger)
}

func (r *Receive) StartReceiver(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	logger.Info("Starting wiibridge receiver", "serial", r.Serial.Port, "gamepad", r.Gamepad.Device)

	hid, err := nsgamepad.OpenHIDG(r.Gamepad.Device)
	if err != nil {
		return err
	}
	defer hid.Close()

	port, err := link.Open(r.Serial, logger)
	if err != nil {
		return err
	}
	defer port.Close()

	return r.serve(ctx, port, hid, logger, rawLogger)
}

// serve runs the control page, the optional captive DNS and the packet loop
// until ctx is done or the link fails. port is closed on shutdown; the
// pending read returns within the serial read timeout.
func (r *Receive) serve(ctx context.Context, port io.ReadCloser, hid io.Writer, logger *slog.Logger, rawLogger log.RawLogger) error {
	mode, err := translator.ParseMode(r.Mode)
	if err != nil {
		return err
	}

	pad := nsgamepad.New(hid, logger)
	tr := translator.New(pad, translator.WithMode(mode), translator.WithLogger(logger))
	for _, d := range translator.DirectionMappings() {
		logger.Debug("analog direction", "mask", d.Mask, "x", d.X, "y", d.Y, "desc", d.Description)
	}

	apiSrv := api.New(r.ApiServerConfig.Addr, r.ApiServerConfig, logger)
	handler.RegisterAll(apiSrv.Router(), tr, r.ApiServerConfig.APAddress)
	if err := apiSrv.Start(); err != nil {
		return fmt.Errorf("start control page: %w", err)
	}
	defer apiSrv.Close()

	if r.DNSServerConfig.Enabled {
		dnsSrv, err := dns.New(r.DNSServerConfig, r.ApiServerConfig.APAddress, logger)
		if err != nil {
			return err
		}
		if err := dnsSrv.Start(); err != nil {
			return err
		}
		defer dnsSrv.Close()
	}

	rc := receiver.New(port, tr, logger, rawLogger)
	doneCh := make(chan error, 1)
	go func() { doneCh <- rc.Run(ctx) }()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down receiver")
		_ = port.Close()
		err = <-doneCh
	case err = <-doneCh:
	}

	st := rc.Stats()
	logger.Info("receiver finished", "packets", st.Packets, "commitErrors", st.CommitErrors, "dropped", pad.Dropped(), "mode", tr.Mode())
	if err != nil {
		return fmt.Errorf("serial link: %w", err)
	}
	return nil
}
