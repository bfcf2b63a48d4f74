package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/wiibridge/wiibridge/apitypes"
	"github.com/wiibridge/wiibridge/internal/server/api"
	"github.com/wiibridge/wiibridge/translator"
)

// effectiveMode folds any unknown stored value into dpad, matching how the
// translator treats it.
func effectiveMode(store api.ModeStore) translator.Mode {
	if store.Mode().IsDPad() {
		return translator.ModeDPad
	}
	return translator.ModeAnalog
}

// Mode returns a handler reporting the current mode.
func Mode(store api.ModeStore) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		b, err := json.Marshal(apitypes.ModeResponse{Mode: effectiveMode(store).String()})
		if err != nil {
			return err
		}
		res.JSON = string(b)
		return nil
	}
}

// SetMode returns a handler switching the mode from the "mode" query
// parameter. Anything but "dpad" or "analog" is rejected and the mode is
// left alone.
func SetMode(store api.ModeStore) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		m, err := translator.ParseMode(req.Params["mode"])
		if err != nil {
			return api.ErrBadRequest(err.Error())
		}
		store.SetMode(m)
		logger.Info("mode set from control page", "mode", m)
		res.Body = "mode set to " + m.String()
		return nil
	}
}

// Status returns a handler reporting the mode and access point address.
func Status(store api.ModeStore, apAddress string) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		m := effectiveMode(store)
		b, err := json.Marshal(apitypes.StatusResponse{
			Mode:      m.String(),
			DPad:      m.IsDPad(),
			APAddress: apAddress,
		})
		if err != nil {
			return err
		}
		res.JSON = string(b)
		return nil
	}
}

// RegisterAll wires the control page routes onto r.
func RegisterAll(r *api.Router, store api.ModeStore, apAddress string) {
	r.Register("/", Index(store, apAddress))
	r.Register("/setMode", SetMode(store))
	r.Register("/mode", Mode(store))
	r.Register("/status", Status(store, apAddress))
}
