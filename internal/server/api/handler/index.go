package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"

	"github.com/wiibridge/wiibridge/internal/server/api"
	"github.com/wiibridge/wiibridge/translator"
)

//go:embed templates/index.html
var templates embed.FS

var indexTmpl = template.Must(template.ParseFS(templates, "templates/index.html"))

type modeLink struct {
	Name   string
	Label  string
	Active bool
}

type indexData struct {
	Label     string
	APAddress string
	Modes     []modeLink
}

var modeLabels = map[translator.Mode]string{
	translator.ModeDPad:   "direction pad",
	translator.ModeAnalog: "left analog stick",
}

// Index returns a handler rendering the configuration page. It is also
// served for captive-portal probes.
func Index(store api.ModeStore, apAddress string) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		cur := effectiveMode(store)
		data := indexData{Label: modeLabels[cur], APAddress: apAddress}
		for _, m := range []translator.Mode{translator.ModeDPad, translator.ModeAnalog} {
			data.Modes = append(data.Modes, modeLink{Name: m.String(), Label: modeLabels[m], Active: m == cur})
		}

		var buf bytes.Buffer
		if err := indexTmpl.Execute(&buf, data); err != nil {
			return err
		}
		res.Body = buf.String()
		res.ContentType = "text/html; charset=utf-8"
		return nil
	}
}
