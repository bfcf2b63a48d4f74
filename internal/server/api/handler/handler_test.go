package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiibridge/wiibridge/internal/server/api"
	"github.com/wiibridge/wiibridge/internal/server/api/handler"
	th "github.com/wiibridge/wiibridge/internal/testing"
	"github.com/wiibridge/wiibridge/translator"
)

func startControlPage(t *testing.T, store *th.ModeStore) (string, func()) {
	return th.StartAPIServer(t, func(r *api.Router, _ *api.Server) {
		handler.RegisterAll(r, store, th.TestAPAddress)
	})
}

func TestSetMode(t *testing.T) {
	tests := []struct {
		name     string
		start    translator.Mode
		query    string
		status   int
		body     string
		wantMode translator.Mode
		wantSets int
	}{
		{name: "dpad to analog", start: translator.ModeDPad, query: "?mode=analog", status: 200, body: "mode set to analog", wantMode: translator.ModeAnalog, wantSets: 1},
		{name: "analog to dpad", start: translator.ModeAnalog, query: "?mode=dpad", status: 200, body: "mode set to dpad", wantMode: translator.ModeDPad, wantSets: 1},
		{name: "same mode again", start: translator.ModeDPad, query: "?mode=dpad", status: 200, body: "mode set to dpad", wantMode: translator.ModeDPad, wantSets: 1},
		{name: "unknown value", start: translator.ModeAnalog, query: "?mode=bogus", status: 400, wantMode: translator.ModeAnalog},
		{name: "missing value", start: translator.ModeAnalog, query: "", status: 400, wantMode: translator.ModeAnalog},
		{name: "empty value", start: translator.ModeDPad, query: "?mode=", status: 400, wantMode: translator.ModeDPad},
		{name: "wrong case", start: translator.ModeDPad, query: "?mode=ANALOG", status: 400, wantMode: translator.ModeDPad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &th.ModeStore{}
			store.SetMode(tt.start)
			addr, done := startControlPage(t, store)
			defer done()

			status, hdr, body := th.Get(t, addr, th.TestAPAddress, "/setMode"+tt.query)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.wantMode, store.Mode())
			if tt.status == 200 {
				assert.Equal(t, tt.body, body)
				assert.Equal(t, tt.wantSets+1, store.Sets())
			} else {
				assert.Equal(t, "application/problem+json", hdr.Get("Content-Type"))
				assert.Contains(t, body, `"status":400`)
				assert.Equal(t, 1, store.Sets(), "rejected request must not touch the mode")
			}
		})
	}
}

func TestModeAndStatus(t *testing.T) {
	store := &th.ModeStore{}
	addr, done := startControlPage(t, store)
	defer done()

	status, _, body := th.Get(t, addr, th.TestAPAddress, "/mode")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"mode":"dpad"}`, body)

	status, hdr, body := th.Get(t, addr, th.TestAPAddress, "/status")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", hdr.Get("Content-Type"))
	assert.JSONEq(t, `{"mode":"dpad","dpad":true,"apAddress":"192.168.4.1"}`, body)

	store.SetMode(translator.ModeAnalog)
	_, _, body = th.Get(t, addr, th.TestAPAddress, "/status")
	assert.JSONEq(t, `{"mode":"analog","dpad":false,"apAddress":"192.168.4.1"}`, body)
}

func TestUnknownStoredModeReportsDPad(t *testing.T) {
	store := &th.ModeStore{}
	store.SetMode(translator.Mode(7))
	addr, done := startControlPage(t, store)
	defer done()

	_, _, body := th.Get(t, addr, th.TestAPAddress, "/status")
	assert.JSONEq(t, `{"mode":"dpad","dpad":true,"apAddress":"192.168.4.1"}`, body)
}

func TestIndexPage(t *testing.T) {
	store := &th.ModeStore{}
	store.SetMode(translator.ModeAnalog)
	addr, done := startControlPage(t, store)
	defer done()

	status, hdr, body := th.Get(t, addr, th.TestAPAddress, "/")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "text/html; charset=utf-8", hdr.Get("Content-Type"))
	assert.Contains(t, body, "<strong>left analog stick</strong>")
	assert.Contains(t, body, `href="/setMode?mode=dpad"`)
	assert.Contains(t, body, `href="/setMode?mode=analog"`)
	assert.Contains(t, body, `class="mode active" href="/setMode?mode=analog"`)
	assert.Equal(t, 1, strings.Count(body, "active\""))
}

func TestCaptiveFlow(t *testing.T) {
	store := &th.ModeStore{}
	addr, done := startControlPage(t, store)
	defer done()

	status, hdr, _ := th.Get(t, addr, "example.com", "/setMode?mode=analog")
	assert.Equal(t, http.StatusFound, status)
	assert.Equal(t, "http://192.168.4.1/", hdr.Get("Location"))
	assert.Equal(t, translator.ModeDPad, store.Mode(), "redirected request must not reach the handler")

	status, _, body := th.Get(t, addr, "connectivitycheck.gstatic.com", "/generate_204")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<h1>wiibridge</h1>")

	status, hdr, _ = th.Get(t, addr, th.TestAPAddress, "/nothing/here")
	assert.Equal(t, http.StatusFound, status)
	assert.Equal(t, "http://192.168.4.1/", hdr.Get("Location"))
}
