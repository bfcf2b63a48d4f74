package testing

import (
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wiibridge/wiibridge/internal/server/api"
	"github.com/wiibridge/wiibridge/translator"
)

// TestAPAddress is the access point address test servers are configured with.
const TestAPAddress = "192.168.4.1"

// StartAPIServer starts an API server on a free loopback port and calls
// register to allow the caller to register the handlers needed for the test.
// Returns the address and a function to call when done.
func StartAPIServer(t *testing.T, register func(r *api.Router, apiSrv *api.Server)) (addr string, done func()) {
	t.Helper()
	apiSrv := api.New("127.0.0.1:0", api.ServerConfig{APAddress: TestAPAddress}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if register != nil {
		register(apiSrv.Router(), apiSrv)
	}
	if err := apiSrv.Start(); err != nil {
		t.Fatalf("api start failed: %v", err)
	}

	done = func() {
		apiSrv.Close()
		time.Sleep(10 * time.Millisecond)
	}
	return apiSrv.Addr(), done
}

// NoRedirectClient returns an http.Client that hands back 3xx responses
// instead of following them.
func NoRedirectClient() *http.Client {
	return &http.Client{
		Timeout: 2 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Get issues a GET for path against addr with the Host header set to host
// and returns status, headers and body.
func Get(t *testing.T, addr, host, path string) (int, http.Header, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "http://"+addr+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if host != "" {
		req.Host = host
	}
	resp, err := NoRedirectClient().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, resp.Header, string(b)
}

// ModeStore is an in-memory api.ModeStore.
type ModeStore struct {
	mode atomic.Uint32
	sets atomic.Int32
}

func (s *ModeStore) Mode() translator.Mode { return translator.Mode(s.mode.Load()) }

func (s *ModeStore) SetMode(m translator.Mode) {
	s.sets.Add(1)
	s.mode.Store(uint32(m))
}

// Sets returns how many times SetMode was called.
func (s *ModeStore) Sets() int { return int(s.sets.Load()) }
