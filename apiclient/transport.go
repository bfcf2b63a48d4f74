package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apitypes "github.com/wiibridge/wiibridge/apitypes"
)

// Config controls low-level transport behavior such as timeouts.
type Config struct {
	Timeout time.Duration
}

func defaultConfig() Config {
	return Config{Timeout: 5 * time.Second}
}

// Transport performs single GET requests against the control page.
// A 4xx/5xx problem+json response is returned as *apitypes.ApiError.
// Redirects are not followed: the control page only redirects hosts it
// does not consider its own, so a redirect means a wrong address.
type Transport struct {
	base string
	mock func(path string, query map[string]string) (string, error)
	http *http.Client
}

// NewTransport creates a new low-level transport.
func NewTransport(addr string) *Transport { return NewTransportWithConfig(addr, nil) }

// NewTransportWithConfig creates a new low-level transport with optional timeouts configuration.
func NewTransportWithConfig(addr string, cfg *Config) *Transport {
	c := defaultConfig()
	if cfg != nil {
		c = *cfg
	}
	return &Transport{
		base: baseURL(addr),
		http: &http.Client{
			Timeout: c.Timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// NewMockTransport creates a transport that returns canned responses without real networking.
// The responder function receives the path and query and returns the raw body.
func NewMockTransport(responder func(path string, query map[string]string) (string, error)) *Transport {
	return &Transport{base: "mock", mock: responder}
}

func baseURL(addr string) string {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return strings.TrimSuffix(addr, "/")
}

// Do sends a request and returns the response body.
func (t *Transport) Do(path string, query map[string]string) (string, error) {
	return t.DoCtx(context.Background(), path, query)
}

// DoCtx is like Do but honors the provided context.
func (t *Transport) DoCtx(ctx context.Context, path string, query map[string]string) (string, error) {
	if t.mock != nil {
		return t.mock(path, query)
	}
	u := t.base + path
	if len(query) > 0 {
		v := url.Values{}
		for k, val := range query {
			v.Set(k, val)
		}
		u += "?" + v.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := t.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	switch {
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		return "", fmt.Errorf("redirected to %s (use the access point address)", resp.Header.Get("Location"))
	case resp.StatusCode >= 400:
		var problem apitypes.ApiError
		if err := json.Unmarshal(body, &problem); err == nil && problem.Status != 0 {
			return "", &problem
		}
		return "", &apitypes.ApiError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode), Detail: strings.TrimSpace(string(body))}
	}
	return strings.TrimSuffix(string(body), "\n"), nil
}
