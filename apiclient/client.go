package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apitypes "github.com/wiibridge/wiibridge/apitypes"
)

// Client provides a high-level interface to the receiver's control page,
// handling request formatting, response parsing, and error handling.
type Client struct{ transport *Transport }

// New constructs a high-level API client. addr is a host[:port] or a base URL.
func New(addr string) *Client { return &Client{transport: NewTransport(addr)} }

// NewWithConfig constructs a client with custom transport timeouts.
func NewWithConfig(addr string, cfg *Config) *Client {
	return &Client{transport: NewTransportWithConfig(addr, cfg)}
}

// WithTransport constructs a Client using a custom Transport implementation.
func WithTransport(t *Transport) *Client { return &Client{transport: t} }

// GetMode returns the current translation mode.
func (c *Client) GetMode() (*apitypes.ModeResponse, error) {
	return c.GetModeCtx(context.Background())
}

func (c *Client) GetModeCtx(ctx context.Context) (*apitypes.ModeResponse, error) {
	const path = "/mode"
	raw, err := c.transport.DoCtx(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.ModeResponse](raw)
}

// SetMode switches the translation mode and returns the server's
// confirmation text. An unknown mode comes back as a 400 *apitypes.ApiError.
func (c *Client) SetMode(mode string) (string, error) {
	return c.SetModeCtx(context.Background(), mode)
}

func (c *Client) SetModeCtx(ctx context.Context, mode string) (string, error) {
	const path = "/setMode"
	raw, err := c.transport.DoCtx(ctx, path, map[string]string{"mode": mode})
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", errors.New("empty response")
	}
	return raw, nil
}

// Status returns the mode, dpad flag and access point address.
func (c *Client) Status() (*apitypes.StatusResponse, error) {
	return c.StatusCtx(context.Background())
}

func (c *Client) StatusCtx(ctx context.Context) (*apitypes.StatusResponse, error) {
	const path = "/status"
	raw, err := c.transport.DoCtx(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.StatusResponse](raw)
}

func parse[T any](data string) (*T, error) {
	if data == "" {
		return nil, errors.New("empty response")
	}
	var problem apitypes.ApiError
	if err := json.Unmarshal([]byte(data), &problem); err == nil && (problem.Status != 0 || problem.Title != "") {
		return nil, &problem
	}
	var out T
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
