package api

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wiibridge/wiibridge/translator"
)

// ModeStore is the only state the control page may touch.
type ModeStore interface {
	Mode() translator.Mode
	SetMode(m translator.Mode)
}

// Request contains the query parameters and request metadata.
type Request struct {
	Ctx    context.Context
	Method string
	Host   string
	Path   string
	// Params holds the first value of every query parameter.
	Params map[string]string
}

// Response is filled in by a handler. JSON takes precedence over Body.
type Response struct {
	JSON        string
	Body        string
	ContentType string
}

// HandlerFunc processes a request and populates the response.
// Returns an error on failure. The logger provided is a request-scoped logger
// enriched with remote address metadata by the API server.
type HandlerFunc func(req *Request, res *Response, logger *slog.Logger) error

// Router matches request paths exactly, ignoring case and a trailing slash.
type Router struct {
	routes []routeEntry
}

type routeEntry struct {
	pattern string
	handler HandlerFunc
}

// NewRouter returns a new Router instance.
func NewRouter() *Router { return &Router{} }

// Register registers a handler for a path like "/setMode".
func (r *Router) Register(pattern string, handler HandlerFunc) {
	r.routes = append(r.routes, routeEntry{pattern: normalizePath(pattern), handler: handler})
}

// Match returns the HandlerFunc registered for path, or nil.
func (r *Router) Match(path string) HandlerFunc {
	p := normalizePath(path)
	for _, rt := range r.routes {
		if rt.pattern == p {
			return rt.handler
		}
	}
	return nil
}

func normalizePath(p string) string {
	p = strings.ToLower(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}
