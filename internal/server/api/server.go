package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Server serves the control page and applies the captive-portal policy to
// every request before routing it.
type Server struct {
	addr   string
	ln     net.Listener
	srv    *http.Server
	logger *slog.Logger
	router *Router
	config ServerConfig
}

// New creates a new API server listening on addr once started.
func New(addr string, config ServerConfig, logger *slog.Logger) *Server {
	a := &Server{
		addr:   addr,
		logger: logger,
		config: config,
	}
	a.router = NewRouter()
	return a
}

// Router returns the router used by the API server so callers can register handlers.
func (a *Server) Router() *Router { return a.router }

// Config returns the server configuration.
func (a *Server) Config() ServerConfig { return a.config }

// Addr returns the bound listen address after Start, the configured one before.
func (a *Server) Addr() string {
	if a.ln != nil {
		return a.ln.Addr().String()
	}
	return a.addr
}

// Start listens on the configured address and serves requests in the background.
func (a *Server) Start() error {
	ln, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}
	a.ln = ln
	a.srv = &http.Server{
		Handler:           a,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.logger.Info("API listening", "addr", ln.Addr().String(), "ap", a.config.APAddress)
	go func() {
		if err := a.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("API serve error", "error", err)
			return
		}
		a.logger.Info("API server stopped")
	}()
	return nil
}

// Close stops the API server.
func (a *Server) Close() {
	if a.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := a.srv.Shutdown(ctx); err != nil {
		_ = a.srv.Close()
	}
}

// ServeHTTP implements http.Handler.
func (a *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqLogger := a.logger.With("remote", r.RemoteAddr)
	path := r.URL.Path
	ap := a.config.APAddress

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	var h HandlerFunc
	switch {
	case IsProbePath(path):
		reqLogger.Debug("captive probe", "host", r.Host, "path", path)
		h = a.router.Match("/")
	case IsForeignHost(r.Host, ap):
		reqLogger.Debug("captive redirect", "host", r.Host, "path", path)
		redirectToPortal(w, ap)
		return
	default:
		h = a.router.Match(path)
	}
	if h == nil {
		reqLogger.Debug("api unknown path", "path", path)
		redirectToPortal(w, ap)
		return
	}

	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	req := &Request{Ctx: r.Context(), Method: r.Method, Host: r.Host, Path: path, Params: params}
	res := &Response{}
	if err := h(req, res, reqLogger); err != nil {
		reqLogger.Error("api handler error", "path", path, "error", err)
		a.writeError(w, err)
		return
	}
	reqLogger.Debug("api handler success", "path", path)
	a.writeOK(w, res)
}

func (a *Server) writeError(w http.ResponseWriter, err error) {
	apiErr := WrapError(err)
	if apiErr.Status < 400 || apiErr.Status > 599 {
		apiErr = ErrInternal(apiErr.Error())
	}
	problemJSON, _ := json.Marshal(apiErr)
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(apiErr.Status)
	_, _ = w.Write(append(problemJSON, '\n'))
}

func (a *Server) writeOK(w http.ResponseWriter, res *Response) {
	body := res.Body
	ct := res.ContentType
	if res.JSON != "" {
		body = res.JSON + "\n"
		ct = "application/json"
	}
	if ct == "" {
		ct = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
