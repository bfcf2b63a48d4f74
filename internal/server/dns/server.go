// Package dns answers every address lookup with the access point address so
// that associated clients resolve any name to the control page.
package dns

import (
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	mdns "github.com/miekg/dns"
)

// ServerConfig represents the captive DNS configuration of the receive command.
type ServerConfig struct {
	Enabled bool          `help:"Answer all DNS queries with the access point address" default:"true" negatable:"" env:"WIIBRIDGE_DNS_ENABLED"`
	Addr    string        `help:"DNS listen address (udp)" default:":53" env:"WIIBRIDGE_DNS_ADDR"`
	TTL     time.Duration `help:"TTL of captive answers" default:"60s" env:"WIIBRIDGE_DNS_TTL"`
}

// Server is a UDP responder that resolves every A query to one address.
// Other query types get an empty NOERROR answer.
type Server struct {
	cfg    ServerConfig
	ip     net.IP
	logger *slog.Logger

	mu   sync.Mutex
	srv  *mdns.Server
	conn net.PacketConn
}

// New returns a Server answering with apAddress, which must be an IPv4 literal.
func New(cfg ServerConfig, apAddress string, logger *slog.Logger) (*Server, error) {
	ip := net.ParseIP(apAddress).To4()
	if ip == nil {
		return nil, fmt.Errorf("captive dns needs an IPv4 access point address, got %q", apAddress)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 60 * time.Second
	}
	return &Server{cfg: cfg, ip: ip, logger: logger}, nil
}

// Start binds the UDP socket and serves in the background.
func (s *Server) Start() error {
	pc, err := net.ListenPacket("udp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen dns %s: %w", s.cfg.Addr, err)
	}
	srv := &mdns.Server{PacketConn: pc, Handler: mdns.HandlerFunc(s.handle)}

	s.mu.Lock()
	s.srv = srv
	s.conn = pc
	s.mu.Unlock()

	started := make(chan struct{})
	srv.NotifyStartedFunc = func() { close(started) }
	go func() {
		if err := srv.ActivateAndServe(); err != nil {
			s.logger.Error("DNS serve error", "error", err)
		}
	}()
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		return fmt.Errorf("dns server on %s did not start", s.cfg.Addr)
	}
	s.logger.Info("captive DNS listening", "addr", pc.LocalAddr().String(), "answer", s.ip.String())
	return nil
}

// Addr returns the bound address after Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return s.cfg.Addr
	}
	return s.conn.LocalAddr().String()
}

// Close stops the server.
func (s *Server) Close() error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown()
}

func (s *Server) handle(w mdns.ResponseWriter, req *mdns.Msg) {
	m := s.answer(req)
	if err := w.WriteMsg(m); err != nil {
		s.logger.Debug("dns write failed", "error", err)
	}
}

func (s *Server) answer(req *mdns.Msg) *mdns.Msg {
	m := new(mdns.Msg)
	m.SetReply(req)
	m.Authoritative = true
	m.RecursionAvailable = true
	ttl := uint32(s.cfg.TTL / time.Second)
	for _, q := range req.Question {
		if q.Qclass != mdns.ClassINET || q.Qtype != mdns.TypeA {
			continue
		}
		m.Answer = append(m.Answer, &mdns.A{
			Hdr: mdns.RR_Header{Name: q.Name, Rrtype: mdns.TypeA, Class: mdns.ClassINET, Ttl: ttl},
			A:   s.ip,
		})
		s.logger.Debug("captive dns answer", "name", q.Name)
	}
	return m
}
