// Package server wires the icon HTTP and MCP runtimes.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/botprofile/personaicons/internal/platform/timeouts"
	"github.com/botprofile/personaicons/internal/services/iconserver/service"
	iconhttp "github.com/botprofile/personaicons/internal/services/iconserver/transport/http"
	iconmcp "github.com/botprofile/personaicons/internal/services/iconserver/transport/mcp"
	"golang.org/x/sync/errgroup"
)

// Config configures the icon server runtime.
type Config struct {
	// HTTPAddr is the listen address of the icon HTTP API.
	HTTPAddr string
	// ServiceName names HTTP spans.
	ServiceName string
	MCP         iconmcp.Config
}

// Server hosts the icon HTTP API and, optionally, an MCP adapter.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	service    *service.Service
	mcp        iconmcp.Config
}

// New creates a configured icon server listening on cfg.HTTPAddr.
func New(cfg Config) (*Server, error) {
	if _, err := iconmcp.ParseTransport(string(cfg.MCP.Transport)); err != nil {
		return nil, err
	}
	svc, err := service.New()
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "iconserver"
	}
	handler := iconhttp.WithTracing(iconhttp.NewHandler(svc), serviceName)
	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		service: svc,
		mcp:     cfg.MCP,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an icon server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs HTTP and MCP until ctx is cancelled or one of them fails.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	group, groupCtx := errgroup.WithContext(ctx)
	log.Printf("icon server listening at %v", s.listener.Addr())
	group.Go(func() error {
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		return iconmcp.Run(groupCtx, s.service, s.mcp)
	})
	return group.Wait()
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}
