package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/botprofile/personaicons/internal/platform/discovery"
	"github.com/botprofile/personaicons/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportNone disables MCP.
	TransportNone TransportKind = "none"
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport    TransportKind
	HTTPAddr     string
	AllowedHosts []string
}

// ParseTransport validates a transport name. Empty selects TransportNone.
func ParseTransport(raw string) (TransportKind, error) {
	switch kind := TransportKind(raw); kind {
	case "":
		return TransportNone, nil
	case TransportNone, TransportStdio, TransportHTTP:
		return kind, nil
	default:
		return "", fmt.Errorf("transport %q is not supported", raw)
	}
}

// Run serves MCP on the configured transport and blocks until ctx is
// cancelled or the client disconnects.
func Run(ctx context.Context, svc IconService, cfg Config) error {
	kind, err := ParseTransport(string(cfg.Transport))
	if err != nil {
		return err
	}
	if kind == TransportNone {
		return nil
	}

	server, err := NewServer(ctx, svc)
	if err != nil {
		return err
	}
	switch kind {
	case TransportStdio:
		return runWithTransport(ctx, server, &mcp.StdioTransport{})
	default:
		addr := discovery.OrDefaultHTTPAddr(cfg.HTTPAddr, discovery.ServiceIconMCP)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return ServeHTTP(ctx, listener, server, cfg.AllowedHosts)
	}
}

// runWithTransport serves one session over transport until it ends.
func runWithTransport(ctx context.Context, server *mcp.Server, transport mcp.Transport) error {
	err := server.Run(ctx, transport)
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("serve MCP: %w", err)
}

// NewHTTPHandler returns the streamable HTTP handler for server guarded
// against non-local hosts.
func NewHTTPHandler(server *mcp.Server, allowedHosts []string) http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	return newHostGuard(handler, allowedHosts)
}

// ServeHTTP serves MCP over streamable HTTP on listener until ctx is
// cancelled. The listener is closed on return.
func ServeHTTP(ctx context.Context, listener net.Listener, server *mcp.Server, allowedHosts []string) error {
	httpServer := &http.Server{
		Handler:           NewHTTPHandler(server, allowedHosts),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("MCP HTTP listening at %v", listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			_ = httpServer.Close()
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve MCP HTTP: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP: %w", err)
	}
}
