// Package iconserver parses icon server flags and starts the HTTP API with an
// optional MCP adapter.
package iconserver

import (
	"context"
	"flag"
	"strings"

	"github.com/botprofile/personaicons/internal/platform/cmd"
	"github.com/botprofile/personaicons/internal/platform/config"
	"github.com/botprofile/personaicons/internal/platform/discovery"
	server "github.com/botprofile/personaicons/internal/services/iconserver/app"
	iconmcp "github.com/botprofile/personaicons/internal/services/iconserver/transport/mcp"
)

// Config holds icon server command configuration.
type Config struct {
	HTTPAddr        string   `env:"PERSONA_ICONS_HTTP_ADDR"`
	MCPTransport    string   `env:"PERSONA_ICONS_MCP_TRANSPORT"     envDefault:"none"`
	MCPHTTPAddr     string   `env:"PERSONA_ICONS_MCP_HTTP_ADDR"`
	MCPAllowedHosts []string `env:"PERSONA_ICONS_MCP_ALLOWED_HOSTS" envSeparator:","`
}

// ParseConfig parses environment and flags into a Config. A nil environment
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	var cfg Config
	var err error
	if environment == nil {
		err = cmd.ParseConfig(&cfg)
	} else {
		err = config.ParseEnvFrom(&cfg, environment)
	}
	if err != nil {
		return Config{}, err
	}
	cfg.HTTPAddr = discovery.OrDefaultHTTPAddr(cfg.HTTPAddr, discovery.ServiceIconHTTP)
	cfg.MCPHTTPAddr = discovery.OrDefaultHTTPAddr(cfg.MCPHTTPAddr, discovery.ServiceIconMCP)

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "icon HTTP API address")
	fs.StringVar(&cfg.MCPTransport, "mcp-transport", cfg.MCPTransport, "MCP transport: none, stdio, or http")
	fs.StringVar(&cfg.MCPHTTPAddr, "mcp-http-addr", cfg.MCPHTTPAddr, "MCP HTTP address (for http transport)")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := iconmcp.ParseTransport(strings.TrimSpace(cfg.MCPTransport)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the icon server with telemetry.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceIconServer, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			HTTPAddr:    cfg.HTTPAddr,
			ServiceName: cmd.ServiceIconServer,
			MCP: iconmcp.Config{
				Transport:    iconmcp.TransportKind(strings.TrimSpace(cfg.MCPTransport)),
				HTTPAddr:     cfg.MCPHTTPAddr,
				AllowedHosts: cfg.MCPAllowedHosts,
			},
		})
	})
}
