package mcp

import (
	"context"
	"fmt"

	"github.com/botprofile/personaicons/internal/platform/branding"
	"github.com/botprofile/personaicons/internal/services/iconserver/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// IconService is the subset of the icon service used by MCP handlers.
type IconService interface {
	Sets(ctx context.Context) ([]service.SetSummary, error)
	Set(ctx context.Context, setID string) (service.SetDetail, error)
	Icon(ctx context.Context, setID, iconID string) (service.Icon, error)
	DefaultIcon(ctx context.Context, setID, entityType, entityID string) (service.Icon, error)
}

// NewServer builds an MCP server with icon resources and tools registered.
func NewServer(ctx context.Context, svc IconService) (*mcp.Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("icon service is required")
	}
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler(svc),
	})
	if err := registerIconResources(ctx, server, svc); err != nil {
		return nil, fmt.Errorf("register icon resources: %w", err)
	}
	registerIconTools(server, svc)
	return server, nil
}
