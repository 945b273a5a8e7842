package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/botprofile/personaicons/icons"
	apperrors "github.com/botprofile/personaicons/internal/platform/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	iconURIScheme      = "icon"
	iconURITemplate    = "icon://{set}/{id}"
	iconResourceFormat = "icon://%s/%s"
)

// IconURI returns the resource URI of one icon.
func IconURI(setID, iconID string) string {
	return fmt.Sprintf(iconResourceFormat, setID, iconID)
}

// registerIconResources publishes one resource per icon plus a template that
// resolves aliases.
func registerIconResources(ctx context.Context, server *mcp.Server, svc IconService) error {
	sets, err := svc.Sets(ctx)
	if err != nil {
		return err
	}
	handler := iconResourceHandler(svc)
	for _, set := range sets {
		detail, err := svc.Set(ctx, set.ID)
		if err != nil {
			return err
		}
		for _, definition := range detail.Definitions {
			description := definition.Description
			if description == "" {
				description = definition.Visual
			}
			server.AddResource(&mcp.Resource{
				URI:         IconURI(set.ID, definition.ID),
				Name:        set.ID + "/" + definition.ID,
				Title:       definition.Name,
				Description: description,
				MIMEType:    icons.MIMEType,
			}, handler)
		}
	}
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "icon",
		Title:       "Persona icon",
		URITemplate: iconURITemplate,
		Description: "SVG icon by set and icon id. Set and icon aliases are accepted.",
		MIMEType:    icons.MIMEType,
	}, handler)
	return nil
}

func iconResourceHandler(svc IconService) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("icon uri is required; use URI format %s", iconURITemplate)
		}
		uri := req.Params.URI
		setID, iconID, err := parseIconURI(uri)
		if err != nil {
			return nil, fmt.Errorf("parse icon uri: %w", err)
		}

		icon, err := svc.Icon(ctx, setID, iconID)
		if err != nil {
			switch apperrors.CodeOf(err) {
			case apperrors.CodeIconNotFound, apperrors.CodeIconSetNotFound:
				return nil, mcp.ResourceNotFoundError(uri)
			}
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: icons.MIMEType,
					Text:     icon.SVG,
				},
			},
		}, nil
	}
}

// parseIconURI extracts set and icon ids from icon://{set}/{id}.
func parseIconURI(uri string) (string, string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", "", err
	}
	if parsed.Scheme != iconURIScheme {
		return "", "", fmt.Errorf("unexpected scheme %q", parsed.Scheme)
	}
	setID := strings.TrimSpace(parsed.Host)
	iconID := strings.Trim(parsed.Path, "/")
	if setID == "" || iconID == "" || strings.Contains(iconID, "/") {
		return "", "", fmt.Errorf("expected %s, got %q", iconURITemplate, uri)
	}
	return setID, iconID, nil
}
