package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/botprofile/personaicons/icons"
	apperrors "github.com/botprofile/personaicons/internal/platform/errors"
	"github.com/botprofile/personaicons/internal/services/iconserver/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	lookupIconToolName   = "lookup_icon"
	listIconSetsToolName = "list_icon_sets"
	defaultIconToolName  = "default_icon"
)

// LookupIconInput selects one icon.
type LookupIconInput struct {
	Set        string `json:"set" jsonschema:"icon set id or alias such as archetypes or green_ember or meta"`
	ID         string `json:"id" jsonschema:"icon id or alias such as architect or heather"`
	IncludeSVG bool   `json:"include_svg,omitempty" jsonschema:"include the raw SVG markup in the result"`
	DataURI    bool   `json:"data_uri,omitempty" jsonschema:"include a base64 data URI of the SVG in the result"`
}

// DefaultIconInput identifies the entity a default icon is picked for.
type DefaultIconInput struct {
	Set        string `json:"set" jsonschema:"icon set id or alias"`
	EntityType string `json:"entity_type" jsonschema:"kind of entity such as profile or bot"`
	EntityID   string `json:"entity_id" jsonschema:"stable entity identifier"`
	IncludeSVG bool   `json:"include_svg,omitempty" jsonschema:"include the raw SVG markup in the result"`
}

// ListIconSetsInput takes no arguments.
type ListIconSetsInput struct{}

// IconResult describes one resolved icon.
type IconResult struct {
	Set         string `json:"set" jsonschema:"canonical icon set id"`
	ID          string `json:"id" jsonschema:"canonical icon id"`
	Name        string `json:"name" jsonschema:"display name"`
	Description string `json:"description,omitempty" jsonschema:"short description"`
	Visual      string `json:"visual,omitempty" jsonschema:"visual notes for the drawing"`
	Prop        string `json:"prop,omitempty" jsonschema:"signature prop drawn with the figure"`
	Traits      string `json:"traits,omitempty" jsonschema:"Big Five annotation such as A4 C4 E3 N3 O4"`
	Members     int    `json:"members,omitempty" jsonschema:"number of icons a collection icon stands for"`
	URI         string `json:"uri" jsonschema:"resource URI of the icon"`
	SVG         string `json:"svg,omitempty" jsonschema:"raw SVG markup"`
	DataURI     string `json:"data_uri,omitempty" jsonschema:"base64 data URI of the SVG"`
}

// IconSetEntry describes one icon set.
type IconSetEntry struct {
	ID      string   `json:"id" jsonschema:"canonical icon set id"`
	Name    string   `json:"name" jsonschema:"display name"`
	Size    int      `json:"size" jsonschema:"number of icons"`
	Aliases []string `json:"aliases,omitempty" jsonschema:"accepted aliases"`
	IconIDs []string `json:"icon_ids" jsonschema:"icon ids in authored order"`
}

// ListIconSetsResult lists every icon set.
type ListIconSetsResult struct {
	Sets []IconSetEntry `json:"sets" jsonschema:"icon sets in catalog order"`
}

func registerIconTools(server *mcp.Server, svc IconService) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        lookupIconToolName,
		Description: "Looks up a persona icon by set and id and returns its metadata and optionally its SVG.",
	}, lookupIconHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        listIconSetsToolName,
		Description: "Lists the icon sets with their icon ids.",
	}, listIconSetsHandler(svc))
	mcp.AddTool(server, &mcp.Tool{
		Name:        defaultIconToolName,
		Description: "Picks the stable default icon of a set for an entity that has not chosen one.",
	}, defaultIconHandler(svc))
}

func lookupIconHandler(svc IconService) mcp.ToolHandlerFor[LookupIconInput, IconResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LookupIconInput) (*mcp.CallToolResult, IconResult, error) {
		icon, err := svc.Icon(ctx, input.Set, input.ID)
		if err != nil {
			return nil, IconResult{}, toolError(err)
		}
		result := iconResult(icon, input.IncludeSVG)
		if input.DataURI {
			result.DataURI = icons.DataURI(icon.SVG)
		}
		return nil, result, nil
	}
}

func defaultIconHandler(svc IconService) mcp.ToolHandlerFor[DefaultIconInput, IconResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DefaultIconInput) (*mcp.CallToolResult, IconResult, error) {
		icon, err := svc.DefaultIcon(ctx, input.Set, input.EntityType, input.EntityID)
		if err != nil {
			return nil, IconResult{}, toolError(err)
		}
		return nil, iconResult(icon, input.IncludeSVG), nil
	}
}

func listIconSetsHandler(svc IconService) mcp.ToolHandlerFor[ListIconSetsInput, ListIconSetsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListIconSetsInput) (*mcp.CallToolResult, ListIconSetsResult, error) {
		sets, err := svc.Sets(ctx)
		if err != nil {
			return nil, ListIconSetsResult{}, toolError(err)
		}
		result := ListIconSetsResult{Sets: make([]IconSetEntry, 0, len(sets))}
		for _, set := range sets {
			detail, err := svc.Set(ctx, set.ID)
			if err != nil {
				return nil, ListIconSetsResult{}, toolError(err)
			}
			entry := IconSetEntry{
				ID:      set.ID,
				Name:    set.Name,
				Size:    set.Size,
				Aliases: set.Aliases,
				IconIDs: make([]string, 0, len(detail.Definitions)),
			}
			for _, definition := range detail.Definitions {
				entry.IconIDs = append(entry.IconIDs, definition.ID)
			}
			result.Sets = append(result.Sets, entry)
		}
		return nil, result, nil
	}
}

func iconResult(icon service.Icon, includeSVG bool) IconResult {
	definition := icon.Definition
	result := IconResult{
		Set:         icon.Set,
		ID:          definition.ID,
		Name:        definition.Name,
		Description: definition.Description,
		Visual:      definition.Visual,
		Prop:        definition.Prop,
		Members:     definition.Members,
		URI:         IconURI(icon.Set, definition.ID),
	}
	if definition.Traits.Defined() {
		result.Traits = definition.Traits.String()
	}
	if includeSVG {
		result.SVG = icon.SVG
	}
	return result
}

// toolError prefixes the domain code so clients can branch on it.
func toolError(err error) error {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		return err
	}
	return fmt.Errorf("%s: %w", code, err)
}

// completionHandler completes the set and id arguments of the icon resource
// template.
func completionHandler(svc IconService) func(context.Context, *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return func(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
		values := []string{}
		if req != nil && req.Params != nil {
			var err error
			values, err = completeArgument(ctx, svc, req.Params)
			if err != nil {
				return nil, err
			}
		}
		return &mcp.CompleteResult{
			Completion: mcp.CompletionResultDetails{
				Values: values,
				Total:  len(values),
			},
		}, nil
	}
}

func completeArgument(ctx context.Context, svc IconService, params *mcp.CompleteParams) ([]string, error) {
	prefix := params.Argument.Value
	var candidates []string
	switch params.Argument.Name {
	case "set":
		sets, err := svc.Sets(ctx)
		if err != nil {
			return nil, err
		}
		for _, set := range sets {
			candidates = append(candidates, set.ID)
		}
	case "id":
		setIDs := []string{}
		if params.Context != nil && params.Context.Arguments["set"] != "" {
			setIDs = append(setIDs, params.Context.Arguments["set"])
		} else {
			sets, err := svc.Sets(ctx)
			if err != nil {
				return nil, err
			}
			for _, set := range sets {
				setIDs = append(setIDs, set.ID)
			}
		}
		for _, setID := range setIDs {
			detail, err := svc.Set(ctx, setID)
			if err != nil {
				// Unknown sets complete to nothing.
				continue
			}
			for _, definition := range detail.Definitions {
				candidates = append(candidates, definition.ID)
			}
		}
	}

	values := []string{}
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, prefix) {
			values = append(values, candidate)
		}
	}
	return values, nil
}
