// Package service resolves icon requests against the embedded icon library.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/botprofile/personaicons/icons"
	"github.com/botprofile/personaicons/internal/platform/assets/catalog"
	apperrors "github.com/botprofile/personaicons/internal/platform/errors"
	"github.com/botprofile/personaicons/internal/platform/telemetry/metrics"
)

// Icon is one resolved icon with its payload.
type Icon struct {
	Set        string
	Definition icons.Definition
	SVG        string
}

// SetSummary describes one icon set.
type SetSummary struct {
	ID      string
	Name    string
	Size    int
	Aliases []string
}

// SetDetail is a set summary plus its ordered definitions.
type SetDetail struct {
	SetSummary
	Definitions []icons.Definition
}

// Service answers icon queries. It is safe for concurrent use.
type Service struct {
	manifest catalog.Manifest
}

// New returns a service over the embedded icon set manifest.
func New() (*Service, error) {
	manifest, err := catalog.EmbeddedManifest()
	if err != nil {
		return nil, fmt.Errorf("load icon set manifest: %w", err)
	}
	return NewWithManifest(manifest), nil
}

// NewWithManifest returns a service over an explicit manifest.
func NewWithManifest(manifest catalog.Manifest) *Service {
	return &Service{manifest: manifest}
}

// Sets lists every icon set in manifest order.
func (s *Service) Sets(ctx context.Context) ([]SetSummary, error) {
	summaries := make([]SetSummary, 0, len(s.manifest.SetOrder))
	for _, setID := range s.manifest.SetOrder {
		summary, err := s.summary(setID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Set returns one icon set with its definitions. Set aliases are accepted.
func (s *Service) Set(ctx context.Context, setID string) (SetDetail, error) {
	canonical, err := s.normalizeSet(setID)
	if err != nil {
		return SetDetail{}, err
	}
	summary, err := s.summary(canonical)
	if err != nil {
		return SetDetail{}, err
	}
	collection, err := icons.CollectionByID(canonical)
	if err != nil {
		return SetDetail{}, apperrors.FromLookup(err, map[string]string{"Set": canonical})
	}
	return SetDetail{SetSummary: summary, Definitions: collection.Definitions()}, nil
}

// Icon resolves one icon. Set and icon aliases are accepted; the returned
// Icon carries canonical identifiers.
func (s *Service) Icon(ctx context.Context, setID, iconID string) (Icon, error) {
	canonical, err := s.normalizeSet(setID)
	if err != nil {
		metrics.RecordLookup("", metrics.ResultUnknownSet)
		return Icon{}, err
	}
	if strings.TrimSpace(iconID) == "" {
		metrics.RecordLookup(canonical, metrics.ResultInvalid)
		return Icon{}, apperrors.WithMetadata(apperrors.CodeIconIDRequired, "icon id is required", map[string]string{"Set": canonical})
	}
	resolved := s.manifest.NormalizeIconID(iconID)
	icon, err := s.load(canonical, resolved)
	if err != nil {
		metrics.RecordLookup(canonical, metrics.ResultMiss)
		return Icon{}, err
	}
	metrics.RecordLookup(canonical, metrics.ResultHit)
	return icon, nil
}

// DefaultIcon picks the stable default icon for an entity that has not chosen
// one. The same inputs always yield the same icon.
func (s *Service) DefaultIcon(ctx context.Context, setID, entityType, entityID string) (Icon, error) {
	canonical, err := s.normalizeSet(setID)
	if err != nil {
		return Icon{}, err
	}
	iconID, err := s.manifest.DeterministicIcon(catalog.PickerInput{
		EntityType: entityType,
		EntityID:   entityID,
		SetID:      canonical,
	})
	if err != nil {
		return Icon{}, apperrors.FromLookup(err, map[string]string{"Set": canonical})
	}
	metrics.RecordDefaultPick(canonical)
	return s.load(canonical, iconID)
}

// IconKey returns the versioned storage key of a resolved icon.
func (s *Service) IconKey(icon Icon) (string, error) {
	key, err := catalog.IconKey(icon.Set, icon.Definition.ID)
	if err != nil {
		return "", apperrors.FromLookup(err, map[string]string{"Set": icon.Set, "Icon": icon.Definition.ID})
	}
	return key, nil
}

func (s *Service) normalizeSet(setID string) (string, error) {
	raw := strings.TrimSpace(setID)
	if raw == "" {
		return "", apperrors.New(apperrors.CodeIconSetRequired, "icon set is required")
	}
	canonical, ok := s.manifest.NormalizeSetID(raw)
	if !ok {
		return "", apperrors.FromLookup(
			fmt.Errorf("%w: %q", catalog.ErrSetNotFound, raw),
			map[string]string{"Set": raw},
		)
	}
	return canonical, nil
}

func (s *Service) load(setID, iconID string) (Icon, error) {
	meta := map[string]string{"Set": setID, "Icon": iconID}
	if !s.manifest.ValidateIconInSet(setID, iconID) {
		return Icon{}, apperrors.FromLookup(fmt.Errorf("%w: %q in %s", icons.ErrNotFound, iconID, setID), meta)
	}
	collection, err := icons.CollectionByID(setID)
	if err != nil {
		return Icon{}, apperrors.FromLookup(err, meta)
	}
	payload, err := collection.Lookup(iconID)
	if err != nil {
		return Icon{}, apperrors.FromLookup(err, meta)
	}
	definition, err := collection.Definition(iconID)
	if err != nil {
		return Icon{}, apperrors.FromLookup(err, meta)
	}
	return Icon{Set: setID, Definition: definition, SVG: payload}, nil
}

func (s *Service) summary(setID string) (SetSummary, error) {
	collection, err := icons.CollectionByID(setID)
	if err != nil {
		return SetSummary{}, apperrors.FromLookup(err, map[string]string{"Set": setID})
	}
	var aliases []string
	for alias, target := range s.manifest.SetAliases {
		if target == setID {
			aliases = append(aliases, alias)
		}
	}
	slices.Sort(aliases)
	return SetSummary{
		ID:      setID,
		Name:    collection.Name(),
		Size:    len(s.manifest.Sets[setID].IconIDs),
		Aliases: aliases,
	}, nil
}
