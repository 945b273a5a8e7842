package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/icon_sets.v1.json
var iconSetManifestJSON []byte

var (
	loadManifestOnce     sync.Once
	embeddedIconManifest Manifest
	manifestLoadError    error
)

type manifestJSON struct {
	ID          string            `json:"id"`
	DefaultSet  string            `json:"default_set"`
	Sets        []setJSON         `json:"sets"`
	SetAliases  map[string]string `json:"set_aliases"`
	IconAliases map[string]string `json:"icon_aliases"`
}

type setJSON struct {
	ID      string   `json:"id"`
	IconIDs []string `json:"icon_ids"`
}

// ValidateEmbeddedManifest returns any manifest parsing error from the embedded bundle.
func ValidateEmbeddedManifest() error {
	_, err := EmbeddedManifest()
	return err
}

// EmbeddedManifest returns the decoded, immutable embedded icon set manifest.
//
// It validates embedded JSON once and returns fresh copies so callers cannot
// mutate cached package state.
func EmbeddedManifest() (Manifest, error) {
	loadManifestOnce.Do(func() {
		embeddedIconManifest, manifestLoadError = decodeManifest(iconSetManifestJSON)
		if manifestLoadError != nil {
			manifestLoadError = fmt.Errorf("decode icon set manifest: %w", manifestLoadError)
		}
	})
	if manifestLoadError != nil {
		return Manifest{}, manifestLoadError
	}
	return copyManifest(embeddedIconManifest), nil
}

func decodeManifest(raw []byte) (Manifest, error) {
	var payload manifestJSON
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Manifest{}, err
	}
	manifestID := strings.TrimSpace(payload.ID)
	defaultSetID := strings.TrimSpace(payload.DefaultSet)
	if manifestID == "" || defaultSetID == "" {
		return Manifest{}, fmt.Errorf("manifest id/default set are required")
	}

	sets := make(map[string]Set, len(payload.Sets))
	order := make([]string, 0, len(payload.Sets))
	for _, rawSet := range payload.Sets {
		setID := strings.TrimSpace(rawSet.ID)
		if setID == "" {
			continue
		}
		if _, exists := sets[setID]; exists {
			return Manifest{}, fmt.Errorf("duplicate set id %q", setID)
		}
		sets[setID] = Set{
			ID:      setID,
			IconIDs: normalizeStringList(rawSet.IconIDs),
		}
		order = append(order, setID)
	}
	if _, ok := sets[defaultSetID]; !ok {
		return Manifest{}, fmt.Errorf("default set %q is missing", defaultSetID)
	}

	setAliases := copyStringMap(payload.SetAliases)
	for alias, target := range setAliases {
		if _, ok := sets[target]; !ok {
			return Manifest{}, fmt.Errorf("set alias %q targets unknown set %q", alias, target)
		}
	}

	return Manifest{
		ID:          manifestID,
		DefaultSet:  defaultSetID,
		Sets:        sets,
		SetOrder:    order,
		SetAliases:  setAliases,
		IconAliases: copyStringMap(payload.IconAliases),
	}, nil
}

func normalizeStringList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		normalized := strings.TrimSpace(value)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

func copyStringMap(source map[string]string) map[string]string {
	if len(source) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(source))
	for key, value := range source {
		normalizedKey := strings.TrimSpace(key)
		normalizedValue := strings.TrimSpace(value)
		if normalizedKey == "" || normalizedValue == "" {
			continue
		}
		out[normalizedKey] = normalizedValue
	}
	return out
}

func copyManifest(source Manifest) Manifest {
	out := Manifest{
		ID:          source.ID,
		DefaultSet:  source.DefaultSet,
		Sets:        map[string]Set{},
		SetOrder:    append([]string(nil), source.SetOrder...),
		SetAliases:  copyStringMap(source.SetAliases),
		IconAliases: copyStringMap(source.IconAliases),
	}
	for setID, set := range source.Sets {
		out.Sets[setID] = Set{
			ID:      set.ID,
			IconIDs: append([]string(nil), set.IconIDs...),
		}
	}
	return out
}
