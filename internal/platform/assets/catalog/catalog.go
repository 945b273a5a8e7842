// Package catalog describes the icon sets as a manifest of stable, ordered
// icon identifiers with aliases and deterministic defaults.
//
// The icons package owns payloads; the manifest only normalizes and validates
// set/icon identifiers and picks a stable default icon for an entity that has
// not chosen one.
package catalog

import (
	"errors"
	"hash/fnv"
	"net/url"
	"path"
	"strings"
)

const (
	defaultAlgorithm = "icon-default-v1"
	defaultExt       = ".svg"
)

var (
	ErrSetNotFound  = errors.New("icon set is not configured")
	ErrSetEmpty     = errors.New("icon set has no icons")
	ErrEntityID     = errors.New("entity id is required")
	ErrEntityType   = errors.New("entity type is required")
	ErrIconInvalid  = errors.New("icon id is invalid for set")
	ErrKeyInvalid   = errors.New("icon key parts are required")
	ErrBaseURLEmpty = errors.New("base url and key are required")
)

// Set defines one icon set and its stable ordered icon ids.
type Set struct {
	ID      string
	IconIDs []string
}

// Manifest is the icon set catalog definition.
type Manifest struct {
	ID          string
	DefaultSet  string
	Sets        map[string]Set
	SetOrder    []string
	SetAliases  map[string]string
	IconAliases map[string]string
}

// PickerInput identifies the entity and set used for deterministic defaults.
type PickerInput struct {
	EntityType string
	EntityID   string
	SetID      string
	Algorithm  string
}

// SelectionInput captures set/icon selection inputs for one entity.
type SelectionInput struct {
	EntityType string
	EntityID   string
	SetID      string
	IconID     string
	Algorithm  string
}

// NormalizeSetID resolves aliases and verifies configured set membership.
// An empty id resolves to the default set.
func (m Manifest) NormalizeSetID(raw string) (string, bool) {
	setID := strings.TrimSpace(raw)
	if setID == "" {
		setID = strings.TrimSpace(m.DefaultSet)
	}
	if setID == "" {
		return "", false
	}
	if canonical, ok := m.SetAliases[setID]; ok {
		setID = strings.TrimSpace(canonical)
	}
	_, ok := m.Sets[setID]
	return setID, ok
}

// NormalizeIconID resolves aliases and trims whitespace.
func (m Manifest) NormalizeIconID(raw string) string {
	iconID := strings.TrimSpace(raw)
	if iconID == "" {
		return ""
	}
	if canonical, ok := m.IconAliases[iconID]; ok {
		iconID = strings.TrimSpace(canonical)
	}
	return iconID
}

// ValidateIconInSet reports whether set and icon identifiers are configured.
func (m Manifest) ValidateIconInSet(setID, iconID string) bool {
	canonicalSetID, ok := m.NormalizeSetID(setID)
	if !ok {
		return false
	}
	normalizedIconID := m.NormalizeIconID(iconID)
	if normalizedIconID == "" {
		return false
	}
	for _, candidate := range m.Sets[canonicalSetID].IconIDs {
		if candidate == normalizedIconID {
			return true
		}
	}
	return false
}

// DeterministicIcon chooses a stable default icon from one set.
func (m Manifest) DeterministicIcon(input PickerInput) (string, error) {
	entityType := strings.TrimSpace(input.EntityType)
	if entityType == "" {
		return "", ErrEntityType
	}
	entityID := strings.TrimSpace(input.EntityID)
	if entityID == "" {
		return "", ErrEntityID
	}
	setID, ok := m.NormalizeSetID(input.SetID)
	if !ok {
		return "", ErrSetNotFound
	}
	set := m.Sets[setID]
	if len(set.IconIDs) == 0 {
		return "", ErrSetEmpty
	}
	algorithm := strings.TrimSpace(input.Algorithm)
	if algorithm == "" {
		algorithm = defaultAlgorithm
	}
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(entityType))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(entityID))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(setID))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(algorithm))
	index := hasher.Sum64() % uint64(len(set.IconIDs))
	return set.IconIDs[index], nil
}

// ResolveSelection returns canonical set/icon identifiers for an entity.
//
// If IconID is empty, a deterministic default icon is selected for the
// normalized set.
func (m Manifest) ResolveSelection(input SelectionInput) (string, string, error) {
	setID, ok := m.NormalizeSetID(input.SetID)
	if !ok {
		return "", "", ErrSetNotFound
	}

	iconID := m.NormalizeIconID(input.IconID)
	if iconID == "" {
		defaultIconID, err := m.DeterministicIcon(PickerInput{
			EntityType: input.EntityType,
			EntityID:   input.EntityID,
			SetID:      setID,
			Algorithm:  input.Algorithm,
		})
		if err != nil {
			return "", "", err
		}
		return setID, defaultIconID, nil
	}

	if !m.ValidateIconInSet(setID, iconID) {
		return "", "", ErrIconInvalid
	}
	return setID, iconID, nil
}

// BuildVersionedIconKey returns a normalized object storage/CDN key such as
// "v1/icons/archetypes/architect.svg".
func BuildVersionedIconKey(version, domain, setID, iconID, ext string) (string, error) {
	normalizedVersion := strings.TrimSpace(version)
	normalizedDomain := strings.TrimSpace(domain)
	normalizedSetID := strings.TrimSpace(setID)
	normalizedIconID := strings.TrimSpace(iconID)
	if normalizedVersion == "" || normalizedDomain == "" || normalizedSetID == "" || normalizedIconID == "" {
		return "", ErrKeyInvalid
	}
	normalizedExt := strings.TrimSpace(ext)
	if normalizedExt == "" {
		normalizedExt = defaultExt
	}
	if !strings.HasPrefix(normalizedExt, ".") {
		normalizedExt = "." + normalizedExt
	}
	filename := normalizedIconID + normalizedExt
	return path.Clean(path.Join(normalizedVersion, normalizedDomain, normalizedSetID, filename)), nil
}

// ResolveIconURL joins a CDN/object-storage base URL with an icon key.
func ResolveIconURL(baseURL, iconKey string) (string, error) {
	base := strings.TrimSpace(baseURL)
	key := strings.TrimSpace(iconKey)
	if base == "" || key == "" {
		return "", ErrBaseURLEmpty
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	parsed.Path = path.Join(parsed.Path, key)
	return parsed.String(), nil
}
