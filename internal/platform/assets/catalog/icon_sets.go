package catalog

const (
	// DomainIcons is the object storage domain for icon payloads.
	DomainIcons = "icons"
	// KeyVersionV1 is the current object storage key version.
	KeyVersionV1 = "v1"

	SetArchetypes = "archetypes"
	SetGreenEmber = "green_ember"
	SetMeta       = "meta"
)

// IconSetManifest returns the canonical icon set definition. It returns an
// empty manifest when the embedded bundle is invalid; ValidateEmbeddedManifest
// reports why.
func IconSetManifest() Manifest {
	manifest, err := EmbeddedManifest()
	if err != nil {
		return Manifest{}
	}
	return manifest
}

// IconSetIconIDs returns the stable ordered icon ids for one set.
func IconSetIconIDs(setID string) []string {
	manifest := IconSetManifest()
	canonical, ok := manifest.NormalizeSetID(setID)
	if !ok {
		return []string{}
	}
	return append([]string(nil), manifest.Sets[canonical].IconIDs...)
}

// IconKey returns the v1 object storage key for one icon.
func IconKey(setID, iconID string) (string, error) {
	return BuildVersionedIconKey(KeyVersionV1, DomainIcons, setID, iconID, defaultExt)
}
