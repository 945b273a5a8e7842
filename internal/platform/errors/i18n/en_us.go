package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown            = "UNKNOWN"
	CodeIconNotFound       = "ICON_NOT_FOUND"
	CodeIconIDRequired     = "ICON_ID_REQUIRED"
	CodeIconSetNotFound    = "ICON_SET_NOT_FOUND"
	CodeIconSetRequired    = "ICON_SET_REQUIRED"
	CodeIconSetEmpty       = "ICON_SET_EMPTY"
	CodeEntityIDRequired   = "ENTITY_ID_REQUIRED"
	CodeEntityTypeRequired = "ENTITY_TYPE_REQUIRED"
	CodeIconInvalid        = "ICON_INVALID"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeUnknown:            "An unexpected error occurred",
		CodeIconNotFound:       `Icon "{{.Icon}}" is not part of set "{{.Set}}"`,
		CodeIconIDRequired:     "Icon ID is required",
		CodeIconSetNotFound:    `Icon set "{{.Set}}" does not exist`,
		CodeIconSetRequired:    "Icon set is required",
		CodeIconSetEmpty:       `Icon set "{{.Set}}" has no icons`,
		CodeEntityIDRequired:   "Entity ID is required to pick a default icon",
		CodeEntityTypeRequired: "Entity type is required to pick a default icon",
		CodeIconInvalid:        "Icon reference is invalid",
	},
}
