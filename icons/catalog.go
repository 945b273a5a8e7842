package icons

import (
	"fmt"
	"slices"
	"strings"
)

// Archetypes returns the generic personality archetype collection.
func Archetypes() *Collection {
	load()
	return byID[CollectionArchetypes]
}

// GreenEmber returns the Green Ember character collection.
func GreenEmber() *Collection {
	load()
	return byID[CollectionGreenEmber]
}

// Meta returns the collection selector icons.
func Meta() *Collection {
	load()
	return byID[CollectionMeta]
}

// Collections returns every collection in a fixed order.
func Collections() []*Collection {
	load()
	return slices.Clone(collections)
}

// CollectionByID returns the collection registered under id.
func CollectionByID(id string) (*Collection, error) {
	load()
	c, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, id)
	}
	return c, nil
}

// Lookup returns one payload by collection and icon identifier.
func Lookup(collectionID, iconID string) (string, error) {
	c, err := CollectionByID(collectionID)
	if err != nil {
		return "", err
	}
	return c.Lookup(iconID)
}

// CatalogMarkdown renders every collection as a markdown table.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `iconexport -catalog`.\n\n")
	builder.WriteString("| Collection | Icon ID | Name | Traits | Description |\n")
	builder.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, c := range Collections() {
		for _, def := range c.definitions {
			description := def.Description
			if description == "" {
				description = def.Visual
			}
			builder.WriteString("| ")
			builder.WriteString(c.id)
			builder.WriteString(" | ")
			builder.WriteString(def.ID)
			builder.WriteString(" | ")
			builder.WriteString(def.Name)
			builder.WriteString(" | ")
			builder.WriteString(def.Traits.String())
			builder.WriteString(" | ")
			builder.WriteString(description)
			builder.WriteString(" |\n")
		}
	}
	return builder.String()
}
