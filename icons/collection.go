package icons

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotFound reports an identifier that is not part of a collection.
	ErrNotFound = errors.New("icon not found")
	// ErrCollectionNotFound reports an unknown collection identifier.
	ErrCollectionNotFound = errors.New("icon collection not found")
)

// Collection is an immutable mapping from icon identifier to SVG payload.
//
// A Collection is safe for concurrent use. Nothing it returns aliases its
// internal state.
type Collection struct {
	id          string
	name        string
	definitions []Definition
	index       map[string]int
	payloads    map[string]string
}

// ID returns the collection identifier.
func (c *Collection) ID() string {
	return c.id
}

// Name returns the collection display name.
func (c *Collection) Name() string {
	return c.name
}

// Len returns the number of icons in the collection.
func (c *Collection) Len() int {
	return len(c.definitions)
}

// Keys returns the icon identifiers in sorted order.
func (c *Collection) Keys() []string {
	keys := make([]string, 0, len(c.definitions))
	for _, def := range c.definitions {
		keys = append(keys, def.ID)
	}
	slices.Sort(keys)
	return keys
}

// Has reports whether id is part of the collection.
func (c *Collection) Has(id string) bool {
	_, ok := c.payloads[id]
	return ok
}

// Lookup returns the SVG payload for id exactly as authored.
func (c *Collection) Lookup(id string) (string, error) {
	payload, ok := c.payloads[id]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrNotFound, id, c.id)
	}
	return payload, nil
}

// Bytes returns a fresh copy of the payload for id.
func (c *Collection) Bytes(id string) ([]byte, error) {
	payload, err := c.Lookup(id)
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

// Definition returns the metadata for id.
func (c *Collection) Definition(id string) (Definition, error) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q in %s", ErrNotFound, id, c.id)
	}
	return c.definitions[i], nil
}

// Definitions returns a copy of the collection metadata in authored order.
func (c *Collection) Definitions() []Definition {
	return slices.Clone(c.definitions)
}

// Map returns a copy of the identifier to payload mapping.
func (c *Collection) Map() map[string]string {
	out := make(map[string]string, len(c.payloads))
	for id, payload := range c.payloads {
		out[id] = payload
	}
	return out
}

func newCollection(id, name string, definitions []Definition, payloads map[string]string) (*Collection, error) {
	c := &Collection{
		id:          id,
		name:        name,
		definitions: slices.Clone(definitions),
		index:       make(map[string]int, len(definitions)),
		payloads:    make(map[string]string, len(definitions)),
	}
	for i, def := range definitions {
		if def.ID == "" {
			return nil, fmt.Errorf("collection %s: definition %d has no id", id, i)
		}
		if _, exists := c.index[def.ID]; exists {
			return nil, fmt.Errorf("collection %s: duplicate icon id %q", id, def.ID)
		}
		payload, ok := payloads[def.ID]
		if !ok || payload == "" {
			return nil, fmt.Errorf("collection %s: missing payload for %q", id, def.ID)
		}
		c.index[def.ID] = i
		c.payloads[def.ID] = payload
	}
	if len(payloads) != len(definitions) {
		for payloadID := range payloads {
			if _, ok := c.index[payloadID]; !ok {
				return nil, fmt.Errorf("collection %s: payload %q has no definition", id, payloadID)
			}
		}
	}
	return c, nil
}
