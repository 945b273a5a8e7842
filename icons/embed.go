package icons

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed svg
var svgFS embed.FS

const svgExt = ".svg"

var (
	loadOnce    sync.Once
	collections []*Collection
	byID        map[string]*Collection
)

func load() {
	loadOnce.Do(func() {
		loaded, err := loadCollections(svgFS)
		if err != nil {
			panic(fmt.Sprintf("icons: load embedded payloads: %v", err))
		}
		collections = loaded
		byID = make(map[string]*Collection, len(loaded))
		for _, c := range loaded {
			byID[c.id] = c
		}
	})
}

func loadCollections(fsys fs.FS) ([]*Collection, error) {
	sources := []struct {
		id          string
		name        string
		definitions []Definition
	}{
		{id: CollectionArchetypes, name: "Archetypes", definitions: archetypeDefinitions},
		{id: CollectionGreenEmber, name: "Green Ember", definitions: greenEmberDefinitions},
		{id: CollectionMeta, name: "Collections", definitions: metaDefinitions},
	}

	out := make([]*Collection, 0, len(sources))
	for _, src := range sources {
		payloads, err := readPayloads(fsys, path.Join("svg", src.id))
		if err != nil {
			return nil, err
		}
		c, err := newCollection(src.id, src.name, src.definitions, payloads)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func readPayloads(fsys fs.FS, dir string) (map[string]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	payloads := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), svgExt) {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		payloads[strings.TrimSuffix(entry.Name(), svgExt)] = string(data)
	}
	return payloads, nil
}
