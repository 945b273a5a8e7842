// Package iconexport writes the embedded icon library to disk as standalone
// SVG files plus optional catalog, index, and data URI bundles.
package iconexport

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/botprofile/personaicons/icons"
	"github.com/botprofile/personaicons/internal/platform/assets/catalog"
	"github.com/botprofile/personaicons/internal/platform/telemetry/metrics"
	"github.com/botprofile/personaicons/internal/platform/timeouts"
	"github.com/google/renameio/v2"
	"golang.org/x/sync/errgroup"
)

const (
	catalogFileName = "CATALOG.md"
	dataURIFileName = "datauri.json"
	indexFileName   = "index.json"

	defaultConcurrency = 8
	filePerm           = 0o644
	dirPerm            = 0o755
)

// Config holds export configuration.
type Config struct {
	OutDir      string
	Sets        string
	Catalog     bool
	DataURI     bool
	Index       bool
	Versioned   bool
	BaseURL     string
	Concurrency int
}

// ParseConfig parses command-line flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.OutDir, "out", "icons-export", "output directory")
	fs.StringVar(&cfg.Sets, "sets", "", "comma-separated icon sets to export (aliases allowed; default all)")
	fs.BoolVar(&cfg.Catalog, "catalog", false, "also write "+catalogFileName)
	fs.BoolVar(&cfg.DataURI, "datauri", false, "also write "+dataURIFileName)
	fs.BoolVar(&cfg.Index, "index", false, "also write "+indexFileName+" with storage keys")
	fs.BoolVar(&cfg.Versioned, "versioned", false, "lay files out by versioned storage key (v1/icons/<set>/<id>.svg)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "CDN base URL used for index URLs")
	fs.IntVar(&cfg.Concurrency, "concurrency", defaultConcurrency, "parallel file writes")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return Config{}, fmt.Errorf("out directory is required")
	}
	if cfg.Concurrency < 1 {
		return Config{}, fmt.Errorf("concurrency must be at least 1")
	}
	return cfg, nil
}

// IndexEntry describes one exported icon.
type IndexEntry struct {
	Set  string `json:"set"`
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	Key  string `json:"key"`
	URL  string `json:"url,omitempty"`
}

// Run exports the selected icon sets under cfg.OutDir and reports a summary
// to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Export)
	defer cancel()

	manifest, err := catalog.EmbeddedManifest()
	if err != nil {
		return fmt.Errorf("load icon set manifest: %w", err)
	}
	setIDs, err := resolveSets(manifest, cfg.Sets)
	if err != nil {
		return err
	}

	entries, err := planExport(manifest, setIDs, cfg)
	if err != nil {
		return err
	}
	written, err := writeIcons(ctx, cfg, entries)
	if err != nil {
		return err
	}

	if cfg.Catalog {
		if err := writeFile(filepath.Join(cfg.OutDir, catalogFileName), []byte(icons.CatalogMarkdown())); err != nil {
			return err
		}
		metrics.RecordExportedFile(metrics.ExportKindCatalog)
	}
	if cfg.DataURI {
		if err := writeJSON(filepath.Join(cfg.OutDir, dataURIFileName), dataURIBundle(entries)); err != nil {
			return err
		}
		metrics.RecordExportedFile(metrics.ExportKindDataURI)
	}
	if cfg.Index {
		if err := writeJSON(filepath.Join(cfg.OutDir, indexFileName), entries); err != nil {
			return err
		}
		metrics.RecordExportedFile(metrics.ExportKindIndex)
	}

	fmt.Fprintf(out, "exported %d icons from %d sets to %s\n", written, len(setIDs), cfg.OutDir)
	return nil
}

// resolveSets normalizes a comma-separated set list. Empty selects every set
// in manifest order.
func resolveSets(manifest catalog.Manifest, raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), manifest.SetOrder...), nil
	}
	seen := make(map[string]struct{})
	var setIDs []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		setID, ok := manifest.NormalizeSetID(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q", catalog.ErrSetNotFound, part)
		}
		if _, dup := seen[setID]; dup {
			continue
		}
		seen[setID] = struct{}{}
		setIDs = append(setIDs, setID)
	}
	if len(setIDs) == 0 {
		return nil, fmt.Errorf("no icon sets selected")
	}
	return setIDs, nil
}

// planExport lists the files to write in manifest order.
func planExport(manifest catalog.Manifest, setIDs []string, cfg Config) ([]IndexEntry, error) {
	var entries []IndexEntry
	for _, setID := range setIDs {
		collection, err := icons.CollectionByID(setID)
		if err != nil {
			return nil, err
		}
		for _, iconID := range manifest.Sets[setID].IconIDs {
			definition, err := collection.Definition(iconID)
			if err != nil {
				return nil, err
			}
			key, err := catalog.IconKey(setID, iconID)
			if err != nil {
				return nil, err
			}
			entry := IndexEntry{
				Set:  setID,
				ID:   iconID,
				Name: definition.Name,
				Key:  key,
				Path: filepath.ToSlash(filepath.Join(setID, iconID+".svg")),
			}
			if cfg.Versioned {
				entry.Path = key
			}
			if strings.TrimSpace(cfg.BaseURL) != "" {
				entry.URL, err = catalog.ResolveIconURL(cfg.BaseURL, key)
				if err != nil {
					return nil, fmt.Errorf("resolve url for %s/%s: %w", setID, iconID, err)
				}
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// writeIcons writes every planned payload concurrently.
func writeIcons(ctx context.Context, cfg Config, entries []IndexEntry) (int, error) {
	dirs := make(map[string]struct{})
	for _, entry := range entries {
		dirs[filepath.Dir(filepath.Join(cfg.OutDir, filepath.FromSlash(entry.Path)))] = struct{}{}
	}
	for dir := range dirs {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return 0, fmt.Errorf("create output dir: %w", err)
		}
	}

	var written atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Concurrency)
	for _, entry := range entries {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			payload, err := icons.Lookup(entry.Set, entry.ID)
			if err != nil {
				return err
			}
			target := filepath.Join(cfg.OutDir, filepath.FromSlash(entry.Path))
			if err := writeSVG(target, payload); err != nil {
				return err
			}
			metrics.RecordExportedFile(metrics.ExportKindSVG)
			written.Add(1)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	return int(written.Load()), nil
}

// writeSVG atomically replaces path with payload.
func writeSVG(path, payload string) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("create pending icon file: %w", err)
	}
	defer func() {
		_ = pendingFile.Cleanup()
	}()

	if _, err := io.WriteString(pendingFile, payload); err != nil {
		return fmt.Errorf("write icon %s: %w", path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace icon %s: %w", path, err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := renameio.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeJSON(path string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return writeFile(path, append(data, '\n'))
}

// dataURIBundle maps set id to icon id to data URI.
func dataURIBundle(entries []IndexEntry) map[string]map[string]string {
	bundle := make(map[string]map[string]string)
	for _, entry := range entries {
		payload, err := icons.Lookup(entry.Set, entry.ID)
		if err != nil {
			continue
		}
		if bundle[entry.Set] == nil {
			bundle[entry.Set] = make(map[string]string)
		}
		bundle[entry.Set][entry.ID] = icons.DataURI(payload)
	}
	return bundle
}
