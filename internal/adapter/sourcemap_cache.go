package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// Current schema version - increment when diskSourceMap format changes.
const diskCacheSchemaVersion uint16 = 1

// SourceMapDiskCache stores decoded source maps on disk, keyed by the map's
// cache identity. It is safe for concurrent use. A nil cache is a no-op.
type SourceMapDiskCache struct {
	mu  sync.RWMutex
	dir string
}

type diskMapping struct {
	GeneratedLine   int
	GeneratedColumn int
	Source          int // -1 when the segment has no source
	OriginalLine    int
	OriginalColumn  int
	Name            string
}

type diskSourceMap struct {
	Schema   uint16
	URL      string
	Sources  []string
	Contents []*string
	Names    []string
	Mappings []diskMapping
}

// OpenSourceMapDiskCache prepares a disk cache rooted at dir.
func OpenSourceMapDiskCache(dir string) (*SourceMapDiskCache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &SourceMapDiskCache{dir: dir}, nil
}

func (c *SourceMapDiskCache) pathFor(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, "maps", hex.EncodeToString(sum[:])+".mp")
}

// Put serializes a map and atomically replaces any previous entry.
func (c *SourceMapDiskCache) Put(key string, sm *SourceMap) error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(target), "tmp-*")
	if err != nil {
		return err
	}

	defer func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to remove temp cache file", "path", f.Name(), "error", err)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(toDiskSourceMap(sm)); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), target)
}

// Get loads a map previously stored under key.
func (c *SourceMapDiskCache) Get(key string) (*SourceMap, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, err
	}

	defer func() { _ = f.Close() }()

	var payload diskSourceMap
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}

	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}

	return fromDiskSourceMap(payload), true, nil
}

// Clear removes all stored maps.
func (c *SourceMapDiskCache) Clear() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return os.RemoveAll(filepath.Join(c.dir, "maps"))
}

func toDiskSourceMap(sm *SourceMap) diskSourceMap {
	payload := diskSourceMap{
		Schema:   diskCacheSchemaVersion,
		URL:      sm.url,
		Sources:  sm.sources,
		Contents: sm.contents,
		Names:    sm.names,
		Mappings: make([]diskMapping, 0, len(sm.mappings)),
	}

	for _, mapping := range sm.mappings {
		source := -1
		if mapping.SourceURL != "" {
			source = sm.sourceIndex[mapping.SourceURL]
		}

		payload.Mappings = append(payload.Mappings, diskMapping{
			GeneratedLine:   mapping.Generated.Line,
			GeneratedColumn: mapping.Generated.Column,
			Source:          source,
			OriginalLine:    mapping.Original.Line,
			OriginalColumn:  mapping.Original.Column,
			Name:            mapping.Name,
		})
	}

	return payload
}

func fromDiskSourceMap(payload diskSourceMap) *SourceMap {
	mappings := make([]Mapping, 0, len(payload.Mappings))

	for _, dm := range payload.Mappings {
		mapping := Mapping{
			Generated: m.Position{Line: dm.GeneratedLine, Column: dm.GeneratedColumn},
			Name:      dm.Name,
		}

		if dm.Source >= 0 && dm.Source < len(payload.Sources) {
			mapping.SourceURL = payload.Sources[dm.Source]
			mapping.Original = m.Position{Line: dm.OriginalLine, Column: dm.OriginalColumn}
		}

		mappings = append(mappings, mapping)
	}

	return NewSourceMap(payload.URL, payload.Sources, payload.Contents, payload.Names, mappings)
}
