package adapter

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// DefaultSourceMapCacheSize is the number of parsed maps kept in memory.
const DefaultSourceMapCacheSize = 512

// SourceMapParser loads and parses source maps.
type SourceMapParser interface {
	// Load fetches and parses the map described by meta.
	Load(ctx context.Context, meta m.SourceMapMetadata) (ParsedMap, error)

	// InvalidateCache drops every cached map so a restarted session cannot
	// observe stale mappings for a same-named file.
	InvalidateCache(ctx context.Context) error
}

// LocalSourceMapParser parses maps fetched through a ContentFetcher and keeps
// them in an LRU cache, optionally backed by a disk cache.
type LocalSourceMapParser struct {
	fetcher ContentFetcher
	cache   *lru.Cache[string, *SourceMap]
	disk    *SourceMapDiskCache
	group   singleflight.Group
}

// NewLocalSourceMapParser constructs a parser. disk may be nil.
func NewLocalSourceMapParser(fetcher ContentFetcher, cacheSize int, disk *SourceMapDiskCache) (*LocalSourceMapParser, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultSourceMapCacheSize
	}

	cache, err := lru.New[string, *SourceMap](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create source map cache: %w", err)
	}

	return &LocalSourceMapParser{
		fetcher: fetcher,
		cache:   cache,
		disk:    disk,
	}, nil
}

// Load implements SourceMapParser. Concurrent loads of the same map share a
// single fetch.
func (p *LocalSourceMapParser) Load(ctx context.Context, meta m.SourceMapMetadata) (ParsedMap, error) {
	key := meta.Key()

	if sm, ok := p.cache.Get(key); ok {
		slog.Debug("source map cache hit", "url", meta.SourceMapURL)
		return sm, nil
	}

	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		return p.load(ctx, meta)
	})
	if err != nil {
		return nil, err
	}

	sm, ok := v.(*SourceMap)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value for %s", meta.SourceMapURL)
	}

	return sm, nil
}

func (p *LocalSourceMapParser) load(ctx context.Context, meta m.SourceMapMetadata) (*SourceMap, error) {
	// Only content-identified maps are safe to persist across sessions.
	useDisk := meta.CacheKey != ""

	if useDisk {
		sm, ok, err := p.disk.Get(meta.Key())
		if err != nil {
			slog.Warn("failed to read source map disk cache", "url", meta.SourceMapURL, "error", err)
		}

		if ok {
			p.cache.Add(meta.Key(), sm)
			return sm, nil
		}
	}

	body, err := p.fetcher.Fetch(ctx, meta.SourceMapURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source map %s: %w", displayURL(meta.SourceMapURL), err)
	}

	baseURL := meta.SourceMapURL
	if IsDataURI(baseURL) && meta.CompiledPath != "" {
		// Inline maps resolve their sources relative to the compiled file.
		baseURL = fileURL(meta.CompiledPath)
	}

	sm, err := ParseSourceMap([]byte(body), baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source map %s: %w", displayURL(meta.SourceMapURL), err)
	}

	p.cache.Add(meta.Key(), sm)

	if useDisk {
		if err := p.disk.Put(meta.Key(), sm); err != nil {
			slog.Warn("failed to write source map disk cache", "url", meta.SourceMapURL, "error", err)
		}
	}

	slog.Debug("parsed source map", "url", displayURL(meta.SourceMapURL), "sources", len(sm.sources), "mappings", len(sm.mappings))

	return sm, nil
}

// InvalidateCache implements SourceMapParser.
func (p *LocalSourceMapParser) InvalidateCache(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.cache.Purge()

	if err := p.disk.Clear(); err != nil {
		return fmt.Errorf("failed to clear source map disk cache: %w", err)
	}

	return nil
}

// displayURL shortens data URIs for logs and errors.
func displayURL(u string) string {
	const maxLen = 64
	if IsDataURI(u) && len(u) > maxLen {
		return u[:maxLen] + "..."
	}

	return u
}
