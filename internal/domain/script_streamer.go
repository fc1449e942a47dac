package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

// ScriptStreamer discovers compiled scripts and streams them with their
// content and sourceMappingURL.
type ScriptStreamer interface {
	Get(ctx context.Context, paths []m.Path, exclude []string, threads int) (<-chan m.Script, <-chan error)
}

type scriptStreamer struct {
	adapter.SourceFSAdapter
}

// NewScriptStreamer creates a ScriptStreamer reading through fsAdapter.
func NewScriptStreamer(fsAdapter adapter.SourceFSAdapter) ScriptStreamer {
	return &scriptStreamer{SourceFSAdapter: fsAdapter}
}

// Get streams scripts for the given paths. Both channels close when done; the
// error channel carries at most one error.
func (ss *scriptStreamer) Get(ctx context.Context, paths []m.Path, exclude []string, threads int) (<-chan m.Script, <-chan error) {
	slog.Debug("Starting script streaming", "paths", len(paths), "threads", threads)

	threads = normalizeThreads(threads)
	scripts := make(chan m.Script, threads)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		defer close(scripts)

		found, err := ss.SourceFSAdapter.Get(ctx, paths, exclude...)
		if err != nil {
			errs <- fmt.Errorf("discover scripts: %w", err)
			return
		}

		slog.Debug("Discovered scripts", "count", len(found))

		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(threads)

		for _, p := range found {
			if groupCtx.Err() != nil {
				break
			}

			group.Go(func() error {
				script, err := ss.readScript(groupCtx, p)
				if err != nil {
					return err
				}

				select {
				case <-groupCtx.Done():
					return groupCtx.Err()
				case scripts <- script:
					return nil
				}
			})
		}

		if err := group.Wait(); err != nil {
			errs <- err
		}
	}()

	return scripts, errs
}

func (ss *scriptStreamer) readScript(ctx context.Context, p m.Path) (m.Script, error) {
	kind, ok := adapter.ScriptExtensions[strings.ToLower(filepath.Ext(string(p)))]
	if !ok {
		kind = m.KindGenerated
	}

	hash, err := ss.HashFile(ctx, p)
	if err != nil {
		return m.Script{}, fmt.Errorf("hash %s: %w", p, err)
	}

	script := m.Script{Path: p, Kind: kind, Hash: hash}

	if kind == m.KindWasm {
		return script, nil
	}

	data, err := ss.ReadFile(ctx, p)
	if err != nil {
		return m.Script{}, fmt.Errorf("read %s: %w", p, err)
	}

	script.Content = string(data)
	script.SourceMappingURL = adapter.ParseSourceMappingURL(script.Content)

	if mapPath, ok := adapter.LocalMapPath(p, script.SourceMappingURL); ok {
		mapHash, err := ss.HashFile(ctx, mapPath)
		if err != nil {
			slog.Debug("source map not hashed", "script", p, "map", mapPath, "error", err)
		} else {
			script.SourceMapHash = mapHash
		}
	}

	return script, nil
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
