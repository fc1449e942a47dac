package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	"mapwright.dev/pkg/mapwright/internal/controller"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

type workflowPipeline struct {
	ScriptStreamer
	controller.UI

	container *Container
	resolver  adapter.PathResolver
}

// NewWorkflowPipeline creates a Workflow that streams scripts into container.
func NewWorkflowPipeline(
	streamer ScriptStreamer,
	ui controller.UI,
	container *Container,
	resolver adapter.PathResolver,
) Workflow {
	return &workflowPipeline{
		ScriptStreamer: streamer,
		UI:             ui,
		container:      container,
		resolver:       resolver,
	}
}

// Sources registers the scripts and lists every source they produced.
func (w *workflowPipeline) Sources(ctx context.Context, args SourcesArgs) error {
	if err := w.register(ctx, args.ScanArgs); err != nil {
		return err
	}

	sources := w.container.Sources()
	reports := make([]m.SourceReport, 0, len(sources))

	for _, src := range sources {
		reports = append(reports, w.container.Report(src))
	}

	if err := w.DisplaySources(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.DisplayStats(ctx, w.container.Stats())

	return nil
}

// Resolve maps a compiled location to its preferred original location.
func (w *workflowPipeline) Resolve(ctx context.Context, args ResolveArgs) error {
	if err := w.register(ctx, args.ScanArgs); err != nil {
		return err
	}

	src, err := w.find(args.Target)
	if err != nil {
		return err
	}

	loc := UiLocation{Source: src, LineColumn: m.LineColumn{Line: args.Line, Column: args.Column}}
	preferred := w.container.PreferredUiLocation(ctx, loc)

	reports := []m.LocationReport{locationReport(loc, false, ""), preferredReport(preferred)}

	if args.Siblings {
		for _, sibling := range w.container.CurrentSiblingUiLocations(ctx, loc, nil) {
			if sibling.Source == loc.Source && sibling.LineColumn == loc.LineColumn {
				continue
			}

			reports = append(reports, locationReport(sibling, sibling.Source.kind == m.KindMapped, ""))
		}
	}

	if err := w.DisplayLocations(ctx, "Resolved location", reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Breakpoints maps an original location to every compiled location.
func (w *workflowPipeline) Breakpoints(ctx context.Context, args BreakpointsArgs) error {
	if err := w.register(ctx, args.ScanArgs); err != nil {
		return err
	}

	src, err := w.find(args.Target)
	if err != nil {
		return err
	}

	lc := m.LineColumn{Line: args.Line, Column: args.Column}
	compiled := w.container.CompiledPositionFor(ctx, UiLocation{Source: src, LineColumn: lc})

	reports := make([]m.LocationReport, 0, len(compiled))
	for _, loc := range compiled {
		reports = append(reports, locationReport(loc, false, ""))
	}

	if err := w.DisplayLocations(ctx, "Compiled locations", reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if len(compiled) == 0 {
		return fmt.Errorf("%s:%d:%d: %w", args.Target, lc.Line, lc.Column, ErrNotMapped)
	}

	return nil
}

// register streams scripts into the container and waits until every map,
// including nested ones, has settled.
func (w *workflowPipeline) register(ctx context.Context, args ScanArgs) error {
	threads := normalizeThreads(args.Threads)
	scripts, scriptErrs := w.Get(ctx, args.Paths, args.Exclude, threads)

	var (
		mu    sync.Mutex
		added []*Source
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for script := range scripts {
		group.Go(func() error {
			src, err := w.container.AddSource(groupCtx, w.addSourceArgs(script))
			if err != nil {
				return fmt.Errorf("add %s: %w", script.Path, err)
			}

			mu.Lock()
			added = append(added, src)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := <-scriptErrs; err != nil {
		slog.Error("Failed to stream scripts", "error", err)
		return err
	}

	if err := w.waitForMaps(ctx, added); err != nil {
		return fmt.Errorf("wait for source maps: %w", err)
	}

	return nil
}

func (w *workflowPipeline) waitForMaps(ctx context.Context, pending []*Source) error {
	seen := map[*Source]struct{}{}

	for len(pending) > 0 {
		var next []*Source

		for _, src := range pending {
			if _, ok := seen[src]; ok {
				continue
			}

			seen[src] = struct{}{}

			children, err := w.container.WaitForSourceMapSources(ctx, src)
			if err != nil {
				return err
			}

			next = append(next, children...)
		}

		pending = next
	}

	return nil
}

func (w *workflowPipeline) addSourceArgs(script m.Script) AddSourceArgs {
	scriptURL := w.resolver.FileURL(script.Path)
	content := script.Content

	args := AddSourceArgs{
		URL:          scriptURL,
		AbsolutePath: script.Path,
		ContentHash:  script.Hash,
		Wasm:         script.Kind == m.KindWasm,
	}

	if script.Kind != m.KindWasm {
		args.Content = func(context.Context) (string, error) { return content, nil }
	}

	if script.SourceMappingURL != "" {
		mapURL := script.SourceMappingURL
		// An inline map changes with its script; a map file is keyed on
		// its own content and is not persisted when that is unknown.
		cacheKey := script.Hash
		if !adapter.IsDataURI(mapURL) {
			mapURL = adapter.CompleteURL(scriptURL, mapURL)
			cacheKey = script.SourceMapHash
		}

		args.SourceMap = &m.SourceMapMetadata{
			SourceMapURL: mapURL,
			CompiledPath: script.Path,
			CacheKey:     cacheKey,
		}
	}

	return args
}

// find looks target up as a path first and as a URL second.
func (w *workflowPipeline) find(target string) (*Source, error) {
	if abs, err := filepath.Abs(target); err == nil {
		if src, ok := w.container.SourceByAbsolutePath(m.Path(abs)); ok {
			return src, nil
		}
	}

	if src, ok := w.container.SourceByURL(target); ok {
		return src, nil
	}

	return nil, fmt.Errorf("%s: %w", target, ErrSourceNotFound)
}

func locationReport(loc UiLocation, mapped bool, reason string) m.LocationReport {
	return m.LocationReport{
		Source:   loc.Source.Descriptor(),
		URL:      loc.Source.url,
		Location: loc.LineColumn,
		Mapped:   mapped,
		Reason:   reason,
	}
}

func preferredReport(p PreferredUiLocation) m.LocationReport {
	if p.IsMapped {
		return locationReport(p.UiLocation, true, "")
	}

	return locationReport(p.UiLocation, false, p.Reason.String())
}
