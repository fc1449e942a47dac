package domain

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

var (
	hotUpdateSuffix = regexp.MustCompile(`\.hot-update\.js$`)
	hotUpdateQuery  = regexp.MustCompile(`[?&]t=\d+`)
)

// isHotReloadURL reports whether a compiled URL follows a dev server's
// hot-module-replacement naming, whose sources replace rather than share.
func isHotReloadURL(rawURL string) bool {
	return hotUpdateSuffix.MatchString(rawURL) || hotUpdateQuery.MatchString(rawURL)
}

// childPlan is a source listed by a map, prepared outside the lock.
type childPlan struct {
	listedURL    string
	resolvedURL  string
	absolutePath m.Path
	getter       ContentGetter
	sourceMap    *m.SourceMapMetadata
}

func (c *Container) loadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)

	c.mu.Lock()
	timeout := c.timeouts.Load
	c.mu.Unlock()

	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}

	return context.WithCancel(ctx)
}

func (c *Container) loadSourceMap(ctx context.Context, src *Source) {
	ctx, cancel := c.loadContext(ctx)
	defer cancel()

	parsed, err := c.loadWithFallback(ctx, src.sourceMap.metadata)
	if err != nil {
		c.failLoad(ctx, src, err)
		return
	}

	c.materialize(ctx, src, newLoadedMap(parsed, nil), c.planMapSources(ctx, parsed))
}

// loadWithFallback loads the map from its declared URL and, when storage
// fallback is on, retries once from the local file the resolver derives.
func (c *Container) loadWithFallback(ctx context.Context, meta m.SourceMapMetadata) (adapter.ParsedMap, error) {
	parsed, err := c.parser.Load(ctx, meta)
	if err == nil {
		return parsed, nil
	}

	if !c.storageFallback || c.resolver == nil {
		return nil, err
	}

	localPath, ok := c.resolver.URLToAbsolutePath(ctx, meta.SourceMapURL, nil)
	if !ok {
		return nil, err
	}

	fallback := meta
	fallback.SourceMapURL = c.resolver.FileURL(localPath)

	if fallback.SourceMapURL == meta.SourceMapURL {
		return nil, err
	}

	c.fallbackAttempts.Add(1)
	slog.Debug("retrying source map from local storage", "url", meta.SourceMapURL, "fallback", fallback.SourceMapURL)

	parsed, fallbackErr := c.parser.Load(ctx, fallback)
	if fallbackErr != nil {
		return nil, fmt.Errorf("%w (fallback %s: %w)", err, fallback.SourceMapURL, fallbackErr)
	}

	c.fallbackSucceeded.Add(1)

	return parsed, nil
}

func (c *Container) failLoad(ctx context.Context, src *Source, err error) {
	c.mu.Lock()
	current := c.isCurrentLocked(src)
	c.mu.Unlock()

	src.sourceMap.value.Fail()

	if !current {
		return
	}

	c.failed.Add(1)
	slog.Warn("source map load failed", "url", src.url, "map", src.sourceMap.metadata.SourceMapURL, "error", err)

	if c.sink != nil {
		c.sink.Diagnostic(ctx, fmt.Sprintf("Could not load source map from %s: %v", src.sourceMap.metadata.SourceMapURL, err))
	}
}

// planMapSources resolves paths, content and nested maps for every source a
// map lists. It calls collaborators and must run without the lock.
func (c *Container) planMapSources(ctx context.Context, parsed adapter.ParsedMap) []childPlan {
	sources := parsed.Sources()
	plans := make([]childPlan, 0, len(sources))

	for _, listedURL := range sources {
		plan := childPlan{listedURL: listedURL, resolvedURL: listedURL}

		if c.resolver != nil {
			if p, ok := c.resolver.URLToAbsolutePath(ctx, listedURL, parsed); ok {
				plan.absolutePath = p
				plan.resolvedURL = c.resolver.FileURL(p)
			}
		}

		embedded, hasEmbedded := parsed.SourceContentFor(listedURL)
		plan.getter = mappedContent(embedded, hasEmbedded, fetchContent(c.fetcher, fetchableLocation(listedURL, plan.absolutePath)))

		if hasEmbedded {
			plan.sourceMap = nestedSourceMap(embedded, plan.resolvedURL, plan.absolutePath)
		}

		plans = append(plans, plan)
	}

	return plans
}

// nestedSourceMap detects a map declared by the text of a mapped source.
// Only sourcesContent embedded in the parent map is inspected; sources whose
// text lives on disk or behind a URL are not read to look for their own map.
func nestedSourceMap(content, resolvedURL string, absolutePath m.Path) *m.SourceMapMetadata {
	raw := adapter.ParseSourceMappingURL(content)
	if raw == "" {
		return nil
	}

	mapURL := raw
	if !adapter.IsDataURI(raw) {
		mapURL = adapter.CompleteURL(resolvedURL, raw)
	}

	return &m.SourceMapMetadata{SourceMapURL: mapURL, CompiledPath: absolutePath}
}

// materialize registers and announces the sources of a loaded map and then
// settles the map.
// It abandons the result if src was removed while loading and reports whether
// the map was applied.
func (c *Container) materialize(ctx context.Context, src *Source, lm *loadedMap, plans []childPlan) bool {
	c.mu.Lock()

	if !c.isCurrentLocked(src) {
		c.mu.Unlock()
		src.sourceMap.value.Fail()
		slog.Debug("abandoning source map of removed source", "url", src.url)

		return false
	}

	hotReload := isHotReloadURL(src.url)
	created := map[*Source]struct{}{}

	var (
		added    []*Source
		replaced []*Source
	)

	for _, plan := range plans {
		existing, ok := c.mappedByURL.Get(plan.resolvedURL)
		if ok && existing == src {
			continue
		}

		if _, fresh := created[existing]; ok && hotReload && !fresh {
			replaced = append(replaced, c.removeLocked(existing)...)
			ok = false
		}

		if ok {
			c.graph.link(src, existing, plan.listedURL)
			lm.sourceByURL[plan.listedURL] = existing

			continue
		}

		var slot *sourceMapSlot
		if plan.sourceMap != nil && c.parser != nil &&
			(c.resolver == nil || c.resolver.ShouldResolveSourceMap(*plan.sourceMap)) {
			slot = &sourceMapSlot{metadata: *plan.sourceMap, value: NewDeferred[*loadedMap]()}
		}

		mapped := c.newSourceLocked(m.KindMapped, plan.resolvedURL, plan.absolutePath, plan.getter, slot)
		c.registerLocked(mapped)
		c.mappedByURL.Set(plan.resolvedURL, mapped)
		c.graph.link(src, mapped, plan.listedURL)
		lm.sourceByURL[plan.listedURL] = mapped
		created[mapped] = struct{}{}
		added = append(added, mapped)
	}

	src.sourceMap.applied = lm
	c.mu.Unlock()

	if len(replaced) > 0 {
		slog.Debug("hot reload replaced mapped sources", "url", src.url, "count", len(replaced))
	}

	c.finishRemoval(ctx, replaced, false)

	for _, mapped := range added {
		c.announce(ctx, mapped)

		if mapped.sourceMap != nil {
			go c.loadSourceMap(ctx, mapped)
		}
	}

	// Waiters observe the sources registered and announced.
	c.loaded.Add(1)
	src.sourceMap.value.Resolve(lm)

	return true
}

// WaitForSourceMapSources blocks until the map of src settles and returns the
// sources it produced. A source without a map, or whose map failed, has none.
func (c *Container) WaitForSourceMapSources(ctx context.Context, src *Source) ([]*Source, error) {
	if src.sourceMap == nil {
		return nil, nil
	}

	lm, ok, err := src.sourceMap.value.Wait(ctx)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	return c.mapSources(lm), nil
}

// WaitForSourceMapSourcesAtPause waits for the map of src while the runtime is
// paused. Each wait is bounded by the minimum pause plus whatever remains of
// the cumulative pause budget; time beyond the minimum is charged against the
// budget. It reports whether the map settled in time.
func (c *Container) WaitForSourceMapSourcesAtPause(ctx context.Context, src *Source) bool {
	if src.sourceMap == nil {
		return true
	}

	c.mu.Lock()
	minPause := c.timeouts.SourceMapMinPause
	budget := minPause + c.remainingPause
	c.mu.Unlock()

	start := time.Now()
	_, _, settled := src.sourceMap.value.WaitTimeout(ctx, budget)
	spent := time.Since(start)

	c.mu.Lock()
	c.remainingPause = max(0, c.remainingPause-max(0, spent-minPause))
	c.mu.Unlock()

	if !settled {
		slog.Debug("source map not ready at pause", "url", src.url, "waited", spent)
	}

	return settled
}

// RemainingPauseBudget returns what is left of the cumulative pause budget.
func (c *Container) RemainingPauseBudget() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.remainingPause
}

func (c *Container) mapSources(lm *loadedMap) []*Source {
	c.mu.Lock()

	seen := map[*Source]struct{}{}
	out := make([]*Source, 0, len(lm.sourceByURL))

	for _, mapped := range lm.sourceByURL {
		if _, ok := seen[mapped]; ok {
			continue
		}

		seen[mapped] = struct{}{}
		out = append(out, mapped)
	}

	c.mu.Unlock()

	sortSources(out)

	return out
}
