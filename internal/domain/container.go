package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"mapwright.dev/pkg/mapwright/internal/adapter"
	m "mapwright.dev/pkg/mapwright/internal/model"
)

// ErrEmptyURL is returned when a source is registered without a URL.
var ErrEmptyURL = errors.New("source url is empty")

// ContainerOptions are the collaborators and settings of a Container. Only
// Parser is required for sources with maps; every other field may be nil.
type ContainerOptions struct {
	Parser   adapter.SourceMapParser
	Resolver adapter.PathResolver
	Fetcher  adapter.ContentFetcher
	Wasm     adapter.WasmSymbolProvider
	Sink     adapter.FrontendSink

	Timeouts m.Timeouts
	// StorageFallback retries a failed map load from the local file the path
	// resolver derives for the map URL.
	StorageFallback bool
	// DisableSourceMappedStepping starts the container with stepping through
	// compiled code.
	DisableSourceMappedStepping bool
}

// AddSourceArgs describe a source reported by the runtime.
type AddSourceArgs struct {
	URL string
	// AbsolutePath is resolved through the path resolver when empty.
	AbsolutePath m.Path
	// Content defaults to fetching the path or URL.
	Content      ContentGetter
	SourceMap    *m.SourceMapMetadata
	ContentHash  string
	InlineOffset m.InlineScriptOffset
	Wasm         bool
	// Lazy sources are not announced to the front end.
	Lazy bool
}

// Container is the registry of every known source. It resolves locations
// between compiled and original sources and owns the source map lifecycle.
type Container struct {
	parser          adapter.SourceMapParser
	resolver        adapter.PathResolver
	fetcher         adapter.ContentFetcher
	wasm            adapter.WasmSymbolProvider
	sink            adapter.FrontendSink
	storageFallback bool

	mu              sync.Mutex
	timeouts        m.Timeouts
	remainingPause  time.Duration
	stepping        bool
	observers       map[int]func(bool)
	nextObserver    int
	nextGeneration  uint64
	byURL           *keyedMap[*Source]
	byPath          *keyedMap[*Source]
	byRef           map[m.ReferenceID]*Source
	generations     map[m.ReferenceID]uint64
	mappedByURL     *keyedMap[*Source]
	graph           *sourceGraph
	disabledTemp    map[*Source]struct{}
	disabledForever map[*Source]struct{}

	loaded            atomic.Int64
	failed            atomic.Int64
	fallbackAttempts  atomic.Int64
	fallbackSucceeded atomic.Int64
}

// NewContainer creates an empty Container.
func NewContainer(opts ContainerOptions) *Container {
	c := &Container{
		parser:          opts.Parser,
		resolver:        opts.Resolver,
		fetcher:         opts.Fetcher,
		wasm:            opts.Wasm,
		sink:            opts.Sink,
		storageFallback: opts.StorageFallback,
		timeouts:        opts.Timeouts,
		stepping:        !opts.DisableSourceMappedStepping,
		observers:       make(map[int]func(bool)),
		byURL:           newKeyedMap[*Source](caseInsensitiveKey),
		byPath:          newKeyedMap[*Source](pathKey),
		byRef:           make(map[m.ReferenceID]*Source),
		generations:     make(map[m.ReferenceID]uint64),
		mappedByURL:     newKeyedMap[*Source](caseInsensitiveKey),
		graph:           newSourceGraph(),
		disabledTemp:    make(map[*Source]struct{}),
		disabledForever: make(map[*Source]struct{}),
	}

	c.remainingPause = opts.Timeouts.SourceMapCumulativePause

	return c
}

// SetTimeouts replaces the wait budgets and resets the cumulative pause budget.
func (c *Container) SetTimeouts(timeouts m.Timeouts) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timeouts = timeouts
	c.remainingPause = timeouts.SourceMapCumulativePause
}

// Timeouts returns the current wait budgets.
func (c *Container) Timeouts() m.Timeouts {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.timeouts
}

// Stats returns the source map load counters.
func (c *Container) Stats() m.LoadSummary {
	return m.LoadSummary{
		Loaded:            c.loaded.Load(),
		Failed:            c.failed.Load(),
		FallbackAttempts:  c.fallbackAttempts.Load(),
		FallbackSucceeded: c.fallbackSucceeded.Load(),
	}
}

// AddSource registers a source reported by the runtime and starts loading its
// source map or symbol bridge in the background.
func (c *Container) AddSource(ctx context.Context, args AddSourceArgs) (*Source, error) {
	if args.URL == "" {
		return nil, ErrEmptyURL
	}

	absolutePath := args.AbsolutePath
	if absolutePath == "" && c.resolver != nil {
		if p, ok := c.resolver.URLToAbsolutePath(ctx, args.URL, nil); ok {
			absolutePath = p
		}
	}

	getter := args.Content
	if getter == nil {
		getter = fetchContent(c.fetcher, fetchableLocation(args.URL, absolutePath))
	}

	kind := m.KindGenerated
	if args.Wasm {
		kind = m.KindWasm
	}

	var slot *sourceMapSlot

	switch {
	case args.Wasm && c.wasm != nil:
		slot = &sourceMapSlot{
			metadata: m.SourceMapMetadata{SourceMapURL: args.URL, CompiledPath: absolutePath},
			value:    NewDeferred[*loadedMap](),
		}
	case !args.Wasm && args.SourceMap != nil && c.parser != nil:
		meta := *args.SourceMap
		if meta.CompiledPath == "" {
			meta.CompiledPath = absolutePath
		}

		if c.resolver == nil || c.resolver.ShouldResolveSourceMap(meta) {
			slot = &sourceMapSlot{metadata: meta, value: NewDeferred[*loadedMap]()}
		} else {
			slog.Debug("source map excluded", "url", args.URL, "map", meta.SourceMapURL)
		}
	}

	c.mu.Lock()
	src := c.newSourceLocked(kind, args.URL, absolutePath, getter, slot)
	src.contentHash = args.ContentHash
	src.inlineOffset = args.InlineOffset
	c.registerLocked(src)
	c.mu.Unlock()

	slog.Debug("source added", "url", src.url, "ref", src.ref, "kind", src.kind, "path", src.absolutePath)

	if !args.Lazy {
		c.announce(ctx, src)
	}

	if slot != nil {
		if args.Wasm {
			go c.loadWasm(ctx, src)
		} else {
			go c.loadSourceMap(ctx, src)
		}
	}

	return src, nil
}

// newSourceLocked allocates identity for a source. The caller holds c.mu and
// must register the source before releasing it.
func (c *Container) newSourceLocked(kind m.SourceKind, rawURL string, absolutePath m.Path, getter ContentGetter, slot *sourceMapSlot) *Source {
	c.nextGeneration++

	return &Source{
		container:    c,
		kind:         kind,
		ref:          allocateReference(rawURL, c.referenceInUseLocked),
		generation:   c.nextGeneration,
		url:          rawURL,
		absolutePath: absolutePath,
		getter:       getter,
		sourceMap:    slot,
	}
}

func (c *Container) referenceInUseLocked(ref m.ReferenceID) bool {
	_, ok := c.byRef[ref]
	return ok
}

func (c *Container) registerLocked(src *Source) {
	c.byRef[src.ref] = src
	c.generations[src.ref] = src.generation
	c.byURL.Set(src.url, src)

	if src.absolutePath == "" {
		return
	}

	// Bundlers report the same file under decorated URLs; keep the shortest.
	if existing, ok := c.byPath.Get(string(src.absolutePath)); ok && len(existing.url) < len(src.url) {
		return
	}

	c.byPath.Set(string(src.absolutePath), src)
}

// isCurrentLocked reports whether src is still the source registered under
// its reference id.
func (c *Container) isCurrentLocked(src *Source) bool {
	current, ok := c.byRef[src.ref]
	return ok && current == src && c.generations[src.ref] == src.generation
}

// RemoveSource unregisters src and every mapped source only it referenced.
// silent suppresses the removal events.
func (c *Container) RemoveSource(ctx context.Context, src *Source, silent bool) {
	c.mu.Lock()

	if src == nil || !c.isCurrentLocked(src) {
		c.mu.Unlock()
		assertf(false, "removing a source that is not registered", "source", src)

		return
	}

	removed := c.removeLocked(src)
	c.mu.Unlock()

	c.finishRemoval(ctx, removed, silent)
}

// removeLocked drops src from every index and cascades to orphaned mapped
// sources. It returns every source removed, src first.
func (c *Container) removeLocked(src *Source) []*Source {
	if !c.isCurrentLocked(src) {
		return nil
	}

	delete(c.byRef, src.ref)
	delete(c.generations, src.ref)

	if current, ok := c.byURL.Get(src.url); ok && current == src {
		c.byURL.Delete(src.url)
	}

	if src.absolutePath != "" {
		if current, ok := c.byPath.Get(string(src.absolutePath)); ok && current == src {
			c.byPath.Delete(string(src.absolutePath))
		}
	}

	delete(c.disabledTemp, src)
	delete(c.disabledForever, src)

	if src.kind == m.KindMapped {
		if current, ok := c.mappedByURL.Get(src.url); ok && current == src {
			c.mappedByURL.Delete(src.url)
		}

		for _, link := range c.graph.detachMapped(src) {
			if lm := link.compiled.sourceMap.applied; lm != nil && lm.sourceByURL[link.listedURL] == src {
				delete(lm.sourceByURL, link.listedURL)
			}
		}
	}

	// Waiters on a map that will never be materialized must not hang.
	if src.sourceMap != nil {
		src.sourceMap.value.Fail()
	}

	removed := []*Source{src}

	for _, orphan := range c.graph.releaseCompiled(src) {
		removed = append(removed, c.removeLocked(orphan)...)
	}

	return removed
}

// finishRemoval runs the side effects of a removal outside the lock.
func (c *Container) finishRemoval(ctx context.Context, removed []*Source, silent bool) {
	for _, src := range removed {
		if lm := c.appliedMap(src); lm != nil && lm.wasm != nil {
			lm.wasm.dispose()
		}

		slog.Debug("source removed", "url", src.url, "ref", src.ref)

		if !silent && src.announced.Load() && c.sink != nil {
			c.sink.AnnounceRemoved(ctx, src.Descriptor())
		}
	}
}

func (c *Container) announce(ctx context.Context, src *Source) {
	if src.announced.Swap(true) {
		return
	}

	if c.sink != nil {
		c.sink.AnnounceLoaded(ctx, src.Descriptor())
	}
}

// Clear removes every source and invalidates the parser caches so a restarted
// session cannot see stale mappings.
func (c *Container) Clear(ctx context.Context, silent bool) error {
	c.mu.Lock()

	removed := make([]*Source, 0, len(c.byRef))
	for _, src := range c.byRef {
		removed = append(removed, src)

		if src.sourceMap != nil {
			src.sourceMap.value.Fail()
		}
	}

	sortSources(removed)

	c.byURL.Clear()
	c.byPath.Clear()
	c.byRef = make(map[m.ReferenceID]*Source)
	c.generations = make(map[m.ReferenceID]uint64)
	c.mappedByURL.Clear()
	c.graph.clear()
	c.disabledTemp = make(map[*Source]struct{})
	c.disabledForever = make(map[*Source]struct{})
	c.remainingPause = c.timeouts.SourceMapCumulativePause
	c.mu.Unlock()

	c.finishRemoval(ctx, removed, silent)

	if c.parser == nil {
		return nil
	}

	if err := c.parser.InvalidateCache(ctx); err != nil {
		return fmt.Errorf("invalidate source map cache: %w", err)
	}

	return nil
}

// Source returns the source registered under ref.
func (c *Container) Source(ref m.ReferenceID) (*Source, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, ok := c.byRef[ref]

	return src, ok
}

// SourceByURL looks a source up by URL, ignoring case.
func (c *Container) SourceByURL(rawURL string) (*Source, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.byURL.Get(rawURL)
}

// SourceByAbsolutePath looks a source up by its local path.
func (c *Container) SourceByAbsolutePath(p m.Path) (*Source, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.byPath.Get(string(p))
}

// SourceForDescriptor resolves a front-end source reference, preferring the
// path when one is given.
func (c *Container) SourceForDescriptor(desc m.SourceDescriptor) (*Source, bool) {
	if desc.Path != "" {
		return c.SourceByAbsolutePath(desc.Path)
	}

	if desc.SourceReference == m.NoReference {
		return nil, false
	}

	return c.Source(desc.SourceReference)
}

// Sources returns all registered sources ordered by URL.
func (c *Container) Sources() []*Source {
	c.mu.Lock()

	out := make([]*Source, 0, len(c.byRef))
	for _, src := range c.byRef {
		out = append(out, src)
	}

	c.mu.Unlock()

	sortSources(out)

	return out
}

// ReferenceCount is the number of compiled sources referencing a mapped source.
func (c *Container) ReferenceCount(mapped *Source) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.graph.refCount(mapped)
}

// CompiledSources returns the compiled sources whose maps list mapped.
func (c *Container) CompiledSources(mapped *Source) []*Source {
	c.mu.Lock()
	links := c.graph.parentsOf(mapped)
	c.mu.Unlock()

	out := make([]*Source, 0, len(links))
	for _, link := range links {
		out = append(out, link.compiled)
	}

	sortSources(out)

	return out
}

// MapStatus summarizes the state of the map of src.
func (c *Container) MapStatus(src *Source) m.MapStatus {
	if src.sourceMap == nil {
		return m.MapStatusNone
	}

	if c.IsSourceMapDisabled(src) {
		return m.MapStatusDisabled
	}

	_, ok, settled := src.sourceMap.value.Settled()

	switch {
	case !settled:
		return m.MapStatusPending
	case ok:
		return m.MapStatusLoaded
	default:
		return m.MapStatusFailed
	}
}

// Report describes src for listings.
func (c *Container) Report(src *Source) m.SourceReport {
	report := m.SourceReport{
		Source:    src.Descriptor(),
		URL:       src.url,
		Kind:      src.kind,
		MapStatus: c.MapStatus(src),
	}

	if meta, ok := src.SourceMapMetadata(); ok && !adapter.IsDataURI(meta.SourceMapURL) {
		report.SourceMap = meta.SourceMapURL
	} else if ok {
		report.SourceMap = m.InlineSourceMap
	}

	if src.kind == m.KindMapped {
		report.References = c.ReferenceCount(src)
	}

	return report
}

// DisableSourceMapForSource stops resolution through the map of src. A
// permanent disable survives ClearDisabledSourceMaps.
func (c *Container) DisableSourceMapForSource(src *Source, permanent bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if permanent {
		c.disabledForever[src] = struct{}{}
		return
	}

	c.disabledTemp[src] = struct{}{}
}

// ClearDisabledSourceMaps re-enables temporarily disabled maps, either for src
// only or, when src is nil, for every source.
func (c *Container) ClearDisabledSourceMaps(src *Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if src == nil {
		c.disabledTemp = make(map[*Source]struct{})
		return
	}

	delete(c.disabledTemp, src)
}

// IsSourceMapDisabled reports whether resolution through the map of src is off.
func (c *Container) IsSourceMapDisabled(src *Source) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isDisabledLocked(src)
}

func (c *Container) isDisabledLocked(src *Source) bool {
	if _, ok := c.disabledForever[src]; ok {
		return true
	}

	_, ok := c.disabledTemp[src]

	return ok
}

// SourceMapDisabled reports whether the container stopped resolving through
// this source's map.
func (s *Source) SourceMapDisabled() bool {
	return s.container.IsSourceMapDisabled(s)
}

// SourceMappedStepping reports whether locations resolve to original sources.
func (c *Container) SourceMappedStepping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stepping
}

// SetSourceMappedStepping toggles resolution through source maps and notifies
// observers when the value changes.
func (c *Container) SetSourceMappedStepping(enabled bool) {
	c.mu.Lock()

	if c.stepping == enabled {
		c.mu.Unlock()
		return
	}

	c.stepping = enabled

	observers := make([]func(bool), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}

	c.mu.Unlock()

	for _, fn := range observers {
		fn(enabled)
	}
}

// OnSteppingChanged registers fn for stepping changes and returns a function
// that unregisters it.
func (c *Container) OnSteppingChanged(fn func(enabled bool)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextObserver
	c.nextObserver++
	c.observers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		delete(c.observers, id)
	}
}

func (c *Container) appliedMap(src *Source) *loadedMap {
	if src.sourceMap == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return src.sourceMap.applied
}

// settledMap returns the loaded map of src if it resolved successfully.
func settledMap(src *Source) *loadedMap {
	if src.sourceMap == nil {
		return nil
	}

	lm, ok, settled := src.sourceMap.value.Settled()
	if !settled || !ok {
		return nil
	}

	return lm
}

func sortSources(sources []*Source) {
	sort.Slice(sources, func(i, j int) bool {
		if sources[i].url != sources[j].url {
			return sources[i].url < sources[j].url
		}

		return sources[i].ref < sources[j].ref
	})
}

// assertf logs a violated invariant. It returns ok so callers can bail out.
func assertf(ok bool, msg string, args ...any) bool {
	if !ok {
		slog.Error("assertion failed: "+msg, args...)
	}

	return ok
}
