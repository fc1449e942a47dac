package domain

// sourceGraph is the adjacency between compiled sources and the mapped
// sources their maps produced. It never owns sources; it only decides when a
// mapped source becomes unreachable.
type sourceGraph struct {
	// compiledBy maps a mapped source to each compiled source referencing it,
	// with the URL under which that compiled source's map lists it.
	compiledBy map[*Source]map[*Source]string
	// produced maps a compiled source to the mapped sources it references.
	produced map[*Source]map[*Source]struct{}
}

func newSourceGraph() *sourceGraph {
	return &sourceGraph{
		compiledBy: make(map[*Source]map[*Source]string),
		produced:   make(map[*Source]map[*Source]struct{}),
	}
}

func (g *sourceGraph) link(compiled, mapped *Source, listedURL string) {
	parents, ok := g.compiledBy[mapped]
	if !ok {
		parents = make(map[*Source]string)
		g.compiledBy[mapped] = parents
	}

	parents[compiled] = listedURL

	children, ok := g.produced[compiled]
	if !ok {
		children = make(map[*Source]struct{})
		g.produced[compiled] = children
	}

	children[mapped] = struct{}{}
}

// refCount is the number of compiled sources referencing mapped.
func (g *sourceGraph) refCount(mapped *Source) int {
	return len(g.compiledBy[mapped])
}

type parentLink struct {
	compiled  *Source
	listedURL string
}

func (g *sourceGraph) parentsOf(mapped *Source) []parentLink {
	parents := g.compiledBy[mapped]
	links := make([]parentLink, 0, len(parents))

	for compiled, listedURL := range parents {
		links = append(links, parentLink{compiled: compiled, listedURL: listedURL})
	}

	return links
}

// releaseCompiled drops every edge leaving compiled and returns the mapped
// sources left with no referencing compiled source.
func (g *sourceGraph) releaseCompiled(compiled *Source) []*Source {
	var orphans []*Source

	for mapped := range g.produced[compiled] {
		parents := g.compiledBy[mapped]
		delete(parents, compiled)

		if len(parents) == 0 {
			delete(g.compiledBy, mapped)
			orphans = append(orphans, mapped)
		}
	}

	delete(g.produced, compiled)

	return orphans
}

// detachMapped drops every edge entering mapped and returns the compiled
// sources that referenced it, with the URLs they listed it under.
func (g *sourceGraph) detachMapped(mapped *Source) []parentLink {
	links := g.parentsOf(mapped)

	for _, link := range links {
		if children, ok := g.produced[link.compiled]; ok {
			delete(children, mapped)

			if len(children) == 0 {
				delete(g.produced, link.compiled)
			}
		}
	}

	delete(g.compiledBy, mapped)

	return links
}

func (g *sourceGraph) clear() {
	g.compiledBy = make(map[*Source]map[*Source]string)
	g.produced = make(map[*Source]map[*Source]struct{})
}
