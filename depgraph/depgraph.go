// Package depgraph builds a whole-project import graph by walking import
// edges outward from a set of root source names. The resolver core stays
// cache-free; the visited set lives here.
package depgraph

import (
	"errors"
	"sort"

	graphlib "github.com/dominikbraun/graph"

	"github.com/LegacyCodeHQ/solgraph/resolver"
)

// ImportGraph is a resolved project import graph keyed by source name.
type ImportGraph struct {
	graph graphlib.Graph[string, string]
	files map[string]*resolver.ResolvedFile
}

func newImportGraph() *ImportGraph {
	return &ImportGraph{
		graph: graphlib.New(graphlib.StringHash, graphlib.Directed()),
		files: make(map[string]*resolver.ResolvedFile),
	}
}

// Files returns every resolved file in the graph, sorted by source name.
func (g *ImportGraph) Files() []*resolver.ResolvedFile {
	names := make([]string, 0, len(g.files))
	for name := range g.files {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]*resolver.ResolvedFile, 0, len(names))
	for _, name := range names {
		files = append(files, g.files[name])
	}
	return files
}

// File returns the resolved file for a source name, if present.
func (g *ImportGraph) File(sourceName string) (*resolver.ResolvedFile, bool) {
	file, ok := g.files[sourceName]
	return file, ok
}

// Adjacency returns the graph as a source-name adjacency map with
// dependencies sorted, suitable for deterministic rendering.
func (g *ImportGraph) Adjacency() (map[string][]string, error) {
	adjacency, err := g.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]string, len(adjacency))
	for node, edges := range adjacency {
		deps := make([]string, 0, len(edges))
		for dep := range edges {
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		result[node] = deps
	}
	return result, nil
}

// Builder drives a resolver edge by edge to build import graphs.
type Builder struct {
	resolver *resolver.Resolver
}

// NewBuilder creates a Builder on top of a configured resolver.
func NewBuilder(r *resolver.Resolver) *Builder {
	return &Builder{resolver: r}
}

// Build resolves rootSourceNames and every file transitively reachable
// from their imports. The first resolution failure aborts the build and
// is returned as-is, still matchable against the resolver's error kinds.
func (b *Builder) Build(rootSourceNames []string) (*ImportGraph, error) {
	g := newImportGraph()

	queue := make([]*resolver.ResolvedFile, 0, len(rootSourceNames))
	for _, name := range rootSourceNames {
		file, err := b.resolver.ResolveSourceName(name)
		if err != nil {
			return nil, err
		}
		if g.add(file) {
			queue = append(queue, file)
		}
	}

	for len(queue) > 0 {
		from := queue[0]
		queue = queue[1:]

		for _, imported := range from.Content.Imports {
			to, err := b.resolver.ResolveImport(from, imported)
			if err != nil {
				return nil, err
			}
			if g.add(to) {
				queue = append(queue, to)
			}
			if err := g.graph.AddEdge(from.SourceName, to.SourceName); err != nil &&
				!errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	return g, nil
}

func (g *ImportGraph) add(file *resolver.ResolvedFile) bool {
	if _, seen := g.files[file.SourceName]; seen {
		return false
	}
	g.files[file.SourceName] = file
	// The seen map guarantees the vertex is new; the only possible
	// failure is ErrVertexAlreadyExists.
	_ = g.graph.AddVertex(file.SourceName)
	return true
}

// FromAdjacency assembles an ImportGraph from pre-resolved files and an
// adjacency map. Formatters and their tests use it to build fixtures
// without touching a filesystem.
func FromAdjacency(files []*resolver.ResolvedFile, adjacency map[string][]string) (*ImportGraph, error) {
	g := newImportGraph()
	for _, file := range files {
		g.add(file)
	}
	for from, deps := range adjacency {
		for _, to := range deps {
			if err := g.graph.AddEdge(from, to); err != nil &&
				!errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}
	return g, nil
}
