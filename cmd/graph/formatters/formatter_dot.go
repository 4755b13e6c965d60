package formatters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LegacyCodeHQ/solgraph/depgraph"
)

// DOTFormatter formats import graphs as Graphviz DOT.
type DOTFormatter struct{}

// Format converts the import graph to Graphviz DOT format. Project files
// render as plain boxes; library files are filled and carry their
// name@version as a tooltip.
func (f *DOTFormatter) Format(g *depgraph.ImportGraph, opts FormatOptions) (string, error) {
	adjacency, err := g.Adjacency()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph imports {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=\"%s\";\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	for _, file := range g.Files() {
		if file.Library != nil {
			sb.WriteString(fmt.Sprintf("  \"%s\" [style=filled, fillcolor=lightyellow, tooltip=\"%s\"];\n",
				file.SourceName, file.VersionedName()))
		} else {
			sb.WriteString(fmt.Sprintf("  \"%s\";\n", file.SourceName))
		}
	}
	sb.WriteString("\n")

	sources := make([]string, 0, len(adjacency))
	for source := range adjacency {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		for _, dep := range adjacency[source] {
			sb.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", source, dep))
		}
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}
