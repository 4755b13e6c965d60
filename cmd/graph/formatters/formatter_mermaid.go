package formatters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LegacyCodeHQ/solgraph/depgraph"
)

// MermaidFormatter formats import graphs as Mermaid flowchart markup.
type MermaidFormatter struct{}

// Format converts the import graph to a Mermaid "graph TD" flowchart.
// Library nodes get a dedicated class so renderers can style them apart
// from project files.
func (f *MermaidFormatter) Format(g *depgraph.ImportGraph, opts FormatOptions) (string, error) {
	adjacency, err := g.Adjacency()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}
	sb.WriteString("graph TD\n")

	for _, file := range g.Files() {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", mermaidNodeID(file.SourceName), file.SourceName))
	}

	sources := make([]string, 0, len(adjacency))
	for source := range adjacency {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		for _, dep := range adjacency[source] {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", mermaidNodeID(source), mermaidNodeID(dep)))
		}
	}

	var libraryIDs []string
	for _, file := range g.Files() {
		if file.Library != nil {
			libraryIDs = append(libraryIDs, mermaidNodeID(file.SourceName))
		}
	}
	if len(libraryIDs) > 0 {
		sb.WriteString(fmt.Sprintf("    class %s library\n", strings.Join(libraryIDs, ",")))
		sb.WriteString("    classDef library fill:#fdf6d8\n")
	}

	return sb.String(), nil
}

// mermaidNodeID sanitizes a source name into an identifier Mermaid
// accepts as a node id.
func mermaidNodeID(sourceName string) string {
	var sb strings.Builder
	for _, r := range sourceName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
