package formatters

import (
	"fmt"

	"github.com/LegacyCodeHQ/solgraph/depgraph"
)

// OutputFormat names a supported graph rendering.
type OutputFormat string

const (
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatMermaid OutputFormat = "mermaid"
)

// FormatOptions contains optional parameters for formatting import graphs.
type FormatOptions struct {
	// Label is an optional title or label for the graph
	Label string
}

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts an import graph to a formatted string representation.
	Format(g *depgraph.ImportGraph, opts FormatOptions) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "json", "dot", "mermaid"
func NewFormatter(format string) (Formatter, error) {
	switch OutputFormat(format) {
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	case OutputFormatDOT:
		return &DOTFormatter{}, nil
	case OutputFormatMermaid:
		return &MermaidFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: dot, json, mermaid)", format)
	}
}
