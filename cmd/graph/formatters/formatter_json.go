package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/solgraph/depgraph"
)

// JSONFormatter formats import graphs as JSON.
type JSONFormatter struct{}

type jsonFile struct {
	SourceName string `json:"sourceName"`
	Library    string `json:"library,omitempty"`
}

type jsonGraph struct {
	Label        string              `json:"label,omitempty"`
	Files        []jsonFile          `json:"files"`
	Dependencies map[string][]string `json:"dependencies"`
}

// Format converts the import graph to indented JSON. Map keys are sorted
// by the encoder, so output is deterministic.
func (f *JSONFormatter) Format(g *depgraph.ImportGraph, opts FormatOptions) (string, error) {
	adjacency, err := g.Adjacency()
	if err != nil {
		return "", err
	}

	out := jsonGraph{
		Label:        opts.Label,
		Files:        []jsonFile{},
		Dependencies: adjacency,
	}
	for _, file := range g.Files() {
		entry := jsonFile{SourceName: file.SourceName}
		if file.Library != nil {
			entry.Library = file.Library.Name + "@" + file.Library.Version
		}
		out.Files = append(out.Files, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
