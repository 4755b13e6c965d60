// Package solparser extracts import paths and solidity version pragmas
// from Solidity source text. Parsing is total: source that the grammar
// cannot handle degrades to a regexp scan and malformed text yields
// best-effort empty results, never an error.
package solparser

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/alexaandru/go-sitter-forest/solidity"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Parser is a reusable Solidity parser. It is safe for concurrent use;
// the underlying tree-sitter parsers are pooled.
type Parser struct {
	language *sitter.Language
	pool     sync.Pool
}

// New creates a Parser backed by the tree-sitter Solidity grammar.
func New() *Parser {
	language := sitter.NewLanguage(solidity.GetLanguage())
	return &Parser{
		language: language,
		pool: sync.Pool{
			New: func() any {
				tsParser := sitter.NewParser()
				tsParser.SetLanguage(language)
				return tsParser
			},
		},
	}
}

// Parse returns the import paths and solidity version pragma constraints
// found in rawText, in source order. absolutePath is accepted for
// interface compatibility; diagnostics here never need it.
func (p *Parser) Parse(rawText, absolutePath string) (imports, versionPragmas []string) {
	_ = absolutePath

	tsParser, ok := p.pool.Get().(*sitter.Parser)
	if !ok {
		return scan(rawText)
	}
	defer p.pool.Put(tsParser)

	source := []byte(rawText)
	tree, err := tsParser.ParseString(context.Background(), nil, source)
	if err != nil {
		return scan(rawText)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return scan(rawText)
	}

	imports = []string{}
	versionPragmas = []string{}
	for idx := range root.NamedChildCount() {
		child := root.NamedChild(idx)
		switch child.Type() {
		case "import_directive":
			if imported := importSource(child, source); imported != "" {
				imports = append(imports, imported)
			}
		case "pragma_directive":
			if constraint := solidityPragma(nodeText(child, source)); constraint != "" {
				versionPragmas = append(versionPragmas, constraint)
			}
		}
	}
	return imports, versionPragmas
}

// importSource finds the quoted source of an import directive. The
// grammar places it in a string node for every import form ("x",
// "x" as y, {a, b} from "x").
func importSource(node sitter.Node, source []byte) string {
	for idx := range node.NamedChildCount() {
		child := node.NamedChild(idx)
		if child.Type() == "string" {
			return unquote(nodeText(child, source))
		}
		if nested := importSource(child, source); nested != "" {
			return nested
		}
	}
	return ""
}

var pragmaPattern = regexp.MustCompile(`(?s)^pragma\s+solidity\s+(.+?)\s*;?\s*$`)

// solidityPragma extracts the version constraint out of a pragma
// directive's text. Non-version pragmas (abicoder, experimental) are
// skipped.
func solidityPragma(directive string) string {
	match := pragmaPattern.FindStringSubmatch(strings.TrimSpace(directive))
	if match == nil {
		return ""
	}
	return strings.Join(strings.Fields(match[1]), " ")
}

func nodeText(node sitter.Node, source []byte) string {
	start, end := node.StartByte(), node.EndByte()
	if int(end) > len(source) || start > end {
		return ""
	}
	return string(source[start:end])
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

var (
	importPattern     = regexp.MustCompile(`import\s+(?:[^'";]*?\bfrom\s+)?['"]([^'"\n]+)['"]`)
	pragmaLinePattern = regexp.MustCompile(`pragma\s+solidity\s+([^;]+);`)
)

// scan is the regexp fallback used when the grammar cannot produce a
// tree. It recognizes the common import and pragma spellings only.
func scan(rawText string) (imports, versionPragmas []string) {
	imports = []string{}
	versionPragmas = []string{}
	for _, match := range importPattern.FindAllStringSubmatch(rawText, -1) {
		imports = append(imports, match[1])
	}
	for _, match := range pragmaLinePattern.FindAllStringSubmatch(rawText, -1) {
		versionPragmas = append(versionPragmas, strings.Join(strings.Fields(match[1]), " "))
	}
	return imports, versionPragmas
}
