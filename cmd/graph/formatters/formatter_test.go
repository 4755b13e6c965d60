package formatters

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/solgraph/depgraph"
	"github.com/LegacyCodeHQ/solgraph/resolver"
)

func formatterGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}

func testGraph(t *testing.T) *depgraph.ImportGraph {
	t.Helper()
	files := []*resolver.ResolvedFile{
		{SourceName: "contracts/Token.sol"},
		{SourceName: "contracts/interfaces/IToken.sol"},
		{
			SourceName: "@openzeppelin/contracts/access/Ownable.sol",
			Library:    &resolver.LibraryInfo{Name: "@openzeppelin/contracts", Version: "4.9.3"},
		},
	}
	adjacency := map[string][]string{
		"contracts/Token.sol": {
			"contracts/interfaces/IToken.sol",
			"@openzeppelin/contracts/access/Ownable.sol",
		},
	}
	g, err := depgraph.FromAdjacency(files, adjacency)
	require.NoError(t, err)
	return g
}

func TestDOTFormatter_LibraryNodesStyled(t *testing.T) {
	output, err := (&DOTFormatter{}).Format(testGraph(t), FormatOptions{Label: "demo"})
	require.NoError(t, err)

	formatterGoldie(t).Assert(t, "dot_graph", []byte(output))
}

func TestJSONFormatter_FilesAndDependencies(t *testing.T) {
	output, err := (&JSONFormatter{}).Format(testGraph(t), FormatOptions{})
	require.NoError(t, err)

	formatterGoldie(t).Assert(t, "json_graph", []byte(output))
}

func TestMermaidFormatter_LibraryClassEmitted(t *testing.T) {
	output, err := (&MermaidFormatter{}).Format(testGraph(t), FormatOptions{})
	require.NoError(t, err)

	formatterGoldie(t).Assert(t, "mermaid_graph", []byte(output))
}

func TestNewFormatter_KnownFormats(t *testing.T) {
	for _, format := range []string{"dot", "json", "mermaid"} {
		formatter, err := NewFormatter(format)
		require.NoError(t, err, "format %s", format)
		assert.NotNil(t, formatter)
	}
}

func TestNewFormatter_UnknownFormat_Fails(t *testing.T) {
	_, err := NewFormatter("svg")
	assert.Error(t, err)
}

func TestMermaidNodeID_SanitizesSourceNames(t *testing.T) {
	assert.Equal(t, "contracts_Token_sol", mermaidNodeID("contracts/Token.sol"))
	assert.Equal(t, "_scope_lib_A_sol", mermaidNodeID("@scope/lib/A.sol"))
}
