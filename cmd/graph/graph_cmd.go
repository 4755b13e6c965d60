package graph

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/solgraph/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/solgraph/depgraph"
	"github.com/LegacyCodeHQ/solgraph/internal/mcplogdlog"
	"github.com/LegacyCodeHQ/solgraph/resolver"
	"github.com/LegacyCodeHQ/solgraph/solparser"
)

var outputFormat string
var projectRoot string
var graphLabel string
var copyToClipboard bool

// skippedDirs are never searched for root contracts. Library files still
// enter the graph when project files import them.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"artifacts":    true,
	"cache":        true,
}

// Cmd represents the graph command.
var Cmd = &cobra.Command{
	Use:   "graph [source-names...]",
	Short: "Build an import graph from resolved source files",
	Long: `Build the project's import graph by resolving every import edge, and
render it as DOT, Mermaid or JSON.

With no arguments, every .sol file under the project root (excluding
node_modules and build output) becomes a graph root. Passing explicit
source names restricts the roots.

Example usage:
  solgraph graph
  solgraph graph --format=mermaid
  solgraph graph contracts/Token.sol contracts/Vault.sol
  solgraph graph --project ./my-dapp --format=json --copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(projectRoot)
		if err != nil {
			return fmt.Errorf("failed to resolve project root: %w", err)
		}

		rootNames := args
		if len(rootNames) == 0 {
			rootNames, err = discoverSourceNames(root)
			if err != nil {
				return fmt.Errorf("failed to discover source files: %w", err)
			}
			if len(rootNames) == 0 {
				return fmt.Errorf("no .sol files found under %s", root)
			}
		}
		mcplogdlog.Debug("building import graph", map[string]any{"root": root, "roots": len(rootNames)})

		builder := depgraph.NewBuilder(resolver.NewResolver(root, solparser.New()))
		g, err := builder.Build(rootNames)
		if err != nil {
			return err
		}

		formatter, err := formatters.NewFormatter(outputFormat)
		if err != nil {
			return err
		}
		output, err := formatter.Format(g, formatters.FormatOptions{Label: graphLabel})
		if err != nil {
			return fmt.Errorf("failed to format graph: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), output)

		if copyToClipboard {
			if err := clipboard.WriteAll(output); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n✅ Content copied to your clipboard.")
		}
		return nil
	},
}

// discoverSourceNames walks the project tree and returns the source name
// of every .sol file, sorted for deterministic graph roots.
func discoverSourceNames(root string) ([]string, error) {
	var sourceNames []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".sol") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		sourceNames = append(sourceNames, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(sourceNames)
	return sourceNames, nil
}

func init() {
	Cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format (dot, json, mermaid)")
	Cmd.Flags().StringVarP(&projectRoot, "project", "p", ".", "Project root directory")
	Cmd.Flags().StringVarP(&graphLabel, "label", "l", "", "Optional graph label")
	Cmd.Flags().BoolVarP(&copyToClipboard, "copy", "y", false, "Copy the rendered graph to the clipboard")
}
