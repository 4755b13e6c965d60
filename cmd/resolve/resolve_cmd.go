package resolve

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/solgraph/resolver"
	"github.com/LegacyCodeHQ/solgraph/solparser"
)

var projectRoot string

// resolvedDescription is the JSON shape printed for each resolved file.
type resolvedDescription struct {
	SourceName     string   `json:"sourceName"`
	AbsolutePath   string   `json:"absolutePath"`
	Library        string   `json:"library,omitempty"`
	Imports        []string `json:"imports"`
	VersionPragmas []string `json:"versionPragmas"`
}

// Cmd represents the resolve command.
var Cmd = &cobra.Command{
	Use:   "resolve <source-name> [<source-name>...]",
	Short: "Resolve source names to files on disk",
	Long: `Resolve one or more source names against the project and its installed
libraries, and print a JSON description of each resolved file.

Example usage:
  solgraph resolve contracts/Token.sol
  solgraph resolve @openzeppelin/contracts/token/ERC20/ERC20.sol
  solgraph resolve --project ./my-dapp contracts/Token.sol contracts/Vault.sol`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(projectRoot)
		if err != nil {
			return fmt.Errorf("failed to resolve project root: %w", err)
		}
		r := resolver.NewResolver(root, solparser.New())

		descriptions := make([]resolvedDescription, 0, len(args))
		for _, sourceName := range args {
			file, err := r.ResolveSourceName(sourceName)
			if err != nil {
				return err
			}
			descriptions = append(descriptions, describe(file))
		}

		data, err := json.MarshalIndent(descriptions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func describe(file *resolver.ResolvedFile) resolvedDescription {
	description := resolvedDescription{
		SourceName:     file.SourceName,
		AbsolutePath:   file.AbsolutePath,
		Imports:        file.Content.Imports,
		VersionPragmas: file.Content.VersionPragmas,
	}
	if file.Library != nil {
		description.Library = file.Library.Name + "@" + file.Library.Version
	}
	if description.Imports == nil {
		description.Imports = []string{}
	}
	if description.VersionPragmas == nil {
		description.VersionPragmas = []string{}
	}
	return description
}

func init() {
	Cmd.Flags().StringVarP(&projectRoot, "project", "p", ".", "Project root directory")
}
