package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/solgraph/depgraph"
	"github.com/LegacyCodeHQ/solgraph/internal/mcplogdlog"
	"github.com/LegacyCodeHQ/solgraph/resolver"
	"github.com/LegacyCodeHQ/solgraph/solparser"
)

var projectRoot string

// Cmd represents the watch command.
var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for file changes and re-resolve the import graph",
	Long: `Watch a project directory for Solidity file changes, rebuild the import
graph after each change, and emit one JSON event line per rebuild.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(projectRoot)
		if err != nil {
			return fmt.Errorf("failed to resolve project root: %w", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		mcplogdlog.Debug("watch started", map[string]any{"root": root})
		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s\n", root)
		fmt.Fprintf(cmd.ErrOrStderr(), "Press Ctrl+C to stop\n")

		publishCurrentGraph(root, cmd.OutOrStdout(), cmd.ErrOrStderr())

		return watchAndRebuild(ctx, root, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// graphEvent is one line of the watch command's JSON event stream.
type graphEvent struct {
	Time         string              `json:"time"`
	Files        []string            `json:"files"`
	Dependencies map[string][]string `json:"dependencies"`
}

type errorEvent struct {
	Time  string `json:"time"`
	Error string `json:"error"`
}

func publishCurrentGraph(projectRoot string, out, errOut io.Writer) {
	now := time.Now().UTC().Format(time.RFC3339)

	g, err := rebuildGraph(projectRoot)
	if err != nil {
		line, _ := json.Marshal(errorEvent{Time: now, Error: err.Error()})
		fmt.Fprintln(errOut, string(line))
		return
	}

	adjacency, err := g.Adjacency()
	if err != nil {
		fmt.Fprintf(errOut, "adjacency error: %v\n", err)
		return
	}
	names := make([]string, 0)
	for _, file := range g.Files() {
		names = append(names, file.SourceName)
	}
	event := graphEvent{Time: now, Files: names, Dependencies: adjacency}
	line, err := json.Marshal(event)
	if err != nil {
		fmt.Fprintf(errOut, "event encode error: %v\n", err)
		return
	}
	fmt.Fprintln(out, string(line))
}

func rebuildGraph(projectRoot string) (*depgraph.ImportGraph, error) {
	rootNames, err := discoverSourceNames(projectRoot)
	if err != nil {
		return nil, err
	}
	builder := depgraph.NewBuilder(resolver.NewResolver(projectRoot, solparser.New()))
	return builder.Build(rootNames)
}

// discoverSourceNames returns the source name of every .sol file under
// root, excluding library and build-output directories, sorted.
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
	Cmd.Flags().StringVarP(&projectRoot, "project", "p", ".", "Project root directory")
}
