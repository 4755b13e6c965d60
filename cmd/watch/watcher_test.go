package watch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestIsRelevantChange(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "solidity write",
			event: fsnotify.Event{Name: "contracts/Token.sol", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "solidity create",
			event: fsnotify.Event{Name: "contracts/Vault.sol", Op: fsnotify.Create},
			want:  true,
		},
		{
			name:  "solidity remove",
			event: fsnotify.Event{Name: "contracts/Token.sol", Op: fsnotify.Remove},
			want:  true,
		},
		{
			name:  "javascript write",
			event: fsnotify.Event{Name: "scripts/deploy.js", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "solidity chmod only",
			event: fsnotify.Event{Name: "contracts/Token.sol", Op: fsnotify.Chmod},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRelevantChange(tt.event); got != tt.want {
				t.Errorf("isRelevantChange(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestAddWatchDirsSkipsLibraryAndBuildDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{
		"contracts/interfaces",
		"node_modules/@openzeppelin/contracts",
		"artifacts/contracts",
	} {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, root); err != nil {
		t.Fatalf("addWatchDirs: %v", err)
	}

	for _, path := range watcher.WatchList() {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(rel, "node_modules") || strings.HasPrefix(rel, "artifacts") {
			t.Errorf("expected %s to be skipped, but it is watched", rel)
		}
	}
}
