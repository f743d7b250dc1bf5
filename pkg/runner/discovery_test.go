package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsuplift/jsuplift/pkg/runner"
)

// writeTree creates the given relative files under dir with dummy content.
func writeTree(t *testing.T, dir string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("var x = 1;\n"), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsFile := filepath.Join(dir, "app.js")
	if err := os.WriteFile(jsFile, []byte("var x = 1;\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{jsFile},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0] != jsFile {
		t.Errorf("expected %s, got %s", jsFile, files[0])
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, []string{
		"app.js",
		"src/util.mjs",
		"src/legacy.cjs",
		"src/view.jsx",
		"src/types.ts",
		"README.md",
		"notes.txt",
	})

	discovered, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	// Only the JavaScript extensions count.
	expected := []string{
		filepath.Join(dir, "app.js"),
		filepath.Join(dir, "src/legacy.cjs"),
		filepath.Join(dir, "src/util.mjs"),
		filepath.Join(dir, "src/view.jsx"),
	}

	if len(discovered) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(discovered), discovered)
	}
	for i, exp := range expected {
		if discovered[i] != exp {
			t.Errorf("file[%d] = %s, want %s", i, discovered[i], exp)
		}
	}
}

func TestDiscover_DefaultsToCurrentDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, []string{"app.js"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      nil, // defaults to "."
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
}

func TestDiscover_SkipsNodeModules(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, []string{
		"app.js",
		"node_modules/pkg/index.js",
		"src/node_modules/other/lib.js",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "app.js" {
		t.Errorf("got %s, want app.js", files[0])
	}
}

func TestDiscover_SkipsHiddenEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, []string{
		"app.js",
		".hidden.js",
		".cache/stale.js",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, []string{
		"app.js",
		"vendor/lib.js",
		"test/fixtures/sample.js",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/fixtures"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "app.js" {
		t.Errorf("got %s, want app.js", files[0])
	}
}

func TestDiscover_IncludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, []string{
		"app.js",
		"src/util.js",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		IncludeGlobs: []string{"src/**"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "util.js" {
		t.Errorf("got %s, want util.js", files[0])
	}
}

func TestDiscover_ExplicitExtensionlessFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := filepath.Join(dir, "migrate")
	if err := os.WriteFile(script, []byte("#!/usr/bin/env node\nvar x = 1;\n"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// A directory walk would not pick this up, but naming it does.
	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"migrate"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0] != script {
		t.Errorf("got %s, want %s", files[0], script)
	}
}

func TestDiscover_DeduplicatesPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, []string{"app.js"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{".", "app.js"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file after dedup, got %d: %v", len(files), files)
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"nope.js"},
		WorkingDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, []string{"app.js"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
