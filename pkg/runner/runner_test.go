package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/analyze/rules"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/fsutil"
	"github.com/jsuplift/jsuplift/pkg/parser"
	"github.com/jsuplift/jsuplift/pkg/runner"
)

// newRunner builds a runner over the real parser and the full rule set.
func newRunner(cfg *config.Config) *runner.Runner {
	engine := analyze.NewEngine(parser.New(), rules.All(), cfg)
	return runner.New(engine)
}

// writeFile writes a test file and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNew(t *testing.T) {
	t.Parallel()

	engine := analyze.NewEngine(parser.New(), rules.All(), config.Default())
	r := runner.New(engine)

	if r.Engine != engine {
		t.Error("Engine not set correctly")
	}
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := config.Default()
	r := newRunner(cfg)

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("FilesDiscovered = %d, want 0", result.Stats.FilesDiscovered)
	}
	if result.HasFindings() {
		t.Error("expected no findings for empty directory")
	}
}

func TestRunner_Run_AnalyzeOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := "var greeting = 'hi';\nuse(greeting);\n"
	path := writeFile(t, dir, "app.js", src)

	cfg := config.Default()
	r := newRunner(cfg)

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.FilesAnalyzed != 1 {
		t.Fatalf("FilesAnalyzed = %d, want 1", result.Stats.FilesAnalyzed)
	}
	if !result.HasFindings() {
		t.Fatal("expected findings for var declaration")
	}

	outcome := result.Files[0]
	if outcome.Path != path {
		t.Errorf("Path = %q, want %q", outcome.Path, path)
	}
	found := false
	for _, s := range outcome.Suggestions {
		if s.RuleID == "JS001" {
			found = true
		}
	}
	if !found {
		t.Error("expected a JS001 suggestion")
	}
	if outcome.Fix != nil {
		t.Error("analysis-only run should not carry a fix result")
	}

	// File must be untouched.
	got, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("re-read: %v", readErr)
	}
	if string(got) != src {
		t.Error("analysis-only run modified the file")
	}
}

func TestRunner_Run_FixWritesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "app.js", "var greeting = 'hi';\nuse(greeting);\n")

	cfg := config.Default()
	cfg.Fix = true
	r := newRunner(cfg)

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.FilesModified != 1 {
		t.Fatalf("FilesModified = %d, want 1", result.Stats.FilesModified)
	}
	if result.Stats.EditsApplied == 0 {
		t.Error("expected applied edits")
	}

	outcome := result.Files[0]
	if !outcome.Written {
		t.Error("outcome.Written = false, want true")
	}
	if outcome.Fix == nil || !outcome.Fix.Success {
		t.Fatal("expected a successful fix result")
	}

	got, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("re-read: %v", readErr)
	}
	if !strings.HasPrefix(string(got), "const greeting") {
		t.Errorf("rewritten content = %q, want const declaration", got)
	}

	// Default config keeps backups enabled.
	if !fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
		t.Error("expected a sidecar backup")
	}
}

func TestRunner_Run_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := "var greeting = 'hi';\nuse(greeting);\n"
	path := writeFile(t, dir, "app.js", src)

	cfg := config.Default()
	cfg.Fix = true
	cfg.DryRun = true
	r := newRunner(cfg)

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	outcome := result.Files[0]
	if outcome.Written {
		t.Error("dry run must not write")
	}
	if outcome.Fix == nil || outcome.Fix.Applied == 0 {
		t.Fatal("dry run should still compute edits")
	}
	if !strings.HasPrefix(outcome.Fix.ModifiedContent, "const greeting") {
		t.Errorf("ModifiedContent = %q, want const declaration", outcome.Fix.ModifiedContent)
	}

	got, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("re-read: %v", readErr)
	}
	if string(got) != src {
		t.Error("dry run modified the file")
	}
	if fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
		t.Error("dry run must not create backups")
	}
}

func TestRunner_Run_SkipsMinified(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "lib.min.js", "var a=1;function b(){return a}\n")

	cfg := config.Default()
	r := newRunner(cfg)

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.FilesDiscovered != 1 {
		t.Fatalf("FilesDiscovered = %d, want 1", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1", result.Stats.FilesSkipped)
	}
	if result.Stats.FilesAnalyzed != 0 {
		t.Errorf("FilesAnalyzed = %d, want 0", result.Stats.FilesAnalyzed)
	}
}

func TestRunner_Run_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := []string{"zeta.js", "alpha.js", "mid.js"}
	for _, name := range names {
		writeFile(t, dir, name, "var x = 1;\nuse(x);\n")
	}

	cfg := config.Default()
	r := newRunner(cfg)

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
		Jobs:       3,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"alpha.js", "mid.js", "zeta.js"}
	if len(result.Files) != len(want) {
		t.Fatalf("got %d outcomes, want %d", len(result.Files), len(want))
	}
	for i, outcome := range result.Files {
		if filepath.Base(outcome.Path) != want[i] {
			t.Errorf("Files[%d] = %s, want %s", i, filepath.Base(outcome.Path), want[i])
		}
	}
}

func TestRunner_Run_MissingPath(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	r := newRunner(cfg)

	_, err := r.Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"does-not-exist.js"},
		Config:     cfg,
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "app.js", "var x = 1;\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.Default()
	r := newRunner(cfg)

	_, err := r.Run(ctx, runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestResult_HasFailures(t *testing.T) {
	t.Parallel()

	var nilResult *runner.Result
	if nilResult.HasFailures() {
		t.Error("nil result should not report failures")
	}

	r := &runner.Result{}
	r.Stats.SuggestionsBySeverity = map[string]int{"warning": 2}
	if r.HasFailures() {
		t.Error("warnings alone are not failures")
	}

	r.Stats.SuggestionsBySeverity["error"] = 1
	if !r.HasFailures() {
		t.Error("error-severity suggestions are failures")
	}

	r = &runner.Result{}
	r.Stats.SuggestionsBySeverity = map[string]int{}
	r.Stats.FilesErrored = 1
	if !r.HasFailures() {
		t.Error("file errors are failures")
	}
}
