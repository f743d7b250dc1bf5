package runner

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/jsuplift/jsuplift/internal/logging"
	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/fix"
	"github.com/jsuplift/jsuplift/pkg/fsutil"
	"github.com/jsuplift/jsuplift/pkg/langdetect"
)

// Runner orchestrates multi-file analysis using an analyze.Engine.
type Runner struct {
	// Engine handles per-file analysis.
	Engine *analyze.Engine

	// Logger receives per-file diagnostics. Nil means the default logger.
	Logger *log.Logger
}

// New creates a new Runner with the given engine.
func New(engine *analyze.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// The runner:
//   - Discovers JavaScript files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Applies and persists fixes when the configuration asks for them
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = cfg.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	// Workers complete out of order; each writes its own slot so the
	// collected outcomes stay in discovery order.
	outcomes := make([]FileOutcome, len(files))

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(jobs)

	for i, path := range files {
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.processFile(grpCtx, path, cfg)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	return result, nil
}

// processFile analyzes a single file and, when fixing is enabled, applies
// and persists its autofix edits.
func (r *Runner) processFile(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	if !langdetect.ShouldAnalyze(path, content) {
		r.log().Debug("skipping non-analyzable file", logging.FieldPath, path)
		outcome.Skipped = true
		return outcome
	}

	if !cfg.Fix {
		outcome.Suggestions = r.Engine.Analyze(ctx, path, content)
		return outcome
	}

	suggestions, fixes := r.Engine.AnalyzeWithFixes(ctx, path, content)
	outcome.Suggestions = suggestions

	res := fix.Apply(string(content), fixes, fix.Options{
		DryRun:   cfg.DryRun,
		SafeOnly: cfg.SafeOnly,
		MaxEdits: cfg.MaxEdits,
	})
	outcome.Fix = &res

	if cfg.DryRun || res.Applied == 0 || res.ModifiedContent == string(content) {
		return outcome
	}

	// The edits were computed against the content read above. If the file
	// changed underneath us, writing would clobber someone else's edit.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Error = fmt.Errorf("check %s: %w", path, err)
		return outcome
	}
	if modified {
		r.log().Warn("file changed during analysis, not writing",
			logging.FieldPath, path)
		return outcome
	}

	if cfg.Backups.Enabled {
		backupCfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
		if _, err := fsutil.CreateBackup(ctx, path, backupCfg); err != nil {
			outcome.Error = fmt.Errorf("backup %s: %w", path, err)
			return outcome
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(res.ModifiedContent), info.Mode); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", path, err)
		return outcome
	}
	outcome.Written = true

	r.log().Debug("rewrote file",
		logging.FieldPath, path,
		logging.FieldEditsApplied, res.Applied,
		logging.FieldEditsFailed, len(res.Failures),
		logging.FieldEditsDropped, res.DroppedConflicts)

	return outcome
}

func (r *Runner) log() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
