package runner

import (
	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/fix"
)

// FileOutcome captures the full outcome of processing one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Suggestions holds the modernization suggestions for this file, in
	// deterministic source order.
	Suggestions []analyze.Suggestion

	// Skipped is true when the file was discovered but not analyzed
	// (vendored, generated, or minified content).
	Skipped bool

	// Fix holds the autofix outcome when fixing was requested.
	// Nil when the run is analysis-only.
	Fix *fix.Result

	// Written is true when fixed content was persisted to disk.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesAnalyzed is the number of files successfully analyzed.
	FilesAnalyzed int

	// FilesSkipped is the number of discovered files that were skipped
	// (vendored, generated, or minified content).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// SuggestionsTotal is the total number of suggestions across all files.
	SuggestionsTotal int

	// SuggestionsBySeverity maps severity levels to counts.
	SuggestionsBySeverity map[string]int

	// FilesWithFindings is the number of files with at least one suggestion.
	FilesWithFindings int

	// FilesModified is the number of files rewritten by fixes.
	FilesModified int

	// EditsApplied is the total number of edits applied across all files.
	EditsApplied int

	// EditsFailed is the total number of per-edit application failures.
	EditsFailed int

	// EditsDropped is the total number of edits dropped due to range
	// conflicts with already-accepted edits.
	EditsDropped int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any error-severity suggestions occurred or
// any file failed to process.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.SuggestionsBySeverity["error"] > 0 || r.Stats.FilesErrored > 0
}

// HasFindings reports whether any suggestions were produced.
func (r *Result) HasFindings() bool {
	if r == nil {
		return false
	}
	return r.Stats.SuggestionsTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		SuggestionsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesAnalyzed++

	if len(outcome.Suggestions) > 0 {
		r.Stats.FilesWithFindings++
	}
	r.Stats.SuggestionsTotal += len(outcome.Suggestions)

	for _, s := range outcome.Suggestions {
		severity := string(s.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.SuggestionsBySeverity[severity]++
	}

	if outcome.Fix != nil {
		r.Stats.EditsApplied += outcome.Fix.Applied
		r.Stats.EditsFailed += len(outcome.Fix.Failures)
		r.Stats.EditsDropped += outcome.Fix.DroppedConflicts
	}

	if outcome.Written {
		r.Stats.FilesModified++
	}
}
