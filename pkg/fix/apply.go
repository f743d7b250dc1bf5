package fix

import (
	"sort"

	"github.com/jsuplift/jsuplift/pkg/config"
)

// Options controls fix application.
type Options struct {
	// DryRun indicates the caller will not persist the result.
	// The modified content is computed either way; the original input
	// is never mutated.
	DryRun bool

	// SafeOnly restricts application to info-severity suggestions
	// (textual, narrow, low-risk rewrites).
	SafeOnly bool

	// MaxEdits caps the number of edits applied.
	// Zero or negative means unlimited.
	MaxEdits int
}

// EditFailure records a single edit that could not be applied.
type EditFailure struct {
	RuleID   string   `json:"ruleId"`
	Message  string   `json:"message"`
	Position Position `json:"position"`
}

// Result is the outcome of one fix run over one file.
type Result struct {
	// Success is true only if no edit application failed.
	// Filtered and conflict-dropped edits are not failures.
	Success bool `json:"success"`

	// Applied is the number of edits actually applied.
	Applied int `json:"applied"`

	// DroppedConflicts is the number of edits dropped because their
	// range overlapped an already-accepted edit.
	DroppedConflicts int `json:"droppedConflicts"`

	// ModifiedContent is the content after applying the accepted edits.
	ModifiedContent string `json:"modifiedContent"`

	// Failures lists per-edit application failures.
	Failures []EditFailure `json:"failures,omitempty"`
}

// Apply filters, orders, deduplicates, and applies a non-conflicting
// subset of the proposed edits to content. All edit ranges are measured
// against the original content; the pipeline is:
//
//  1. Filter: drop non-info suggestions when SafeOnly is set, and drop
//     malformed or out-of-bounds ranges. Both are silent (pre-condition
//     violations, not runtime failures).
//  2. Sort descending by end position (line, then column), producing a
//     bottom-to-top, right-to-left processing order.
//  3. Drop any candidate whose range overlaps an already-accepted one;
//     the first candidate in sorted order wins, losers are counted on
//     DroppedConflicts.
//  4. Cap at MaxEdits accepted edits.
//  5. Apply each edit to an owned working copy, recording per-edit
//     failures without aborting the rest.
//
// The bottom-to-top order is what keeps stored positions valid: once an
// edit is applied, every pending edit targets a strictly earlier point of
// the document, so a multi-line edit collapsing lines cannot invalidate
// positions still to be processed.
func Apply(content string, fixes []AutofixSuggestion, opts Options) Result {
	result := Result{Success: true, ModifiedContent: content}
	if len(fixes) == 0 {
		return result
	}

	lineStarts := buildLineStarts(content)
	lineCount := len(lineStarts)

	// 1. Filter.
	candidates := make([]AutofixSuggestion, 0, len(fixes))
	for _, f := range fixes {
		if opts.SafeOnly && f.Severity != config.SeverityInfo {
			continue
		}
		if !f.Edit.IsWellFormed() {
			continue
		}
		if f.Edit.Start.Line > lineCount || f.Edit.End.Line > lineCount {
			continue
		}
		candidates = append(candidates, f)
	}
	if len(candidates) == 0 {
		return result
	}

	// 2. Sort: end position descending, then start ascending, then rule ID.
	// The secondary keys make the accepted set independent of input order.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].Edit, candidates[j].Edit
		if a.End != b.End {
			return b.End.Before(a.End)
		}
		if a.Start != b.Start {
			return a.Start.Before(b.Start)
		}
		return candidates[i].RuleID < candidates[j].RuleID
	})

	// 3. Deduplicate overlaps on linearized offsets.
	var accepted []AutofixSuggestion
	for _, cand := range candidates {
		cs := offsetOf(lineStarts, cand.Edit.Start)
		ce := offsetOf(lineStarts, cand.Edit.End)

		conflict := false
		for _, acc := range accepted {
			as := offsetOf(lineStarts, acc.Edit.Start)
			ae := offsetOf(lineStarts, acc.Edit.End)
			if cs < ae && as < ce {
				conflict = true
				break
			}
		}
		if conflict {
			result.DroppedConflicts++
			continue
		}
		accepted = append(accepted, cand)
	}

	// 4. Cap.
	if opts.MaxEdits > 0 && len(accepted) > opts.MaxEdits {
		accepted = accepted[:opts.MaxEdits]
	}

	// 5. Apply bottom-to-top against an owned working copy.
	buf := NewLineBuffer(content)
	for _, f := range accepted {
		if err := buf.Apply(f.Edit); err != nil {
			result.Failures = append(result.Failures, EditFailure{
				RuleID:   f.RuleID,
				Message:  err.Error(),
				Position: f.Edit.Start,
			})
			continue
		}
		result.Applied++
	}

	result.Success = len(result.Failures) == 0
	result.ModifiedContent = buf.String()
	return result
}

// buildLineStarts returns the byte offset of each line start.
func buildLineStarts(content string) []int {
	starts := []int{0}
	for idx := range len(content) {
		if content[idx] == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return starts
}

// offsetOf linearizes a position onto byte offsets using line starts.
// Precondition: 1 <= pos.Line <= len(lineStarts); the filter step has
// already rejected malformed and out-of-bounds edits.
func offsetOf(lineStarts []int, pos Position) int {
	return lineStarts[pos.Line-1] + pos.Col
}
