package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jsuplift/jsuplift/pkg/fix"
	"github.com/jsuplift/jsuplift/pkg/runner"
)

// Severity string constants.
const (
	severityWarning = "warning"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Suggestions []JSONSuggestion `json:"suggestions"`
	Skipped     bool             `json:"skipped,omitempty"`
	Modified    bool             `json:"modified,omitempty"`
	Fix         *JSONFixResult   `json:"fix,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONSuggestion represents a single modernization suggestion.
type JSONSuggestion struct {
	RuleID      string `json:"ruleId"`
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	OldCode     string `json:"oldCode"`
	NewCode     string `json:"newCode,omitempty"`
	Description string `json:"description"`
}

// JSONFixResult summarizes the autofix outcome for one file.
type JSONFixResult struct {
	Applied          int               `json:"applied"`
	DroppedConflicts int               `json:"droppedConflicts"`
	Failures         []fix.EditFailure `json:"failures,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesAnalyzed     int            `json:"filesAnalyzed"`
	FilesSkipped      int            `json:"filesSkipped"`
	FilesWithFindings int            `json:"filesWithFindings"`
	FilesModified     int            `json:"filesModified"`
	FilesErrored      int            `json:"filesErrored"`
	TotalSuggestions  int            `json:"totalSuggestions"`
	BySeverity        map[string]int `json:"bySeverity"`
	EditsApplied      int            `json:"editsApplied"`
	EditsFailed       int            `json:"editsFailed"`
	EditsDropped      int            `json:"editsDropped"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalSuggestions, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        file.Path,
			Suggestions: make([]JSONSuggestion, 0, len(file.Suggestions)),
			Skipped:     file.Skipped,
			Modified:    file.Written,
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		for _, sug := range file.Suggestions {
			severity := string(sug.Severity)
			if severity == "" {
				severity = severityWarning
			}

			fileResult.Suggestions = append(fileResult.Suggestions, JSONSuggestion{
				RuleID:      sug.RuleID,
				Severity:    severity,
				Category:    string(sug.Category),
				Tier:        string(sug.Tier),
				Line:        sug.Line,
				Column:      sug.Column,
				OldCode:     sug.OldCode,
				NewCode:     sug.NewCode,
				Description: sug.Description,
			})
			output.Summary.TotalSuggestions++
			output.Summary.BySeverity[severity]++
		}

		if file.Fix != nil {
			fileResult.Fix = &JSONFixResult{
				Applied:          file.Fix.Applied,
				DroppedConflicts: file.Fix.DroppedConflicts,
				Failures:         file.Fix.Failures,
			}
			output.Summary.EditsApplied += file.Fix.Applied
			output.Summary.EditsFailed += len(file.Fix.Failures)
			output.Summary.EditsDropped += file.Fix.DroppedConflicts
		}

		if len(fileResult.Suggestions) > 0 {
			output.Summary.FilesWithFindings++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}
		if file.Skipped {
			output.Summary.FilesSkipped++
		} else if file.Error == nil {
			output.Summary.FilesAnalyzed++
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
