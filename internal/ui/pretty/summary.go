package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsuplift/jsuplift/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 suggestions (8 warnings, 4 info) in 3 files, 6 edits applied".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.SuggestionsTotal == 0 {
		msg := s.Success.Render("No modernization candidates found") +
			s.Dim.Render(fmt.Sprintf(" (%d files analyzed)", stats.FilesAnalyzed))
		// Show edits applied even when no findings remain.
		if stats.EditsApplied > 0 {
			fileWord := wordFiles
			if stats.FilesModified == 1 {
				fileWord = wordFile
			}
			msg += ", " + s.Success.Render(fmt.Sprintf("%d edits applied in %d %s",
				stats.EditsApplied, stats.FilesModified, fileWord))
		}
		return msg + "\n"
	}

	var parts []string

	suggestionWord := "suggestions"
	if stats.SuggestionsTotal == 1 {
		suggestionWord = "suggestion"
	}

	// Severity breakdown
	var severityParts []string
	if errors := stats.SuggestionsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.SuggestionsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if infos := stats.SuggestionsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)",
			stats.SuggestionsTotal, suggestionWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.SuggestionsTotal, suggestionWord))
	}

	fileWord := wordFiles
	if stats.FilesWithFindings == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithFindings, fileWord))

	if stats.EditsApplied > 0 {
		editedFileWord := wordFiles
		if stats.FilesModified == 1 {
			editedFileWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d edits applied in %d %s",
			stats.EditsApplied, stats.FilesModified, editedFileWord)))
	}

	if stats.EditsFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d edits failed", stats.EditsFailed)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files analyzed:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesAnalyzed)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:         " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.FilesWithFindings > 0 {
		builder.WriteString("  Files with findings:   " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithFindings)) + "\n")
	}

	if stats.FilesModified > 0 {
		builder.WriteString("  Files modified:        " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}

	builder.WriteString("\n")

	// Suggestions by severity
	builder.WriteString("  Total suggestions:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.SuggestionsTotal)) + "\n")

	if errors := stats.SuggestionsBySeverity["error"]; errors > 0 {
		builder.WriteString("    Errors:              " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.SuggestionsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:            " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.SuggestionsBySeverity["info"]; infos > 0 {
		builder.WriteString("    Info:                " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	// Edit accounting only matters on fix runs.
	if stats.EditsApplied > 0 || stats.EditsFailed > 0 || stats.EditsDropped > 0 {
		builder.WriteString("\n")
		builder.WriteString("  Edits applied:         " +
			s.Success.Render(strconv.Itoa(stats.EditsApplied)) + "\n")
		if stats.EditsFailed > 0 {
			builder.WriteString("  Edits failed:          " +
				s.Failure.Render(strconv.Itoa(stats.EditsFailed)) + "\n")
		}
		if stats.EditsDropped > 0 {
			builder.WriteString("  Edits dropped:         " +
				s.SummaryValue.Render(strconv.Itoa(stats.EditsDropped)) + "\n")
		}
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.SuggestionsBySeverity["error"] > 0:
		builder.WriteString(s.Failure.Render("Analysis failed with errors"))
	case stats.SuggestionsBySeverity["warning"] > 0:
		builder.WriteString(s.Warning.Render("Analysis completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Analysis passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
