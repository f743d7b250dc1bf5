package pretty

import (
	"fmt"
	"strings"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
)

// FormatSuggestion formats a single suggestion for terminal output.
func (s *Styles) FormatSuggestion(sug *analyze.Suggestion, showContext bool, sourceLine string) string {
	var builder strings.Builder

	// Location: path:line:col
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(sug.FilePath),
		sug.Line,
		sug.Column,
	)

	severity := s.FormatSeverity(sug.Severity)
	ruleDisplay := s.RuleID.Render("(" + sug.RuleID + ")")

	// Main line: location  severity  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(sug.Description),
		ruleDisplay,
	))

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, sug.Column))
	}

	// Proposed replacement
	if sug.NewCode != "" {
		builder.WriteString("    " + s.Dim.Render("Replace with:") + " " +
			s.Replacement.Render(sug.NewCode) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
// The column is a 0-based byte offset into the line.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with suggestion output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column >= 0 && column <= len(line) {
		padding := indent + strings.Repeat(" ", column)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	if count > 0 {
		word := "suggestions"
		if count == 1 {
			word = "suggestion"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", count, word))
	}
	return header
}
