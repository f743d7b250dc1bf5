package fix

import (
	"fmt"
	"strings"
)

// LineBuffer is an owned, mutable working copy of a file's lines.
// It exposes exactly one mutating operation, Apply, so the ordering
// invariant of the fix pipeline stays auditable in isolation: edits are
// applied bottom-to-top, which means every pending edit targets a line
// strictly above any splice point already modified, and right-to-left
// within a shared line, which preserves column validity the same way.
type LineBuffer struct {
	lines []string
}

// NewLineBuffer creates a LineBuffer from content.
// Lines are split on \n; CRLF content keeps the \r at line end, and
// String reassembles the original byte-for-byte.
func NewLineBuffer(content string) *LineBuffer {
	return &LineBuffer{lines: strings.Split(content, "\n")}
}

// LineCount returns the current number of lines in the buffer.
func (b *LineBuffer) LineCount() int {
	return len(b.lines)
}

// Line returns the 1-based line, or "" if out of range.
func (b *LineBuffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

// String reassembles the buffer into file content.
func (b *LineBuffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Apply performs one edit against the buffer.
//
// A single-line edit replaces a column range within one line. A
// multi-line edit concatenates the unaffected prefix of the first line,
// the replacement text, and the unaffected suffix of the last line into
// one combined line, then splices out the original line span.
//
// Returns an error if the edit's positions do not address the buffer:
// this indicates a violated internal assumption, since out-of-bounds
// edits are filtered before application.
func (b *LineBuffer) Apply(e TextEdit) error {
	if e.End.Before(e.Start) {
		return fmt.Errorf("edit end %d:%d before start %d:%d",
			e.End.Line, e.End.Col, e.Start.Line, e.Start.Col)
	}
	if e.Start.Line < 1 || e.End.Line > len(b.lines) {
		return fmt.Errorf("edit lines %d-%d outside buffer of %d lines",
			e.Start.Line, e.End.Line, len(b.lines))
	}

	startLine := b.lines[e.Start.Line-1]
	endLine := b.lines[e.End.Line-1]

	if e.Start.Col > len(startLine) {
		return fmt.Errorf("start column %d exceeds line %d length %d",
			e.Start.Col, e.Start.Line, len(startLine))
	}
	if e.End.Col > len(endLine) {
		return fmt.Errorf("end column %d exceeds line %d length %d",
			e.End.Col, e.End.Line, len(endLine))
	}

	if e.Start.Line == e.End.Line {
		b.lines[e.Start.Line-1] = startLine[:e.Start.Col] + e.NewText + startLine[e.End.Col:]
		return nil
	}

	combined := startLine[:e.Start.Col] + e.NewText + endLine[e.End.Col:]
	spliced := make([]string, 0, len(b.lines)-(e.End.Line-e.Start.Line))
	spliced = append(spliced, b.lines[:e.Start.Line-1]...)
	spliced = append(spliced, combined)
	spliced = append(spliced, b.lines[e.End.Line:]...)
	b.lines = spliced

	return nil
}
