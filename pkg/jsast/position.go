package jsast

// Position represents a point in a file.
// Line is 1-based; Col is a 0-based byte column, matching the convention
// the parser reports and the convention autofix edits are anchored to.
type Position struct {
	Line int
	Col  int
}

// IsValid returns true if this position addresses a real line.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Col >= 0
}

// Before returns true if p addresses an earlier point than other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// SourcePosition represents a half-open range in terms of line/column
// positions: [Start, End).
type SourcePosition struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Start returns the start position.
func (sp SourcePosition) Start() Position {
	return Position{Line: sp.StartLine, Col: sp.StartCol}
}

// End returns the end position.
func (sp SourcePosition) End() Position {
	return Position{Line: sp.EndLine, Col: sp.EndCol}
}

// IsValid returns true if both ends are valid and End is not before Start.
func (sp SourcePosition) IsValid() bool {
	if !sp.Start().IsValid() || !sp.End().IsValid() {
		return false
	}
	return !sp.End().Before(sp.Start())
}

// IsSingleLine returns true if start and end are on the same line.
func (sp SourcePosition) IsSingleLine() bool {
	return sp.StartLine == sp.EndLine
}

// Span builds a SourcePosition from two positions.
func Span(start, end Position) SourcePosition {
	return SourcePosition{
		StartLine: start.Line,
		StartCol:  start.Col,
		EndLine:   end.Line,
		EndCol:    end.Col,
	}
}
