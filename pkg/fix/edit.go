// Package fix provides text edit types and application logic for
// auto-fixing. Edits are anchored to line/column positions measured
// against the original, unmodified file snapshot.
package fix

import "github.com/jsuplift/jsuplift/pkg/config"

// Position is a point in a file: 1-based line, 0-based byte column.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Before returns true if p addresses an earlier point than other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// TextEdit represents a single text replacement anchored to the original
// snapshot. The range [Start, End) is half-open; NewText may be multi-line
// and may be empty for pure deletion.
type TextEdit struct {
	Start   Position `json:"start"`
	End     Position `json:"end"`
	NewText string   `json:"newText"`
}

// IsWellFormed returns true if End is not before Start and both
// positions could address real lines. It does not check the range
// against any particular file; Apply's filter step does that.
func (e TextEdit) IsWellFormed() bool {
	if e.Start.Line < 1 || e.Start.Col < 0 || e.End.Line < 1 || e.End.Col < 0 {
		return false
	}
	return !e.End.Before(e.Start)
}

// AutofixSuggestion pairs a proposed edit with the rule identity and
// safety data needed to decide whether it is safe to auto-apply.
type AutofixSuggestion struct {
	// RuleID is the identifier of the rule that proposed the edit.
	RuleID string `json:"ruleId"`

	// Severity is the resolved severity of the underlying suggestion.
	Severity config.Severity `json:"severity"`

	// Tier is the stability tier of the proposed replacement.
	Tier config.StabilityTier `json:"tier"`

	// Description is the human-readable description of the rewrite.
	Description string `json:"description"`

	// Edit is the exact range replacement.
	Edit TextEdit `json:"edit"`
}
