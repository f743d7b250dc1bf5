// Package analyze provides the rule engine for jsuplift: the Rule
// contract, the immutable RuleSet, and the Engine that drives one
// traversal per analyzed file.
package analyze

import (
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// Suggestion represents a single detected modernization opportunity.
// Suggestions are immutable values produced by one analysis pass over one
// file; they have no identity beyond their file+rule+location tuple.
type Suggestion struct {
	// FilePath is the path of the analyzed file.
	FilePath string

	// RuleID is the identifier of the rule that produced this suggestion.
	RuleID string

	// Line is the 1-based line of the finding.
	Line int

	// Column is the 0-based column of the finding.
	Column int

	// OldCode is the legacy snippet, for display only. For textual rules
	// it is not guaranteed to be an exact source slice.
	OldCode string

	// NewCode is the proposed modern replacement snippet.
	NewCode string

	// Description is the human-readable explanation.
	Description string

	// Category classifies the kind of modernization.
	Category config.Category

	// Tier is the stability tier of the proposed replacement.
	Tier config.StabilityTier

	// Severity is the resolved severity of this suggestion.
	Severity config.Severity
}

// Rule defines the metadata contract every rule implements. A concrete
// rule additionally implements NodeVisitor, TextScanner, or both.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "JS001").
	ID() string

	// Name returns the human-readable name (e.g., "prefer-const").
	Name() string

	// Description returns what the rule detects and proposes.
	Description() string

	// Category returns the modernization category.
	Category() config.Category

	// Tier returns the stability tier of the proposed replacement.
	Tier() config.StabilityTier

	// DefaultSeverity returns the severity used when configuration does
	// not override it.
	DefaultSeverity() config.Severity

	// DefaultEnabled returns whether the rule runs when configuration
	// has no entry for it.
	DefaultEnabled() bool
}

// NodeVisitor is implemented by rules that match structurally. VisitNode
// is invoked once for every node of the pre-order traversal.
//
// Visitors must be stateless across invocations: the engine may analyze
// multiple files in parallel against the same rule values.
type NodeVisitor interface {
	Rule

	// VisitNode inspects one node and reports zero or more suggestions
	// through the context.
	VisitNode(rc *RuleContext, n *jsast.Node)
}

// TextScanner is implemented by rules that match textually. VisitText is
// invoked once per file, after all node visitors, and also runs on files
// the parser could not handle.
type TextScanner interface {
	Rule

	// VisitText scans the raw source and reports suggestions through
	// the context.
	VisitText(rc *RuleContext)
}
