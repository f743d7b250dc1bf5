package analyze

import (
	"context"

	"github.com/jsuplift/jsuplift/pkg/fix"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// Report is one finding a rule hands to its context. The engine fills in
// the rule identity, resolved severity, and file path when converting it
// into a Suggestion.
type Report struct {
	// Pos locates the finding (1-based line, 0-based column).
	Pos jsast.Position

	// OldCode is the legacy snippet, for display.
	OldCode string

	// NewCode is the proposed replacement snippet.
	NewCode string

	// Message optionally overrides the rule's description for this
	// specific finding.
	Message string

	// Edit, when non-nil, is an exact range replacement expressing the
	// fix. Rules that cannot express one leave it nil and appear only as
	// advisory suggestions.
	Edit *fix.TextEdit
}

// RuleContext provides all context a rule needs for one file. It is a
// short-lived parameter object created per rule per analysis call; the
// reporting callback it carries is bound to that rule's identity, so one
// rule can never emit under another rule's ID.
type RuleContext struct {
	// Ctx is the context of the surrounding analysis call.
	Ctx context.Context

	// FilePath is the path of the file under analysis.
	FilePath string

	// Source is the full, unmodified source text.
	Source []byte

	// File is the parsed snapshot. It is nil when the file was not
	// tree-parseable; text scanners still run in that case.
	File *jsast.FileSnapshot

	emit func(Report)

	// cache is shared by every RuleContext of one analysis call, so rules
	// analyzing the same file reuse derived collections.
	cache *nodeCache
}

// Report emits one finding through the bound callback.
func (rc *RuleContext) Report(r Report) {
	if rc.emit != nil {
		rc.emit(r)
	}
}

// Root returns the AST root, or nil for unparseable files.
func (rc *RuleContext) Root() *jsast.Node {
	if rc.File == nil {
		return nil
	}
	return rc.File.Root
}

// ReassignedNames returns the set of identifiers the file reassigns:
// assignment targets, update expressions, and for-in/for-of heads. The
// set is computed at most once per file and shared by all rules; callers
// must not mutate it. The heuristic is deliberately name-based, not
// scope-aware: a reassignment of the same name anywhere in the file
// counts.
func (rc *RuleContext) ReassignedNames() map[string]bool {
	if rc.cache == nil {
		rc.cache = newNodeCache(rc.Root())
	}
	return rc.cache.reassignedNames()
}
