package rules

import (
	"strings"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/fix"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// XHRToFetchRule flags XMLHttpRequest construction. The rewrite to
// fetch() restructures surrounding callback code, so the rule is
// advisory only.
type XHRToFetchRule struct {
	analyze.BaseRule
}

// NewXHRToFetchRule creates a new xhr-to-fetch rule.
func NewXHRToFetchRule() *XHRToFetchRule {
	return &XHRToFetchRule{
		BaseRule: analyze.NewBaseRule(
			"JS010",
			"xhr-to-fetch",
			"Use the fetch() API instead of XMLHttpRequest",
			config.CategoryAPI,
			config.TierFull,
			config.SeverityInfo,
		),
	}
}

// VisitNode reports XMLHttpRequest constructions.
func (r *XHRToFetchRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	if n.Kind != jsast.NodeNew {
		return
	}
	callee := n.FirstChild
	if callee == nil || callee.Kind != jsast.NodeIdent || callee.Name != "XMLHttpRequest" {
		return
	}

	rc.Report(analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: n.Text(),
		NewCode: "fetch(url).then(...)",
	})
}

// ObjectAssignToSpreadRule rewrites Object.assign({}, ...) merges into
// object spread literals.
type ObjectAssignToSpreadRule struct {
	analyze.BaseRule
}

// NewObjectAssignToSpreadRule creates a new object-assign-to-spread rule.
func NewObjectAssignToSpreadRule() *ObjectAssignToSpreadRule {
	return &ObjectAssignToSpreadRule{
		BaseRule: analyze.NewBaseRule(
			"JS011",
			"object-assign-to-spread",
			"Use object spread instead of Object.assign with an empty target",
			config.CategoryAPI,
			config.TierNew,
			config.SeverityWarning,
		),
	}
}

// VisitNode reports Object.assign calls whose target is a fresh empty
// object literal. Calls mutating an existing target are left alone.
func (r *ObjectAssignToSpreadRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	callee := memberCallee(n, "assign")
	if callee == nil {
		return
	}
	object := callee.FirstChild
	if object == nil || object.Kind != jsast.NodeIdent || object.Name != "Object" {
		return
	}
	if n.ChildCount() < 3 {
		return
	}
	target := n.Child(1)
	if target.Kind != jsast.NodeObject || target.ChildCount() != 0 {
		return
	}

	parts := make([]string, 0, n.ChildCount()-2)
	for arg := target.Next; arg != nil; arg = arg.Next {
		parts = append(parts, "..."+arg.Text())
	}
	replacement := "{ " + strings.Join(parts, ", ") + " }"

	rc.Report(analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: n.Text(),
		NewCode: replacement,
		Edit:    nodeEdit(n, replacement),
	})
}

// SubstrToSliceRule rewrites the deprecated String.prototype.substr to
// slice.
type SubstrToSliceRule struct {
	analyze.BaseRule
}

// NewSubstrToSliceRule creates a new substr-to-slice rule.
func NewSubstrToSliceRule() *SubstrToSliceRule {
	return &SubstrToSliceRule{
		BaseRule: analyze.NewBaseRule(
			"JS012",
			"substr-to-slice",
			"Use slice() instead of the deprecated substr()",
			config.CategoryAPI,
			config.TierFull,
			config.SeverityWarning,
		),
	}
}

// VisitNode reports substr calls. Single-argument calls get an exact
// fix for the property name; two-argument calls are advisory because
// substr's second argument is a length while slice's is an end index.
func (r *SubstrToSliceRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	callee := memberCallee(n, "substr")
	if callee == nil {
		return
	}

	report := analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: n.Text(),
		NewCode: callee.FirstChild.Text() + ".slice(...)",
	}
	if n.ChildCount() == 2 {
		// The member's range ends at the property name token.
		report.Edit = &fix.TextEdit{
			Start:   fix.Position{Line: callee.Pos.EndLine, Col: callee.Pos.EndCol - len("substr")},
			End:     fix.Position{Line: callee.Pos.EndLine, Col: callee.Pos.EndCol},
			NewText: "slice",
		}
	}
	rc.Report(report)
}
