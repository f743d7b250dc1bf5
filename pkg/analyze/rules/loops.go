package rules

import (
	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// LoopToFindRule flags search loops: a for loop whose body breaks out of
// a conditional, the classic find-first-match shape. Rewriting requires
// understanding what the loop accumulates, so the rule is advisory.
type LoopToFindRule struct {
	analyze.BaseRule
}

// NewLoopToFindRule creates a new loop-to-find rule.
func NewLoopToFindRule() *LoopToFindRule {
	return &LoopToFindRule{
		BaseRule: analyze.NewBaseRule(
			"JS030",
			"loop-to-find",
			"Consider Array.prototype.find() for loops that break on a match",
			config.CategoryStructural,
			config.TierFull,
			config.SeverityInfo,
		),
	}
}

// VisitNode reports for and for-of loops containing a conditional break
// in their own body. Breaks inside nested loops belong to those loops.
func (r *LoopToFindRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	if n.Kind != jsast.NodeFor && n.Kind != jsast.NodeForOf {
		return
	}
	body := n.LastChild
	if body == nil || !body.IsStatement() {
		return
	}
	if !hasConditionalBreak(body) {
		return
	}

	rc.Report(analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: "for (...) { if (...) { ... break; } }",
		NewCode: "items.find(item => ...)",
	})
}

// hasConditionalBreak reports whether the subtree contains an if whose
// branches break, without descending into nested loops or functions.
func hasConditionalBreak(root *jsast.Node) bool {
	for child := root.FirstChild; child != nil; child = child.Next {
		switch child.Kind {
		case jsast.NodeFor, jsast.NodeForIn, jsast.NodeForOf, jsast.NodeWhile,
			jsast.NodeFuncDecl, jsast.NodeFuncExpr, jsast.NodeArrowFunc:
			continue
		case jsast.NodeIf:
			if branchBreaks(child) {
				return true
			}
		}
		if hasConditionalBreak(child) {
			return true
		}
	}
	return false
}

// branchBreaks reports whether an if statement's branches (not its
// condition) contain a break at this loop's level.
func branchBreaks(ifNode *jsast.Node) bool {
	for branch := ifNode.FirstChild; branch != nil; branch = branch.Next {
		if branch == ifNode.FirstChild {
			continue // condition
		}
		if branch.Kind == jsast.NodeBreak || hasBreak(branch) {
			return true
		}
	}
	return false
}

func hasBreak(root *jsast.Node) bool {
	for child := root.FirstChild; child != nil; child = child.Next {
		switch child.Kind {
		case jsast.NodeFor, jsast.NodeForIn, jsast.NodeForOf, jsast.NodeWhile,
			jsast.NodeFuncDecl, jsast.NodeFuncExpr, jsast.NodeArrowFunc:
			continue
		case jsast.NodeBreak:
			return true
		}
		if hasBreak(child) {
			return true
		}
	}
	return false
}
