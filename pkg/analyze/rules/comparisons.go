package rules

import (
	"fmt"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// IndexOfToIncludesRule rewrites indexOf-based membership tests to
// Array.prototype.includes / String.prototype.includes.
type IndexOfToIncludesRule struct {
	analyze.BaseRule
}

// NewIndexOfToIncludesRule creates a new indexof-to-includes rule.
func NewIndexOfToIncludesRule() *IndexOfToIncludesRule {
	return &IndexOfToIncludesRule{
		BaseRule: analyze.NewBaseRule(
			"JS003",
			"indexof-to-includes",
			"Use includes() instead of comparing indexOf() against -1",
			config.CategoryAPI,
			config.TierFull,
			config.SeverityWarning,
		),
	}
}

// VisitNode reports comparisons of x.indexOf(y) against its sentinel.
func (r *IndexOfToIncludesRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	if n.Kind != jsast.NodeBinary {
		return
	}

	negated, matchedOp := indexOfComparison(n)
	if !matchedOp {
		return
	}

	call := n.FirstChild
	callee := memberCallee(call, "indexOf")
	if callee == nil || call.ChildCount() != 2 {
		return
	}

	object := callee.FirstChild
	needle := call.Child(1)
	replacement := fmt.Sprintf("%s.includes(%s)", object.Text(), needle.Text())
	if negated {
		replacement = "!" + replacement
	}

	rc.Report(analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: n.Text(),
		NewCode: replacement,
		Edit:    nodeEdit(n, replacement),
	})
}

// indexOfComparison classifies a binary node as an indexOf membership
// test. Supported shapes, with the call on the left:
//
//	x.indexOf(y) !== -1   x.indexOf(y) != -1   x.indexOf(y) > -1
//	x.indexOf(y) === -1   x.indexOf(y) == -1   (negated)
//	x.indexOf(y) >= 0
func indexOfComparison(n *jsast.Node) (negated, ok bool) {
	right := n.LastChild
	switch n.Operator {
	case "!==", "!=", ">":
		return false, isMinusOne(right)
	case "===", "==":
		return true, isMinusOne(right)
	case ">=":
		return false, isZero(right)
	default:
		return false, false
	}
}

func isMinusOne(n *jsast.Node) bool {
	return n != nil && n.Kind == jsast.NodeUnary && n.Operator == "-" &&
		n.FirstChild != nil && n.FirstChild.Kind == jsast.NodeNumber &&
		n.FirstChild.Literal == "1"
}

func isZero(n *jsast.Node) bool {
	return n != nil && n.Kind == jsast.NodeNumber && n.Literal == "0"
}
