package rules

import (
	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// FunctionToArrowRule flags anonymous function expressions that could be
// arrow functions. Parameter lists are not modeled in the tree, so the
// rule cannot produce an exact rewrite and stays advisory.
type FunctionToArrowRule struct {
	analyze.BaseRule
}

// NewFunctionToArrowRule creates a new function-to-arrow rule.
func NewFunctionToArrowRule() *FunctionToArrowRule {
	return &FunctionToArrowRule{
		BaseRule: analyze.NewBaseRule(
			"JS021",
			"function-to-arrow",
			"Use an arrow function instead of an anonymous function expression",
			config.CategorySyntax,
			config.TierFull,
			config.SeverityInfo,
		),
	}
}

// VisitNode reports anonymous function expressions whose bodies do not
// depend on their own this or arguments bindings.
func (r *FunctionToArrowRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	if n.Kind != jsast.NodeFuncExpr || n.Name != "" {
		return
	}
	body := n.FirstChild
	if body == nil {
		return
	}
	if containsInScope(body, func(c *jsast.Node) bool {
		return c.Kind == jsast.NodeIdent && (c.Name == "this" || c.Name == "arguments")
	}) {
		return
	}

	rc.Report(analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: "function (...) { ... }",
		NewCode: "(...) => { ... }",
	})
}

// ArgumentsToRestRule flags functions using the arguments object instead
// of rest parameters.
type ArgumentsToRestRule struct {
	analyze.BaseRule
}

// NewArgumentsToRestRule creates a new arguments-to-rest rule.
func NewArgumentsToRestRule() *ArgumentsToRestRule {
	return &ArgumentsToRestRule{
		BaseRule: analyze.NewBaseRule(
			"JS022",
			"arguments-to-rest",
			"Use rest parameters (...args) instead of the arguments object",
			config.CategoryStructural,
			config.TierFull,
			config.SeverityInfo,
		),
	}
}

// VisitNode reports one finding per function that reads arguments in its
// own scope. Nested functions carry their own arguments binding and are
// visited separately.
func (r *ArgumentsToRestRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	if n.Kind != jsast.NodeFuncDecl && n.Kind != jsast.NodeFuncExpr {
		return
	}
	body := n.LastChild
	if body == nil || body.Kind != jsast.NodeBlock {
		return
	}

	var use *jsast.Node
	containsInScope(body, func(c *jsast.Node) bool {
		if c.Kind == jsast.NodeIdent && c.Name == "arguments" {
			use = c
			return true
		}
		return false
	})
	if use == nil {
		return
	}

	rc.Report(analyze.Report{
		Pos:     use.Pos.Start(),
		OldCode: "arguments",
		NewCode: "...args",
	})
}
