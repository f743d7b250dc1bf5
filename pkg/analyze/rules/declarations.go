package rules

import (
	"fmt"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// PreferConstRule suggests const for var declarations whose bindings are
// initialized and never reassigned.
type PreferConstRule struct {
	analyze.BaseRule
}

// NewPreferConstRule creates a new prefer-const rule.
func NewPreferConstRule() *PreferConstRule {
	return &PreferConstRule{
		BaseRule: analyze.NewBaseRule(
			"JS001",
			"prefer-const",
			"Use const for variables that are never reassigned",
			config.CategorySyntax,
			config.TierFull,
			config.SeverityWarning,
		),
	}
}

// VisitNode reports var declarations eligible for const.
func (r *PreferConstRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	if n.Kind != jsast.NodeVarDecl || n.Keyword != "var" {
		return
	}

	names, allInitialized, hasPattern := declBindings(n)
	if hasPattern || len(names) == 0 || !allInitialized {
		return
	}

	reassigned := rc.ReassignedNames()
	for _, name := range names {
		if reassigned[name] {
			return
		}
	}

	rc.Report(analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: "var",
		NewCode: "const",
		Message: fmt.Sprintf("%q is never reassigned; use const", names[0]),
		Edit:    keywordEdit(n, "var", "const"),
	})
}

// PreferLetRule suggests let for var declarations that const cannot
// replace: bindings without an initializer or with observed reassignment.
type PreferLetRule struct {
	analyze.BaseRule
}

// NewPreferLetRule creates a new prefer-let rule.
func NewPreferLetRule() *PreferLetRule {
	return &PreferLetRule{
		BaseRule: analyze.NewBaseRule(
			"JS002",
			"prefer-let",
			"Use let instead of var for reassigned variables",
			config.CategorySyntax,
			config.TierFull,
			config.SeverityWarning,
		),
	}
}

// VisitNode reports var declarations eligible for let but not const.
func (r *PreferLetRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	if n.Kind != jsast.NodeVarDecl || n.Keyword != "var" {
		return
	}

	names, allInitialized, hasPattern := declBindings(n)
	if hasPattern || len(names) == 0 {
		return
	}

	if allInitialized {
		// Initialized bindings default to const unless reassigned.
		reassigned := rc.ReassignedNames()
		any := false
		for _, name := range names {
			if reassigned[name] {
				any = true
				break
			}
		}
		if !any {
			return
		}
	}

	rc.Report(analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: "var",
		NewCode: "let",
		Message: "Use let for block-scoped mutable bindings",
		Edit:    keywordEdit(n, "var", "let"),
	})
}

// declBindings collects the binding names of a declaration. A declarator
// without a name is a destructuring pattern the tree does not model;
// its presence makes the whole declaration ineligible.
func declBindings(decl *jsast.Node) (names []string, allInitialized, hasPattern bool) {
	allInitialized = true
	for d := decl.FirstChild; d != nil; d = d.Next {
		if d.Kind != jsast.NodeVarDeclarator {
			continue
		}
		if d.Name == "" {
			hasPattern = true
			continue
		}
		names = append(names, d.Name)
		if d.ChildCount() == 0 {
			allInitialized = false
		}
	}
	return names, allInitialized, hasPattern
}
