package rules

import (
	"strings"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// ConcatToTemplateRule rewrites string concatenation chains into
// template literals.
type ConcatToTemplateRule struct {
	analyze.BaseRule
}

// NewConcatToTemplateRule creates a new concat-to-template rule.
func NewConcatToTemplateRule() *ConcatToTemplateRule {
	return &ConcatToTemplateRule{
		BaseRule: analyze.NewBaseRule(
			"JS020",
			"concat-to-template",
			"Use a template literal instead of string concatenation",
			config.CategorySyntax,
			config.TierPartial,
			config.SeverityInfo,
		),
	}
}

// VisitNode reports the top-most + chain that mixes string literals with
// other operands. Chains of simple operands get an exact fix; anything
// with side-effecting or nested operands stays advisory.
func (r *ConcatToTemplateRule) VisitNode(rc *analyze.RuleContext, n *jsast.Node) {
	if n.Kind != jsast.NodeBinary || n.Operator != "+" {
		return
	}
	// Only the outermost node of a + chain reports, once.
	if p := n.Parent; p != nil && p.Kind == jsast.NodeBinary && p.Operator == "+" {
		return
	}

	operands := flattenConcat(n)
	literals, others := 0, 0
	for _, op := range operands {
		if op.Kind == jsast.NodeString {
			literals++
		} else {
			others++
		}
	}
	if literals == 0 || others == 0 {
		return
	}

	replacement, fixable := buildTemplate(operands)
	report := analyze.Report{
		Pos:     n.Pos.Start(),
		OldCode: n.Text(),
		NewCode: replacement,
	}
	if fixable {
		report.Edit = nodeEdit(n, replacement)
	}
	rc.Report(report)
}

// flattenConcat flattens a left-leaning + chain into its operands in
// source order.
func flattenConcat(n *jsast.Node) []*jsast.Node {
	if n.Kind == jsast.NodeBinary && n.Operator == "+" {
		return append(flattenConcat(n.FirstChild), flattenConcat(n.LastChild)...)
	}
	return []*jsast.Node{n}
}

// buildTemplate renders a template literal from concat operands and
// reports whether the result is safe to apply mechanically.
func buildTemplate(operands []*jsast.Node) (string, bool) {
	// Operands ahead of the first string literal combine with plain +
	// before any string enters the chain; two or more of them is numeric
	// addition that interpolation would silently drop.
	first := 0
	for first < len(operands) && operands[first].Kind != jsast.NodeString {
		first++
	}
	fixable := first <= 1

	var b strings.Builder
	b.WriteByte('`')
	for _, op := range operands {
		if op.Kind == jsast.NodeString {
			content := stringContent(op.Literal)
			if strings.ContainsAny(content, "`") || strings.Contains(content, "${") {
				fixable = false
			}
			b.WriteString(content)
			continue
		}
		if !simpleOperand(op) {
			fixable = false
		}
		b.WriteString("${")
		b.WriteString(op.Text())
		b.WriteString("}")
	}
	b.WriteByte('`')
	return b.String(), fixable
}

// stringContent strips the surrounding quotes of a string literal,
// keeping escapes as written.
func stringContent(literal string) string {
	if len(literal) >= 2 {
		return literal[1 : len(literal)-1]
	}
	return literal
}

// simpleOperand reports whether an operand can be interpolated without
// re-evaluation or precedence concerns.
func simpleOperand(n *jsast.Node) bool {
	switch n.Kind {
	case jsast.NodeIdent, jsast.NodeMember, jsast.NodeIndex, jsast.NodeNumber:
		return true
	default:
		return false
	}
}
