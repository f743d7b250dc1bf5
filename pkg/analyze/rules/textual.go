package rules

import (
	"fmt"
	"regexp"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/fix"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// sourceLines yields each line of the raw source with its 1-based line
// number. Text scanner rules run on unparseable files too, so they work
// from bytes, never from the tree.
func sourceLines(src []byte, visit func(line int, content []byte)) {
	lines := jsast.BuildLines(src)
	for i, info := range lines {
		visit(i+1, src[info.StartOffset:info.NewlineStart])
	}
}

// MathPowToExponentRule rewrites simple Math.pow calls to the
// exponentiation operator.
type MathPowToExponentRule struct {
	analyze.BaseRule
}

// NewMathPowToExponentRule creates a new math-pow-to-exponent rule.
func NewMathPowToExponentRule() *MathPowToExponentRule {
	return &MathPowToExponentRule{
		BaseRule: analyze.NewBaseRule(
			"JS004",
			"math-pow-to-exponent",
			"Use the ** operator instead of Math.pow()",
			config.CategorySyntax,
			config.TierNew,
			config.SeverityWarning,
		),
	}
}

// mathPowPattern matches Math.pow with two simple arguments: identifier
// chains or numbers, no nested calls or expressions.
var mathPowPattern = regexp.MustCompile(
	`Math\.pow\(\s*(-?[\w$.]+)\s*,\s*(-?[\w$.]+)\s*\)`)

// VisitText reports every simple Math.pow call with an exact fix.
func (r *MathPowToExponentRule) VisitText(rc *analyze.RuleContext) {
	sourceLines(rc.Source, func(line int, content []byte) {
		for _, m := range mathPowPattern.FindAllSubmatchIndex(content, -1) {
			base := string(content[m[2]:m[3]])
			exp := string(content[m[4]:m[5]])
			replacement := fmt.Sprintf("%s ** %s", base, exp)
			rc.Report(analyze.Report{
				Pos:     jsast.Position{Line: line, Col: m[0]},
				OldCode: string(content[m[0]:m[1]]),
				NewCode: replacement,
				Edit: &fix.TextEdit{
					Start:   fix.Position{Line: line, Col: m[0]},
					End:     fix.Position{Line: line, Col: m[1]},
					NewText: replacement,
				},
			})
		}
	})
}

// EscapeToEncodeURIRule rewrites the long-deprecated global escape and
// unescape functions to their encodeURIComponent counterparts.
type EscapeToEncodeURIRule struct {
	analyze.BaseRule
}

// NewEscapeToEncodeURIRule creates a new escape-to-encodeuri rule.
func NewEscapeToEncodeURIRule() *EscapeToEncodeURIRule {
	return &EscapeToEncodeURIRule{
		BaseRule: analyze.NewBaseRule(
			"JS005",
			"escape-to-encodeuri",
			"Use encodeURIComponent/decodeURIComponent instead of escape/unescape",
			config.CategoryAPI,
			config.TierFull,
			config.SeverityWarning,
		),
	}
}

// escapePattern matches bare escape( / unescape( calls. The leading
// group rejects property accesses and longer identifiers.
var escapePattern = regexp.MustCompile(`(^|[^.\w$])(unescape|escape)\(`)

// VisitText reports escape/unescape calls, fixing the callee name token.
func (r *EscapeToEncodeURIRule) VisitText(rc *analyze.RuleContext) {
	sourceLines(rc.Source, func(line int, content []byte) {
		for _, m := range escapePattern.FindAllSubmatchIndex(content, -1) {
			name := string(content[m[4]:m[5]])
			replacement := "encodeURIComponent"
			if name == "unescape" {
				replacement = "decodeURIComponent"
			}
			rc.Report(analyze.Report{
				Pos:     jsast.Position{Line: line, Col: m[4]},
				OldCode: name,
				NewCode: replacement,
				Edit: &fix.TextEdit{
					Start:   fix.Position{Line: line, Col: m[4]},
					End:     fix.Position{Line: line, Col: m[5]},
					NewText: replacement,
				},
			})
		}
	})
}

// DocumentAllRule flags document.all, the archetypal dead DOM API.
type DocumentAllRule struct {
	analyze.BaseRule
}

// NewDocumentAllRule creates a new document-all rule.
func NewDocumentAllRule() *DocumentAllRule {
	return &DocumentAllRule{
		BaseRule: analyze.NewBaseRule(
			"JS013",
			"document-all",
			"Use document.querySelectorAll() instead of document.all",
			config.CategoryAPI,
			config.TierFull,
			config.SeverityInfo,
		),
	}
}

var documentAllPattern = regexp.MustCompile(`\bdocument\.all\b`)

// VisitText reports document.all occurrences. The replacement depends on
// how the collection is used, so no exact fix is offered.
func (r *DocumentAllRule) VisitText(rc *analyze.RuleContext) {
	sourceLines(rc.Source, func(line int, content []byte) {
		for _, m := range documentAllPattern.FindAllIndex(content, -1) {
			rc.Report(analyze.Report{
				Pos:     jsast.Position{Line: line, Col: m[0]},
				OldCode: "document.all",
				NewCode: "document.querySelectorAll(...)",
			})
		}
	})
}
