package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/fix"
	"github.com/jsuplift/jsuplift/pkg/parser"
)

// runRule analyzes src with a single rule through the real parser.
func runRule(t *testing.T, rule analyze.Rule, src string) []analyze.Suggestion {
	t.Helper()
	suggestions, _ := runRuleFixes(t, rule, src)
	return suggestions
}

// runRuleFixes additionally returns the captured autofix suggestions.
func runRuleFixes(t *testing.T, rule analyze.Rule, src string) ([]analyze.Suggestion, []fix.AutofixSuggestion) {
	t.Helper()
	engine := analyze.NewEngine(parser.New(), analyze.NewRuleSet(rule), config.Default())
	return engine.AnalyzeWithFixes(context.Background(), "test.js", []byte(src))
}

// applyFixes runs the full fix pipeline over the captured fixes and
// requires a clean application.
func applyFixes(t *testing.T, src string, fixes []fix.AutofixSuggestion) string {
	t.Helper()
	result := fix.Apply(src, fixes, fix.Options{})
	require.True(t, result.Success, "fixes failed: %+v", result.Failures)
	return result.ModifiedContent
}
