package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatToTemplateSimpleChain(t *testing.T) {
	src := "var msg = 'Hello, ' + name + '!';"
	suggestions, fixes := runRuleFixes(t, NewConcatToTemplateRule(), src)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "JS020", suggestions[0].RuleID)
	assert.Equal(t, "`Hello, ${name}!`", suggestions[0].NewCode)
	assert.Equal(t, "var msg = `Hello, ${name}!`;", applyFixes(t, src, fixes))
}

func TestConcatToTemplateReportsOncePerChain(t *testing.T) {
	suggestions := runRule(t, NewConcatToTemplateRule(),
		"var s = 'a' + x + 'b' + y + 'c';")
	require.Len(t, suggestions, 1)
	assert.Equal(t, "`a${x}b${y}c`", suggestions[0].NewCode)
}

func TestConcatToTemplateMemberOperand(t *testing.T) {
	suggestions := runRule(t, NewConcatToTemplateRule(),
		"var line = user.name + ': ' + user.role;")
	require.Len(t, suggestions, 1)
	assert.Equal(t, "`${user.name}: ${user.role}`", suggestions[0].NewCode)
}

func TestConcatToTemplateCallOperandAdvisory(t *testing.T) {
	// A call operand could have side effects; report without an edit.
	suggestions, fixes := runRuleFixes(t, NewConcatToTemplateRule(),
		"var s = 'got ' + fetchCount();")
	require.Len(t, suggestions, 1)
	assert.Empty(t, fixes)
}

func TestConcatToTemplateBacktickContentAdvisory(t *testing.T) {
	suggestions, fixes := runRuleFixes(t, NewConcatToTemplateRule(),
		"var s = 'tick ` tock ' + x;")
	require.Len(t, suggestions, 1)
	assert.Empty(t, fixes)
}

func TestConcatLeadingArithmeticAdvisory(t *testing.T) {
	// 1 + 2 evaluates numerically before the string enters the chain;
	// interpolating each operand would turn "3x" into "12x".
	suggestions, fixes := runRuleFixes(t, NewConcatToTemplateRule(),
		"var s = 1 + 2 + 'x';")
	require.Len(t, suggestions, 1)
	assert.Empty(t, fixes)
}

func TestConcatSingleLeadingOperandFixable(t *testing.T) {
	// One operand ahead of the first literal concatenates directly with
	// it, so the rewrite is still exact.
	src := "var s = count + ' items';"
	_, fixes := runRuleFixes(t, NewConcatToTemplateRule(), src)
	require.Len(t, fixes, 1)
	assert.Equal(t, "var s = `${count} items`;", applyFixes(t, src, fixes))
}

func TestConcatIgnoresPureStringsAndArithmetic(t *testing.T) {
	assert.Empty(t, runRule(t, NewConcatToTemplateRule(), "var s = 'a' + 'b';"))
	assert.Empty(t, runRule(t, NewConcatToTemplateRule(), "var n = a + b + c;"))
}
