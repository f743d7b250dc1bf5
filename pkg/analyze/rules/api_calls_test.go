package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXHRToFetchAdvisory(t *testing.T) {
	suggestions, fixes := runRuleFixes(t, NewXHRToFetchRule(),
		"var req = new XMLHttpRequest();\nreq.open('GET', url);")

	require.Len(t, suggestions, 1)
	assert.Equal(t, "JS010", suggestions[0].RuleID)
	assert.Equal(t, "new XMLHttpRequest()", suggestions[0].OldCode)
	assert.Empty(t, fixes, "advisory rules produce no edits")
}

func TestXHRIgnoresOtherConstructors(t *testing.T) {
	assert.Empty(t, runRule(t, NewXHRToFetchRule(), "var w = new Widget();"))
}

func TestObjectAssignToSpread(t *testing.T) {
	src := "var merged = Object.assign({}, defaults, overrides);"
	suggestions, fixes := runRuleFixes(t, NewObjectAssignToSpreadRule(), src)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "{ ...defaults, ...overrides }", suggestions[0].NewCode)
	assert.Equal(t, "var merged = { ...defaults, ...overrides };", applyFixes(t, src, fixes))
}

func TestObjectAssignMutatingTargetIgnored(t *testing.T) {
	assert.Empty(t, runRule(t, NewObjectAssignToSpreadRule(),
		"Object.assign(target, source);"))
	assert.Empty(t, runRule(t, NewObjectAssignToSpreadRule(),
		"Object.assign({ seed: 1 }, source);"))
}

func TestObjectAssignSingleArgumentIgnored(t *testing.T) {
	assert.Empty(t, runRule(t, NewObjectAssignToSpreadRule(), "var clone = Object.assign({});"))
}

func TestSubstrToSliceSingleArg(t *testing.T) {
	src := "var tail = name.substr(2);"
	suggestions, fixes := runRuleFixes(t, NewSubstrToSliceRule(), src)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "JS012", suggestions[0].RuleID)
	assert.Equal(t, "var tail = name.slice(2);", applyFixes(t, src, fixes))
}

func TestSubstrToSliceTwoArgsAdvisory(t *testing.T) {
	// substr's second argument is a length, slice's an end index: no
	// mechanical rewrite.
	suggestions, fixes := runRuleFixes(t, NewSubstrToSliceRule(), "var mid = name.substr(2, 5);")

	require.Len(t, suggestions, 1)
	assert.Empty(t, fixes)
}

func TestSubstrIgnoresSubstring(t *testing.T) {
	assert.Empty(t, runRule(t, NewSubstrToSliceRule(), "var mid = name.substring(2, 5);"))
}
