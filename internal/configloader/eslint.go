// Package configloader provides configuration loading and resolution.
package configloader

import "sort"

// eslintRuleMap maps ESLint rule names to the jsuplift rule IDs covering
// the same modernization. One ESLint rule may fan out to several rules
// (no-var covers both the const and the let rewrite).
//
//nolint:gochecknoglobals // Read-only lookup table.
var eslintRuleMap = map[string][]string{
	// Core ESLint rules
	"no-var":                         {"JS001", "JS002"},
	"prefer-const":                   {"JS001"},
	"prefer-template":                {"JS020"},
	"prefer-arrow-callback":          {"JS021"},
	"prefer-rest-params":             {"JS022"},
	"prefer-exponentiation-operator": {"JS004"},
	"prefer-object-spread":           {"JS011"},

	// eslint-plugin-unicorn rules
	"unicorn/prefer-includes":        {"JS003"},
	"unicorn/prefer-string-slice":    {"JS012"},
	"unicorn/prefer-array-find":      {"JS030"},
	"unicorn/prefer-modern-dom-apis": {"JS013"},
}

// MapESLintRule returns the jsuplift rule IDs covering an ESLint rule.
// Returns nil if the rule has no equivalent.
func MapESLintRule(name string) []string {
	return eslintRuleMap[name]
}

// KnownESLintRules returns the sorted list of ESLint rule names jsuplift
// can translate.
func KnownESLintRules() []string {
	names := make([]string, 0, len(eslintRuleMap))
	for name := range eslintRuleMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
