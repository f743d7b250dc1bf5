package rules

import "github.com/jsuplift/jsuplift/pkg/analyze"

// All returns the built-in rule set. Every call builds a fresh set, so
// two engines never share rule values.
func All() *analyze.RuleSet {
	return analyze.NewRuleSet(
		// Declarations
		NewPreferConstRule(), // JS001
		NewPreferLetRule(),   // JS002

		// API calls
		NewIndexOfToIncludesRule(),    // JS003
		NewXHRToFetchRule(),           // JS010
		NewObjectAssignToSpreadRule(), // JS011
		NewSubstrToSliceRule(),        // JS012

		// Syntax modernization
		NewConcatToTemplateRule(), // JS020
		NewFunctionToArrowRule(),  // JS021
		NewArgumentsToRestRule(),  // JS022

		// Structure
		NewLoopToFindRule(), // JS030

		// Textual rules, also run on unparseable files
		NewMathPowToExponentRule(), // JS004
		NewEscapeToEncodeURIRule(), // JS005
		NewDocumentAllRule(),       // JS013
	)
}
