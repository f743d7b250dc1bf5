// Package rules provides the built-in modernization rules for jsuplift.
//
// # Rule Domains
//
// This package contains rule implementations across several domains:
//
//   - Declarations:
//
//   - JS001: prefer-const - var bindings that are never reassigned
//
//   - JS002: prefer-let - var bindings that are reassigned or uninitialized
//
//   - API calls:
//
//   - JS003: indexof-to-includes - indexOf comparisons against -1
//
//   - JS005: escape-to-encodeuri - deprecated escape/unescape globals
//
//   - JS010: xhr-to-fetch - XMLHttpRequest construction
//
//   - JS011: object-assign-to-spread - Object.assign with an empty target
//
//   - JS012: substr-to-slice - deprecated substr calls
//
//   - JS013: document-all - the dead document.all collection
//
//   - Syntax:
//
//   - JS004: math-pow-to-exponent - Math.pow with simple arguments
//
//   - JS020: concat-to-template - string concatenation chains
//
//   - JS021: function-to-arrow - anonymous function expressions
//
//   - JS022: arguments-to-rest - the arguments object
//
//   - Structure:
//
//   - JS030: loop-to-find - search loops that break on a match
//
// Rules matching on the syntax tree implement analyze.NodeVisitor; rules
// matching on raw text implement analyze.TextScanner and also run on
// files the parser cannot handle. Use All to obtain the complete set.
package rules
