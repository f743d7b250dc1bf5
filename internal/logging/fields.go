// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Run mode fields.
	FieldFix      = "fix"
	FieldDryRun   = "dry_run"
	FieldSafeOnly = "safe_only"
	FieldJobs     = "jobs"
	FieldFormat   = "format"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesAnalyzed     = "files_analyzed"
	FieldFilesWithFindings = "files_with_findings"
	FieldSuggestionsTotal  = "suggestions_total"
	FieldFilesModified     = "files_modified"
	FieldEditsApplied      = "edits_applied"
	FieldEditsFailed       = "edits_failed"
	FieldEditsDropped      = "edits_dropped"

	// Migration fields.
	FieldInput           = "input"
	FieldOutput          = "output"
	FieldRulesTranslated = "rules_translated"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule        = "rule"
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldCategory    = "category"
	FieldTier        = "tier"
	FieldDescription = "description"
)
