package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// IncludeRules is a list of rule IDs to include.
	// If empty, all rules are included.
	IncludeRules []string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
	Tier        StabilityTier
	Category    Category
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the rules package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(opts)
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# jsuplift configuration
# See: https://github.com/jsuplift/jsuplift

# Apply autofix edits to analyzed files
# fix: false

# Compute fixed content without writing files back
# dry_run: false

# Restrict autofix to the most conservative suggestions
# safe_only: false

# Cap the number of edits applied per file (0 = unlimited)
# max_edits: 0

# Output format: text or json
output: text

# Number of parallel workers (0 = auto)
# jobs: 0

# File patterns to ignore (glob patterns)
# ignores:
#   - "dist/**"
#   - "**/vendor"

# Per-rule settings: off, error, warn, or info
# rules:
#   JS001: warn
#   xhr-to-fetch: "off"
`)

	if opts.Format == "json" {
		return templateToJSON()
	}

	return buf.Bytes(), nil
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# jsuplift configuration - Full Template
# See: https://github.com/jsuplift/jsuplift
#
# This template includes all available rules with their default settings.
# Uncomment and modify settings as needed.

# Apply autofix edits to analyzed files
fix: false

# Compute fixed content without writing files back
dry_run: false

# Restrict autofix to the most conservative suggestions
safe_only: false

# Cap the number of edits applied per file (0 = unlimited)
max_edits: 0

# Output format: text or json
output: text

# Number of parallel workers (0 = auto based on CPU cores)
jobs: 0

# Backup configuration for autofix
backups:
  enabled: true

# File patterns to ignore (glob patterns)
ignores:
  - "dist/**"
  - "build/**"

# Per-rule settings: off, error, warn, or info
rules:
`)

	rules := getRuleInfos()

	// Filter by IncludeRules if specified
	if len(opts.IncludeRules) > 0 {
		includeSet := make(map[string]bool)
		for _, id := range opts.IncludeRules {
			includeSet[id] = true
		}
		filtered := make([]RuleInfo, 0)
		for _, r := range rules {
			if includeSet[r.ID] {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	for _, rule := range rules {
		buf.WriteString(fmt.Sprintf("\n  # %s: %s\n", rule.ID, rule.Name))
		buf.WriteString(fmt.Sprintf("  # %s\n", wrapComment(rule.Description, commentWrapWidth)))
		buf.WriteString(fmt.Sprintf("  # Category: %s, tier: %s\n", rule.Category, rule.Tier))
		setting := rule.Severity.Setting()
		if setting == SettingOff {
			buf.WriteString(fmt.Sprintf("  %s: \"off\"\n", rule.ID))
		} else {
			buf.WriteString(fmt.Sprintf("  %s: %s\n", rule.ID, setting))
		}
	}

	if opts.Format == "json" {
		return templateToJSON()
	}

	return buf.Bytes(), nil
}

// Setting maps a severity onto the corresponding rule setting.
func (s Severity) Setting() RuleSetting {
	switch s {
	case SeverityError:
		return SettingError
	case SeverityWarning:
		return SettingWarn
	case SeverityInfo:
		return SettingInfo
	default:
		return SettingOff
	}
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}
	return nil
}

// templateToJSON creates a JSON config template with default values.
func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"fix":       false,
		"dry_run":   false,
		"safe_only": false,
		"max_edits": 0,
		"output":    "text",
		"jobs":      0,
		"backups": map[string]any{
			"enabled": true,
		},
		"ignores": []string{"dist/**", "build/**"},
		"rules":   map[string]any{},
	}

	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal template: %w", err)
	}

	return append(content, '\n'), nil
}

// wrapComment wraps text for comments, joining lines with the comment prefix.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}
