// Package config defines core configuration types for jsuplift.
// These types are pure data structures with no dependency on any
// particular config loader.
package config

// Severity represents the severity level of a suggestion.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// Category classifies what kind of modernization a rule proposes.
type Category string

const (
	CategorySyntax      Category = "syntax"
	CategoryAPI         Category = "api"
	CategoryStructural  Category = "structural"
	CategoryPerformance Category = "performance"
)

// StabilityTier classifies how broadly supported a proposed modern
// replacement is. Tiers are ordered from most to least supported.
type StabilityTier string

const (
	TierFull        StabilityTier = "full"
	TierNew         StabilityTier = "new"
	TierPartial     StabilityTier = "partial"
	TierUnsupported StabilityTier = "unsupported"
)

// tierRank orders tiers for comparison; lower is more stable.
var tierRank = map[StabilityTier]int{
	TierFull:        0,
	TierNew:         1,
	TierPartial:     2,
	TierUnsupported: 3,
}

// AtLeast returns true if the tier is at least as stable as other.
func (t StabilityTier) AtLeast(other StabilityTier) bool {
	tr, ok1 := tierRank[t]
	or, ok2 := tierRank[other]
	if !ok1 || !ok2 {
		return false
	}
	return tr <= or
}

// RuleSetting is the per-rule configuration value: "off" disables the
// rule, any severity value overrides the rule's declared default.
type RuleSetting string

const (
	SettingOff   RuleSetting = "off"
	SettingError RuleSetting = "error"
	SettingWarn  RuleSetting = "warn"
	SettingInfo  RuleSetting = "info"
)

// IsValid returns true if the setting is a recognized value.
func (s RuleSetting) IsValid() bool {
	switch s {
	case SettingOff, SettingError, SettingWarn, SettingInfo:
		return true
	default:
		return false
	}
}

// Severity returns the severity a setting maps to.
// Returns ("", false) for "off" or unrecognized settings.
func (s RuleSetting) Severity() (Severity, bool) {
	switch s {
	case SettingError:
		return SeverityError, true
	case SettingWarn:
		return SeverityWarning, true
	case SettingInfo:
		return SeverityInfo, true
	default:
		return "", false
	}
}

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Config is the root configuration structure for jsuplift.
type Config struct {
	// Rules maps rule ID (or name) to its setting. Absence of an entry
	// means the rule runs at its own declared default severity.
	Rules map[string]RuleSetting `mapstructure:"rules" yaml:"rules"`

	// Fix enables applying autofix edits to analyzed files.
	Fix bool `mapstructure:"fix" yaml:"fix"`

	// DryRun computes fixed content without writing files back.
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`

	// SafeOnly restricts autofix to info-severity suggestions.
	SafeOnly bool `mapstructure:"safe_only" yaml:"safe_only"`

	// MaxEdits caps the number of edits applied per file.
	// Zero or negative means unlimited.
	MaxEdits int `mapstructure:"max_edits" yaml:"max_edits"`

	// Output is the report format ("text" or "json").
	Output OutputFormat `mapstructure:"output" yaml:"output"`

	// Jobs is the number of files analyzed concurrently.
	// Zero means one worker per CPU.
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// Ignores holds glob patterns for paths to skip during discovery.
	Ignores []string `mapstructure:"ignores" yaml:"ignores"`

	// Backups controls backup creation before rewriting files.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Rules:    map[string]RuleSetting{},
		Output:   FormatText,
		MaxEdits: 0,
		Backups:  BackupsConfig{Enabled: true},
	}
}
