package configloader

import "github.com/jsuplift/jsuplift/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: merged, with override's entries taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.MaxEdits != 0 {
		result.MaxEdits = override.MaxEdits
	}

	// Booleans: false is the zero value, so only true can be detected as
	// set. CLI --fix overrides, but a config file cannot unset a flag a
	// lower layer turned on.
	if override.Fix {
		result.Fix = override.Fix
	}
	if override.DryRun {
		result.DryRun = override.DryRun
	}
	if override.SafeOnly {
		result.SafeOnly = override.SafeOnly
	}

	// Backups.Enabled has the same limitation: only true is detectable.
	// Layers that need to disable backups set the field directly after
	// merging (see the env loader and the CLI --no-backups flag).
	if override.Backups.Enabled {
		result.Backups.Enabled = override.Backups.Enabled
	}

	// Maps: merged
	result.Rules = mergeRules(base.Rules, override.Rules)

	// Slices: override replaces base entirely if non-nil
	if override.Ignores != nil {
		result.Ignores = override.Ignores
	}

	return &result
}

// mergeRules merges rule settings, with override's entries taking precedence.
func mergeRules(base, override map[string]config.RuleSetting) map[string]config.RuleSetting {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleSetting, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		result[key] = val
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
