package analyze

import "github.com/jsuplift/jsuplift/pkg/config"

// resolvedRule pairs a rule with its resolved severity for one run.
type resolvedRule struct {
	rule     Rule
	severity config.Severity
}

// resolveRules determines which rules run and at what severity.
// The configuration mapping is consulted once per run: "off" disables a
// rule entirely (all its suggestions, never partially), any severity
// value overrides the rule's declared default, and absence means the
// rule runs at its own default if it is enabled by default.
func resolveRules(set *RuleSet, cfg *config.Config) []resolvedRule {
	var resolved []resolvedRule

	for _, rule := range set.Rules() {
		setting, present := lookupSetting(cfg, rule)

		if !present {
			if !rule.DefaultEnabled() {
				continue
			}
			resolved = append(resolved, resolvedRule{
				rule:     rule,
				severity: rule.DefaultSeverity(),
			})
			continue
		}

		if setting == config.SettingOff {
			continue
		}

		severity := rule.DefaultSeverity()
		if s, ok := setting.Severity(); ok {
			severity = s
		}
		resolved = append(resolved, resolvedRule{rule: rule, severity: severity})
	}

	return resolved
}

// lookupSetting finds a rule's configured setting by ID or name.
func lookupSetting(cfg *config.Config, rule Rule) (config.RuleSetting, bool) {
	if cfg == nil || cfg.Rules == nil {
		return "", false
	}
	if s, ok := cfg.Rules[rule.ID()]; ok {
		return s, true
	}
	if s, ok := cfg.Rules[rule.Name()]; ok {
		return s, true
	}
	return "", false
}
