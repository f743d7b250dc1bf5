package rules

import "github.com/jsuplift/jsuplift/pkg/config"

// The config package generates templates from rule metadata but cannot
// import this package, so it exposes an extension point instead.
//
//nolint:gochecknoinits // Init is intentional for provider registration
func init() {
	config.DefaultRuleInfoProvider = ruleInfos
}

func ruleInfos() []config.RuleInfo {
	all := All().Rules()
	infos := make([]config.RuleInfo, 0, len(all))
	for _, rule := range all {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    rule.DefaultSeverity(),
			Tier:        rule.Tier(),
			Category:    rule.Category(),
		})
	}
	return infos
}
