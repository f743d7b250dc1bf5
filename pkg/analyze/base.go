package analyze

import "github.com/jsuplift/jsuplift/pkg/config"

// BaseRule provides the metadata half of the Rule interface.
// Embed this in rule implementations and add VisitNode and/or VisitText.
//
// Fields are unexported to avoid stutter and name collisions with
// interface methods; use NewBaseRule.
type BaseRule struct {
	id       string
	name     string
	desc     string
	category config.Category
	tier     config.StabilityTier
	severity config.Severity
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(
	id, name, desc string,
	category config.Category,
	tier config.StabilityTier,
	severity config.Severity,
) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		category: category,
		tier:     tier,
		severity: severity,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns what the rule detects and proposes.
func (r *BaseRule) Description() string {
	return r.desc
}

// Category returns the modernization category.
func (r *BaseRule) Category() config.Category {
	return r.category
}

// Tier returns the stability tier of the proposed replacement.
func (r *BaseRule) Tier() config.StabilityTier {
	return r.tier
}

// DefaultSeverity returns the rule's declared severity.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// DefaultEnabled returns whether the rule runs without configuration.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}
