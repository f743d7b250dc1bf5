package analyze

import (
	"cmp"
	"slices"
)

// RuleSet is an immutable collection of rules, constructed once by the
// caller and passed into every engine. There is no process-wide registry:
// two engines with different rule sets never observe each other.
type RuleSet struct {
	rules  []Rule
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRuleSet builds a RuleSet from the given rules. Rules are ordered by
// ID; if two rules share an ID, the later one wins.
func NewRuleSet(rules ...Rule) *RuleSet {
	byID := make(map[string]Rule, len(rules))
	byName := make(map[string]Rule, len(rules))
	for _, rule := range rules {
		byID[rule.ID()] = rule
		byName[rule.Name()] = rule
	}

	ordered := make([]Rule, 0, len(byID))
	for _, rule := range byID {
		ordered = append(ordered, rule)
	}
	slices.SortFunc(ordered, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return &RuleSet{
		rules:  ordered,
		byID:   byID,
		byName: byName,
	}
}

// Rules returns the rules in ID order. The returned slice is a copy.
func (s *RuleSet) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Lookup retrieves a rule by ID or, failing that, by name.
func (s *RuleSet) Lookup(key string) (Rule, bool) {
	if rule, ok := s.byID[key]; ok {
		return rule, true
	}
	if rule, ok := s.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// IDs returns all rule IDs in sorted order.
func (s *RuleSet) IDs() []string {
	ids := make([]string, 0, len(s.rules))
	for _, rule := range s.rules {
		ids = append(ids, rule.ID())
	}
	return ids
}
