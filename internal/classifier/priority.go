package classifier

import "strings"

// ClassifyPriority assigns a priority to a free-text description.
// Tiers are checked from most to least severe and a single keyword is enough
// to select a tier. Text with no keyword, including "", is LOW.
func (rs *RuleSet) ClassifyPriority(description string) PriorityResult {
	text := strings.ToLower(description)
	for _, tier := range rs.priorities {
		if containsAny(text, tier.Keywords) {
			return PriorityResult{Priority: tier.Level, Reasoning: tier.Reasoning}
		}
	}
	return PriorityResult{Priority: PriorityLow, Reasoning: rs.lowReasoning}
}
