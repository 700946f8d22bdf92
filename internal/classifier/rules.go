package classifier

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_rules.yaml
var defaultRulesYAML []byte

// severity orders tiers; lower is more severe.
var severity = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// RuleSet holds the category and priority tables. It is immutable once built
// and safe for concurrent use.
type RuleSet struct {
	categories   []CategoryRule
	priorities   []PriorityRule
	lowReasoning string
}

// ruleFile is the YAML schema for rule tables.
type ruleFile struct {
	Categories   []CategoryRule `yaml:"categories"`
	Priorities   []PriorityRule `yaml:"priorities"`
	LowReasoning string         `yaml:"low_reasoning"`
}

// NewRuleSet validates and copies the given tables. Keywords are lower-cased
// once here so classification does not repeat the work per request.
func NewRuleSet(categories []CategoryRule, priorities []PriorityRule, lowReasoning string) (*RuleSet, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategoryRules
	}
	if strings.TrimSpace(lowReasoning) == "" {
		lowReasoning = DefaultLowReasoning
	}

	rs := &RuleSet{
		categories:   make([]CategoryRule, 0, len(categories)),
		priorities:   make([]PriorityRule, 0, len(priorities)),
		lowReasoning: lowReasoning,
	}

	seen := make(map[string]bool, len(categories))
	for i, rule := range categories {
		name := strings.TrimSpace(rule.Category)
		if name == "" {
			return nil, fmt.Errorf("category rule %d: %w", i, ErrEmptyCategory)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("category %q: %w", name, ErrDuplicateCategory)
		}
		seen[key] = true

		keywords, err := normalizeKeywords(rule.Keywords)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		rs.categories = append(rs.categories, CategoryRule{Category: name, Keywords: keywords})
	}

	last := -1
	for i, rule := range priorities {
		level := Priority(strings.ToLower(string(rule.Level)))
		if !level.Valid() {
			return nil, fmt.Errorf("priority rule %d (%q): %w", i, rule.Level, ErrInvalidPriority)
		}
		if level == PriorityLow {
			return nil, fmt.Errorf("priority rule %d: %w", i, ErrLowPriorityRule)
		}
		if severity[level] == last {
			return nil, fmt.Errorf("priority rule %d (%s): %w", i, level, ErrDuplicatePriority)
		}
		if severity[level] < last {
			return nil, fmt.Errorf("priority rule %d (%s): %w", i, level, ErrPriorityOrder)
		}
		last = severity[level]

		if strings.TrimSpace(rule.Reasoning) == "" {
			return nil, fmt.Errorf("priority rule %d (%s): %w", i, level, ErrEmptyReasoning)
		}
		keywords, err := normalizeKeywords(rule.Keywords)
		if err != nil {
			return nil, fmt.Errorf("priority rule %d (%s): %w", i, level, err)
		}
		rs.priorities = append(rs.priorities, PriorityRule{Level: level, Keywords: keywords, Reasoning: rule.Reasoning})
	}

	return rs, nil
}

func normalizeKeywords(keywords []string) ([]string, error) {
	if len(keywords) == 0 {
		return nil, ErrEmptyKeywords
	}
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return nil, ErrEmptyKeyword
		}
		out[i] = strings.ToLower(kw)
	}
	return out, nil
}

// ParseRuleSet builds a RuleSet from YAML.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("classifier: failed to parse rules: %w", err)
	}
	return NewRuleSet(f.Categories, f.Priorities, f.LowReasoning)
}

// LoadRuleSet reads and parses a YAML rule file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: failed to read rules file: %w", err)
	}
	return ParseRuleSet(data)
}

// DefaultRuleSet returns the built-in rule tables. It panics if the embedded
// file is invalid, which is a build defect.
func DefaultRuleSet() *RuleSet {
	rs, err := ParseRuleSet(defaultRulesYAML)
	if err != nil {
		panic(err)
	}
	return rs
}

// Categories returns a copy of the category rules in evaluation order.
func (rs *RuleSet) Categories() []CategoryRule {
	out := make([]CategoryRule, len(rs.categories))
	for i, r := range rs.categories {
		out[i] = CategoryRule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Priorities returns a copy of the priority tiers in evaluation order.
func (rs *RuleSet) Priorities() []PriorityRule {
	out := make([]PriorityRule, len(rs.priorities))
	for i, r := range rs.priorities {
		out[i] = PriorityRule{Level: r.Level, Keywords: append([]string(nil), r.Keywords...), Reasoning: r.Reasoning}
	}
	return out
}

// LowReasoning is the rationale attached to the default LOW result.
func (rs *RuleSet) LowReasoning() string {
	return rs.lowReasoning
}

// MarshalYAML renders the rule set in the same schema ParseRuleSet reads.
func (rs *RuleSet) MarshalYAML() (any, error) {
	return ruleFile{
		Categories:   rs.Categories(),
		Priorities:   rs.Priorities(),
		LowReasoning: rs.lowReasoning,
	}, nil
}
