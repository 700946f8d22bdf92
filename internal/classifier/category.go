package classifier

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClassifyLabels maps labels, ordered by descending confidence, to a category.
//
// The first label containing a keyword of any rule wins, with rules checked in
// order. Matching is by substring. When nothing matches, the top label itself
// becomes the category so previously unseen issue types still get a name.
// Blank labels are ignored.
func (rs *RuleSet) ClassifyLabels(labels []Label) ClassificationResult {
	top := -1
	for i, label := range labels {
		if strings.TrimSpace(label.Description) == "" {
			continue
		}
		if top < 0 {
			top = i
		}

		text := strings.ToLower(label.Description)
		for _, rule := range rs.categories {
			if containsAny(text, rule.Keywords) {
				return ClassificationResult{Category: rule.Category, Confidence: label.Score}
			}
		}
	}

	if top < 0 {
		return Uncategorized()
	}
	return ClassificationResult{Category: titleCase(labels[top].Description), Confidence: labels[top].Score}
}

// Uncategorized is the safe result for empty input or a failed recognition.
func Uncategorized() ClassificationResult {
	return ClassificationResult{Category: UncategorizedCategory, Confidence: 0.0}
}

func titleCase(s string) string {
	// cases.Caser is not safe for concurrent use.
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
