package classifier

// Label is a single observation from an image recognizer.
type Label struct {
	Description string  `json:"description" yaml:"description"`
	Score       float64 `json:"score" yaml:"score"`
}

// Priority is the urgency of a reported issue.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

func (p Priority) String() string { return string(p) }

// CategoryRule maps any of its keywords to Category.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// PriorityRule maps any of its keywords to Level.
type PriorityRule struct {
	Level     Priority `yaml:"level"`
	Keywords  []string `yaml:"keywords"`
	Reasoning string   `yaml:"reasoning"`
}

// ClassificationResult is the outcome of ClassifyLabels.
// Confidence is always copied from the matched label.
type ClassificationResult struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// PriorityResult is the outcome of ClassifyPriority.
type PriorityResult struct {
	Priority  Priority `json:"priority"`
	Reasoning string   `json:"reasoning"`
}
