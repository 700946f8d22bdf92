package classifier

const (
	// UncategorizedCategory is returned for an empty label list or a failed recognition.
	UncategorizedCategory = "Uncategorized"

	// DefaultLowReasoning is used when a rule file omits low_reasoning.
	DefaultLowReasoning = "No urgent keywords detected; assigned standard priority."
)
