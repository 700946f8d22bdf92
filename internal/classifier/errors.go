package classifier

import "errors"

var (
	ErrNoCategoryRules   = errors.New("classifier: at least one category rule is required")
	ErrEmptyCategory     = errors.New("classifier: category name is empty")
	ErrDuplicateCategory = errors.New("classifier: duplicate category")
	ErrEmptyKeywords     = errors.New("classifier: rule has no keywords")
	ErrEmptyKeyword      = errors.New("classifier: keyword is blank")
	ErrInvalidPriority   = errors.New("classifier: invalid priority level")
	ErrLowPriorityRule   = errors.New("classifier: low priority is the default and cannot have keywords")
	ErrDuplicatePriority = errors.New("classifier: duplicate priority tier")
	ErrPriorityOrder     = errors.New("classifier: priority tiers must be ordered from most to least severe")
	ErrEmptyReasoning    = errors.New("classifier: priority rule reasoning is empty")
)
