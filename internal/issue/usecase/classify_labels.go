package usecase

import (
	"context"
	"sort"
	"strings"

	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/issue"
)

// ClassifyLabels classifies caller supplied labels. Labels are re-sorted by
// descending score since the first-match rule depends on that order.
func (uc *implUseCase) ClassifyLabels(ctx context.Context, input issue.ClassifyLabelsInput) (issue.CategorizeOutput, error) {
	labels := make([]classifier.Label, len(input.Labels))
	copy(labels, input.Labels)

	for _, l := range labels {
		if l.Score < 0 || l.Score > 1 {
			return issue.CategorizeOutput{}, issue.ErrInvalidLabel
		}
		if strings.TrimSpace(l.Description) == "" {
			return issue.CategorizeOutput{}, issue.ErrBlankLabel
		}
	}
	sort.SliceStable(labels, func(i, j int) bool { return labels[i].Score > labels[j].Score })

	result := uc.rules.ClassifyLabels(labels)
	uc.l.Debugf(ctx, "issue.usecase.ClassifyLabels: %s (confidence %.2f)", result.Category, result.Confidence)

	return issue.CategorizeOutput{Result: result, Labels: labels}, nil
}
