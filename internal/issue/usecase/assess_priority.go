package usecase

import (
	"context"

	"civic-ai-orchestrator/internal/issue"
)

// AssessPriority classifies the description. It cannot fail.
func (uc *implUseCase) AssessPriority(ctx context.Context, input issue.AssessPriorityInput) (issue.AssessPriorityOutput, error) {
	result := uc.rules.ClassifyPriority(input.Description)
	uc.l.Debugf(ctx, "issue.usecase.AssessPriority: %s", result.Priority)
	return issue.AssessPriorityOutput{Result: result}, nil
}
