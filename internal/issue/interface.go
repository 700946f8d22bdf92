package issue

import (
	"context"

	"civic-ai-orchestrator/pkg/labelprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Categorize labels an image and maps the labels to a category.
	Categorize(ctx context.Context, input CategorizeInput) (CategorizeOutput, error)
	// AssessPriority maps a description to a priority level.
	AssessPriority(ctx context.Context, input AssessPriorityInput) (AssessPriorityOutput, error)
	// ClassifyLabels maps caller supplied labels to a category.
	ClassifyLabels(ctx context.Context, input ClassifyLabelsInput) (CategorizeOutput, error)
	// Ready reports whether image categorization can reach a recognizer.
	Ready() bool
}

// Recognizer is the external image label collaborator.
type Recognizer interface {
	DetectLabels(ctx context.Context, req *labelprovider.Request) (*labelprovider.Response, error)
}
