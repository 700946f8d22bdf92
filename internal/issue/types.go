package issue

import "civic-ai-orchestrator/internal/classifier"

// --- UseCase Inputs ---

// CategorizeInput carries an uploaded photo of the issue.
type CategorizeInput struct {
	Image       []byte
	ContentType string
	Filename    string
}

// AssessPriorityInput carries the citizen's description. Empty is valid.
type AssessPriorityInput struct {
	Description string
}

// ClassifyLabelsInput carries labels already produced by a recognizer.
type ClassifyLabelsInput struct {
	Labels []classifier.Label
}

// --- UseCase Outputs ---

type CategorizeOutput struct {
	Result   classifier.ClassificationResult
	Labels   []classifier.Label
	Provider string
	Cached   bool
	Fallback bool
}

type AssessPriorityOutput struct {
	Result classifier.PriorityResult
}
