package labelprovider

import (
	"context"
	"errors"
	"fmt"

	"civic-ai-orchestrator/pkg/gemini"
	"civic-ai-orchestrator/pkg/gvision"
)

const (
	ProviderVision = "vision"
	ProviderGemini = "gemini"
)

// visionClient is the subset of *gvision.Client the adapter needs.
type visionClient interface {
	DetectLabels(ctx context.Context, image []byte) ([]gvision.Label, error)
}

// VisionAdapter adapts pkg/gvision to the Provider interface
type VisionAdapter struct {
	client visionClient
}

// NewVisionAdapter creates a new Cloud Vision adapter
func NewVisionAdapter(client visionClient) *VisionAdapter {
	return &VisionAdapter{client: client}
}

// DetectLabels implements Provider interface
func (a *VisionAdapter) DetectLabels(ctx context.Context, req *Request) (*Response, error) {
	labels, err := a.client.DetectLabels(ctx, req.Image)
	if err != nil {
		var apiErr *gvision.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: %w", ErrRejectedImage, err)
		}
		return nil, err
	}

	out := make([]Label, len(labels))
	for i, l := range labels {
		out[i] = Label{Description: l.Description, Score: l.Score}
	}
	return &Response{Labels: out, ProviderName: ProviderVision}, nil
}

// Name returns provider name
func (a *VisionAdapter) Name() string {
	return ProviderVision
}

// geminiClient is the subset of *gemini.Client the adapter needs.
type geminiClient interface {
	DetectLabels(ctx context.Context, image []byte, mimeType string, maxResults int) ([]gemini.Label, error)
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client geminiClient
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client geminiClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// DetectLabels implements Provider interface
func (a *GeminiAdapter) DetectLabels(ctx context.Context, req *Request) (*Response, error) {
	labels, err := a.client.DetectLabels(ctx, req.Image, req.MimeType, req.MaxResults)
	if err != nil {
		return nil, err
	}

	out := make([]Label, len(labels))
	for i, l := range labels {
		out[i] = Label{Description: l.Description, Score: l.Score}
	}
	return &Response{Labels: out, ProviderName: ProviderGemini}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}
