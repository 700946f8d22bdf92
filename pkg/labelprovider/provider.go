package labelprovider

import "context"

// Provider detects labels in an image.
type Provider interface {
	// DetectLabels returns labels for req.Image
	DetectLabels(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "vision", "gemini")
	Name() string
}

// Request is a normalized label detection request.
type Request struct {
	Image      []byte
	MimeType   string
	MaxResults int
}

// Label is a (description, confidence) pair.
type Label struct {
	Description string
	Score       float64
}

// Response is a normalized label detection response.
// Labels are ordered by descending score.
type Response struct {
	Labels       []Label
	ProviderName string
}
