package usecase

import (
	"net/http"
	"strings"

	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/issue"
	"civic-ai-orchestrator/pkg/labelprovider"
)

// validateImage checks size and type and returns the MIME type to forward.
// A declared image/* type is trusted; otherwise the bytes are sniffed.
func (uc *implUseCase) validateImage(input issue.CategorizeInput) (string, error) {
	if len(input.Image) == 0 {
		return "", issue.ErrEmptyImage
	}
	if uc.cfg.MaxImageBytes > 0 && int64(len(input.Image)) > uc.cfg.MaxImageBytes {
		return "", issue.ErrImageTooLarge
	}

	mimeType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(input.Image)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", issue.ErrUnsupportedMediaType
	}
	return mimeType, nil
}

func toClassifierLabels(in []labelprovider.Label) []classifier.Label {
	out := make([]classifier.Label, len(in))
	for i, l := range in {
		out[i] = classifier.Label{Description: l.Description, Score: l.Score}
	}
	return out
}
