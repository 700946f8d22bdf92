package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/issue"
	"civic-ai-orchestrator/pkg/labelprovider"
)

// Categorize labels the image and classifies the labels. A failing or missing
// recognizer never surfaces as an error: the result falls back to
// Uncategorized with zero confidence.
func (uc *implUseCase) Categorize(ctx context.Context, input issue.CategorizeInput) (issue.CategorizeOutput, error) {
	mimeType, err := uc.validateImage(input)
	if err != nil {
		return issue.CategorizeOutput{}, err
	}

	key := digest(input.Image)
	if uc.cache != nil {
		if hit, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "issue.usecase.Categorize: cache hit for %s", key[:12])
			return issue.CategorizeOutput{
				Result:   uc.rules.ClassifyLabels(hit.labels),
				Labels:   hit.labels,
				Provider: hit.provider,
				Cached:   true,
			}, nil
		}
	}

	if uc.recognizer == nil {
		uc.l.Warnf(ctx, "issue.usecase.Categorize: no recognizer configured for %s, returning fallback", uploadName(input))
		return fallbackOutput(), nil
	}

	resp, err := uc.recognizer.DetectLabels(ctx, &labelprovider.Request{
		Image:      input.Image,
		MimeType:   mimeType,
		MaxResults: uc.cfg.MaxResults,
	})
	if err != nil {
		uc.l.Warnf(ctx, "issue.usecase.Categorize: label detection failed for %s, returning fallback: %v", uploadName(input), err)
		return fallbackOutput(), nil
	}

	labels := toClassifierLabels(resp.Labels)
	if uc.cache != nil {
		uc.cache.Add(key, cachedLabels{labels: labels, provider: resp.ProviderName})
	}

	result := uc.rules.ClassifyLabels(labels)
	uc.l.Infof(ctx, "issue.usecase.Categorize: %s classified as %s (confidence %.2f) from %d labels via %s",
		uploadName(input), result.Category, result.Confidence, len(labels), resp.ProviderName)

	return issue.CategorizeOutput{
		Result:   result,
		Labels:   labels,
		Provider: resp.ProviderName,
	}, nil
}

func fallbackOutput() issue.CategorizeOutput {
	return issue.CategorizeOutput{Result: classifier.Uncategorized(), Fallback: true}
}

func uploadName(input issue.CategorizeInput) string {
	if input.Filename == "" {
		return "unnamed upload"
	}
	return input.Filename
}

func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
