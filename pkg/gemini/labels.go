package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrEmptyResponse = errors.New("gemini: empty response")

// DetectLabels asks the model to label image and parses its JSON answer.
// Scores are clamped to [0,1] and labels sorted by descending score.
func (c *Client) DetectLabels(ctx context.Context, image []byte, mimeType string, maxResults int) ([]Label, error) {
	resp, err := c.GenerateContent(ctx, GenerateRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: LabelSystemPrompt}}},
		Contents: []Content{
			{
				Role: "user",
				Parts: []Part{
					{InlineData: &InlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
					{Text: BuildLabelPrompt(maxResults)},
				},
			},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:      LabelTemperature,
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return nil, err
	}

	text := stripCodeFence(resp.Text())
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var labels []Label
	if err := json.Unmarshal([]byte(text), &labels); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse labels: %w", err)
	}

	out := labels[:0]
	for _, l := range labels {
		if strings.TrimSpace(l.Description) == "" {
			continue
		}
		l.Score = clamp(l.Score)
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}

	return out, nil
}

// stripCodeFence removes ```json ... ``` wrappers the model sometimes adds.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
