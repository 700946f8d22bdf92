package gemini

import "fmt"

// LabelSystemPrompt is the system instruction sent to Gemini for image labeling.
const LabelSystemPrompt = `You are an image labeling service for a city's issue reporting system.

RULES:
1. Describe what is visible in the photo as short, generic labels (1-3 words each),
   the way an image recognition API would (e.g. "road surface", "asphalt", "graffiti", "street light").
2. Give each label a confidence score between 0 and 1.
3. Order labels from most to least confident.
4. Return ONLY a valid JSON array. No markdown, no code blocks, no explanation text.

EXAMPLE OUTPUT:
[
  {"description": "road surface", "score": 0.93},
  {"description": "asphalt", "score": 0.88}
]`

// BuildLabelPrompt returns the user turn asking for at most maxResults labels.
func BuildLabelPrompt(maxResults int) string {
	return fmt.Sprintf("Return at most %d labels for this image.", maxResults)
}
