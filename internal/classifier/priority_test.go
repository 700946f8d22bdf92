package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-ai-orchestrator/internal/classifier"
)

func TestClassifyPriority(t *testing.T) {
	rs := classifier.DefaultRuleSet()

	tests := []struct {
		name        string
		description string
		priority    classifier.Priority
		reasonPart  string
	}{
		{"high", "There is a huge dangerous pothole and it's an urgent problem.", classifier.PriorityHigh, "urgent keywords"},
		{"medium", "This is a large and annoying crack in the sidewalk.", classifier.PriorityMedium, "moderate inconvenience"},
		{"low", "The grass is getting a little long in the park.", classifier.PriorityLow, "standard priority"},
		{"fire blocking road", "A fire is blocking the road.", classifier.PriorityHigh, "urgent keywords"},
		{"fallen branch", "A branch fell on the sidewalk.", classifier.PriorityLow, "standard priority"},
		{"high wins over medium", "Large, annoying and dangerous leak", classifier.PriorityHigh, "urgent keywords"},
		{"upper case", "URGENT", classifier.PriorityHigh, "urgent keywords"},
		{"empty", "", classifier.PriorityLow, "standard priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rs.ClassifyPriority(tt.description)
			assert.Equal(t, tt.priority, got.Priority)
			assert.Contains(t, got.Reasoning, tt.reasonPart)
		})
	}
}

func TestClassifyPriority_EveryHighKeywordIsHigh(t *testing.T) {
	rs := classifier.DefaultRuleSet()
	tiers := rs.Priorities()
	require.Len(t, tiers, 2)

	high, medium := tiers[0], tiers[1]
	for _, kw := range high.Keywords {
		for _, mkw := range medium.Keywords {
			got := rs.ClassifyPriority(mkw + " and " + kw)
			assert.Equal(t, classifier.PriorityHigh, got.Priority, "%q + %q", mkw, kw)
		}
	}
}

func TestClassifyPriority_MediumOnly(t *testing.T) {
	rs := classifier.DefaultRuleSet()
	for _, tier := range rs.Priorities() {
		if tier.Level != classifier.PriorityMedium {
			continue
		}
		for _, kw := range tier.Keywords {
			got := rs.ClassifyPriority("it is " + kw)
			assert.Equal(t, classifier.PriorityMedium, got.Priority, kw)
		}
	}
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, classifier.PriorityHigh.Valid())
	assert.True(t, classifier.PriorityMedium.Valid())
	assert.True(t, classifier.PriorityLow.Valid())
	assert.False(t, classifier.Priority("critical").Valid())
	assert.Equal(t, "high", classifier.PriorityHigh.String())
}
