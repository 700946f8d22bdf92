package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"civic-ai-orchestrator/internal/classifier"
)

func runCmd(t *testing.T, run func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetContext(context.Background())
	err := run(cmd, args)
	return buf.String(), err
}

func resetFlags(t *testing.T) {
	t.Helper()
	configPath, rulesPath, verbose, showLabels = "", "", false, false
	t.Cleanup(func() { configPath, rulesPath, verbose, showLabels = "", "", false, false })
}

func TestPriorityCmd(t *testing.T) {
	resetFlags(t)

	out, err := runCmd(t, runPriority, "Broken", "glass", "near", "the", "school")
	require.NoError(t, err)

	var res classifier.PriorityResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, classifier.PriorityHigh, res.Priority)
	assert.Contains(t, res.Reasoning, "urgent keywords")
}

func TestLabelsCmd(t *testing.T) {
	resetFlags(t)

	t.Run("categorizes", func(t *testing.T) {
		out, err := runCmd(t, runLabels, "Asphalt:0.4", "Street light:0.93")
		require.NoError(t, err)

		var res classifier.ClassificationResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "Street Light", res.Category)
		assert.Equal(t, 0.93, res.Confidence)
	})

	t.Run("invalid pair", func(t *testing.T) {
		_, err := runCmd(t, runLabels, "Pothole")
		assert.Error(t, err)
	})

	t.Run("score out of range", func(t *testing.T) {
		_, err := runCmd(t, runLabels, "Pothole:3")
		assert.Error(t, err)
	})
}

func TestParseLabels(t *testing.T) {
	labels, err := parseLabels([]string{"time: 10:30:0.5", "Road:1"})
	require.NoError(t, err)
	assert.Equal(t, []classifier.Label{
		{Description: "time: 10:30", Score: 0.5},
		{Description: "Road", Score: 1},
	}, labels)

	for _, bad := range []string{":0.5", "   :0.5", "Road:", "Road:abc"} {
		_, err := parseLabels([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRulesCmd(t *testing.T) {
	resetFlags(t)

	t.Run("default tables", func(t *testing.T) {
		out, err := runCmd(t, runRules)
		require.NoError(t, err)

		rs, err := classifier.ParseRuleSet([]byte(out))
		require.NoError(t, err)
		assert.Equal(t, classifier.DefaultRuleSet().Categories(), rs.Categories())
	})

	t.Run("rules flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		doc := map[string]any{
			"categories": []map[string]any{{"category": "Snow", "keywords": []string{"snow", "ice"}}},
			"priorities": []map[string]any{{"level": "high", "keywords": []string{"blizzard"}, "reasoning": "Detected urgent keywords."}},
			"low_reasoning": "standard priority",
		}
		data, err := yaml.Marshal(doc)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		rulesPath = path
		defer func() { rulesPath = "" }()

		out, err := runCmd(t, runRules)
		require.NoError(t, err)
		assert.True(t, strings.Contains(out, "Snow"), out)
	})
}
