package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/issue"
)

var labelsCmd = &cobra.Command{
	Use:   "labels <description:score...>",
	Short: "Categorize a list of recognizer labels",
	Long: `Categorizes labels given as description:score pairs, for example
  civicctl labels "Street light:0.93" Pole:0.71`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLabels,
}

func runLabels(cmd *cobra.Command, args []string) error {
	labels, err := parseLabels(args)
	if err != nil {
		return err
	}

	uc, err := newUseCase(cmd.Context(), false)
	if err != nil {
		return err
	}

	out, err := uc.ClassifyLabels(cmd.Context(), issue.ClassifyLabelsInput{Labels: labels})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out.Result)
}

// parseLabels splits on the last colon so descriptions may contain colons.
func parseLabels(args []string) ([]classifier.Label, error) {
	labels := make([]classifier.Label, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, ":")
		if i <= 0 || i == len(arg)-1 {
			return nil, fmt.Errorf("invalid label %q: want description:score", arg)
		}
		score, err := strconv.ParseFloat(arg[i+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid score in %q: %w", arg, err)
		}
		desc := strings.TrimSpace(arg[:i])
		if desc == "" {
			return nil, fmt.Errorf("invalid label %q: description is blank", arg)
		}
		labels = append(labels, classifier.Label{Description: desc, Score: score})
	}
	return labels, nil
}
