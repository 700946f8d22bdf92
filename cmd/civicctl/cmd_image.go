package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"civic-ai-orchestrator/internal/issue"
)

var showLabels bool

var imageCmd = &cobra.Command{
	Use:   "image <file>",
	Short: "Categorize a photo with the configured label recognizers",
	Args:  cobra.ExactArgs(1),
	RunE:  runImage,
}

func init() {
	imageCmd.Flags().BoolVar(&showLabels, "labels", false, "include the recognizer labels in the output")
}

type imageOutput struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Provider   string  `json:"provider,omitempty"`
	Fallback   bool    `json:"fallback,omitempty"`
	Labels     any     `json:"labels,omitempty"`
}

func runImage(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	uc, err := newUseCase(cmd.Context(), true)
	if err != nil {
		return err
	}

	out, err := uc.Categorize(cmd.Context(), issue.CategorizeInput{Image: data, Filename: args[0]})
	if err != nil {
		return err
	}

	res := imageOutput{
		Category:   out.Result.Category,
		Confidence: out.Result.Confidence,
		Provider:   out.Provider,
		Fallback:   out.Fallback,
	}
	if showLabels {
		res.Labels = out.Labels
	}
	return writeJSON(cmd.OutOrStdout(), res)
}
