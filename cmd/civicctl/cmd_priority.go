package main

import (
	"strings"

	"github.com/spf13/cobra"

	"civic-ai-orchestrator/internal/issue"
)

var priorityCmd = &cobra.Command{
	Use:   "priority <description...>",
	Short: "Assess the priority of an issue description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPriority,
}

func runPriority(cmd *cobra.Command, args []string) error {
	uc, err := newUseCase(cmd.Context(), false)
	if err != nil {
		return err
	}

	out, err := uc.AssessPriority(cmd.Context(), issue.AssessPriorityInput{
		Description: strings.Join(args, " "),
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out.Result)
}
