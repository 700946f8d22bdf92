// Command civicctl runs the issue classifiers from the command line.
//
// Usage:
//
//	civicctl priority "Broken glass near the school entrance"
//	civicctl labels Pothole:0.98 Road:0.91
//	civicctl image ./photo.jpg
//	civicctl rules
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	rulesPath  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "civicctl",
	Short:         "Classify civic issue reports",
	Long:          `Runs the category and priority classifiers used by the Civic AI Orchestrator service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "rule table YAML overriding classifier.rules_path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stdout")

	rootCmd.AddCommand(priorityCmd, labelsCmd, imageCmd, rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
