package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"civic-ai-orchestrator/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active rule tables as YAML",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(); err != nil {
			return err
		}
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(rules); err != nil {
		return err
	}
	return enc.Close()
}
