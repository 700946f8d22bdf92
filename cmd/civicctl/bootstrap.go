package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"civic-ai-orchestrator/config"
	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/issue"
	issueUC "civic-ai-orchestrator/internal/issue/usecase"
	"civic-ai-orchestrator/pkg/labelprovider"
	"civic-ai-orchestrator/pkg/log"
)

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func newLogger(cfg *config.Config) log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        "debug",
		Mode:         log.ModeDevelopment,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}

// loadRules resolves --rules, then classifier.rules_path, then the built-in tables.
func loadRules(cfg *config.Config) (*classifier.RuleSet, error) {
	path := rulesPath
	if path == "" && cfg != nil {
		path = cfg.Classifier.RulesPath
	}
	if path == "" {
		return classifier.DefaultRuleSet(), nil
	}
	return classifier.LoadRuleSet(path)
}

// newUseCase builds the issue use case. The recognizer chain is only
// initialized when withRecognizer is set, so offline commands never need
// credentials or a config file.
func newUseCase(ctx context.Context, withRecognizer bool) (issue.UseCase, error) {
	var cfg *config.Config
	l := log.NewNop()
	if withRecognizer || configPath != "" {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return nil, err
		}
		l = newLogger(cfg)
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return nil, err
	}

	var recognizer issue.Recognizer
	ucCfg := issueUC.Config{}
	if withRecognizer {
		manager, err := labelprovider.NewManagerFromConfig(ctx, &cfg.Recognition, l)
		if err != nil {
			return nil, fmt.Errorf("label recognizer: %w", err)
		}
		recognizer = manager
		ucCfg.MaxImageBytes = cfg.HTTPServer.MaxUploadBytes
		ucCfg.MaxResults = cfg.Recognition.MaxResults
	}

	return issueUC.New(l, rules, recognizer, ucCfg), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
