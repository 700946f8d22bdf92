package labelprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"civic-ai-orchestrator/config"
	"civic-ai-orchestrator/pkg/gemini"
	"civic-ai-orchestrator/pkg/gvision"
	"civic-ai-orchestrator/pkg/log"
)

// NewManagerFromConfig initializes the configured providers and wraps them in
// a Manager. Providers that fail to start are logged and skipped.
func NewManagerFromConfig(ctx context.Context, cfg *config.RecognitionConfig, l log.Logger) (*Manager, error) {
	providers, initErrs, err := InitializeProviders(ctx, cfg)
	for _, e := range initErrs {
		l.Warnf(ctx, "labelprovider.NewManagerFromConfig: %v", e)
	}
	if err != nil {
		return nil, err
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
		MaxResults:      cfg.MaxResults,
	}, l), nil
}

// InitializeProviders creates Provider instances from config.RecognitionConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped; their errors are returned alongside.
func InitializeProviders(ctx context.Context, cfg *config.RecognitionConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("recognition config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrs []error
	for _, p := range enabled {
		provider, err := createProvider(ctx, p, cfg.MaxResults)
		if err != nil {
			initErrs = append(initErrs, fmt.Errorf("failed to initialize provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, len(initErrs))
		for i, e := range initErrs {
			msgs[i] = e.Error()
		}
		return nil, initErrs, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, initErrs, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig, maxResults int) (Provider, error) {
	switch cfg.Name {
	case ProviderVision, "google_vision":
		client, err := gvision.NewClient(ctx, gvision.Config{
			CredentialsPath: cfg.CredentialsPath,
			CredentialsJSON: []byte(cfg.CredentialsJSON),
			APIKey:          cfg.APIKey,
			Endpoint:        cfg.BaseURL,
			MaxResults:      int64(maxResults),
			Timeout:         cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return NewVisionAdapter(client), nil

	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		client := gemini.NewClient(cfg.APIKey)
		client.SetModel(cfg.Model)
		if cfg.BaseURL != "" {
			client.SetAPIURL(cfg.BaseURL)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
