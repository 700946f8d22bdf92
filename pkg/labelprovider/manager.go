package labelprovider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sethvargo/go-retry"

	"civic-ai-orchestrator/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
	MaxResults      int
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the configured provider names in priority order.
func (m *Manager) Providers() []string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return names
}

// DetectLabels iterates through providers in priority order with fallback logic
func (m *Manager) DetectLabels(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Image) == 0 {
		return nil, ErrInvalidRequest
	}
	if req.MaxResults <= 0 {
		req.MaxResults = m.config.MaxResults
	}

	// Global timeout for the entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		resp, err := m.detectWithRetry(ctx, provider, req)
		if err == nil {
			m.normalize(resp, req.MaxResults)
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// detectWithRetry retries a single provider with linear backoff.
// Rejected images are not retried.
func (m *Manager) detectWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempt := 0
	var backoff retry.Backoff = retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return time.Duration(attempt) * m.config.RetryDelay, false
	})
	backoff = retry.WithMaxRetries(uint64(m.config.RetryAttempts-1), backoff)

	var resp *Response
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := provider.DetectLabels(ctx, req)
		if err != nil {
			if errors.Is(err, ErrRejectedImage) {
				return err
			}
			return retry.RetryableError(err)
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// normalize sorts labels by descending score and caps their count.
func (m *Manager) normalize(resp *Response, maxResults int) {
	sort.SliceStable(resp.Labels, func(i, j int) bool {
		return resp.Labels[i].Score > resp.Labels[j].Score
	})
	if maxResults > 0 && len(resp.Labels) > maxResults {
		resp.Labels = resp.Labels[:maxResults]
	}
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "Label detection successful: provider=%s labels=%d", provider.Name(), len(resp.Labels))
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "Label detection failed: provider=%s error=%v", provider.Name(), err)
}
