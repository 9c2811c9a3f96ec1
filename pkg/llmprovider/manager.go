package llmprovider

import (
	"context"
	"fmt"
	"time"

	"smart-todo-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the provider Manager.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new provider Manager.
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

// GenerateText iterates through providers in priority order with fallback logic.
func (m *Manager) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

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

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logger.Infof(ctx, "text generation succeeded: provider=%s model=%s", provider.Name(), provider.Model())
			resp.ProviderName = provider.Name()
			resp.ModelName = provider.Model()
			return resp, nil
		}

		m.logger.Warnf(ctx, "text generation failed: provider=%s model=%s err=%v", provider.Name(), provider.Model(), err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries a single provider with linear backoff.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateText(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}
