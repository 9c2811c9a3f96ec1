package llmprovider

import (
	"fmt"
	"sort"

	"smart-todo-assistant/config"
	"smart-todo-assistant/pkg/deepseek"
	"smart-todo-assistant/pkg/gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers
// filtered out. Providers that fail to initialize are skipped instead of
// failing the whole service.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}

	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers could be initialized: %v", initErrors)
	}

	return providers, nil
}

func createProvider(p config.ProviderConfig) (Provider, error) {
	switch p.Name {
	case "gemini":
		client, err := gemini.NewClient(gemini.Config{
			APIKey: p.APIKey,
			Model:  p.Model,
			APIURL: p.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return &geminiAdapter{client: client}, nil
	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  p.APIKey,
			Model:   p.Model,
			BaseURL: p.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return &deepseekAdapter{client: client}, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", p.Name)
	}
}
