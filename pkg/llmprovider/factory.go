package llmprovider

import (
	"fmt"
	"sort"

	"planning-assistant/pkg/deepseek"
	"planning-assistant/pkg/gemini"
)

// ProviderSpec describes one provider entry from configuration.
type ProviderSpec struct {
	Name     string
	Enabled  bool
	Priority int // lower value = tried first
	APIKey   string
	BaseURL  string
	Model    string
}

// NewProvidersFromSpecs builds concrete providers from config entries,
// ordered by priority. Disabled entries and entries without an API key
// are skipped.
func NewProvidersFromSpecs(specs []ProviderSpec) ([]Provider, error) {
	enabled := make([]ProviderSpec, 0, len(specs))
	for _, spec := range specs {
		if spec.Enabled && spec.APIKey != "" {
			enabled = append(enabled, spec)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	providers := make([]Provider, 0, len(enabled))
	for _, spec := range enabled {
		provider, err := newProvider(spec)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", spec.Name, err)
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

func newProvider(spec ProviderSpec) (Provider, error) {
	switch spec.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: spec.APIKey,
			Model:  spec.Model,
			APIURL: spec.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  spec.APIKey,
			Model:   spec.Model,
			BaseURL: spec.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, spec.Name)
	}
}
