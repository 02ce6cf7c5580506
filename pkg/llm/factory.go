package llm

import (
	"fmt"

	"github.com/shellsage/shellsage/pkg/config"
)

// NewGateway builds the backend selected by the resolved settings.
// Selection is explicit configuration in, concrete client out; nothing
// here mutates process state. An unknown provider is a construction
// error, not a gateway failure.
func NewGateway(cfg config.Settings) (Gateway, error) {
	if cfg.Mode == config.ModeLocal {
		return NewOllama(cfg.OllamaHost, cfg.LocalModel), nil
	}

	provider, ok := config.ProviderByName(cfg.Provider)
	if !ok {
		return nil, fmt.Errorf("unsupported API provider: %s", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s not set for provider %s", provider.KeyVar, provider.Name)
	}

	switch provider.Kind {
	case config.KindAnthropic:
		return NewAnthropic(cfg.APIKey, cfg.APIModel), nil
	case config.KindGemini:
		return NewGemini(cfg.APIKey, cfg.APIModel), nil
	default:
		return NewOpenAICompat(provider.Name, provider.BaseURL, cfg.APIKey, cfg.APIModel), nil
	}
}
