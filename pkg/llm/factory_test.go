package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellsage/shellsage/pkg/config"
)

func TestNewGateway_LocalMode(t *testing.T) {
	gw, err := NewGateway(config.Settings{
		Mode:       config.ModeLocal,
		OllamaHost: "http://localhost:11434",
		LocalModel: "llama3:8b-instruct-q4_1",
	})

	require.NoError(t, err)
	assert.IsType(t, &Ollama{}, gw)
}

func TestNewGateway_ProviderKinds(t *testing.T) {
	tests := []struct {
		provider string
		want     Gateway
	}{
		{"groq", &OpenAICompat{}},
		{"openai", &OpenAICompat{}},
		{"fireworks", &OpenAICompat{}},
		{"openrouter", &OpenAICompat{}},
		{"deepseek", &OpenAICompat{}},
		{"anthropic", &Anthropic{}},
		{"gemini", &Gemini{}},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			gw, err := NewGateway(config.Settings{
				Mode:     config.ModeAPI,
				Provider: tt.provider,
				APIModel: "some-model",
				APIKey:   "some-key",
			})
			require.NoError(t, err)
			assert.IsType(t, tt.want, gw)
		})
	}
}

func TestNewGateway_UnknownProvider(t *testing.T) {
	_, err := NewGateway(config.Settings{Mode: config.ModeAPI, Provider: "mystery", APIKey: "k"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported API provider")
}

func TestNewGateway_MissingKey(t *testing.T) {
	_, err := NewGateway(config.Settings{Mode: config.ModeAPI, Provider: "groq"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}
