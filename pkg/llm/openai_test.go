package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAICompat_Generate(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "🛠️ Command: df -h"}},
			},
		})
	}))
	defer srv.Close()

	c := NewOpenAICompat("groq", srv.URL, "sk-test", "llama-3.1-8b-instant")
	out, err := c.Generate(context.Background(), "disk usage", 512)

	require.NoError(t, err)
	assert.Equal(t, "🛠️ Command: df -h", out)
	assert.Equal(t, "llama-3.1-8b-instant", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "disk usage", got.Messages[0].Content)
	assert.Equal(t, 0.1, got.Temperature)
	assert.Equal(t, 512, got.MaxTokens)
}

func TestOpenAICompat_Generate_APIErrorNamesProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "invalid api key"},
		})
	}))
	defer srv.Close()

	c := NewOpenAICompat("fireworks", srv.URL, "bad", "some-model")
	_, err := c.Generate(context.Background(), "hi", 64)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fireworks")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestOpenAICompat_Generate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	c := NewOpenAICompat("openrouter", srv.URL, "k", "m")
	_, err := c.Generate(context.Background(), "hi", 64)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response from openrouter")
}
