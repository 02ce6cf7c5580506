package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// reasoningNameHints mark model names that emit <think> traces. Those
// models must not be cut off by stop tokens mid-reasoning.
var reasoningNameHints = []string{"deepseek", "r1", "think", "expert"}

// Stop tokens keep plain instruct models from rambling past the answer.
var plainModelStops = []string{"\n\n\n", "USER QUERY:"}

// IsReasoningModel reports whether a model name suggests a
// chain-of-thought model.
func IsReasoningModel(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range reasoningNameHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// Ollama serves completions from a local Ollama server.
type Ollama struct {
	host   string
	model  string
	client *http.Client
}

func NewOllama(host, model string) *Ollama {
	return &Ollama{
		host:   strings.TrimRight(host, "/"),
		model:  model,
		client: newHTTPClient(),
	}
}

func (o *Ollama) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	options := map[string]interface{}{
		"temperature": 0.1,
		"num_predict": maxTokens,
	}
	if !IsReasoningModel(o.model) {
		options["stop"] = plainModelStops
	}
	body := map[string]interface{}{
		"model":   o.model,
		"prompt":  prompt,
		"stream":  false,
		"options": options,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host+"/api/generate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(respBytes)))
	}

	var ollamaResp struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &ollamaResp); err != nil {
		return "", err
	}
	if ollamaResp.Error != "" {
		return "", fmt.Errorf("ollama error: %s", ollamaResp.Error)
	}
	return ollamaResp.Response, nil
}

// ListModels returns the names of the models installed on the server.
func (o *Ollama) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.host+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(respBytes)))
	}

	var tagsResp struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.Unmarshal(respBytes, &tagsResp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tagsResp.Models))
	for _, m := range tagsResp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}
