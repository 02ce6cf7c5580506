// Package llm contains the model gateway: one interface the pipelines
// call, with a local Ollama backend and several hosted API backends
// behind it. The pipelines never know which backend served a request.
package llm

import (
	"context"
	"net/http"
	"time"
)

// Gateway is the single operation the pipelines need from a model
// backend: one prompt in, one raw completion out. Implementations speak
// whatever wire protocol their backend requires; maxTokens is the
// completion budget passed through to it.
type Gateway interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}
