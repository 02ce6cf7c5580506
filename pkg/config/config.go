// Package config resolves runtime settings from the environment, with a
// .env file in the working directory applied over it.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Operation modes.
const (
	ModeLocal = "local"
	ModeAPI   = "api"
)

// Defaults mirror the shipped .env template.
const (
	DefaultLocalModel = "llama3:8b-instruct-q4_1"
	DefaultOllamaHost = "http://localhost:11434"
	DefaultProvider   = "groq"
)

// Settings is the resolved runtime configuration. The active backend is
// an explicit value handed to the gateway factory, never process-wide
// mutable state.
type Settings struct {
	Mode       string
	LocalModel string
	OllamaHost string
	Provider   string
	APIModel   string
	APIKey     string
}

// Load applies ./.env over the current environment, then resolves
// settings. A missing .env file is not an error. Values from .env
// replace already-exported variables, so editing the file always takes
// effect on the next run.
func Load() (Settings, error) {
	_ = godotenv.Overload()
	return FromEnv()
}

// FromEnv resolves settings from the process environment alone.
func FromEnv() (Settings, error) {
	s := Settings{
		Mode:       getenvDefault("MODE", ModeLocal),
		LocalModel: getenvDefault("LOCAL_MODEL", DefaultLocalModel),
		OllamaHost: getenvDefault("OLLAMA_HOST", DefaultOllamaHost),
		Provider:   getenvDefault("ACTIVE_API_PROVIDER", DefaultProvider),
	}
	if s.Mode != ModeLocal && s.Mode != ModeAPI {
		return Settings{}, fmt.Errorf("unsupported MODE %q (supported: local, api)", s.Mode)
	}
	if s.Mode == ModeAPI {
		provider, ok := ProviderByName(s.Provider)
		if !ok {
			return Settings{}, fmt.Errorf("unknown API provider %q", s.Provider)
		}
		s.APIModel = getenvDefault("API_MODEL", provider.DefaultModel)
		s.APIKey = os.Getenv(provider.KeyVar)
		if s.APIKey == "" {
			return Settings{}, fmt.Errorf("%s not set for provider %s", provider.KeyVar, provider.Name)
		}
	}
	return s, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
