package config

import "strings"

// Kind tells the gateway which wire protocol a provider speaks.
type Kind int

const (
	// KindOpenAI covers every provider exposing OpenAI-compatible chat
	// completions behind its own base URL.
	KindOpenAI Kind = iota
	KindAnthropic
	KindGemini
)

// Provider describes one hosted API backend.
type Provider struct {
	Name         string
	Kind         Kind
	BaseURL      string
	DefaultModel string
	KeyVar       string
}

// Providers lists the supported hosted backends. Key variables follow
// the <NAME>_API_KEY convention.
var Providers = []Provider{
	{
		Name:         "groq",
		Kind:         KindOpenAI,
		BaseURL:      "https://api.groq.com/openai/v1",
		DefaultModel: "llama-3.1-8b-instant",
		KeyVar:       "GROQ_API_KEY",
	},
	{
		Name:         "openai",
		Kind:         KindOpenAI,
		BaseURL:      "https://api.openai.com/v1",
		DefaultModel: "gpt-4o",
		KeyVar:       "OPENAI_API_KEY",
	},
	{
		Name:         "anthropic",
		Kind:         KindAnthropic,
		BaseURL:      "https://api.anthropic.com",
		DefaultModel: "claude-3-5-sonnet-20241022",
		KeyVar:       "ANTHROPIC_API_KEY",
	},
	{
		Name:         "fireworks",
		Kind:         KindOpenAI,
		BaseURL:      "https://api.fireworks.ai/inference/v1",
		DefaultModel: "accounts/fireworks/models/llama-v3p1-405b-instruct",
		KeyVar:       "FIREWORKS_API_KEY",
	},
	{
		Name:         "openrouter",
		Kind:         KindOpenAI,
		BaseURL:      "https://openrouter.ai/api/v1",
		DefaultModel: "deepseek/deepseek-r1-distill-llama-70b:free",
		KeyVar:       "OPENROUTER_API_KEY",
	},
	{
		Name:         "deepseek",
		Kind:         KindOpenAI,
		BaseURL:      "https://api.deepseek.com/v1",
		DefaultModel: "deepseek-chat",
		KeyVar:       "DEEPSEEK_API_KEY",
	},
	{
		Name:         "gemini",
		Kind:         KindGemini,
		BaseURL:      "https://generativelanguage.googleapis.com",
		DefaultModel: "gemini-1.5-pro",
		KeyVar:       "GEMINI_API_KEY",
	},
}

// ProviderByName looks a provider up case-insensitively.
func ProviderByName(name string) (Provider, bool) {
	name = strings.ToLower(name)
	for _, p := range Providers {
		if p.Name == name {
			return p, true
		}
	}
	return Provider{}, false
}
