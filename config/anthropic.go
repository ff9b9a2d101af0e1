package config

import (
	"os"

	"github.com/reftag/reftag/llm"
)

// LoadAnthropicSettings resolves the Anthropic provider settings from the
// config file with environment variable overrides.
func LoadAnthropicSettings(cfg *Config) llm.ProviderConfig {
	settings := llm.ProviderConfig{
		APIKey:  cfg.Anthropic.APIKey,
		Model:   cfg.Anthropic.Model,
		BaseURL: cfg.Anthropic.BaseURL,
	}

	if envAPIKey := os.Getenv("ANTHROPIC_API_KEY"); envAPIKey != "" {
		settings.APIKey = envAPIKey
	}
	if envModel := os.Getenv("ANTHROPIC_MODEL"); envModel != "" {
		settings.Model = envModel
	}

	return settings
}
