package config

import (
	"os"

	"github.com/reftag/reftag/llm"
)

// LoadOpenAISettings resolves the OpenAI provider settings from the config
// file with environment variable overrides.
func LoadOpenAISettings(cfg *Config) llm.ProviderConfig {
	settings := llm.ProviderConfig{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	}

	if envAPIKey := os.Getenv("OPENAI_API_KEY"); envAPIKey != "" {
		settings.APIKey = envAPIKey
	}
	if envModel := os.Getenv("OPENAI_MODEL"); envModel != "" {
		settings.Model = envModel
	}
	if envBaseURL := os.Getenv("OPENAI_BASE_URL"); envBaseURL != "" {
		settings.BaseURL = envBaseURL
	}

	return settings
}
