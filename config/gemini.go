package config

import (
	"os"

	"github.com/reftag/reftag/llm"
)

// LoadGeminiSettings resolves the Gemini provider settings from the config
// file with environment variable overrides.
func LoadGeminiSettings(cfg *Config) llm.ProviderConfig {
	settings := llm.ProviderConfig{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	}

	if envAPIKey := os.Getenv("GEMINI_API_KEY"); envAPIKey != "" {
		settings.APIKey = envAPIKey
	}
	if envModel := os.Getenv("GEMINI_MODEL"); envModel != "" {
		settings.Model = envModel
	}

	return settings
}
