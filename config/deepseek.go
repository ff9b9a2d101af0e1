package config

import (
	"os"

	"github.com/reftag/reftag/llm"
)

// LoadDeepSeekSettings resolves the DeepSeek provider settings from the
// config file with environment variable overrides.
func LoadDeepSeekSettings(cfg *Config) llm.ProviderConfig {
	settings := llm.ProviderConfig{
		APIKey:  cfg.DeepSeek.APIKey,
		Model:   cfg.DeepSeek.Model,
		BaseURL: cfg.DeepSeek.BaseURL,
	}

	if envAPIKey := os.Getenv("DEEPSEEK_API_KEY"); envAPIKey != "" {
		settings.APIKey = envAPIKey
	}
	if envModel := os.Getenv("DEEPSEEK_MODEL"); envModel != "" {
		settings.Model = envModel
	}

	return settings
}
