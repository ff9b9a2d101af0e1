package config

import (
	"os"

	"github.com/reftag/reftag/llm"
)

// LoadLocalSettings resolves the local inference provider settings from the
// config file with environment variable overrides. No credential is involved.
func LoadLocalSettings(cfg *Config) llm.LocalConfig {
	settings := llm.LocalConfig{
		Host:  cfg.Local.Host,
		Model: cfg.Local.Model,
	}

	if envHost := os.Getenv("OLLAMA_HOST"); envHost != "" {
		settings.Host = envHost
	}
	if envModel := os.Getenv("OLLAMA_MODEL"); envModel != "" {
		settings.Model = envModel
	}

	if settings.Host == "" {
		settings.Host = "http://127.0.0.1:11434"
	}

	return settings
}
