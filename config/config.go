package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ProviderSettings holds the credential and model identifier for one
// credential-based LLM provider. An empty api_key means "not configured".
type ProviderSettings struct {
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// LocalSettings holds the settings for the local inference provider.
type LocalSettings struct {
	Host  string `yaml:"host,omitempty"` // default: http://127.0.0.1:11434
	Model string `yaml:"model,omitempty"`
}

// LibrarySettings locates the reference library database.
type LibrarySettings struct {
	Path string `yaml:"path,omitempty"`
}

// Config is the full preference set, persisted as one YAML file.
type Config struct {
	// Provider is the selected provider name. Unknown values fall back to
	// "openai" at resolution time.
	Provider string `yaml:"provider,omitempty"`

	OpenAI    ProviderSettings `yaml:"openai,omitempty"`
	Gemini    ProviderSettings `yaml:"gemini,omitempty"`
	DeepSeek  ProviderSettings `yaml:"deepseek,omitempty"`
	Anthropic ProviderSettings `yaml:"anthropic,omitempty"`
	Local     LocalSettings    `yaml:"local,omitempty"`

	// SeedKeywords is an optional comma-separated vocabulary hint injected
	// into the prompt.
	SeedKeywords string `yaml:"seed_keywords,omitempty"`

	// Prompt overrides the built-in instruction template when non-blank.
	Prompt string `yaml:"prompt,omitempty"`

	Library LibrarySettings `yaml:"library,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Provider: "openai",
		Local:    LocalSettings{Host: "http://127.0.0.1:11434"},
		Library:  LibrarySettings{Path: "~/.reftag/library.db"},
	}
}

// GetConfigPath returns the config file path, expanding ~ to the home
// directory. Can be overridden via REFTAG_CONFIG_PATH.
func GetConfigPath() string {
	if envPath := os.Getenv("REFTAG_CONFIG_PATH"); envPath != "" {
		return ExpandPath(envPath)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.reftag/config.yaml"
	}
	return filepath.Join(homeDir, ".reftag", "config.yaml")
}

// Load reads the configuration from path, filling unset fields from
// Default(). A missing file is not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(ExpandPath(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// first run
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := mergo.Merge(cfg, Default()); err != nil {
		return nil, fmt.Errorf("failed to merge default config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	expandedPath := ExpandPath(path)

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Credentials live in this file; keep it private.
	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
