package config

import "github.com/reftag/reftag/llm"

// LLM assembles the per-provider settings the llm package consumes, with
// environment variable overrides applied.
func (c *Config) LLM() llm.Config {
	return llm.Config{
		OpenAI:    LoadOpenAISettings(c),
		Gemini:    LoadGeminiSettings(c),
		DeepSeek:  LoadDeepSeekSettings(c),
		Anthropic: LoadAnthropicSettings(c),
		Local:     LoadLocalSettings(c),
	}
}
