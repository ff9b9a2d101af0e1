package llm

// Names returns the selectable provider names in display order.
func Names() []string {
	return []string{
		ProviderOpenAI,
		ProviderGemini,
		ProviderDeepSeek,
		ProviderLocal,
		ProviderAnthropic,
	}
}

// ForName resolves a configured provider name to a concrete Provider.
// Unknown names fall back to the OpenAI provider rather than failing.
func ForName(name string, cfg Config) Provider {
	switch name {
	case ProviderGemini:
		return NewGeminiProvider(cfg.Gemini)
	case ProviderDeepSeek:
		return NewDeepSeekProvider(cfg.DeepSeek)
	case ProviderLocal:
		return NewLocalProvider(cfg.Local)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAI)
	default:
		return NewOpenAIProvider(cfg.OpenAI)
	}
}

// Configured reports whether the named provider has the settings it needs to
// attempt a request. The local provider needs only a model; every other
// provider needs a credential and a model.
func Configured(name string, cfg Config) bool {
	switch name {
	case ProviderGemini:
		return cfg.Gemini.APIKey != "" && cfg.Gemini.Model != ""
	case ProviderDeepSeek:
		return cfg.DeepSeek.APIKey != "" && cfg.DeepSeek.Model != ""
	case ProviderAnthropic:
		return cfg.Anthropic.APIKey != "" && cfg.Anthropic.Model != ""
	case ProviderLocal:
		return cfg.Local.Model != ""
	case ProviderOpenAI:
		return cfg.OpenAI.APIKey != "" && cfg.OpenAI.Model != ""
	default:
		return false
	}
}
