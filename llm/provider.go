package llm

import "context"

// Provider names accepted in configuration.
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderDeepSeek  = "deepseek"
	ProviderLocal     = "local"
	ProviderAnthropic = "anthropic"
)

// defaultTemperature is used for every backend's generation request.
const defaultTemperature = 0.2

// Provider is a pluggable backend capable of turning a text prompt into
// free-form text. The returned string is provider-native raw output and is
// not yet guaranteed to be JSON.
type Provider interface {
	// Name returns the provider's selection name (e.g. "openai").
	Name() string

	// GenerateTags sends the prompt to the backend and returns the raw text
	// of the model's response. It must return an error rather than malformed
	// data when the backend reports a transport error, an authentication
	// error, or an empty body.
	GenerateTags(ctx context.Context, prompt string) (string, error)
}

// ProviderConfig holds the settings one credential-based provider needs.
// An empty APIKey means "not configured". BaseURL is optional and overrides
// the provider's default endpoint.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// LocalConfig holds the settings for the local inference provider.
// No credential is required.
type LocalConfig struct {
	Host  string
	Model string
}

// Config aggregates per-provider settings. It is assembled by the config
// package after environment overrides have been applied.
type Config struct {
	OpenAI    ProviderConfig
	Gemini    ProviderConfig
	DeepSeek  ProviderConfig
	Anthropic ProviderConfig
	Local     LocalConfig
}

// ModelFor returns the configured model identifier for the named provider,
// or the empty string when none is set.
func (c Config) ModelFor(name string) string {
	switch name {
	case ProviderGemini:
		return c.Gemini.Model
	case ProviderDeepSeek:
		return c.DeepSeek.Model
	case ProviderAnthropic:
		return c.Anthropic.Model
	case ProviderLocal:
		return c.Local.Model
	case ProviderOpenAI:
		return c.OpenAI.Model
	default:
		return c.OpenAI.Model
	}
}
