package llm

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	deepseekSystemPrompt   = "You must return ONLY valid JSON and no other text."
	deepseekDefaultBaseURL = "https://api.deepseek.com/v1"
)

// DeepSeekProvider implements Provider against DeepSeek's chat completions
// API, which shares the OpenAI wire shape.
type DeepSeekProvider struct {
	cfg ProviderConfig
}

// NewDeepSeekProvider creates a DeepSeekProvider.
func NewDeepSeekProvider(cfg ProviderConfig) *DeepSeekProvider {
	return &DeepSeekProvider{cfg: cfg}
}

// Name implements Provider.
func (p *DeepSeekProvider) Name() string { return ProviderDeepSeek }

// GenerateTags implements Provider.
func (p *DeepSeekProvider) GenerateTags(ctx context.Context, prompt string) (string, error) {
	apiKey := strings.TrimSpace(p.cfg.APIKey)
	if apiKey == "" {
		return "", NewConfigError(ProviderDeepSeek, "DeepSeek API key not configured")
	}
	model := strings.TrimSpace(p.cfg.Model)
	if model == "" {
		return "", NewConfigError(ProviderDeepSeek, "no DeepSeek model selected; open reftag settings and choose a model")
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = deepseekDefaultBaseURL
	if p.cfg.BaseURL != "" {
		config.BaseURL = p.cfg.BaseURL
	}
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, chatCompletionRequest(model, deepseekSystemPrompt, prompt))
	if err != nil {
		return "", wrapChatCompletionError(ProviderDeepSeek, "DeepSeek API error", "could not reach the DeepSeek endpoint", err)
	}

	return chatCompletionContent(ProviderDeepSeek, "DeepSeek response missing message content", resp)
}
