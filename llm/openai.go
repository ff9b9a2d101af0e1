package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const openaiSystemPrompt = "You are a careful assistant that ALWAYS returns ONLY valid JSON."

// OpenAIProvider implements Provider against the OpenAI chat completions API.
type OpenAIProvider struct {
	cfg ProviderConfig
}

// NewOpenAIProvider creates an OpenAIProvider. Missing settings are reported
// by GenerateTags, not here, so the registry never fails to resolve.
func NewOpenAIProvider(cfg ProviderConfig) *OpenAIProvider {
	return &OpenAIProvider{cfg: cfg}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

// GenerateTags implements Provider.
func (p *OpenAIProvider) GenerateTags(ctx context.Context, prompt string) (string, error) {
	apiKey := strings.TrimSpace(p.cfg.APIKey)
	if apiKey == "" {
		return "", NewConfigError(ProviderOpenAI, "OpenAI API key not configured")
	}
	model := strings.TrimSpace(p.cfg.Model)
	if model == "" {
		return "", NewConfigError(ProviderOpenAI, "no OpenAI model selected; open reftag settings and choose a model")
	}

	config := openai.DefaultConfig(apiKey)
	if p.cfg.BaseURL != "" {
		config.BaseURL = p.cfg.BaseURL
	}
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, chatCompletionRequest(model, openaiSystemPrompt, prompt))
	if err != nil {
		return "", wrapChatCompletionError(ProviderOpenAI, "OpenAI API error", "could not reach the OpenAI endpoint", err)
	}

	return chatCompletionContent(ProviderOpenAI, "OpenAI response missing message content", resp)
}

// chatCompletionRequest builds the single-turn request shared by the
// OpenAI-compatible providers.
func chatCompletionRequest(model, system, prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       model,
		Temperature: defaultTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
}

// wrapChatCompletionError distinguishes backend-reported API errors from
// transport failures. The backend's original message travels as the cause,
// once, so failure-signature matching downstream still sees it.
func wrapChatCompletionError(provider, apiMsg, unreachableMsg string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return NewProviderError(provider, apiMsg, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return NewProviderError(provider, apiMsg, err)
	}
	return NewNetworkError(provider, unreachableMsg, err)
}

func chatCompletionContent(provider, missingMsg string, resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", NewProtocolError(provider, missingMsg)
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", NewProtocolError(provider, missingMsg)
	}
	return content, nil
}
