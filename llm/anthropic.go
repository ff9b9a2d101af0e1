package llm

import (
	"context"
	"errors"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	anthropicSystemPrompt = "You are a careful assistant that ALWAYS returns ONLY valid JSON."
	anthropicMaxTokens    = 2048
)

// AnthropicProvider implements Provider against the Anthropic Messages API.
type AnthropicProvider struct {
	cfg ProviderConfig
}

// NewAnthropicProvider creates an AnthropicProvider.
func NewAnthropicProvider(cfg ProviderConfig) *AnthropicProvider {
	return &AnthropicProvider{cfg: cfg}
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string { return ProviderAnthropic }

// GenerateTags implements Provider.
func (p *AnthropicProvider) GenerateTags(ctx context.Context, prompt string) (string, error) {
	apiKey := strings.TrimSpace(p.cfg.APIKey)
	if apiKey == "" {
		return "", NewConfigError(ProviderAnthropic, "Anthropic API key not configured")
	}
	model := strings.TrimSpace(p.cfg.Model)
	if model == "" {
		return "", NewConfigError(ProviderAnthropic, "no Anthropic model selected; open reftag settings and choose a model")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if p.cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(defaultTemperature),
		System: []anthropic.TextBlockParam{
			{Text: anthropicSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", NewProviderError(ProviderAnthropic, "Anthropic API error", err)
		}
		return "", NewNetworkError(ProviderAnthropic, "could not reach the Anthropic endpoint", err)
	}

	for _, blockUnion := range message.Content {
		if block, ok := blockUnion.AsAny().(anthropic.TextBlock); ok && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", NewProtocolError(ProviderAnthropic, "Anthropic response missing text content")
}
