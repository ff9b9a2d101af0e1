package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1"

// GeminiProvider implements Provider against the Gemini generateContent API.
// There is no Gemini SDK dependency; the request and response envelopes are
// small enough to model directly.
type GeminiProvider struct {
	cfg    ProviderConfig
	client *http.Client
}

// NewGeminiProvider creates a GeminiProvider.
func NewGeminiProvider(cfg ProviderConfig) *GeminiProvider {
	return &GeminiProvider{cfg: cfg, client: &http.Client{}}
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return ProviderGemini }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateTags implements Provider.
func (p *GeminiProvider) GenerateTags(ctx context.Context, prompt string) (string, error) {
	apiKey := strings.TrimSpace(p.cfg.APIKey)
	if apiKey == "" {
		return "", NewConfigError(ProviderGemini, "Gemini API key not configured")
	}
	model := strings.TrimSpace(p.cfg.Model)
	if model == "" {
		return "", NewConfigError(ProviderGemini, "no Gemini model selected; open reftag settings and choose a model")
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{Temperature: defaultTemperature},
	})
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	baseURL := p.cfg.BaseURL
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	// The API key travels as a query parameter, not a header.
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		baseURL, url.PathEscape(model), url.QueryEscape(apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", NewNetworkError(ProviderGemini, "could not reach the Gemini endpoint", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewNetworkError(ProviderGemini, "failed to read Gemini response", err)
	}
	if len(raw) == 0 {
		return "", NewNetworkError(ProviderGemini, "empty Gemini response", nil)
	}
	if resp.StatusCode != http.StatusOK {
		// Keep the backend's message intact so known failure signatures
		// ("API version ... not supported", "404 ... not found") remain
		// matchable upstream.
		msg := fmt.Sprintf("Gemini API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		return "", NewProviderError(ProviderGemini, msg, nil)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", NewProtocolError(ProviderGemini, "Gemini response is not valid JSON")
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", NewProtocolError(ProviderGemini, "Gemini response missing text content")
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", NewProtocolError(ProviderGemini, "Gemini response missing text content")
	}
	return text, nil
}
