package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

const localDefaultHost = "http://127.0.0.1:11434"

// LocalProvider implements Provider against a local Ollama server. No
// credential is required.
type LocalProvider struct {
	cfg LocalConfig
}

// NewLocalProvider creates a LocalProvider.
func NewLocalProvider(cfg LocalConfig) *LocalProvider {
	return &LocalProvider{cfg: cfg}
}

// Name implements Provider.
func (p *LocalProvider) Name() string { return ProviderLocal }

// GenerateTags implements Provider.
func (p *LocalProvider) GenerateTags(ctx context.Context, prompt string) (string, error) {
	model := strings.TrimSpace(p.cfg.Model)
	if model == "" {
		return "", NewConfigError(ProviderLocal, "no local model selected; open reftag settings and enter a model name")
	}

	host := p.cfg.Host
	if host == "" {
		host = localDefaultHost
	}
	baseURL, err := parseHost(host)
	if err != nil {
		return "", fmt.Errorf("invalid local host %q: %w", host, err)
	}
	client := api.NewClient(baseURL, &http.Client{})

	req := &api.GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: new(bool), // false: read the whole response at once
	}

	var out api.GenerateResponse
	err = client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out = resp
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if !errors.As(err, &statusErr) {
			return "", NewNetworkError(ProviderLocal,
				"cannot connect to local model server; make sure Ollama is running", err)
		}
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "model") &&
			(strings.Contains(msg, "not found") || strings.Contains(msg, "no such") || strings.Contains(msg, "unknown")) {
			return "", NewProviderError(ProviderLocal,
				"local model not found; please download the model from Ollama.com", err)
		}
		return "", NewProviderError(ProviderLocal, "local model server error", err)
	}

	if out.Response == "" {
		return "", NewProtocolError(ProviderLocal, "local model response missing text")
	}
	return out.Response, nil
}

// parseHost parses a host string into a URL, defaulting the scheme to http.
func parseHost(host string) (*url.URL, error) {
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return url.Parse(host)
}
