package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type chatCompletionStub struct {
	status int
	body   string

	model       string
	temperature float64
	messages    []map[string]string
}

func newChatCompletionServer(t *testing.T, stub *chatCompletionStub) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model       string              `json:"model"`
			Temperature float64             `json:"temperature"`
			Messages    []map[string]string `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		stub.model = req.Model
		stub.temperature = req.Temperature
		stub.messages = req.Messages

		w.Header().Set("Content-Type", "application/json")
		if stub.status != 0 {
			w.WriteHeader(stub.status)
		}
		w.Write([]byte(stub.body))
	}))
}

func TestOpenAIProvider_GenerateTags(t *testing.T) {
	stub := &chatCompletionStub{
		body: `{"choices":[{"message":{"role":"assistant","content":"{\"items\":[]}"}}]}`,
	}
	server := newChatCompletionServer(t, stub)
	defer server.Close()

	p := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: server.URL})
	text, err := p.GenerateTags(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("GenerateTags failed: %v", err)
	}
	if text != `{"items":[]}` {
		t.Errorf("unexpected text: %q", text)
	}
	if stub.model != "gpt-4o-mini" {
		t.Errorf("unexpected model: %q", stub.model)
	}
	if stub.temperature != defaultTemperature {
		t.Errorf("unexpected temperature: %v", stub.temperature)
	}
	if len(stub.messages) != 2 || stub.messages[0]["role"] != "system" || stub.messages[1]["content"] != "prompt text" {
		t.Errorf("unexpected messages: %v", stub.messages)
	}
}

func TestOpenAIProvider_BackendMessageSurvives(t *testing.T) {
	stub := &chatCompletionStub{
		status: http.StatusNotFound,
		body:   `{"error":{"message":"The model gpt-3 has been deprecated and was not found","type":"invalid_request_error"}}`,
	}
	server := newChatCompletionServer(t, stub)
	defer server.Close()

	p := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-3", BaseURL: server.URL})
	_, err := p.GenerateTags(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
	if got := strings.Count(err.Error(), "has been deprecated and was not found"); got != 1 {
		t.Errorf("backend message must appear exactly once, got %d in %v", got, err)
	}
	if !strings.HasPrefix(err.Error(), "OpenAI API error: ") {
		t.Errorf("expected the static description up front, got %v", err)
	}
	if IsNetworkError(err) {
		t.Error("a backend-reported error is not a network error")
	}
}

func TestOpenAIProvider_MissingContent(t *testing.T) {
	stub := &chatCompletionStub{body: `{"choices":[]}`}
	server := newChatCompletionServer(t, stub)
	defer server.Close()

	p := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "m", BaseURL: server.URL})
	_, err := p.GenerateTags(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error for an empty choices list")
	}
	if !strings.Contains(err.Error(), "missing message content") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeepSeekProvider_UsesOverrideBaseURL(t *testing.T) {
	stub := &chatCompletionStub{
		body: `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`,
	}
	server := newChatCompletionServer(t, stub)
	defer server.Close()

	p := NewDeepSeekProvider(ProviderConfig{APIKey: "k", Model: "deepseek-chat", BaseURL: server.URL})
	text, err := p.GenerateTags(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("GenerateTags failed: %v", err)
	}
	if text != "ok" {
		t.Errorf("unexpected text: %q", text)
	}
	if stub.model != "deepseek-chat" {
		t.Errorf("unexpected model: %q", stub.model)
	}
}

func TestProviders_ConfigErrorsBeforeAnyRequest(t *testing.T) {
	tests := []struct {
		name string
		p    Provider
	}{
		{"openai missing key", NewOpenAIProvider(ProviderConfig{Model: "m"})},
		{"openai missing model", NewOpenAIProvider(ProviderConfig{APIKey: "k"})},
		{"deepseek missing key", NewDeepSeekProvider(ProviderConfig{Model: "m"})},
		{"deepseek missing model", NewDeepSeekProvider(ProviderConfig{APIKey: "k"})},
		{"anthropic missing key", NewAnthropicProvider(ProviderConfig{Model: "m"})},
		{"anthropic missing model", NewAnthropicProvider(ProviderConfig{APIKey: "k"})},
		{"local missing model", NewLocalProvider(LocalConfig{Host: localDefaultHost})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.GenerateTags(context.Background(), "x")
			if !IsConfigError(err) {
				t.Errorf("expected a config error, got %v", err)
			}
		})
	}
}
