package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiProvider_GenerateTags(t *testing.T) {
	var gotPath string
	var gotKey string
	var gotReq geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"items\":[]}"}]}}]}`))
	}))
	defer server.Close()

	p := NewGeminiProvider(ProviderConfig{
		APIKey:  "secret",
		Model:   "gemini-1.5-flash",
		BaseURL: server.URL,
	})

	text, err := p.GenerateTags(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("GenerateTags failed: %v", err)
	}
	if text != `{"items":[]}` {
		t.Errorf("unexpected text: %q", text)
	}
	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Errorf("unexpected path: %q", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("API key must travel as a query parameter, got %q", gotKey)
	}
	if len(gotReq.Contents) != 1 || gotReq.Contents[0].Parts[0].Text != "prompt text" {
		t.Errorf("unexpected request contents: %+v", gotReq.Contents)
	}
	if gotReq.GenerationConfig.Temperature != defaultTemperature {
		t.Errorf("unexpected temperature: %v", gotReq.GenerationConfig.Temperature)
	}
}

func TestGeminiProvider_ErrorBodyIsPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"models/gemini-0.1 is not found"}}`))
	}))
	defer server.Close()

	p := NewGeminiProvider(ProviderConfig{APIKey: "k", Model: "gemini-0.1", BaseURL: server.URL})
	_, err := p.GenerateTags(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("status code missing from error: %v", err)
	}
	if !strings.Contains(err.Error(), "is not found") {
		t.Errorf("backend message must be preserved: %v", err)
	}
}

func TestGeminiProvider_MissingContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	p := NewGeminiProvider(ProviderConfig{APIKey: "k", Model: "m", BaseURL: server.URL})
	_, err := p.GenerateTags(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error for a candidate-free response")
	}
	if !strings.Contains(err.Error(), "missing text content") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGeminiProvider_ConfigErrors(t *testing.T) {
	p := NewGeminiProvider(ProviderConfig{Model: "m"})
	if _, err := p.GenerateTags(context.Background(), "x"); !IsConfigError(err) {
		t.Errorf("missing key should be a config error, got %v", err)
	}
	p = NewGeminiProvider(ProviderConfig{APIKey: "k"})
	if _, err := p.GenerateTags(context.Background(), "x"); !IsConfigError(err) {
		t.Errorf("missing model should be a config error, got %v", err)
	}
}

func TestGeminiProvider_UnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	p := NewGeminiProvider(ProviderConfig{APIKey: "k", Model: "m", BaseURL: server.URL})
	_, err := p.GenerateTags(context.Background(), "prompt")
	if !IsNetworkError(err) {
		t.Errorf("expected a network error, got %v", err)
	}
}
