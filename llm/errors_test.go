package llm

import (
	"errors"
	"testing"
)

func TestError_RendersCauseOnce(t *testing.T) {
	cause := errors.New("status 404: model not found")
	err := NewProviderError(ProviderOpenAI, "OpenAI API error", cause)
	if err.Error() != "OpenAI API error: status 404: model not found" {
		t.Errorf("unexpected rendering: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause must be reachable via Unwrap")
	}
}

func TestError_WithoutCause(t *testing.T) {
	err := NewConfigError(ProviderGemini, "Gemini API key not configured")
	if err.Error() != "Gemini API key not configured" {
		t.Errorf("unexpected rendering: %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("config errors carry no cause")
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsConfigError(NewConfigError(ProviderOpenAI, "missing key")) {
		t.Error("IsConfigError should match a config error")
	}
	if IsConfigError(NewNetworkError(ProviderOpenAI, "unreachable", nil)) {
		t.Error("IsConfigError must not match a network error")
	}
	if !IsNetworkError(NewNetworkError(ProviderOpenAI, "unreachable", nil)) {
		t.Error("IsNetworkError should match a network error")
	}
	if IsNetworkError(errors.New("plain")) {
		t.Error("IsNetworkError must not match a plain error")
	}
}
