package autotag

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalize_TrimsAndDropsEmptyTags(t *testing.T) {
	suggestions, err := Normalize("openai", "gpt-4o", `{"items":[{"key":"A","tags":["x"," y ",""]}]}`)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	if suggestions[0].RecordKey != "A" {
		t.Errorf("expected key A, got %q", suggestions[0].RecordKey)
	}
	if got := strings.Join(suggestions[0].Tags, ","); got != "x,y" {
		t.Errorf("expected tags x,y got %q", got)
	}
}

func TestNormalize_DropsEmptyKeyEntries(t *testing.T) {
	suggestions, err := Normalize("openai", "gpt-4o", `{"items":[{"key":"","tags":["x"]},{"key":"B","tags":["y"]}]}`)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].RecordKey != "B" {
		t.Fatalf("expected only the B entry, got %+v", suggestions)
	}
}

func TestNormalize_NonListTagsBecomeEmpty(t *testing.T) {
	suggestions, err := Normalize("openai", "gpt-4o", `{"items":[{"key":"A","tags":"oops"}]}`)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}
	if len(suggestions[0].Tags) != 0 {
		t.Errorf("expected empty tag list, got %v", suggestions[0].Tags)
	}
}

func TestNormalize_DedupesCaseInsensitively(t *testing.T) {
	suggestions, err := Normalize("openai", "gpt-4o", `{"items":[{"key":"A","tags":["GWAS","gwas","Gwas","other"]}]}`)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got := strings.Join(suggestions[0].Tags, ","); got != "GWAS,other" {
		t.Errorf("expected first-occurrence casing kept, got %q", got)
	}
}

func TestNormalize_CoercesNumericKeys(t *testing.T) {
	suggestions, err := Normalize("openai", "gpt-4o", `{"items":[{"key":42,"tags":["x"]}]}`)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if suggestions[0].RecordKey != "42" {
		t.Errorf("expected coerced key \"42\", got %q", suggestions[0].RecordKey)
	}
}

func TestNormalize_InvalidJSON(t *testing.T) {
	_, err := Normalize("gemini", "gemini-pro", "this is not json")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	msg := err.Error()
	if !strings.Contains(msg, "gemini") || !strings.Contains(msg, "gemini-pro") {
		t.Errorf("parse error should name provider and model: %s", msg)
	}
	if !strings.Contains(msg, "this is not json") {
		t.Errorf("parse error should include a raw excerpt: %s", msg)
	}
}

func TestNormalize_ExcerptIsBounded(t *testing.T) {
	raw := strings.Repeat("x", 5000)
	_, err := Normalize("openai", "gpt-4o", raw)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if len(err.Error()) > rawExcerptLimit+200 {
		t.Errorf("error message not bounded: %d chars", len(err.Error()))
	}
}

func TestNormalize_ExcerptKeepsRuneBoundaries(t *testing.T) {
	// One ASCII byte then two-byte runes puts a rune straddling the
	// excerpt limit.
	raw := "x" + strings.Repeat("é", 700)
	_, err := Normalize("openai", "gpt-4o", raw)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !utf8.ValidString(err.Error()) {
		t.Error("truncated excerpt must remain valid UTF-8")
	}
}

func TestNormalize_MissingItems(t *testing.T) {
	for _, raw := range []string{`{}`, `{"items":"nope"}`, `[1,2,3]`, `"text"`} {
		_, err := Normalize("openai", "gpt-4o", raw)
		if err == nil {
			t.Errorf("expected missing-items error for %q", raw)
			continue
		}
		if !strings.Contains(err.Error(), "items") {
			t.Errorf("error should mention the items array: %s", err)
		}
	}
}

func TestClassifyProviderError_UnsupportedAPIVersion(t *testing.T) {
	cause := errors.New("models/gemini-1.0-pro is not supported for generateContent by API version v1")
	err := ClassifyProviderError("gemini", "gemini-1.0-pro", cause)

	if !strings.Contains(err.Error(), "API version (v1)") {
		t.Errorf("expected extracted version in message, got: %s", err)
	}
	if !strings.Contains(err.Error(), "select a different model") {
		t.Errorf("expected settings guidance, got: %s", err)
	}
}

func TestClassifyProviderError_UnsupportedAPIVersionWithoutVersionString(t *testing.T) {
	cause := errors.New("this model is not supported by your API version")
	err := ClassifyProviderError("gemini", "gemini-pro", cause)

	if !strings.Contains(err.Error(), "your current API version") {
		t.Errorf("expected fallback version phrase, got: %s", err)
	}
}

func TestClassifyProviderError_ModelNotFound(t *testing.T) {
	cause := errors.New("Gemini API error (status 404): model Not Found")
	err := ClassifyProviderError("gemini", "gemini-old", cause)

	if !strings.Contains(err.Error(), "not available anymore") {
		t.Errorf("expected model-gone message, got: %s", err)
	}
}

func TestClassifyProviderError_Passthrough(t *testing.T) {
	cause := errors.New("connection refused")
	err := ClassifyProviderError("local", "llama3", cause)

	want := fmt.Sprintf("LLM error using local (llama3): %s", cause)
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to the original cause")
	}
}
