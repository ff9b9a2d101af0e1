package autotag

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// rawExcerptLimit bounds how much provider output is echoed into a parse
// error, so diagnostics stay readable.
const rawExcerptLimit = 1000

var apiVersionPattern = regexp.MustCompile(`API version ([a-zA-Z0-9.-]+)`)

// Normalize parses a provider's raw text as the expected JSON envelope and
// converts it into validated tag suggestions. Malformed individual entries
// are dropped rather than failing the whole batch: entries with an empty key
// are discarded, a non-list tags field is treated as an empty list, and tags
// are trimmed, de-duplicated case-insensitively, and stripped of empties.
// Provider and model only appear in error messages.
func Normalize(provider, model, raw string) ([]TagSuggestion, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON returned by %s (%s):\n%s", provider, model, excerpt(raw))
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("LLM JSON missing items array (%s, %s)", provider, model)
	}
	items, ok := obj["items"].([]any)
	if !ok {
		return nil, fmt.Errorf("LLM JSON missing items array (%s, %s)", provider, model)
	}

	suggestions := make([]TagSuggestion, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		key := strings.TrimSpace(coerceString(entry["key"]))
		if key == "" {
			continue
		}
		suggestions = append(suggestions, TagSuggestion{
			RecordKey: key,
			Tags:      coerceTags(entry["tags"]),
		})
	}
	return suggestions, nil
}

// ClassifyProviderError translates known upstream failure signatures into
// actionable user-facing messages. Pattern-matching on message text is a
// last-resort heuristic and inherently fragile across provider API changes;
// structured status fields are preferred where a backend exposes them.
func ClassifyProviderError(provider, model string, err error) error {
	msg := err.Error()

	if strings.Contains(msg, "API version") && strings.Contains(msg, "not supported") {
		apiVersion := "your current API version"
		if m := apiVersionPattern.FindStringSubmatch(msg); m != nil {
			apiVersion = m[1]
		}
		return fmt.Errorf("this model is not supported by the current API version (%s); please select a different model in reftag settings", apiVersion)
	}

	if strings.Contains(msg, "404") && strings.Contains(strings.ToLower(msg), "not found") {
		return fmt.Errorf("this model is not available anymore according to the provider; please select another model in reftag settings")
	}

	return fmt.Errorf("LLM error using %s (%s): %w", provider, model, err)
}

func excerpt(raw string) string {
	if len(raw) <= rawExcerptLimit {
		return raw
	}
	// Back off to a rune boundary so truncation never emits invalid UTF-8.
	cut := rawExcerptLimit
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut]
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func coerceTags(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	tags := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, raw := range list {
		tag := strings.TrimSpace(coerceString(raw))
		if tag == "" {
			continue
		}
		lower := strings.ToLower(tag)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		tags = append(tags, tag)
	}
	return tags
}
