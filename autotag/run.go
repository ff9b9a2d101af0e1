package autotag

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reftag/reftag/llm"
)

// Pipeline bundles the capabilities one tagging run needs. Dependencies are
// passed in explicitly; the pipeline reaches into no ambient state.
type Pipeline struct {
	Provider llm.Provider
	// Model is the configured model identifier for Provider, used in error
	// messages and the run summary.
	Model string
	// Template overrides the default prompt instruction block when set.
	Template     string
	SeedKeywords string
	Store        RecordStore
	// Editor may be nil when the environment has no prompt facility; the
	// preview step then keeps all suggestions unchanged.
	Editor Editor
	Logger zerolog.Logger
}

// Result is the outcome of one run, used for the single summary notification.
type Result struct {
	Provider string
	Model    string
	Tagged   int
}

// Summary renders the user-facing summary line.
func (r Result) Summary() string {
	return fmt.Sprintf("Applied tags using %s (%s) to %d item(s).", r.Provider, r.Model, r.Tagged)
}

// Run executes the pipeline over one immutable snapshot of record metadata:
// build prompt, call provider, normalize, preview/edit, apply. It issues one
// network round trip and surfaces at most one error.
func (p *Pipeline) Run(ctx context.Context, records []RecordMetadata) (Result, error) {
	provider := p.Provider.Name()
	model := p.Model
	if model == "" {
		model = "(default)"
	}
	result := Result{Provider: provider, Model: model}

	if len(records) == 0 {
		return result, fmt.Errorf("no records to tag")
	}

	prompt := BuildPrompt(p.Template, p.SeedKeywords, records)
	p.Logger.Debug().
		Str("provider", provider).
		Str("model", model).
		Int("records", len(records)).
		Msg("sending prompt")
	p.Logger.Trace().Str("prompt", prompt).Msg("rendered prompt")

	raw, err := p.Provider.GenerateTags(ctx, prompt)
	if err != nil {
		return result, ClassifyProviderError(provider, model, err)
	}

	suggestions, err := Normalize(provider, model, raw)
	if err != nil {
		return result, err
	}
	p.Logger.Debug().Int("suggestions", len(suggestions)).Msg("normalized provider response")

	edited := PreviewAndEdit(suggestions, records, p.Editor, p.Logger)

	tagged, err := Apply(ctx, p.Store, records, edited, p.Logger)
	result.Tagged = tagged
	if err != nil {
		return result, fmt.Errorf("applying tags: %w", err)
	}
	return result, nil
}
