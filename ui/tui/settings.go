// Package tui implements the interactive settings form.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/reftag/reftag/config"
	"github.com/reftag/reftag/llm"
)

// RunSettings opens the settings form, collecting provider choice, models,
// credentials, seed keywords, and the prompt override, and saves them to the
// config file on demand.
func RunSettings(configPath string, logger zerolog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := tview.NewApplication()
	pages := tview.NewPages()

	providers := llm.Names()
	providerIdx := lo.IndexOf(providers, cfg.Provider)
	if providerIdx < 0 {
		providerIdx = 0
	}

	form := tview.NewForm()
	form.SetBorder(true).SetTitle("reftag settings (Tab: navigate, Esc: cancel)")

	form.AddDropDown("Provider", providers, providerIdx, func(option string, _ int) {
		cfg.Provider = option
	})

	form.AddPasswordField("OpenAI API key", cfg.OpenAI.APIKey, 40, '*', func(text string) {
		cfg.OpenAI.APIKey = text
	})
	form.AddInputField("OpenAI model", cfg.OpenAI.Model, 40, nil, func(text string) {
		cfg.OpenAI.Model = text
	})

	form.AddPasswordField("Gemini API key", cfg.Gemini.APIKey, 40, '*', func(text string) {
		cfg.Gemini.APIKey = text
	})
	form.AddInputField("Gemini model", cfg.Gemini.Model, 40, nil, func(text string) {
		cfg.Gemini.Model = text
	})

	form.AddPasswordField("DeepSeek API key", cfg.DeepSeek.APIKey, 40, '*', func(text string) {
		cfg.DeepSeek.APIKey = text
	})
	form.AddInputField("DeepSeek model", cfg.DeepSeek.Model, 40, nil, func(text string) {
		cfg.DeepSeek.Model = text
	})

	form.AddPasswordField("Anthropic API key", cfg.Anthropic.APIKey, 40, '*', func(text string) {
		cfg.Anthropic.APIKey = text
	})
	form.AddInputField("Anthropic model", cfg.Anthropic.Model, 40, nil, func(text string) {
		cfg.Anthropic.Model = text
	})

	form.AddInputField("Local host (Ollama)", cfg.Local.Host, 40, nil, func(text string) {
		cfg.Local.Host = text
	})
	form.AddInputField("Local model", cfg.Local.Model, 40, nil, func(text string) {
		cfg.Local.Model = text
	})

	form.AddInputField("Seed keywords (comma-separated)", cfg.SeedKeywords, 60, nil, func(text string) {
		cfg.SeedKeywords = text
	})
	form.AddTextArea("Prompt override (blank uses the built-in template)", cfg.Prompt, 60, 6, 0, func(text string) {
		cfg.Prompt = text
	})

	form.AddButton("Save", func() {
		if err := config.Save(cfg, configPath); err != nil {
			logger.Error().Err(err).Msg("failed to save config")
			modal := tview.NewModal().
				SetText(fmt.Sprintf("Error saving settings:\n%v", err)).
				AddButtons([]string{"OK"}).
				SetDoneFunc(func(buttonIndex int, buttonLabel string) {
					pages.RemovePage("settings_modal")
				})
			pages.AddPage("settings_modal", modal, true, true)
			return
		}
		if !llm.Configured(cfg.Provider, cfg.LLM()) {
			logger.Warn().Str("provider", cfg.Provider).Msg("selected provider is missing a credential or model")
		}
		app.Stop()
		fmt.Printf("Settings saved to %s\n", config.ExpandPath(configPath))
	})

	form.AddButton("Cancel", func() {
		app.Stop()
	})

	form.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyEsc:
			app.Stop()
			return nil
		}
		return ev
	})

	pages.AddPage("form", form, true, true)
	return app.SetRoot(pages, true).Run()
}
