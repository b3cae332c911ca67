package infrastructure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-mate/backend/internal/config"
)

// Translator defines a generic interface for text translation services
type Translator interface {
	// Translate converts text from the source language into the target language
	Translate(ctx context.Context, text, source, target string) (string, error)

	// Name identifies the provider in logs and errors
	Name() string
}

// TranslatorConfig holds configuration for translator clients
type TranslatorConfig struct {
	Provider string        `json:"provider"` // "google", "openai", "gemini", "none"
	APIKey   string        `json:"api_key"`
	Model    string        `json:"model"`
	CacheTTL time.Duration `json:"cache_ttl"`
}

// NewTranslatorConfig picks the provider settings out of the application config.
func NewTranslatorConfig(cfg *config.Config) TranslatorConfig {
	tc := TranslatorConfig{Provider: cfg.Translator, CacheTTL: cfg.TranslationTTL}
	switch cfg.Translator {
	case config.TranslatorOpenAI:
		tc.APIKey, tc.Model = cfg.OpenAIAPIKey, cfg.OpenAIModel
	case config.TranslatorGemini:
		tc.APIKey, tc.Model = cfg.GeminiAPIKey, cfg.GeminiModel
	}
	return tc
}

// NewTranslator creates the translator selected by tc, wrapped in a cache when CacheTTL is positive.
func NewTranslator(ctx context.Context, tc TranslatorConfig) (Translator, error) {
	var (
		t   Translator
		err error
	)
	switch tc.Provider {
	case config.TranslatorGoogle, "":
		t = NewGoogleTranslator()
	case config.TranslatorOpenAI:
		t, err = NewOpenAITranslator(tc.APIKey, tc.Model)
	case config.TranslatorGemini:
		t, err = NewGeminiTranslator(ctx, tc.APIKey, tc.Model)
	case config.TranslatorNone:
		t = PassthroughTranslator{}
	default:
		return nil, fmt.Errorf("unknown translator provider %q", tc.Provider)
	}
	if err != nil {
		return nil, err
	}
	if tc.CacheTTL > 0 {
		t = NewCachedTranslator(t, tc.CacheTTL)
	}
	return t, nil
}

// PassthroughTranslator returns its input unchanged.
type PassthroughTranslator struct{}

func (PassthroughTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

func (PassthroughTranslator) Name() string { return config.TranslatorNone }

// languageName maps the ISO codes used here to names LLM translators understand.
func languageName(code string) string {
	switch strings.ToLower(code) {
	case "ko":
		return "Korean"
	case "en":
		return "English"
	default:
		return code
	}
}
