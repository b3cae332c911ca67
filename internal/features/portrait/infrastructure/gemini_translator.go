package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"travel-mate/backend/internal/config"
)

// GeminiTranslator translates through the Gemini API.
type GeminiTranslator struct {
	client *genai.Client
	model  string
}

// NewGeminiTranslator creates a translator, requires a Gemini API key.
func NewGeminiTranslator(ctx context.Context, apiKey, model string) (*GeminiTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	return NewGeminiTranslatorWithConfig(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

// NewGeminiTranslatorWithConfig creates a translator from a prepared client config.
func NewGeminiTranslatorWithConfig(ctx context.Context, cc *genai.ClientConfig, model string) (*GeminiTranslator, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = config.DefaultGeminiModel
	}
	return &GeminiTranslator{client: client, model: model}, nil
}

func (t *GeminiTranslator) Name() string { return "gemini" }

func (t *GeminiTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	instructions := fmt.Sprintf(
		"Translate the user's text from %s to %s. Reply with the translation only, without quotes or commentary.",
		languageName(source), languageName(target))

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructions, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("gemini returned empty content")
	}
	return out, nil
}
