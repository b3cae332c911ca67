package infrastructure

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITranslator translates through a chat completion.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

// NewOpenAITranslator creates a translator, requires an OpenAI API key.
func NewOpenAITranslator(apiKey, model string) (*OpenAITranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return NewOpenAITranslatorWithConfig(openai.DefaultConfig(apiKey), model), nil
}

// NewOpenAITranslatorWithConfig creates a translator from a prepared client config.
func NewOpenAITranslatorWithConfig(cfg openai.ClientConfig, model string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{client: openai.NewClientWithConfig(cfg), model: model}
}

func (t *OpenAITranslator) Name() string { return "openai" }

// Translate asks the model for a plain translation and returns its first choice.
func (t *OpenAITranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	instructions := fmt.Sprintf(
		"Translate the user's text from %s to %s. Reply with the translation only, without quotes or commentary.",
		languageName(source), languageName(target))

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructions},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("chat completion returned empty content")
	}
	return out, nil
}
