package application

import (
	"context"
	"errors"
	"log/slog"

	"travel-mate/backend/internal/config"
	"travel-mate/backend/internal/features/portrait/domain"
	"travel-mate/backend/internal/features/portrait/infrastructure"
)

// PortraitService defines the interface for the travel mate portrait service.
type PortraitService interface {
	GenerateImage(ctx context.Context, req *domain.CharacterRequest) (*domain.ImageResult, error)
}

// ServiceConfig holds the read-only settings the service needs.
type ServiceConfig struct {
	APIKey string
	Model  string
}

// NewServiceConfig picks the image provider settings out of the application config.
func NewServiceConfig(cfg *config.Config) ServiceConfig {
	return ServiceConfig{APIKey: cfg.StabilityAPIKey, Model: cfg.StabilityModel}
}

// portraitService is the implementation of PortraitService.
type portraitService struct {
	cfg        ServiceConfig
	translator infrastructure.Translator
	generator  infrastructure.ImageGenerator
}

// NewPortraitService creates a new instance of portraitService.
func NewPortraitService(cfg ServiceConfig, translator infrastructure.Translator, generator infrastructure.ImageGenerator) PortraitService {
	if cfg.Model == "" {
		cfg.Model = config.DefaultStabilityModel
	}
	return &portraitService{cfg: cfg, translator: translator, generator: generator}
}

// GenerateImage builds the prompt, translates it and asks the image provider for a portrait.
// Translation failures fall back to the Korean prompt; everything else is returned as a domain error.
func (s *portraitService) GenerateImage(ctx context.Context, req *domain.CharacterRequest) (*domain.ImageResult, error) {
	if s.cfg.APIKey == "" {
		return nil, &domain.ConfigurationError{Key: config.EnvAPIKey}
	}

	prompt := domain.BuildPrompt(req)
	finalPrompt, err := s.translate(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "Translation failed, using original prompt", "error", err)
		finalPrompt = prompt
	} else {
		slog.InfoContext(ctx, "Translated prompt", "prompt", finalPrompt)
	}

	payload, err := s.generator.Generate(ctx, infrastructure.GenerationRequest{
		Prompt:       finalPrompt,
		Model:        s.cfg.Model,
		OutputFormat: infrastructure.OutputFormatJPEG,
		AspectRatio:  infrastructure.AspectRatioSquare,
		APIKey:       s.cfg.APIKey,
	})
	if err != nil {
		var upErr *domain.UpstreamError
		if errors.As(err, &upErr) {
			return nil, upErr
		}
		slog.ErrorContext(ctx, "Image generation failed", "error", err)
		return nil, &domain.UnexpectedError{Err: err}
	}

	return domain.NewImageResult(payload), nil
}

func (s *portraitService) translate(ctx context.Context, prompt string) (string, error) {
	if s.translator == nil {
		return "", &domain.TranslationError{Provider: "unset", Err: errors.New("no translator configured")}
	}
	out, err := s.translator.Translate(ctx, prompt, domain.SourceLanguage, domain.TargetLanguage)
	if err != nil {
		return "", &domain.TranslationError{Provider: s.translator.Name(), Err: err}
	}
	return out, nil
}
