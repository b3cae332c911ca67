package application

import (
	"travel-mate/backend/internal/config"
	"travel-mate/backend/internal/features/config/domain"
	"travel-mate/backend/internal/features/portrait/infrastructure"
)

// ConfigService defines the interface for exposing configuration to clients.
type ConfigService interface {
	PublicConfig() *domain.PublicConfig
}

// configService is the implementation of ConfigService.
type configService struct {
	cfg *config.Config
}

// NewConfigService creates a new instance of configService.
func NewConfigService(cfg *config.Config) ConfigService {
	return &configService{cfg: cfg}
}

// PublicConfig builds the client view; API keys are reduced to presence flags.
func (s *configService) PublicConfig() *domain.PublicConfig {
	ttl := "disabled"
	if s.cfg.TranslationTTL > 0 {
		ttl = s.cfg.TranslationTTL.String()
	}

	return &domain.PublicConfig{
		AllowedOrigins: append([]string(nil), s.cfg.AllowedOrigins...),
		Translator:     s.cfg.Translator,
		TranslationTTL: ttl,
		RateLimit:      s.cfg.GenerateRateLimit,
		ImageParams: domain.ImageParams{
			Model:        s.cfg.StabilityModel,
			OutputFormat: infrastructure.OutputFormatJPEG,
			AspectRatio:  infrastructure.AspectRatioSquare,
		},
		Credentials: domain.CredentialsStatus{
			ImageProvider: s.cfg.HasAPIKey(),
			Translator:    translatorReady(s.cfg),
		},
	}
}

func translatorReady(cfg *config.Config) bool {
	switch cfg.Translator {
	case config.TranslatorOpenAI:
		return cfg.OpenAIAPIKey != ""
	case config.TranslatorGemini:
		return cfg.GeminiAPIKey != ""
	default:
		return true
	}
}
