package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names read at startup.
const (
	EnvAPIKey             = "SD35_API_KEY"
	EnvAPIKeyFallback     = "VITE_SD35_API_KEY"
	EnvFile               = "ENV_FILE"
	EnvPort               = "PORT"
	EnvAllowedOrigins     = "CORS_ALLOWED_ORIGINS"
	EnvStabilityURL       = "STABILITY_API_URL"
	EnvStabilityModel     = "STABILITY_MODEL"
	EnvTranslator         = "TRANSLATOR"
	EnvOpenAIAPIKey       = "OPENAI_API_KEY"
	EnvOpenAIModel        = "OPENAI_MODEL"
	EnvGeminiAPIKey       = "GEMINI_API_KEY"
	EnvGeminiModel        = "GEMINI_MODEL"
	EnvTranslationTTL     = "TRANSLATION_CACHE_TTL"
	EnvGenerateRateLimit  = "GENERATE_RATE_LIMIT"
	DefaultEnvFile        = "../.env"
	DefaultPort           = "8001"
	DefaultStabilityURL   = "https://api.stability.ai/v2beta/stable-image/generate/sd3"
	DefaultStabilityModel = "sd3.5-medium"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultGeminiModel    = "gemini-2.5-flash"
)

// Translator providers.
const (
	TranslatorGoogle = "google"
	TranslatorOpenAI = "openai"
	TranslatorGemini = "gemini"
	TranslatorNone   = "none"
)

// DefaultAllowedOrigins are the local frontend dev servers.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:5175",
}

// Config holds everything the service reads from the environment.
// It is built once in main and passed down; nothing else reads os.Getenv.
type Config struct {
	Port           string
	AllowedOrigins []string

	// StabilityAPIKey is empty when neither SD35_API_KEY nor VITE_SD35_API_KEY is set.
	StabilityAPIKey string
	StabilityURL    string
	StabilityModel  string

	Translator     string
	OpenAIAPIKey   string
	OpenAIModel    string
	GeminiAPIKey   string
	GeminiModel    string
	TranslationTTL time.Duration

	// GenerateRateLimit is requests per minute; 0 disables limiting.
	GenerateRateLimit int
}

// LoadEnvFile loads the .env file one directory above the service root, or ENV_FILE when set.
// A missing file is not an error; the process environment is used as is.
func LoadEnvFile() (string, error) {
	path := os.Getenv(EnvFile)
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return path, fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return path, nil
}

// Load builds a Config from the current environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv(EnvPort, DefaultPort),
		AllowedOrigins:  splitList(os.Getenv(EnvAllowedOrigins), DefaultAllowedOrigins),
		StabilityAPIKey: resolveAPIKey(),
		StabilityURL:    getEnv(EnvStabilityURL, DefaultStabilityURL),
		StabilityModel:  getEnv(EnvStabilityModel, DefaultStabilityModel),
		Translator:      strings.ToLower(getEnv(EnvTranslator, TranslatorGoogle)),
		OpenAIAPIKey:    os.Getenv(EnvOpenAIAPIKey),
		OpenAIModel:     getEnv(EnvOpenAIModel, DefaultOpenAIModel),
		GeminiAPIKey:    os.Getenv(EnvGeminiAPIKey),
		GeminiModel:     getEnv(EnvGeminiModel, DefaultGeminiModel),
	}

	switch cfg.Translator {
	case TranslatorGoogle, TranslatorOpenAI, TranslatorGemini, TranslatorNone:
	default:
		return nil, fmt.Errorf("unknown %s %q", EnvTranslator, cfg.Translator)
	}

	if v := os.Getenv(EnvTranslationTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTranslationTTL, err)
		}
		cfg.TranslationTTL = ttl
	}

	if v := os.Getenv(EnvGenerateRateLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s %q", EnvGenerateRateLimit, v)
		}
		cfg.GenerateRateLimit = n
	}

	return cfg, nil
}

// HasAPIKey reports whether an image provider credential was found.
func (c *Config) HasAPIKey() bool {
	return c.StabilityAPIKey != ""
}

func resolveAPIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	return os.Getenv(EnvAPIKeyFallback)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string, fallback []string) []string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
