package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvAPIKey, EnvAPIKeyFallback, EnvPort, EnvAllowedOrigins, EnvStabilityURL,
		EnvStabilityModel, EnvTranslator, EnvOpenAIAPIKey, EnvOpenAIModel,
		EnvGeminiAPIKey, EnvGeminiModel, EnvTranslationTTL, EnvGenerateRateLimit,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
	assert.Equal(t, DefaultStabilityURL, cfg.StabilityURL)
	assert.Equal(t, DefaultStabilityModel, cfg.StabilityModel)
	assert.Equal(t, TranslatorGoogle, cfg.Translator)
	assert.Zero(t, cfg.TranslationTTL)
	assert.Zero(t, cfg.GenerateRateLimit)
	assert.False(t, cfg.HasAPIKey())
}

func TestLoad_APIKeyResolution(t *testing.T) {
	t.Run("primary key wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "primary")
		t.Setenv(EnvAPIKeyFallback, "fallback")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "primary", cfg.StabilityAPIKey)
	})

	t.Run("fallback key is used when primary is empty", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKeyFallback, "fallback")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "fallback", cfg.StabilityAPIKey)
		assert.True(t, cfg.HasAPIKey())
	})
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAllowedOrigins, " https://a.example , ,https://b.example")
	t.Setenv(EnvTranslator, "OpenAI")
	t.Setenv(EnvTranslationTTL, "90s")
	t.Setenv(EnvGenerateRateLimit, "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, TranslatorOpenAI, cfg.Translator)
	assert.Equal(t, 90*time.Second, cfg.TranslationTTL)
	assert.Equal(t, 12, cfg.GenerateRateLimit)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown translator", EnvTranslator, "babelfish"},
		{"bad ttl", EnvTranslationTTL, "soon"},
		{"negative rate", EnvGenerateRateLimit, "-1"},
		{"non numeric rate", EnvGenerateRateLimit, "many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is already present, even if empty.
	os.Unsetenv(EnvAPIKeyFallback)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("VITE_SD35_API_KEY=from-file\n"), 0o600))
	t.Setenv(EnvFile, path)

	loaded, err := LoadEnvFile()
	require.NoError(t, err)
	assert.Equal(t, path, loaded)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.StabilityAPIKey)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "nope.env"))

	_, err := LoadEnvFile()
	assert.Error(t, err)
}
