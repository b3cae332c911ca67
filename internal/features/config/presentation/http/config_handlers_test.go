package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-mate/backend/internal/config"
	"travel-mate/backend/internal/features/config/application"
	"travel-mate/backend/internal/features/config/domain"
)

func TestGetAppConfigHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		AllowedOrigins:    config.DefaultAllowedOrigins,
		StabilityAPIKey:   "sk-secret",
		StabilityModel:    config.DefaultStabilityModel,
		Translator:        config.TranslatorOpenAI,
		TranslationTTL:    5 * time.Minute,
		GenerateRateLimit: 10,
	}
	r := gin.New()
	r.GET("/api/config", NewAppConfigHandler(application.NewConfigService(cfg)).GetAppConfigHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "sk-secret")

	var got domain.PublicConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, config.DefaultAllowedOrigins, got.AllowedOrigins)
	assert.Equal(t, "openai", got.Translator)
	assert.Equal(t, "5m0s", got.TranslationTTL)
	assert.Equal(t, 10, got.RateLimit)
	assert.Equal(t, domain.ImageParams{Model: "sd3.5-medium", OutputFormat: "jpeg", AspectRatio: "1:1"}, got.ImageParams)
	assert.True(t, got.Credentials.ImageProvider)
	assert.False(t, got.Credentials.Translator, "openai selected without a key")
}

func TestGetAppConfigHandler_NoKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Translator: config.TranslatorGoogle}
	r := gin.New()
	r.GET("/api/config", NewAppConfigHandler(application.NewConfigService(cfg)).GetAppConfigHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	var got domain.PublicConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Credentials.ImageProvider)
	assert.True(t, got.Credentials.Translator)
	assert.Equal(t, "disabled", got.TranslationTTL)
}
