package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"travel-mate/backend/internal/features/portrait/application"
	"travel-mate/backend/internal/features/portrait/domain"

	"github.com/gin-gonic/gin"
)

// PortraitHandler holds the portrait service.
type PortraitHandler struct {
	portraitService application.PortraitService
}

// NewPortraitHandler creates a new PortraitHandler.
func NewPortraitHandler(portraitService application.PortraitService) *PortraitHandler {
	return &PortraitHandler{portraitService: portraitService}
}

// GenerateImageHandler handles POST /generate-image.
func (h *PortraitHandler) GenerateImageHandler(c *gin.Context) {
	var req domain.CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: err.Error()})
		return
	}

	// outbound calls run to completion even if the client goes away
	ctx := context.WithoutCancel(c.Request.Context())
	result, err := h.portraitService.GenerateImage(ctx, &req)
	if err != nil {
		status, detail := errorStatus(err)
		slog.ErrorContext(ctx, "Generate image failed", "status", status, "detail", detail)
		c.JSON(status, domain.ErrorResponse{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, result)
}

// errorStatus maps a service error onto the response status and detail.
func errorStatus(err error) (int, string) {
	var (
		cfgErr *domain.ConfigurationError
		upErr  *domain.UpstreamError
	)
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, cfgErr.Error()
	case errors.As(err, &upErr):
		return upErr.HTTPStatus(), upErr.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
