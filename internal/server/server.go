package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-mate/backend/internal/config"
	configapp "travel-mate/backend/internal/features/config/application"
	config_http "travel-mate/backend/internal/features/config/presentation/http"
	"travel-mate/backend/internal/features/portrait/application"
	portrait_http "travel-mate/backend/internal/features/portrait/presentation/http"
	"travel-mate/backend/internal/middleware"
)

// Server bundles the gin engine with the address it listens on.
type Server struct {
	engine *gin.Engine
	addr   string
}

// NewServer wires middleware and routes around the given services.
func NewServer(cfg *config.Config, portraitService application.PortraitService, configService configapp.ConfigService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), middleware.CORS(cfg.AllowedOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	portraitHandler := portrait_http.NewPortraitHandler(portraitService)
	r.POST("/generate-image", middleware.RateLimit(cfg.GenerateRateLimit), portraitHandler.GenerateImageHandler)

	configGroup := r.Group("/api/config")
	{
		configGroup.GET("", config_http.NewAppConfigHandler(configService).GetAppConfigHandler)
	}

	return &Server{engine: r, addr: ":" + cfg.Port}
}

// Handler exposes the engine for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured port.
func (s *Server) Start() error {
	return s.engine.Run(s.addr)
}
