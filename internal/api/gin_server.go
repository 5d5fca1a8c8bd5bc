package api

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"translation-relay/internal/services"
	"translation-relay/internal/text_translator"
	"translation-relay/pkg/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GinServer struct {
	router   *gin.Engine
	logger   *zap.Logger
	services *services.Services
}

func NewGinServer(logger *zap.Logger, services *services.Services, corsConfig types.CORSConfig) *GinServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(GinLogger(logger))
	// Preflight requests never match a route, so CORS has to sit on the engine.
	if mw := CORSMiddleware(corsConfig); mw != nil {
		router.Use(mw)
	}

	server := &GinServer{
		router:   router,
		logger:   logger,
		services: services,
	}
	server.SetupRoutes()
	return server
}

// GetRouter returns the Gin router
func (s *GinServer) GetRouter() *gin.Engine {
	return s.router
}

func (s *GinServer) SetupRoutes() {
	api := s.router.Group("/api")

	api.GET("/health", s.HealthCheck)
	api.POST("/translate", s.Translate)
}

// GinLogger returns a gin middleware for logging using zap
func GinLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// CORSMiddleware adds CORS headers for the configured origins. A "*" entry
// allows any origin; no entries disables CORS handling. Requests from other
// origins are served without the headers, never rejected.
func CORSMiddleware(cfg types.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowedOrigins) == 0 {
		return nil
	}

	corsConfig := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	allowAll := slices.Contains(cfg.AllowedOrigins, "*")
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	handler := cors.New(corsConfig)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" || !(allowAll || slices.Contains(cfg.AllowedOrigins, origin)) {
			c.Next()
			return
		}
		handler(c)
	}
}

// HealthCheck godoc
// @Summary Health check endpoint
// @Description Check if the API server is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (s *GinServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Translate handles text translation requests
// @Summary Translate text from one language to another
// @Description Splits the text into chunks, translates each through MyMemory and returns the joined, HTML-escaped result
// @Tags translation
// @Accept json
// @Produce json
// @Param request body types.TranslateRequest true "Translation request"
// @Success 200 {object} types.TranslateResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/translate [post]
func (s *GinServer) Translate(c *gin.Context) {
	var req types.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warn("invalid translation request body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Server error: " + err.Error()})
		return
	}

	// Outbound calls run to completion even if the client goes away.
	resp, err := s.services.TextTranslatorService.Translate(context.WithoutCancel(c.Request.Context()), req)
	if err != nil {
		if errors.Is(err, text_translator.ErrNoText) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
			return
		}
		s.logger.Error("translation error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
