package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"translation-relay/internal/api"
	"translation-relay/internal/logging"
	"translation-relay/internal/services"
	"translation-relay/internal/text_translator"
	"translation-relay/internal/third_party/mymemory"
	"translation-relay/pkg/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load application configuration from .env and environment variables
	globalConfig, err := types.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger, err := logging.New(globalConfig.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer logger.Sync()

	if globalConfig.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := mymemory.NewMyMemoryClient(globalConfig.MyMemory)
	translatorService := text_translator.NewTextTranslatorService(logger, client)

	svc := services.NewServices(translatorService)

	// Start the HTTP server
	runServer(logger, globalConfig, svc)
}

func runServer(logger *zap.Logger, cfg *types.Config, svc *services.Services) {
	apiServer := api.NewGinServer(logger, svc, cfg.CORS)

	addr := cfg.Server.GetServerAddress()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      apiServer.GetRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", zap.String("address", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Notify on SIGINT (Ctrl+C) and SIGTERM (kill command)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
