package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerador-ia/backend/internal/config"
	"github.com/gerador-ia/backend/internal/generation"
	"github.com/gerador-ia/backend/internal/logger"
	"github.com/gerador-ia/backend/internal/storage/sqlite"
	"github.com/gerador-ia/backend/internal/titles"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(logger.FromConfig(cfg.LogLevel, cfg.LogFormat))

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize database.
	db, err := sqlite.InitDatabase(cfg.DatabasePath)
	if err != nil {
		appLogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	// Resolve the upstream provider once, before the first request is served.
	provider := generation.SelectProvider(cfg)
	appLogger.Info("🤖 provider selected",
		slog.String("provider", provider.Name),
		slog.String("text_model", provider.TextModel),
		slog.String("vision_model", provider.VisionModel),
		slog.String("base_url", provider.BaseURL))

	// Initialize services
	upstreamClient := generation.NewClient(
		time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second,
		cfg.Generation.Temperature,
		cfg.Generation.MaxTokens,
	)
	generationService := generation.NewService(appLogger, provider, upstreamClient, cfg.Generation.SystemPrompt)
	titlesService := titles.NewService(appLogger, db)

	// Initialize handlers
	generationHandler := generation.NewHandler(generationService, appLogger)
	titlesHandler := titles.NewHandler(titlesService, appLogger)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(logger.RequestLoggingMiddleware(appLogger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/provider", generationHandler.CurrentProvider)
	router.POST("/gerar", generationHandler.Generate)

	router.GET("/titles", titlesHandler.ListTitles)
	router.POST("/titles", titlesHandler.CreateTitle)
	router.DELETE("/titles/:id", titlesHandler.DeleteTitle)

	port := ":" + cfg.Port

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("failed to start server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	appLogger.Info("🔁 server listening on " + port)

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("🛑 shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ServerShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appLogger.Info("✅ server exited")
}

// corsMiddleware applies the deliberately permissive CORS policy: any
// origin, any method, any header, credentials allowed. Because credentials
// are allowed the origin is echoed back instead of using "*".
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
