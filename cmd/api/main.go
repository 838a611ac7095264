package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BanAutomation/battery-api/internal/api/handlers"
	"github.com/BanAutomation/battery-api/internal/api/middleware"
	"github.com/BanAutomation/battery-api/internal/config"
	"github.com/BanAutomation/battery-api/internal/storage"
)

func main() {
	production := os.Getenv("API_ENV") == "production"

	logger := newLogger(production)
	defer logger.Sync()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/default.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.String("path", cfgPath), zap.Error(err))
	}

	store, err := storage.NewStore(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	if production {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	analyzeHandler := handlers.NewAnalyzeHandler(cfg, store, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.GET("/config", analyzeHandler.GetConfig)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	logger.Info("Starting API server",
		zap.String("addr", addr),
		zap.String("config", cfgPath),
		zap.String("storage", cfg.Storage.Type),
	)
	if err := router.Run(addr); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}

func newLogger(production bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
