package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/answer"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/config"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/dataset"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/handler"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/query"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)
	logger.Info("asystent mieszkaniowy", "version", Version, "build_time", BuildTime, "git_commit", GitCommit)

	gin.SetMode(cfg.Server.GinMode)

	repo, err := dataset.Load(cfg.Dataset.Path, logger)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.Dataset.Path, "err", err)
		os.Exit(1)
	}

	generator, err := answer.NewGenerator(answer.Options{
		Provider: cfg.Answer.Provider,
		Model:    cfg.Answer.Model,
		APIKey:   cfg.Answer.APIKey,
		BaseURL:  cfg.Answer.BaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize llm provider", "provider", cfg.Answer.Provider, "err", err)
		os.Exit(1)
	}
	if generator != nil {
		logger.Info("llm answer backend enabled", "provider", cfg.Answer.Provider, "model", cfg.Answer.Model)
	} else {
		logger.Info("llm answer backend disabled, using deterministic summaries")
	}

	composer := answer.NewComposer(generator, answer.Options{
		Style:       cfg.Answer.Style,
		Length:      cfg.Answer.Length,
		Temperature: cfg.Answer.Temperature,
		Timeout:     cfg.Answer.Timeout,
		TopK:        cfg.Search.SummaryTopK,
		AllowLLM:    cfg.Answer.Enabled,
	}, logger)

	interpreter := query.NewInterpreter(repo.Cities(), repo.Districts(), logger)
	searchService := service.NewSearchService(repo, interpreter, composer, service.Options{
		DefaultLimit:    cfg.Search.DefaultLimit,
		MaxLimit:        cfg.Search.MaxLimit,
		RoommateMaxRows: cfg.Search.RoommateMaxRows,
	}, logger)
	searchHandler := handler.NewSearchHandler(searchService, cfg.Search.MaxLimit)

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.AllowedOrigins, ",")
	corsConfig.AllowMethods = strings.Split(cfg.Server.AllowedMethods, ",")
	corsConfig.AllowHeaders = strings.Split(cfg.Server.AllowedHeaders, ",")
	if cfg.Server.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"service":  "asystent-mieszkaniowy",
			"version":  Version,
			"listings": repo.Len(),
		})
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/search", searchHandler.Search)
		apiV1.POST("/search/roommates", searchHandler.Roommates)
		apiV1.GET("/listings/:id", searchHandler.GetListing)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
	logger.Info("server stopped")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default:
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.New(h)
}
