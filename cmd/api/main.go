package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-todo-assistant/config"
	_ "smart-todo-assistant/docs" // Swagger docs
	assistHTTP "smart-todo-assistant/internal/assist/delivery/http"
	"smart-todo-assistant/internal/assist/usecase"
	"smart-todo-assistant/internal/httpserver"
	"smart-todo-assistant/internal/middleware"
	"smart-todo-assistant/pkg/dateparse"
	"smart-todo-assistant/pkg/llmprovider"
	"smart-todo-assistant/pkg/log"
	"smart-todo-assistant/pkg/nlptext"
)

// @title       Smart Todo Assistant API
// @description Heuristic text-to-structured-todo extraction with suggestions, insights, and descriptions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Todo Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Generative text providers (optional; templates cover their absence)
	var textGen usecase.TextGenerator
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "Generative descriptions disabled: %v", err)
	} else {
		manager := llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
			MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, time.Minute),
		}, logger)
		textGen = manager
		logger.Infof(ctx, "Generative descriptions enabled with %d provider(s)", len(providers))
	}

	// 4. Text-analysis collaborators
	dates, err := dateparse.NewExtractor(cfg.NLP.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.NLP.Timezone, err)
		dates, _ = dateparse.NewExtractor("UTC")
	}
	tagger := nlptext.NewProseTagger()

	// 5. Assist domain
	assistUC := usecase.New(logger, dates, tagger, textGen, cfg.Assist.DescribeCacheSize)
	assistHandler := assistHTTP.New(logger, assistUC)

	// 6. HTTP server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AssistHandler:   assistHandler,
		ParseRatePerMin: cfg.Assist.ParseRatePerMin,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
