package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"civic-ai-orchestrator/config"
	_ "civic-ai-orchestrator/docs" // Swagger docs
	"civic-ai-orchestrator/internal/classifier"
	"civic-ai-orchestrator/internal/httpserver"
	"civic-ai-orchestrator/internal/issue"
	issueHTTP "civic-ai-orchestrator/internal/issue/delivery/http"
	issueUC "civic-ai-orchestrator/internal/issue/usecase"
	"civic-ai-orchestrator/pkg/labelprovider"
	"civic-ai-orchestrator/pkg/log"
)

// @title       Civic AI Orchestrator API
// @description Rule-based categorization and prioritization of citizen-reported civic issues.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Civic AI Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Rule tables
	rules := classifier.DefaultRuleSet()
	if cfg.Classifier.RulesPath != "" {
		rules, err = classifier.LoadRuleSet(cfg.Classifier.RulesPath)
		if err != nil {
			logger.Fatalf(ctx, "Failed to load classifier rules from %s: %v", cfg.Classifier.RulesPath, err)
		}
		logger.Infof(ctx, "Classifier rules loaded from %s", cfg.Classifier.RulesPath)
	}
	logger.Infof(ctx, "Classifier: %d category rules, %d priority tiers", len(rules.Categories()), len(rules.Priorities()))

	// 4. Label recognizers (optional)
	var recognizer issue.Recognizer
	manager, err := labelprovider.NewManagerFromConfig(ctx, &cfg.Recognition, logger)
	if err != nil {
		if cfg.Recognition.RequireRecognizer {
			logger.Errorf(ctx, "No label recognizer available and recognition.require_recognizer is set: %v", err)
		} else {
			logger.Warnf(ctx, "No label recognizer available, image categorization will return the fallback: %v", err)
		}
	} else {
		recognizer = manager
		logger.Infof(ctx, "Label recognizers: %v", manager.Providers())
	}

	// 5. Issue domain
	uc := issueUC.New(logger, rules, recognizer, issueUC.Config{
		MaxImageBytes: cfg.HTTPServer.MaxUploadBytes,
		MaxResults:    cfg.Recognition.MaxResults,
		CacheSize:     cfg.Cache.Size,
		CacheTTL:      cfg.Cache.TTL,
	})
	issueHandler := issueHTTP.New(logger, uc, cfg.HTTPServer.MaxUploadBytes)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ShutdownTimeout:   cfg.HTTPServer.ShutdownTimeout,
		CORS:              cfg.CORS,
		RateLimit:         cfg.RateLimit,
		IssueHandler:      issueHandler,
		Readiness:         uc,
		RequireRecognizer: cfg.Recognition.RequireRecognizer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
