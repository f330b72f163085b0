package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"answer-guard/config"
	"answer-guard/logger"
	"answer-guard/server"
)

func main() {
	// Print version information
	fmt.Println(GetBuildInfo())
	fmt.Println()

	// Load configuration with .env support
	cfg, err := config.LoadConfigWithEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Structured JSON logging alongside the console lines
	obsLogger, err := logger.NewObservabilityLogger(cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to initialize structured logging: %v", err)
	}
	defer obsLogger.Close()

	obsLogger.Info(logger.ComponentServer, logger.CategoryRequest, "", "Answer Guard configuration loaded", map[string]interface{}{
		"port":                    cfg.Port,
		"accept_legacy_dual":      cfg.AcceptLegacyDual,
		"accept_plain_text":       cfg.AcceptPlainText,
		"repair_malformed_blocks": cfg.RepairMalformedBlocks,
		"style_mapper_enabled":    cfg.StyleMapperEnabled,
		"style_rules":             len(cfg.StyleRules),
		"render_cache_enabled":    cfg.RenderCacheEnabled,
		"render_cache_size":       cfg.RenderCacheSize,
		"version":                 GetVersionInfo(),
		"git_commit":              GetGitCommit(),
	})

	// Create render handler
	renderHandler := server.NewHandler(cfg, obsLogger)

	// Setup HTTP routes
	http.HandleFunc("/", handleRoot)
	http.HandleFunc("/health", renderHandler.HandleHealth)
	http.HandleFunc("/v1/render", renderHandler.HandleRender)
	http.Handle("/metrics", promhttp.Handler())

	// Setup HTTP server with reasonable timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("%s Answer Guard listening on http://localhost:%s", logger.EmojiGuard, cfg.Port)
	obsLogger.Info(logger.ComponentServer, logger.CategoryRequest, "", "Answer Guard started", map[string]interface{}{
		"address":  fmt.Sprintf("http://localhost:%s", cfg.Port),
		"endpoint": fmt.Sprintf("http://localhost:%s/v1/render", cfg.Port),
	})

	// Start server
	if err := srv.ListenAndServe(); err != nil {
		obsLogger.Error(logger.ComponentServer, logger.CategoryError, "", "Server failed to start", map[string]interface{}{"error": err.Error()})
		log.Fatalf("Server failed to start: %v", err)
	}
}

// handleRoot provides basic information about the service
func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{
	"service": "Answer Guard",
	"version": "1.0.0",
	"status": "running",
	"endpoints": [
		"GET /health - Health check",
		"POST /v1/render - Normalize and render an answer payload",
		"GET /metrics - Prometheus metrics"
	]
}`)
}
