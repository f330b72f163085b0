// Package server exposes the normalize and render pipeline over HTTP. The
// endpoint surface is deliberately small: one render route, health, and the
// prometheus scrape target wired in main.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"answer-guard/config"
	"answer-guard/guard"
	"answer-guard/internal"
	"answer-guard/logger"
	"answer-guard/metrics"
	"answer-guard/render"
	"answer-guard/types"
)

// RenderRequest is the body of POST /v1/render. Content carries the upstream
// answer payload verbatim, in whatever variant it arrived.
type RenderRequest struct {
	Content   json.RawMessage `json:"content"`
	SessionID string          `json:"sessionId,omitempty"`
}

// RenderResponse is the endpoint's reply: the normalization metadata plus the
// safe render tree.
type RenderResponse struct {
	Meta types.Meta        `json:"meta"`
	Tree render.RenderTree `json:"tree"`
}

// Handler handles HTTP render requests
type Handler struct {
	config     *config.Config
	normalizer *guard.Normalizer
	styler     *render.StyleMapper
	cache      *renderCache
	obs        *logger.ObservabilityLogger
	logCfg     logger.LoggerConfig
}

// NewHandler creates a new render handler. The observability logger may be
// nil in tests.
func NewHandler(cfg *config.Config, obs *logger.ObservabilityLogger) *Handler {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	var cache *renderCache
	if cfg.RenderCacheEnabled {
		cache = newRenderCache(cfg.RenderCacheSize)
	}
	return &Handler{
		config:     cfg,
		normalizer: guard.NewNormalizer(cfg, obs),
		styler:     render.NewStyleMapper(cfg),
		cache:      cache,
		obs:        obs,
		logCfg:     logger.NewConfigAdapter(cfg),
	}
}

// Normalizer exposes the underlying schema guard so main can extend its block
// registry before serving.
func (h *Handler) Normalizer() *guard.Normalizer {
	return h.normalizer
}

// HandleRender handles incoming render requests
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// The guard has its own recover; this one covers everything around it.
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("%s Render handler panic: %v", logger.EmojiAlert, rec)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}()

	start := time.Now()

	// Read request body
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "Failed to read request", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req RenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("⚠️ Invalid JSON in render request: %v", err)
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// Create context with request ID for tracing
	requestID := generateRequestID()
	ctx := withRequestID(r.Context(), requestID)
	if req.SessionID != "" {
		ctx = internal.WithSessionID(ctx, req.SessionID)
	}
	console := logger.New(ctx, h.logCfg)

	// The payload key covers everything that influences the output, so a
	// cache hit is exact.
	cacheKey := payloadKey(req.Content)
	if h.cache != nil {
		if cached, found := h.cache.get(cacheKey); found {
			metrics.RenderCacheHits.Inc()
			logger.LogRenderComplete(ctx, console, len(cached.Tree.Blocks), cached.Tree.NodeCount(), true, cached.Meta.Repaired)
			h.writeJSON(w, requestID, cached)
			return
		}
	}

	logger.LogRenderRequest(ctx, console, len(req.Content))

	resp := h.normalizer.NormalizeRaw(ctx, req.Content)
	tree := h.styler.Apply(render.Render(resp), resp.Title)

	result := RenderResponse{Meta: resp.Meta, Tree: tree}
	if h.cache != nil {
		h.cache.put(cacheKey, result)
	}

	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	logger.LogRenderComplete(ctx, console, len(tree.Blocks), tree.NodeCount(), false, resp.Meta.Repaired)

	if h.obs != nil {
		h.obs.RenderEvent(requestID, "Render complete", map[string]interface{}{
			"blocks":      len(tree.Blocks),
			"nodes":       tree.NodeCount(),
			"repaired":    resp.Meta.Repaired,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}

	h.writeJSON(w, requestID, result)
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","service":"answer-guard"}`)
}

// writeJSON serializes and sends a render response.
func (h *Handler) writeJSON(w http.ResponseWriter, requestID string, resp RenderResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("❌ [%s] Failed to write response: %v", requestID, err)
	}
}
