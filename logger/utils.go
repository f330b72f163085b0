package logger

import (
	"context"

	"answer-guard/internal"
)

// Common emoji constants for different log types (maintaining existing visual style)
const (
	EmojiReceived = "📨"
	EmojiGuard    = "🛡️"
	EmojiRepair   = "🔧"
	EmojiRender   = "🎨"
	EmojiSuccess  = "✅"
	EmojiCache    = "📦"
	EmojiAlert    = "🚨"
	EmojiStats    = "📊"
)

// Specialized logging functions for common pipeline operations

// LogRenderRequest logs an incoming render request. The session ID comes from
// context so the configured masking applies on the way out.
func LogRenderRequest(ctx context.Context, logger Logger, payloadBytes int) {
	if sessionID := internal.GetSessionID(ctx); sessionID != "" {
		logger.Info("%s Received render request: %d bytes, session=%s", EmojiReceived, payloadBytes, sessionID)
		return
	}
	logger.Info("%s Received render request: %d bytes", EmojiReceived, payloadBytes)
}

// LogRepair logs a schema repair decision
func LogRepair(ctx context.Context, logger Logger, variant, reason string) {
	logger.WithVariant(variant).Info("%s Repaired %s payload: %s", EmojiRepair, variant, reason)
}

// LogFallback logs the unknown-variant placeholder path
func LogFallback(ctx context.Context, logger Logger) {
	logger.Warn("%s Unrecognized payload shape, serving placeholder response", EmojiAlert)
}

// LogRenderComplete logs a summary of the produced render tree
func LogRenderComplete(ctx context.Context, logger Logger, blocks, nodes int, cached, repaired bool) {
	if cached {
		logger.Info("%s Render served from cache: %d blocks", EmojiCache, blocks)
		return
	}
	logger.Info("%s Render complete: %d blocks, %d nodes, repaired=%v", EmojiSuccess, blocks, nodes, repaired)
}
