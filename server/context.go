package server

import (
	"context"
	"fmt"
	"time"

	"answer-guard/internal"
)

// withRequestID adds a request ID to the context (wraps internal function)
func withRequestID(ctx context.Context, requestID string) context.Context {
	return internal.WithRequestID(ctx, requestID)
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	return fmt.Sprintf("req_%d", time.Now().UnixNano()%10000)
}
