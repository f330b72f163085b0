// Package guard normalizes inbound answer payloads into the one canonical
// shape the renderer relies on. It classifies the payload variant, repairs
// recoverable shape defects, and degrades unrecognizable payloads to a fixed
// placeholder. It sits on the critical path of every chat turn: by contract
// it never returns an error and never lets a panic cross its boundary.
package guard

import (
	"context"
	"encoding/json"

	"answer-guard/config"
	"answer-guard/internal"
	"answer-guard/logger"
	"answer-guard/metrics"
	"answer-guard/types"
)

// Normalizer is the schema guard. It is safe for concurrent use: every call
// operates solely on its own input and local state.
type Normalizer struct {
	cfg      *config.Config
	registry types.BlockRegistry
	obs      *logger.ObservabilityLogger
	logCfg   logger.LoggerConfig
}

// NewNormalizer creates a schema guard with explicit configuration. The
// repair toggles arrive on the config rather than being read from ambient
// process state, so two normalizers with different policies can coexist.
// The observability logger may be nil (tests, library use).
func NewNormalizer(cfg *config.Config, obs *logger.ObservabilityLogger) *Normalizer {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	return &Normalizer{
		cfg:      cfg,
		registry: types.NewStandardBlockRegistry(),
		obs:      obs,
		logCfg:   logger.NewConfigAdapter(cfg),
	}
}

// Registry exposes the block-type registry so callers can extend the
// recognized set before normalizing.
func (n *Normalizer) Registry() types.BlockRegistry {
	return n.registry
}

// NormalizeRaw decodes a raw JSON payload and normalizes it. Payloads that
// are not valid JSON at all are treated as plain text rather than rejected:
// the upstream has shipped bare unquoted strings before.
func (n *Normalizer) NormalizeRaw(ctx context.Context, raw json.RawMessage) types.CanonicalResponse {
	var payload any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			payload = string(raw)
		}
	}
	return n.Normalize(ctx, payload)
}

// Normalize classifies a decoded payload and emits the canonical response.
// Every input, however malformed, produces a valid renderable output; the
// only degraded path is the unknown-variant placeholder, which is counted
// and logged separately from ordinary repairs because it signals an upstream
// contract change rather than a formatting slip.
func (n *Normalizer) Normalize(ctx context.Context, payload any) (resp types.CanonicalResponse) {
	requestID := internal.GetRequestID(ctx)

	// Last-resort backstop: a panic here would blank the entire
	// conversation view, which is strictly worse than one degraded message.
	defer func() {
		if r := recover(); r != nil {
			metrics.UnknownPayloadsTotal.Inc()
			if n.obs != nil {
				n.obs.Error(logger.ComponentSchemaGuard, logger.CategoryError, requestID,
					"Normalize recovered from panic", map[string]interface{}{"panic": r})
			}
			resp = n.placeholderResponse()
			resp.Meta.Repaired = true
		}
	}()

	variant := types.Classify(payload)
	metrics.NormalizationsTotal.WithLabelValues(variant.String()).Inc()

	var repaired bool
	var reason string

	switch variant {
	case types.VariantV2:
		resp, repaired, reason = n.normalizeV2(payload.(map[string]any))

	case types.VariantLegacyDual:
		if !n.cfg.AcceptLegacyDual {
			resp, repaired, reason = n.placeholderResponse(), true, "legacy dual repair path disabled"
			break
		}
		resp, repaired, reason = n.legacyToCanonical(payload.(map[string]any)), true, "mapped legacy dual format to v2"

	case types.VariantPlain:
		if !n.cfg.AcceptPlainText {
			resp, repaired, reason = n.placeholderResponse(), true, "plain text repair path disabled"
			break
		}
		resp, repaired, reason = n.plainToCanonical(payload.(string)), true, "wrapped plain string as markdown block"

	default:
		resp, repaired, reason = n.placeholderResponse(), true, "unrecognized payload shape"
		metrics.UnknownPayloadsTotal.Inc()
		logger.LogFallback(ctx, logger.New(ctx, n.logCfg))
		if n.obs != nil {
			n.obs.FallbackEvent(requestID, "Unrecognized payload shape, serving placeholder", map[string]interface{}{
				"payload_type": payloadTypeName(payload),
			})
		}
	}

	resp.Meta.Repaired = repaired

	if repaired {
		metrics.RepairsTotal.WithLabelValues(variant.String()).Inc()
		if variant != types.VariantUnknown {
			// Per-variant filtering inside the console logger honors the
			// repair-logging toggle.
			logger.LogRepair(ctx, logger.New(ctx, n.logCfg), variant.String(), reason)
			if n.obs != nil && !n.cfg.DisableRepairLogging {
				n.obs.RepairEvent(requestID, variant.String(), "Repaired payload into canonical shape", map[string]interface{}{
					"reason": reason,
					"blocks": len(resp.Blocks),
				})
			}
		}
	}

	return resp
}

// payloadTypeName names the Go type of a decoded payload for fallback logs.
func payloadTypeName(payload any) string {
	switch payload.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unsupported"
	}
}
