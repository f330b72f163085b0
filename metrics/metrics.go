// Package metrics exposes the prometheus instruments for the normalization
// and rendering pipeline. A sustained non-zero unknown-payload rate is a
// page-worthy signal (the upstream contract changed in a way we do not
// handle); a rising repair rate is a warn-worthy signal to investigate
// upstream format drift.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RepairsTotal counts normalize calls that had to coerce the payload
	// into the canonical shape, labeled by the classified variant.
	RepairsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "answer_guard_repairs_total",
		Help: "Normalizations that repaired a non-canonical payload, by variant.",
	}, []string{"variant"})

	// UnknownPayloadsTotal counts the unknown-variant fallback, the only
	// path that discards original content. Tracked separately from ordinary
	// repairs because it indicates an unrecognized upstream contract change.
	UnknownPayloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "answer_guard_unknown_payloads_total",
		Help: "Payloads degraded to the fixed placeholder response.",
	})

	// NormalizationsTotal counts every normalize call, labeled by variant,
	// so repair rates can be expressed as a ratio.
	NormalizationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "answer_guard_normalizations_total",
		Help: "All normalize calls, by classified variant.",
	}, []string{"variant"})

	// RendersTotal counts render tree constructions.
	RendersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "answer_guard_renders_total",
		Help: "Render trees produced.",
	})

	// RenderCacheHits counts render responses served from the memoization
	// cache instead of re-running the pipeline.
	RenderCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "answer_guard_render_cache_hits_total",
		Help: "Render requests served from the payload-keyed cache.",
	})

	// RenderDuration observes the end-to-end normalize+render latency of
	// HTTP render requests.
	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "answer_guard_render_duration_seconds",
		Help:    "Latency of normalize plus render per request.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
)
