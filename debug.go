package infinicanvas

import (
	"log/slog"
	"time"
)

// frameStats holds per-frame metrics. Only populated in debug mode.
type frameStats struct {
	frame    uint64
	duration time.Duration
	layers   int
	nodes    int
	scale    float64
}

// logFrame reports frame stats at debug level.
func (e *Engine) logFrame(stats frameStats) {
	Logger().Debug("frame drawn",
		slog.Uint64("frame", stats.frame),
		slog.Duration("took", stats.duration),
		slog.Int("layers", stats.layers),
		slog.Int("nodes", stats.nodes),
		slog.Float64("scale", stats.scale),
	)
}
