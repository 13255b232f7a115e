package lambda

import (
	"log/slog"
	"time"
)

// debugEnabled mirrors the most recently set App debug flag so that entity
// operations (which lack an App pointer) can check it cheaply. Only valid
// with a single App; multiple Apps with differing debug modes reflect
// whichever called SetDebugMode last.
var debugEnabled bool

// debugLogger is the logger of the App that last enabled debug mode.
var debugLogger *slog.Logger

func debugWarn(msg string, args ...any) {
	l := debugLogger
	if l == nil {
		l = slog.Default()
	}
	l.Warn(msg, args...)
}

// debugStats holds per-frame timing metrics.
// Only populated when App.debug is true.
type debugStats struct {
	updateTime    time.Duration
	particleTime  time.Duration
	entityCount   int
	particleCount int
}

// debugLog reports frame stats at debug level.
func (a *App) debugLog(stats debugStats) {
	if !a.debug {
		return
	}
	a.logger.Debug("frame",
		slog.Uint64("frame", a.frame),
		slog.Duration("update", stats.updateTime),
		slog.Duration("particles", stats.particleTime),
		slog.Duration("draw", a.lastDraw),
		slog.Int("entities", stats.entityCount),
		slog.Int("live_particles", stats.particleCount),
	)
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
func debugCheckTreeDepth(e *Entity) {
	depth := 0
	for p := e; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugWarn("entity tree too deep",
			"depth", depth, "threshold", debugMaxTreeDepth, "entity", e.Name)
	}
}

const debugMaxChildCount = 1000

// debugCheckChildCount warns if an entity has more than 1000 children.
func debugCheckChildCount(e *Entity) {
	if len(e.children) > debugMaxChildCount {
		debugWarn("entity has many children",
			"entity", e.Name, "children", len(e.children), "threshold", debugMaxChildCount)
	}
}
