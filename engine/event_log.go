package engine

import "go.uber.org/zap"

// LogHandler writes match events to a zap logger.
// Paddle and wall contacts log at debug level, scoring at info.
type LogHandler struct {
	log *zap.Logger
}

// NewLogHandler creates a handler logging to log
func NewLogHandler(log *zap.Logger) *LogHandler {
	return &LogHandler{log: log.Named("match")}
}

func (h *LogHandler) EventTypes() []EventType {
	return []EventType{EventPaddleHit, EventWallBounce, EventPoint, EventMatchReset}
}

func (h *LogHandler) HandleEvent(m *Match, ev GameEvent) {
	switch ev.Type {
	case EventPaddleHit:
		h.log.Debug("paddle hit",
			zap.Stringer("side", ev.Side),
			zap.Float64("vel_y", m.Ball.VelY),
			zap.Int64("frame", ev.Frame),
		)
	case EventWallBounce:
		h.log.Debug("wall bounce", zap.Float64("y", m.Ball.Y), zap.Int64("frame", ev.Frame))
	case EventPoint:
		h.log.Info("point",
			zap.Stringer("scorer", ev.Side),
			zap.Int("left", m.LeftScore),
			zap.Int("right", m.RightScore),
			zap.Int64("frame", ev.Frame),
		)
	case EventMatchReset:
		h.log.Info("match reset", zap.Int64("frame", ev.Frame))
	}
}
