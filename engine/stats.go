package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/engine/status"
)

// Counter keys
const (
	StatPaddleHits   = "paddle_hits"
	StatWallBounces  = "wall_bounces"
	StatPointsLeft   = "points.left"
	StatPointsRight  = "points.right"
	StatMatchesLeft  = "matches.left"
	StatMatchesRight = "matches.right"
	StatRally        = "rally"
	StatLongestRally = "rally.longest"
)

// StatsHandler counts match events into a status registry.
// A rally is the number of paddle hits since the last point.
type StatsHandler struct {
	reg *status.Registry

	// Cached hot counters
	paddleHits *atomic.Int64
	rally      *atomic.Int64
	longest    *atomic.Int64
}

// NewStatsHandler creates a handler writing to reg
func NewStatsHandler(reg *status.Registry) *StatsHandler {
	return &StatsHandler{
		reg:        reg,
		paddleHits: reg.Counter(StatPaddleHits),
		rally:      reg.Counter(StatRally),
		longest:    reg.Counter(StatLongestRally),
	}
}

func (h *StatsHandler) EventTypes() []EventType {
	return []EventType{EventPaddleHit, EventWallBounce, EventPoint, EventMatchWon}
}

func (h *StatsHandler) HandleEvent(m *Match, ev GameEvent) {
	switch ev.Type {
	case EventPaddleHit:
		h.paddleHits.Add(1)
		if n := h.rally.Add(1); n > h.longest.Load() {
			h.longest.Store(n)
		}
	case EventWallBounce:
		h.reg.Counter(StatWallBounces).Add(1)
	case EventPoint:
		h.rally.Store(0)
		h.reg.Counter(sideKey(StatPointsLeft, StatPointsRight, ev.Side)).Add(1)
	case EventMatchWon:
		h.reg.Counter(sideKey(StatMatchesLeft, StatMatchesRight, ev.Side)).Add(1)
	}
}

func sideKey(left, right string, side components.Side) string {
	if side == components.SideLeft {
		return left
	}
	return right
}
