package audio

import (
	"github.com/lixenwraith/vi-pong/engine"
)

// Player plays sound effects by type
type Player interface {
	Play(st SoundType) bool
}

// EventHandler plays the sound for each match event
type EventHandler struct {
	player Player
}

// NewEventHandler creates a handler that routes match events to player
func NewEventHandler(player Player) *EventHandler {
	return &EventHandler{player: player}
}

func (h *EventHandler) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventPaddleHit,
		engine.EventWallBounce,
		engine.EventPoint,
		engine.EventMatchWon,
	}
}

func (h *EventHandler) HandleEvent(m *engine.Match, ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventPaddleHit:
		h.player.Play(SoundPaddleHit)
	case engine.EventWallBounce:
		h.player.Play(SoundWallBounce)
	case engine.EventPoint:
		// The winning point is announced by the match sound alone
		if m.Phase != engine.PhaseWon {
			h.player.Play(SoundPoint)
		}
	case engine.EventMatchWon:
		h.player.Play(SoundMatchWon)
	}
}
