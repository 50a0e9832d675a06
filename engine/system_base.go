package engine

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/input"
)

// TickContext carries everything a system may touch during one frame
type TickContext struct {
	Match  *Match
	Input  input.Snapshot
	Events *EventQueue
}

// PushEvent queues an event stamped with the current frame
func (tc *TickContext) PushEvent(t EventType, side components.Side) {
	tc.Events.Push(GameEvent{Type: t, Side: side, Frame: tc.Match.Frame})
}

// System is a per-frame simulation step. Systems run in registration order.
type System interface {
	Update(tc *TickContext)
}
