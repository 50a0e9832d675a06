package systems

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
)

// newTestTick creates a fresh default match and tick context for system tests
func newTestTick() *engine.TickContext {
	return &engine.TickContext{
		Match:  engine.NewMatch(engine.DefaultCourtConfig()),
		Events: engine.NewEventQueue(8),
	}
}

// withInput returns tc with the given key snapshot
func withInput(tc *engine.TickContext, snap input.Snapshot) *engine.TickContext {
	tc.Input = snap
	return tc
}

// eventTypes drains the queue and returns the event types in order
func eventTypes(tc *engine.TickContext) []engine.EventType {
	var out []engine.EventType
	for _, ev := range tc.Events.Consume() {
		out = append(out, ev.Type)
	}
	return out
}
