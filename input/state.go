package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Snapshot is the per-frame view of the four paddle keys plus the quit request
type Snapshot struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
	Quit               bool
}

// Tracker derives held-key state from terminal key events.
// Terminals deliver presses and auto-repeats but no releases, so a key stays
// held until holdWindow passes without another press.
type Tracker struct {
	table      *KeyTable
	holdWindow time.Duration

	heldUntil [intentCount]time.Time
	quit      bool
}

// NewTracker creates a tracker over the given bindings
func NewTracker(table *KeyTable, holdWindow time.Duration) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Tracker{
		table:      table,
		holdWindow: holdWindow,
	}
}

// HandleEvent records a terminal event observed at now.
// Returns true once quit has been requested.
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return t.quit
	}

	intent := t.table.Lookup(key)
	switch {
	case intent == IntentQuit:
		t.quit = true
	case intent.isHeld():
		t.heldUntil[intent] = now.Add(t.holdWindow)
	}
	return t.quit
}

// Snapshot reports which keys count as held at now
func (t *Tracker) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		LeftUp:    t.held(IntentLeftUp, now),
		LeftDown:  t.held(IntentLeftDown, now),
		RightUp:   t.held(IntentRightUp, now),
		RightDown: t.held(IntentRightDown, now),
		Quit:      t.quit,
	}
}

// QuitRequested reports whether a quit key was pressed
func (t *Tracker) QuitRequested() bool {
	return t.quit
}

// Release drops all held keys, keeping the quit request
func (t *Tracker) Release() {
	t.heldUntil = [intentCount]time.Time{}
}

func (t *Tracker) held(intent IntentType, now time.Time) bool {
	return now.Before(t.heldUntil[intent])
}
