package constants

import "time"

// Game Loop Timing
const (
	// TargetFPS is the fixed simulation and render rate
	TargetFPS = 60

	// FrameUpdateInterval is the tick period for TargetFPS
	FrameUpdateInterval = time.Second / TargetFPS

	// WinPauseDuration is how long the winner banner blocks the loop before the match resets
	WinPauseDuration = 5 * time.Second
)

// Event plumbing
const (
	// EventQueueSize is the initial capacity of the per-frame event queue
	EventQueueSize = 16

	// EventChannelSize buffers terminal events between the poller and the loop
	EventChannelSize = 256
)

// Input Timing
const (
	// DefaultKeyHoldWindow is how long a key press counts as held without a repeat.
	// Terminals report presses and auto-repeats, never releases.
	DefaultKeyHoldWindow = 150 * time.Millisecond
)
