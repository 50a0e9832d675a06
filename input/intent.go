package input

// IntentType discriminates the logical keys the game understands
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Paddle intents, held-state semantics
	IntentLeftUp
	IntentLeftDown
	IntentRightUp
	IntentRightDown

	// System intents, edge semantics
	IntentQuit

	intentCount
)

// intentNames maps config action names to intents
var intentNames = map[string]IntentType{
	"left_up":    IntentLeftUp,
	"left_down":  IntentLeftDown,
	"right_up":   IntentRightUp,
	"right_down": IntentRightDown,
	"quit":       IntentQuit,
}

// String returns the config action name
func (i IntentType) String() string {
	for name, it := range intentNames {
		if it == i {
			return name
		}
	}
	return "none"
}

// isHeld reports whether the intent is tracked as a held key
func (i IntentType) isHeld() bool {
	return i >= IntentLeftUp && i <= IntentRightDown
}
