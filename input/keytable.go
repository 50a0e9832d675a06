package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType

	// Printable keys, case-sensitive
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the classic bindings: W/S for the left paddle,
// arrows for the right paddle
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:     IntentRightUp,
			tcell.KeyDown:   IntentRightDown,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'w': IntentLeftUp,
			'W': IntentLeftUp,
			's': IntentLeftDown,
			'S': IntentLeftDown,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event to its bound intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// unbind removes every key bound to the intent
func (kt *KeyTable) unbind(intent IntentType) {
	for k, it := range kt.SpecialKeys {
		if it == intent {
			delete(kt.SpecialKeys, k)
		}
	}
	for r, it := range kt.Runes {
		if it == intent {
			delete(kt.Runes, r)
		}
	}
}
