package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// LoadKeyConfig builds a KeyTable from action name -> key name lists.
// Actions present replace their default bindings entirely; absent actions keep defaults,
// except for keys a configured action takes over.
// Returns error on unknown action names, key names, or a key listed under two actions.
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, error) {
	kt := DefaultKeyTable()

	// Sorted so the first reported error is stable
	actions := slices.Sorted(maps.Keys(bindings))

	owners := make(map[keyID]string)
	for _, action := range actions {
		keys := bindings[action]
		name := strings.ToLower(action)
		intent, ok := intentNames[name]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", action)
		}
		if len(keys) == 0 {
			continue
		}

		kt.unbind(intent)
		for _, keyStr := range keys {
			id, err := kt.bind(keyStr, intent)
			if err != nil {
				return nil, fmt.Errorf("keymap: action %q: %w", action, err)
			}
			if prev, taken := owners[id]; taken && prev != name {
				return nil, fmt.Errorf("keymap: key %q bound to both %q and %q", keyStr, prev, name)
			}
			owners[id] = name
		}
	}

	return kt, nil
}

// keyID identifies one table slot: a special key or a rune
type keyID struct {
	special tcell.Key
	r       rune
}

// bind resolves a key name and maps it to the intent.
// Accepts special key names, rune aliases and single characters.
func (kt *KeyTable) bind(keyStr string, intent IntentType) (keyID, error) {
	lower := strings.ToLower(keyStr)

	if k, ok := specialKeyNames[lower]; ok {
		kt.SpecialKeys[k] = intent
		return keyID{special: k}, nil
	}

	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = intent
		return keyID{special: tcell.KeyRune, r: r}, nil
	}

	runes := []rune(keyStr)
	if len(runes) == 1 {
		kt.Runes[runes[0]] = intent
		return keyID{special: tcell.KeyRune, r: runes[0]}, nil
	}

	return keyID{}, fmt.Errorf("invalid key %q (expected single character, alias or key name)", keyStr)
}
