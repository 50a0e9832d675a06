package input

import "github.com/gdamore/tcell/v2"

// specialKeyNames maps config key names to tcell special keys
var specialKeyNames = map[string]tcell.Key{
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,

	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"page_up":   tcell.KeyPgUp,
	"page_down": tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,

	"ctrl_c": tcell.KeyCtrlC,
	"ctrl_d": tcell.KeyCtrlD,
	"ctrl_q": tcell.KeyCtrlQ,
	"ctrl_x": tcell.KeyCtrlX,
}

// runeAliases covers keys that are awkward as bare TOML strings
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}
