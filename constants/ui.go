package constants

import "github.com/gdamore/tcell/v2"

// Glyphs
const (
	PaddleChar     = '█'
	BallChar       = '●'
	CenterLineChar = '┃'
	WallChar       = '─'
)

// Colors, matching the classic white-on-black court
var (
	ColorCourtBg    = tcell.ColorBlack
	ColorForeground = tcell.ColorWhite
	ColorCenterLine = tcell.ColorGray
	ColorWinBanner  = tcell.ColorYellow
)

// Layout
const (
	// ScoreTopOffset is the world-unit distance from the top wall to the score row
	ScoreTopOffset = 20

	// CenterLineSegments divides the court height into dashes; odd segments are gaps
	CenterLineSegments = 20

	// StatusTitle is drawn under the court
	StatusTitle = "PONG"

	// StatusHelp lists the default controls
	StatusHelp = "W/S left  ↑/↓ right  Q quit"
)
