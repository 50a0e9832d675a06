package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
)

// Status bar colors
var (
	RgbStatusBar   = tcell.NewRGBColor(40, 40, 40)    // Dark gray strip
	RgbStatusText  = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbTitleBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbTitleText   = tcell.NewRGBColor(0, 0, 0)       // Dark text on title
	RgbScoreLeader = tcell.NewRGBColor(255, 255, 255) // Bright white
)

// Palette holds the styles used for one frame
type Palette struct {
	Court      tcell.Style
	Paddle     tcell.Style
	Ball       tcell.Style
	CenterLine tcell.Style
	Score      tcell.Style
	Banner     tcell.Style
	Status     tcell.Style
	Title      tcell.Style
}

// NewPalette builds the court palette; monochrome drops all color and relies on attributes
func NewPalette(monochrome bool) Palette {
	if monochrome {
		base := tcell.StyleDefault
		return Palette{
			Court:      base,
			Paddle:     base,
			Ball:       base,
			CenterLine: base.Dim(true),
			Score:      base.Bold(true),
			Banner:     base.Bold(true).Reverse(true),
			Status:     base.Reverse(true),
			Title:      base.Bold(true),
		}
	}

	court := tcell.StyleDefault.Background(constants.ColorCourtBg)
	return Palette{
		Court:      court.Foreground(constants.ColorForeground),
		Paddle:     court.Foreground(constants.ColorForeground),
		Ball:       court.Foreground(constants.ColorForeground),
		CenterLine: court.Foreground(constants.ColorCenterLine),
		Score:      court.Foreground(RgbScoreLeader).Bold(true),
		Banner:     court.Foreground(constants.ColorWinBanner).Bold(true),
		Status:     tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar),
		Title:      tcell.StyleDefault.Foreground(RgbTitleText).Background(RgbTitleBg).Bold(true),
	}
}
