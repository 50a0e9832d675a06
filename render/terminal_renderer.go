package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// Options toggles optional court decorations
type Options struct {
	CenterLine bool
	Monochrome bool
}

// TerminalRenderer draws the match onto a tcell screen
type TerminalRenderer struct {
	screen  tcell.Screen
	width   int
	height  int
	palette Palette
	opts    Options
}

// NewTerminalRenderer creates a renderer sized to the screen's current dimensions
func NewTerminalRenderer(screen tcell.Screen, opts Options) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:  screen,
		width:   w,
		height:  h,
		palette: NewPalette(opts.Monochrome),
		opts:    opts,
	}
}

// Render draws the entire frame and shows it
func (r *TerminalRenderer) Render(m *engine.Match) {
	r.screen.Fill(' ', r.palette.Court)

	layout := NewLayout(r.width, r.height, m.Court.Width, m.Court.Height)
	if !layout.Empty() {
		if r.opts.CenterLine {
			r.drawCenterLine(layout)
		}
		r.drawScores(layout, m)
		r.drawPaddles(layout, m)
		r.drawBall(layout, m)
		if m.Phase == engine.PhaseWon {
			r.drawBanner(layout, m.WinnerLabel())
		}
	}
	r.drawStatusBar(layout)

	r.screen.Show()
}

// Resize updates the renderer dimensions and forces a full repaint
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.screen.Sync()
}

// drawCenterLine draws a dashed line down the middle; odd segments are left blank
func (r *TerminalRenderer) drawCenterLine(l Layout) {
	x := l.Cols / 2
	segment := l.worldH / constants.CenterLineSegments
	for y := 0; y < l.Rows; y++ {
		if int(l.RowCenterY(y)/segment)%2 == 1 {
			continue
		}
		r.screen.SetContent(x, y, constants.CenterLineChar, nil, r.palette.CenterLine)
	}
}

// drawScores centres each score over its half of the court
func (r *TerminalRenderer) drawScores(l Layout, m *engine.Match) {
	y := l.Row(constants.ScoreTopOffset)
	r.drawCentered(l.Cols/4, y, strconv.Itoa(m.LeftScore), r.palette.Score)
	r.drawCentered(l.Cols*3/4, y, strconv.Itoa(m.RightScore), r.palette.Score)
}

func (r *TerminalRenderer) drawPaddles(l Layout, m *engine.Match) {
	for _, side := range [...]components.Side{components.SideLeft, components.SideRight} {
		r.fillRect(l, m.Paddle(side))
	}
}

// fillRect paints every cell covered by the paddle's world rectangle
func (r *TerminalRenderer) fillRect(l Layout, p *components.Paddle) {
	x0, y0, x1, y1 := l.Rect(p.Bounds())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, constants.PaddleChar, nil, r.palette.Paddle)
		}
	}
}

// drawBall draws a single glyph at the ball centre
func (r *TerminalRenderer) drawBall(l Layout, m *engine.Match) {
	r.screen.SetContent(l.Col(m.Ball.X), l.Row(m.Ball.Y), constants.BallChar, nil, r.palette.Ball)
}

// drawBanner centres the winner label on the court with one cell of padding
func (r *TerminalRenderer) drawBanner(l Layout, label string) {
	if label == "" {
		return
	}
	r.drawCentered(l.Cols/2, l.Rows/2, " "+label+" ", r.palette.Banner)
}

// drawStatusBar draws the title and the control help on the last row
func (r *TerminalRenderer) drawStatusBar(l Layout) {
	if r.height <= 0 {
		return
	}
	y := l.StatusY
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.palette.Status)
	}

	x := r.drawText(0, y, " "+constants.StatusTitle+" ", r.palette.Title)
	r.drawText(x+1, y, constants.StatusHelp, r.palette.Status)
}

// drawCentered writes text centred on column cx
func (r *TerminalRenderer) drawCentered(cx, y int, text string, style tcell.Style) {
	r.drawText(cx-runewidth.StringWidth(text)/2, y, text, style)
}

// drawText writes text clipped to the screen and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += runewidth.RuneWidth(ch)
	}
	return x
}
