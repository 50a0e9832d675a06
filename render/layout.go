package render

import "math"

// Layout maps world coordinates of the court onto terminal cells.
// The court fills every row except the last, which holds the status bar.
type Layout struct {
	Cols    int
	Rows    int
	StatusY int

	worldW float64
	worldH float64
}

// NewLayout creates a layout for a screen of width x height cells showing a worldW x worldH court
func NewLayout(width, height int, worldW, worldH float64) Layout {
	rows := height - 1
	if rows < 0 {
		rows = 0
	}
	if width < 0 {
		width = 0
	}
	return Layout{
		Cols:    width,
		Rows:    rows,
		StatusY: rows,
		worldW:  worldW,
		worldH:  worldH,
	}
}

// Empty reports a screen too small to draw a court
func (l Layout) Empty() bool {
	return l.Cols == 0 || l.Rows == 0 || l.worldW <= 0 || l.worldH <= 0
}

// Col converts a world x to a court column, clamped to the court
func (l Layout) Col(x float64) int {
	return clamp(int(math.Floor(x*float64(l.Cols)/l.worldW)), 0, l.Cols-1)
}

// Row converts a world y to a court row, clamped to the court
func (l Layout) Row(y float64) int {
	return clamp(int(math.Floor(y*float64(l.Rows)/l.worldH)), 0, l.Rows-1)
}

// Rect converts a world rectangle to an inclusive cell range, at least one cell in each axis
func (l Layout) Rect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = l.Col(x)
	y0 = l.Row(y)
	x1 = clamp(int(math.Ceil((x+w)*float64(l.Cols)/l.worldW))-1, x0, l.Cols-1)
	y1 = clamp(int(math.Ceil((y+h)*float64(l.Rows)/l.worldH))-1, y0, l.Rows-1)
	return x0, y0, x1, y1
}

// RowCenterY returns the world y at the middle of a court row
func (l Layout) RowCenterY(row int) float64 {
	return (float64(row) + 0.5) * l.worldH / float64(l.Rows)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
