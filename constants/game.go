package constants

// Court Geometry
const (
	// CourtWidth is the logical court width in world units
	CourtWidth = 700

	// CourtHeight is the logical court height in world units
	CourtHeight = 500
)

// Paddle Constants
const (
	PaddleWidth  = 20
	PaddleHeight = 100

	// PaddleSpeed is the vertical distance a paddle travels per frame while its key is held
	PaddleSpeed = 4

	// PaddleMargin is the gap between a paddle and its side wall
	PaddleMargin = 10
)

// Ball Constants
const (
	BallRadius = 7

	// BallMaxSpeed bounds |VelX| exactly and |VelY| through the deflection formula
	BallMaxSpeed = 5
)

// Match Rules
const (
	// WinningScore is the score that ends a match
	WinningScore = 10

	WinTextLeft  = "Left player won!"
	WinTextRight = "Right player won!"
)

// Derived spawn positions, integer division matches the court grid
const (
	LeftPaddleX  = PaddleMargin
	RightPaddleX = CourtWidth - PaddleMargin - PaddleWidth
	PaddleStartY = CourtHeight/2 - PaddleHeight/2

	BallStartX = CourtWidth / 2
	BallStartY = CourtHeight / 2
)
