package engine

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
)

// Phase is the match state machine position
type Phase uint8

const (
	// PhasePlaying runs input, physics and scoring every frame
	PhasePlaying Phase = iota

	// PhaseWon shows the winner banner; the loop pauses then resets the match
	PhaseWon
)

func (p Phase) String() string {
	if p == PhaseWon {
		return "won"
	}
	return "playing"
}

// CourtConfig is the fixed court geometry and match rules
type CourtConfig struct {
	Width, Height float64
	WinningScore  int
	Left, Right   components.PaddleSpec
	Ball          components.BallSpec
}

// DefaultCourtConfig returns the classic 700x500 court
func DefaultCourtConfig() CourtConfig {
	paddle := func(x float64) components.PaddleSpec {
		return components.PaddleSpec{
			X:      x,
			Y:      constants.PaddleStartY,
			Width:  constants.PaddleWidth,
			Height: constants.PaddleHeight,
			Speed:  constants.PaddleSpeed,
		}
	}

	return CourtConfig{
		Width:        constants.CourtWidth,
		Height:       constants.CourtHeight,
		WinningScore: constants.WinningScore,
		Left:         paddle(constants.LeftPaddleX),
		Right:        paddle(constants.RightPaddleX),
		Ball: components.BallSpec{
			X:        constants.BallStartX,
			Y:        constants.BallStartY,
			Radius:   constants.BallRadius,
			MaxSpeed: constants.BallMaxSpeed,
		},
	}
}

// Match owns every entity of one game. Mutated only by the loop goroutine.
type Match struct {
	Court CourtConfig

	LeftPaddle  *components.Paddle
	RightPaddle *components.Paddle
	Ball        *components.Ball

	LeftScore  int
	RightScore int

	Phase  Phase
	Winner components.Side

	// Frame counts ticks since start, never reset
	Frame int64
}

// NewMatch creates a match with all entities at their spawn positions
func NewMatch(court CourtConfig) *Match {
	return &Match{
		Court:       court,
		LeftPaddle:  components.NewPaddle(court.Left),
		RightPaddle: components.NewPaddle(court.Right),
		Ball:        components.NewBall(court.Ball),
	}
}

// Paddle returns the paddle defending the given side
func (m *Match) Paddle(side components.Side) *components.Paddle {
	if side == components.SideLeft {
		return m.LeftPaddle
	}
	return m.RightPaddle
}

// AwardPoint increments the scorer's total and serves a fresh ball
func (m *Match) AwardPoint(scorer components.Side) {
	switch scorer {
	case components.SideLeft:
		m.LeftScore++
	case components.SideRight:
		m.RightScore++
	default:
		return
	}
	m.Ball.Reset()
}

// CheckWin moves to PhaseWon when a score reaches the threshold.
// Left is checked first so a simultaneous crossing favours left.
func (m *Match) CheckWin() bool {
	switch {
	case m.LeftScore >= m.Court.WinningScore:
		m.Winner = components.SideLeft
	case m.RightScore >= m.Court.WinningScore:
		m.Winner = components.SideRight
	default:
		return false
	}
	m.Phase = PhaseWon
	return true
}

// WinnerLabel returns the banner text while in PhaseWon, empty otherwise
func (m *Match) WinnerLabel() string {
	if m.Phase != PhaseWon {
		return ""
	}
	if m.Winner == components.SideLeft {
		return constants.WinTextLeft
	}
	return constants.WinTextRight
}

// Reset restores ball, both paddles and both scores, and resumes play
func (m *Match) Reset() {
	m.Ball.Reset()
	m.LeftPaddle.Reset()
	m.RightPaddle.Reset()
	m.LeftScore = 0
	m.RightScore = 0
	m.Phase = PhasePlaying
	m.Winner = components.SideNone
}
