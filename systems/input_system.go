package systems

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/engine"
)

// InputSystem applies held paddle keys to the paddles.
// Each move is guarded before it is applied so paddles never leave the court.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Update moves each paddle independently; up and down are evaluated in that order
func (s *InputSystem) Update(tc *engine.TickContext) {
	courtHeight := tc.Match.Court.Height
	in := tc.Input

	movePaddle(tc.Match.LeftPaddle, in.LeftUp, in.LeftDown, courtHeight)
	movePaddle(tc.Match.RightPaddle, in.RightUp, in.RightDown, courtHeight)
}

func movePaddle(p *components.Paddle, up, down bool, courtHeight float64) {
	if up && p.Y-p.Speed() >= 0 {
		p.Move(components.DirUp)
	}
	if down && p.Y+p.Speed()+p.Height() <= courtHeight {
		p.Move(components.DirDown)
	}
}
