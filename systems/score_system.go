package systems

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/engine"
)

// ScoreSystem awards points when the ball leaves the court and detects the match winner
type ScoreSystem struct{}

// NewScoreSystem creates a new score system
func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

// Update checks exits against the ball centre, then the win threshold.
// The loop handles the banner pause and reset once the phase is PhaseWon.
func (s *ScoreSystem) Update(tc *engine.TickContext) {
	m := tc.Match

	if m.Ball.X < 0 {
		m.AwardPoint(components.SideRight)
		tc.PushEvent(engine.EventPoint, components.SideRight)
	} else if m.Ball.X > m.Court.Width {
		m.AwardPoint(components.SideLeft)
		tc.PushEvent(engine.EventPoint, components.SideLeft)
	}

	if m.CheckWin() {
		tc.PushEvent(engine.EventMatchWon, m.Winner)
	}
}
