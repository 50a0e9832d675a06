package systems

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/engine"
)

// PhysicsSystem moves the ball and resolves wall and paddle collisions
type PhysicsSystem struct{}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Update translates the ball, then bounces it off walls and the paddle it is moving toward
func (s *PhysicsSystem) Update(tc *engine.TickContext) {
	m := tc.Match
	ball := m.Ball

	ball.Move()

	if ball.Y+ball.Radius() >= m.Court.Height {
		ball.VelY = -ball.VelY
		tc.PushEvent(engine.EventWallBounce, components.SideNone)
	} else if ball.Y-ball.Radius() <= 0 {
		ball.VelY = -ball.VelY
		tc.PushEvent(engine.EventWallBounce, components.SideNone)
	}

	// Only the paddle the ball travels toward can be hit
	if ball.VelX < 0 {
		p := m.LeftPaddle
		if overlapsVertically(ball, p) && ball.X-ball.Radius() <= p.X+p.Width() {
			deflect(ball, p)
			tc.PushEvent(engine.EventPaddleHit, components.SideLeft)
		}
	} else {
		p := m.RightPaddle
		if overlapsVertically(ball, p) && ball.X+ball.Radius() >= p.X {
			deflect(ball, p)
			tc.PushEvent(engine.EventPaddleHit, components.SideRight)
		}
	}
}

// overlapsVertically tests the ball centre only, not centre ± radius
func overlapsVertically(ball *components.Ball, p *components.Paddle) bool {
	return ball.Y >= p.Y && ball.Y <= p.Y+p.Height()
}

// deflect reverses the ball horizontally and maps the impact offset from the
// paddle centre linearly onto [-MaxSpeed, MaxSpeed] vertical speed
func deflect(ball *components.Ball, p *components.Paddle) {
	ball.VelX = -ball.VelX

	middleY := p.Y + p.Height()/2
	diff := middleY - ball.Y
	reduction := (p.Height() / 2) / ball.MaxSpeed()
	ball.VelY = -(diff / reduction)
}
