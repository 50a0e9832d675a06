package components

import (
	"testing"
)

func newTestPaddle() *Paddle {
	return NewPaddle(PaddleSpec{X: 10, Y: 200, Width: 20, Height: 100, Speed: 4})
}

func TestPaddleMove(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		steps    int
		expected float64
	}{
		{"Up once", DirUp, 1, 196},
		{"Down once", DirDown, 1, 204},
		{"Up ten times", DirUp, 10, 160},
		{"Down past court", DirDown, 100, 600}, // Move does not clamp
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaddle()
			for i := 0; i < tt.steps; i++ {
				p.Move(tt.dir)
			}
			if p.Y != tt.expected {
				t.Errorf("Expected Y to be %v, got %v", tt.expected, p.Y)
			}
			if p.X != 10 {
				t.Errorf("Expected X unchanged at 10, got %v", p.X)
			}
		})
	}
}

func TestPaddleReset(t *testing.T) {
	p := newTestPaddle()
	p.Move(DirDown)
	p.Move(DirDown)
	p.X = 99

	p.Reset()

	if p.X != 10 || p.Y != 200 {
		t.Errorf("Expected reset to (10, 200), got (%v, %v)", p.X, p.Y)
	}
	x, y, w, h := p.Bounds()
	if x != 10 || y != 200 || w != 20 || h != 100 {
		t.Errorf("Unexpected bounds (%v, %v, %v, %v)", x, y, w, h)
	}
}

func TestBallInitialState(t *testing.T) {
	b := NewBall(BallSpec{X: 350, Y: 250, Radius: 7, MaxSpeed: 5})

	if b.X != 350 || b.Y != 250 {
		t.Errorf("Expected ball at (350, 250), got (%v, %v)", b.X, b.Y)
	}
	if b.VelX != 5 {
		t.Errorf("Expected VelX 5, got %v", b.VelX)
	}
	if b.VelY != 0 {
		t.Errorf("Expected VelY 0, got %v", b.VelY)
	}
}

func TestBallMove(t *testing.T) {
	b := NewBall(BallSpec{X: 350, Y: 250, Radius: 7, MaxSpeed: 5})
	b.VelY = -2.5

	b.Move()
	b.Move()

	if b.X != 360 {
		t.Errorf("Expected X 360, got %v", b.X)
	}
	if b.Y != 245 {
		t.Errorf("Expected Y 245, got %v", b.Y)
	}
}

func TestBallReset(t *testing.T) {
	tests := []struct {
		name         string
		velX         float64
		expectedVelX float64
	}{
		{"Moving right", 5, -5},
		{"Moving left", -5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(BallSpec{X: 350, Y: 250, Radius: 7, MaxSpeed: 5})
			b.X, b.Y = -3, 17
			b.VelX = tt.velX
			b.VelY = 4.2

			b.Reset()

			if b.X != 350 || b.Y != 250 {
				t.Errorf("Expected ball at (350, 250), got (%v, %v)", b.X, b.Y)
			}
			if b.VelY != 0 {
				t.Errorf("Expected VelY 0, got %v", b.VelY)
			}
			if b.VelX != tt.expectedVelX {
				t.Errorf("Expected VelX %v, got %v", tt.expectedVelX, b.VelX)
			}
		})
	}
}

func TestSideString(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" || SideNone.String() != "none" {
		t.Error("Unexpected side names")
	}
}
