package components

// BallSpec is the immutable ball configuration.
// X, Y is the centre spawn point and the reset position.
type BallSpec struct {
	X, Y     float64
	Radius   float64
	MaxSpeed float64
}

// Ball is positioned by its centre. |VelX| always equals MaxSpeed.
type Ball struct {
	spec       BallSpec
	X, Y       float64
	VelX, VelY float64
}

// NewBall creates a ball at its spawn point moving right at full speed
func NewBall(spec BallSpec) *Ball {
	return &Ball{
		spec: spec,
		X:    spec.X,
		Y:    spec.Y,
		VelX: spec.MaxSpeed,
	}
}

// Move advances the ball by one frame of velocity
func (b *Ball) Move() {
	b.X += b.VelX
	b.Y += b.VelY
}

// Reset returns the ball to its spawn point, levels it and serves it the other way
func (b *Ball) Reset() {
	b.X = b.spec.X
	b.Y = b.spec.Y
	b.VelY = 0
	b.VelX = -b.VelX
}

func (b *Ball) Radius() float64   { return b.spec.Radius }
func (b *Ball) MaxSpeed() float64 { return b.spec.MaxSpeed }
