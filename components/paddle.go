package components

// PaddleSpec is the immutable paddle configuration captured at construction.
// X, Y is the top-left spawn corner and doubles as the reset position.
type PaddleSpec struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Vertical distance per Move
}

// Paddle is a player paddle positioned by its top-left corner
type Paddle struct {
	spec PaddleSpec
	X, Y float64
}

// NewPaddle creates a paddle at its spec position
func NewPaddle(spec PaddleSpec) *Paddle {
	return &Paddle{
		spec: spec,
		X:    spec.X,
		Y:    spec.Y,
	}
}

// Move shifts the paddle one speed step. Bounds are the caller's responsibility.
func (p *Paddle) Move(dir Direction) {
	p.Y += float64(dir) * p.spec.Speed
}

// Reset restores the spawn position
func (p *Paddle) Reset() {
	p.X = p.spec.X
	p.Y = p.spec.Y
}

func (p *Paddle) Width() float64  { return p.spec.Width }
func (p *Paddle) Height() float64 { return p.spec.Height }
func (p *Paddle) Speed() float64  { return p.spec.Speed }

// Bounds returns the paddle rectangle as x, y, width, height
func (p *Paddle) Bounds() (x, y, w, h float64) {
	return p.X, p.Y, p.spec.Width, p.spec.Height
}
