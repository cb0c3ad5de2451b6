package sim

const (
	shockwaveMaxRadius = 30.0
	shockwaveSpeed     = 2.0
)

// Shockwave is the expanding ring left behind by a defeated enemy.
type Shockwave struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Speed     float64
	Alpha     float64
	Done      bool
}

// NewShockwave starts a ring at (x, y).
func NewShockwave(x, y float64) *Shockwave {
	return &Shockwave{X: x, Y: y, MaxRadius: shockwaveMaxRadius, Speed: shockwaveSpeed, Alpha: 1}
}

// Update grows the ring and fades it out.
func (s *Shockwave) Update() {
	if s.Done {
		return
	}
	s.Radius += s.Speed
	s.Alpha = 1 - s.Radius/s.MaxRadius
	if s.Radius >= s.MaxRadius {
		s.Done = true
	}
}
