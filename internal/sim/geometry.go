package sim

import "math"

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize returns the unit vector of (x, y). The zero vector maps to (0, 0).
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Direction is a cardinal facing.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// facingFor picks the facing from the dominant axis of a unit vector.
// Ties go to the vertical axis.
func facingFor(nx, ny float64) Direction {
	if math.Abs(nx) > math.Abs(ny) {
		if nx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if ny > 0 {
		return DirDown
	}
	return DirUp
}
