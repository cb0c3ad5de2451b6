package sim

// Camera is the top-left corner of the viewport in world pixels.
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64
}

// NewCamera returns a camera for a viewport of the given size.
func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH}
}

// Follow centres the viewport on (x, y), clamped to the world. When the world
// is smaller than the viewport the camera pins to the origin.
func (c *Camera) Follow(x, y, worldW, worldH float64) {
	c.X = max(0, min(x-c.ViewW/2, worldW-c.ViewW))
	c.Y = max(0, min(y-c.ViewH/2, worldH-c.ViewH))
}

// ToScreen converts world coordinates to screen coordinates.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}
