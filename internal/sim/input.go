package sim

// InputState is the per-tick snapshot of held controls.
type InputState struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Attack bool
}

// axis returns the raw movement intent in {-1, 0, 1} on each axis.
func (in InputState) axis() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}
