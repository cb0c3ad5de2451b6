package sim

import "math"

// Autopilot drives a Game without a human: it begins the run, walks toward
// the nearest uncollected treasure, swings at enemies in reach and skips
// transition screens as soon as they allow it.
type Autopilot struct {
	// Deadband is the per-axis distance under which the autopilot stops steering.
	Deadband float64
	// Arrive is how close to a treasure the player parks.
	Arrive float64
	// Swing is the enemy distance that triggers an attack.
	Swing float64
}

// NewAutopilot returns an autopilot with sensible defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{Deadband: 3, Arrive: 10, Swing: 30}
}

// Drive handles state signals and returns this tick's input.
func (a *Autopilot) Drive(g *Game) InputState {
	switch g.State {
	case StateNotStarted:
		g.Begin()
		return InputState{}
	case StateLevelTransitioning:
		if g.CanSkipTransition() {
			g.SkipTransition()
		}
		return InputState{}
	case StatePlaying:
	default:
		return InputState{}
	}

	var in InputState
	if t, d := g.NearestTreasure(); t != nil && d > a.Arrive {
		dx, dy := t.X-g.Player.X, t.Y-g.Player.Y
		in.Left = dx < -a.Deadband
		in.Right = dx > a.Deadband
		in.Up = dy < -a.Deadband
		in.Down = dy > a.Deadband
	}

	for _, e := range g.Enemies {
		if e.Dead {
			continue
		}
		if Distance(g.Player.X, g.Player.Y, e.X, e.Y) < a.Swing {
			in.Attack = true
			// Turn toward the threat when standing still.
			if !in.Left && !in.Right && !in.Up && !in.Down {
				dx, dy := e.X-g.Player.X, e.Y-g.Player.Y
				if math.Abs(dx) > math.Abs(dy) {
					in.Left, in.Right = dx < 0, dx > 0
				} else {
					in.Up, in.Down = dy < 0, dy > 0
				}
			}
			break
		}
	}
	return in
}
