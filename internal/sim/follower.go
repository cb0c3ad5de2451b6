package sim

import "math"

const (
	followerSpeed          = 1.8
	followDistance         = 20.0
	followerAttackDistance = 50.0
	followerLungeStep      = 3.0
	followerStrikeRange    = 12.0
	followerStrikeDamage   = 0.5
	treasureApproachMul    = 0.8
	treasureHoldDistance   = 3.0
)

// FollowerColor selects a follower's hazard immunity.
type FollowerColor int

const (
	ColorRed FollowerColor = iota
	ColorBlue
	ColorYellow
	ColorPurple
	ColorPink
	followerColorCount
)

// StartingColors is the colour order of a level's opening swarm.
var StartingColors = [...]FollowerColor{ColorRed, ColorBlue, ColorYellow, ColorPurple, ColorPink}

func (c FollowerColor) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Large reports whether the follower is the heavy variant. Only purple is
// large, and being large is what lets a follower cross rock.
func (c FollowerColor) Large() bool { return c == ColorPurple }

// Survives reports whether a follower of this colour can stand on t.
func (c FollowerColor) Survives(t TileType) bool {
	switch t {
	case TileWater:
		return c == ColorBlue
	case TileFire:
		return c == ColorRed
	case TileRock:
		return c.Large()
	default:
		return true
	}
}

// Follower is one member of the swarm.
type Follower struct {
	ID       int
	X, Y     float64
	Color    FollowerColor
	Width    float64
	Height   float64
	HeadSize float64
	Speed    float64
	Dead     bool
	// Tile that killed the follower, if any.
	DiedOn   TileType
	Target   *Enemy
	Treasure *Treasure
}

// NewFollower creates a follower whose size derives from its colour.
func NewFollower(id int, x, y float64, c FollowerColor) *Follower {
	f := &Follower{ID: id, X: x, Y: y, Color: c, Speed: followerSpeed}
	if c.Large() {
		f.Width, f.Height, f.HeadSize = 10, 10, 5
	} else {
		f.Width, f.Height, f.HeadSize = 8, 8, 4
	}
	return f
}

// Update runs one tick of swarm behaviour. lead is the follow target: the
// player for the front of the chain, otherwise the predecessor's position at
// the start of the tick. Priority: hazard, treasure, combat, follow.
func (f *Follower) Update(leadX, leadY float64, enemies []*Enemy, env *Env) {
	if f.Dead {
		return
	}

	if env != nil && env.World != nil {
		tile := env.World.TileAt(f.X, f.Y)
		if !f.Color.Survives(tile) {
			f.Dead = true
			f.DiedOn = tile
			f.Target = nil
			f.Treasure = nil
			env.audio().PlayDamage()
			return
		}
	}

	if f.Treasure != nil {
		if Distance(f.X, f.Y, f.Treasure.X, f.Treasure.Y) >= treasureHoldDistance {
			f.moveToward(f.Treasure.X, f.Treasure.Y, f.Speed*treasureApproachMul)
		}
		return
	}

	if e, d := f.nearestEnemy(enemies); e != nil && d < followerAttackDistance {
		f.Target = e
		f.attack(e, env)
		return
	}

	f.Target = nil
	if Distance(f.X, f.Y, leadX, leadY) > followDistance {
		f.moveToward(leadX, leadY, f.Speed)
	}
}

// Carrying reports whether the follower is assigned to a treasure.
func (f *Follower) Carrying() bool { return f.Treasure != nil }

func (f *Follower) moveToward(x, y, step float64) {
	nx, ny := Normalize(x-f.X, y-f.Y)
	f.X += nx * step
	f.Y += ny * step
}

func (f *Follower) nearestEnemy(enemies []*Enemy) (*Enemy, float64) {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, e := range enemies {
		if e.Dead {
			continue
		}
		if d := Distance(f.X, f.Y, e.X, e.Y); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}

// attack lunges at the enemy and strikes when the lunge closes the gap.
func (f *Follower) attack(e *Enemy, env *Env) {
	f.moveToward(e.X, e.Y, followerLungeStep)
	if Distance(f.X, f.Y, e.X, e.Y) < followerStrikeRange {
		e.TakeDamage(followerStrikeDamage, env)
	}
}
