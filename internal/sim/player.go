package sim

import "math"

const (
	playerSize           = 12
	playerSpeed          = 2.0
	playerMaxHealth      = 6
	playerAttackRange    = 20.0
	playerAttackCooldown = 20
	playerInvulnTicks    = 60
	playerAttackReach    = 15.0
	playerEdgeMargin     = 6.0
	footstepChance       = 0.05
)

// Player is the leader the swarm follows.
type Player struct {
	X, Y           float64
	Width, Height  float64
	Speed          float64
	Facing         Direction
	Health         int
	MaxHealth      int
	AttackCooldown int
	AttackRange    float64
	Invulnerable   int
	Attacking      bool
	Moving         bool
}

// NewPlayer places a full-health player at (x, y) facing down.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:           x,
		Y:           y,
		Width:       playerSize,
		Height:      playerSize,
		Speed:       playerSpeed,
		Facing:      DirDown,
		Health:      playerMaxHealth,
		MaxHealth:   playerMaxHealth,
		AttackRange: playerAttackRange,
	}
}

// Update applies one tick of input. Diagonal movement is normalised, the
// position is clamped inside the world and the swing starts when the
// cooldown allows it.
func (p *Player) Update(in InputState, env *Env) {
	dx, dy := in.axis()
	p.Moving = dx != 0 || dy != 0
	if p.Moving {
		nx, ny := Normalize(dx, dy)
		p.X += nx * p.Speed
		p.Y += ny * p.Speed
		p.Facing = facingFor(nx, ny)
		if env != nil && env.Rng != nil && env.Rng.Float64() < footstepChance {
			env.audio().PlayStep()
		}
	}

	if env != nil && env.World != nil {
		p.X = clamp(p.X, playerEdgeMargin, env.World.PixelWidth()-playerEdgeMargin)
		p.Y = clamp(p.Y, playerEdgeMargin, env.World.PixelHeight()-playerEdgeMargin)
	}

	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}

	if in.Attack && p.AttackCooldown == 0 {
		p.Attacking = true
		p.AttackCooldown = playerAttackCooldown
	} else {
		p.Attacking = false
	}
}

// AttackPosition is the swing point, offset along the facing.
func (p *Player) AttackPosition() (float64, float64) {
	switch p.Facing {
	case DirRight:
		return p.X + playerAttackReach, p.Y
	case DirLeft:
		return p.X - playerAttackReach, p.Y
	case DirUp:
		return p.X, p.Y - playerAttackReach
	default:
		return p.X, p.Y + playerAttackReach
	}
}

// TakeDamage applies a hit unless the player is invulnerable. Returns whether
// the hit landed. Health never drops below zero.
func (p *Player) TakeDamage(amount int, audio AudioSink) bool {
	if p.Invulnerable > 0 {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invulnerable = playerInvulnTicks
	if audio != nil {
		audio.PlayDamage()
	}
	return true
}

// Heal restores health up to MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// Alive reports whether the player still has health.
func (p *Player) Alive() bool { return p.Health > 0 }

// Flicker reports whether the sprite should be hidden this frame.
func (p *Player) Flicker() bool {
	return p.Invulnerable > 0 && (p.Invulnerable/5)%2 == 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
