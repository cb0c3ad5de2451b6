package sim

const (
	enemySize           = 21
	enemySpeed          = 0.8
	enemyMaxHealth      = 3.0
	enemyDetectRange    = 150.0
	enemyMeleeRange     = 15.0
	enemyMeleeDamage    = 1
	enemyAttackCooldown = 60
)

// Enemy is a wandering creature that chases and bites the player.
type Enemy struct {
	ID             int
	X, Y           float64
	Width, Height  float64
	Speed          float64
	Health         float64
	MaxHealth      float64
	Dead           bool
	DeathX, DeathY float64
	AttackCooldown int
	Facing         Direction
}

// NewEnemy creates a full-health enemy at (x, y).
func NewEnemy(id int, x, y float64) *Enemy {
	return &Enemy{
		ID:        id,
		X:         x,
		Y:         y,
		Width:     enemySize,
		Height:    enemySize,
		Speed:     enemySpeed,
		Health:    enemyMaxHealth,
		MaxHealth: enemyMaxHealth,
		Facing:    DirDown,
	}
}

// Update chases the player when within detection range and bites when the
// pre-move distance is inside melee range and the cooldown has elapsed.
// Returns whether a bite landed.
func (e *Enemy) Update(p *Player, audio AudioSink) bool {
	if e.Dead {
		return false
	}
	landed := false
	dist := Distance(e.X, e.Y, p.X, p.Y)
	if dist < enemyDetectRange {
		nx, ny := Normalize(p.X-e.X, p.Y-e.Y)
		e.X += nx * e.Speed
		e.Y += ny * e.Speed
		e.Facing = facingFor(nx, ny)

		if dist < enemyMeleeRange && e.AttackCooldown == 0 {
			landed = p.TakeDamage(enemyMeleeDamage, audio)
			e.AttackCooldown = enemyAttackCooldown
		}
	}
	if e.AttackCooldown > 0 {
		e.AttackCooldown--
	}
	return landed
}

// TakeDamage subtracts health and plays the hit cue. The first time health
// reaches zero the enemy dies where it stands and spawns one shockwave.
func (e *Enemy) TakeDamage(amount float64, env *Env) {
	e.Health -= amount
	audio := env.audio()
	audio.PlayHit()
	if e.Health <= 0 && !e.Dead {
		e.Dead = true
		e.DeathX, e.DeathY = e.X, e.Y
		audio.PlayEnemyDeath()
		env.spawnShockwave(e.X, e.Y)
	}
}

// Damaged reports whether the health bar should be shown.
func (e *Enemy) Damaged() bool { return !e.Dead && e.Health < e.MaxHealth }
