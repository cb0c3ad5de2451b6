package sim

// AudioSink receives fire-and-forget sound cues from the simulation.
// Implementations must not block the tick.
type AudioSink interface {
	PlayAttack()
	PlayHit()
	PlayDamage()
	PlayEnemyDeath()
	PlayStep()
	PlayFollowerCall()
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) PlayAttack()       {}
func (NopAudio) PlayHit()          {}
func (NopAudio) PlayDamage()       {}
func (NopAudio) PlayEnemyDeath()   {}
func (NopAudio) PlayStep()         {}
func (NopAudio) PlayFollowerCall() {}

// CueCounter counts cues by name. Used by tests and headless runs.
type CueCounter struct {
	Counts map[string]int
}

// NewCueCounter returns an empty counter.
func NewCueCounter() *CueCounter {
	return &CueCounter{Counts: make(map[string]int)}
}

func (c *CueCounter) PlayAttack()       { c.Counts["attack"]++ }
func (c *CueCounter) PlayHit()          { c.Counts["hit"]++ }
func (c *CueCounter) PlayDamage()       { c.Counts["damage"]++ }
func (c *CueCounter) PlayEnemyDeath()   { c.Counts["enemy_death"]++ }
func (c *CueCounter) PlayStep()         { c.Counts["step"]++ }
func (c *CueCounter) PlayFollowerCall() { c.Counts["follower_call"]++ }
