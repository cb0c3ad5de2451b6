package sim

import "math/rand"

// Env carries the per-tick collaborators entities need while updating.
// Shockwaves spawned during a tick accumulate here until the game collects them.
type Env struct {
	World      *World
	Audio      AudioSink
	Rng        *rand.Rand
	Shockwaves []*Shockwave
}

func (e *Env) audio() AudioSink {
	if e == nil || e.Audio == nil {
		return NopAudio{}
	}
	return e.Audio
}

func (e *Env) spawnShockwave(x, y float64) {
	if e == nil {
		return
	}
	e.Shockwaves = append(e.Shockwaves, NewShockwave(x, y))
}

// drainShockwaves returns and clears the spawned shockwaves.
func (e *Env) drainShockwaves() []*Shockwave {
	out := e.Shockwaves
	e.Shockwaves = nil
	return out
}
