package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Pixmin/internal/sim"
)

// Settings are the mixer levels and device options.
type Settings struct {
	SampleRate   int
	MasterVolume float64
	MusicVolume  float64
	SFXVolume    float64
	Music        bool
}

// DefaultSettings match the classic mix: quiet music under louder effects.
func DefaultSettings() Settings {
	return Settings{
		SampleRate:   44100,
		MasterVolume: 0.3,
		MusicVolume:  0.15,
		SFXVolume:    0.4,
		Music:        true,
	}
}

// SoundManager synthesises every game sound and plays it through the
// speaker. All cue methods are no-ops until Initialize succeeds.
type SoundManager struct {
	mu       sync.Mutex
	settings Settings
	rate     beep.SampleRate
	rng      *rand.Rand

	master    *effects.Volume
	sfx       *beep.Mixer
	music     *beep.Mixer
	musicCtrl *beep.Ctrl

	initialized bool
	muted       bool
	unfocused   bool
}

var _ sim.AudioSink = (*SoundManager)(nil)

// NewSoundManager creates a manager; the device is opened by Initialize.
func NewSoundManager(s Settings) *SoundManager {
	if s.SampleRate <= 0 {
		s.SampleRate = DefaultSettings().SampleRate
	}
	sm := &SoundManager{
		settings: s,
		rate:     beep.SampleRate(s.SampleRate),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sfx:      &beep.Mixer{},
		music:    &beep.Mixer{},
	}
	bus := &beep.Mixer{}
	bus.Add(newVolume(sm.music, s.MusicVolume), newVolume(sm.sfx, s.SFXVolume))
	sm.master = newVolume(bus, s.MasterVolume)
	return sm
}

// Initialize opens the speaker and starts the master bus.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.musicCtrl != nil {
		sm.musicCtrl.Paused = true
	}
	sm.music.Clear()
	sm.sfx.Clear()
	speaker.Unlock()

	sm.musicCtrl = nil
	sm.initialized = false
}

// Initialized reports whether the device is open.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips the user mute and returns the new state.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	sm.applyMaster()
	return sm.muted
}

// SetMuted sets the user mute.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = m
	sm.applyMaster()
}

// SetFocused silences output while the window is in the background.
func (sm *SoundManager) SetFocused(focused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.unfocused == !focused {
		return
	}
	sm.unfocused = !focused
	sm.applyMaster()
}

// Muted reports whether output is currently silenced for any reason.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted || sm.unfocused
}

// UserMuted reports only the user toggle.
func (sm *SoundManager) UserMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// applyMaster must be called with sm.mu held.
func (sm *SoundManager) applyMaster() {
	vol := sm.settings.MasterVolume
	if sm.muted || sm.unfocused {
		vol = 0
	}
	if !sm.initialized {
		setGain(sm.master, vol)
		return
	}
	speaker.Lock()
	setGain(sm.master, vol)
	speaker.Unlock()
}

// StartMusic loops the theme until StopMusic. Restarting while playing is a no-op.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.settings.Music {
		return
	}
	if sm.musicCtrl != nil && !sm.musicCtrl.Paused {
		return
	}

	rate := sm.rate
	ctrl := &beep.Ctrl{Streamer: beep.Iterate(func() beep.Streamer { return musicLoop(rate) })}
	speaker.Lock()
	sm.musicCtrl = ctrl
	sm.music.Add(ctrl)
	speaker.Unlock()
}

// StopMusic pauses the theme.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.musicCtrl == nil {
		return
	}
	speaker.Lock()
	sm.musicCtrl.Paused = true
	speaker.Unlock()
}

// MusicPlaying reports whether the theme is running.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicCtrl != nil && !sm.musicCtrl.Paused
}

func (sm *SoundManager) play(build func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := build(sm.rate)
	speaker.Lock()
	sm.sfx.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) PlayAttack()     { sm.play(attackSound) }
func (sm *SoundManager) PlayHit()        { sm.play(hitSound) }
func (sm *SoundManager) PlayDamage()     { sm.play(damageSound) }
func (sm *SoundManager) PlayEnemyDeath() { sm.play(enemyDeathSound) }

func (sm *SoundManager) PlayStep() {
	sm.play(func(rate beep.SampleRate) beep.Streamer { return stepSound(rate, sm.rng) })
}

func (sm *SoundManager) PlayFollowerCall() { sm.play(followerCallSound) }
