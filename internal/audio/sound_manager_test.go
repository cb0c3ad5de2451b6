package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoundManager_CuesSafeWithoutDevice(t *testing.T) {
	sm := NewSoundManager(DefaultSettings())
	assert.NotPanics(t, func() {
		sm.PlayAttack()
		sm.PlayHit()
		sm.PlayDamage()
		sm.PlayEnemyDeath()
		sm.PlayStep()
		sm.PlayFollowerCall()
		sm.StartMusic()
		sm.StopMusic()
		sm.Cleanup()
	})
	assert.False(t, sm.Initialized())
	assert.False(t, sm.MusicPlaying())
	assert.Equal(t, 0, sm.sfx.Len())
}

func TestSoundManager_MuteAndFocus(t *testing.T) {
	sm := NewSoundManager(DefaultSettings())
	assert.False(t, sm.Muted())
	assert.False(t, sm.master.Silent)

	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.Muted())
	assert.True(t, sm.master.Silent)

	assert.False(t, sm.ToggleMute())
	assert.False(t, sm.master.Silent)

	sm.SetFocused(false)
	assert.True(t, sm.Muted())
	assert.False(t, sm.UserMuted())
	assert.True(t, sm.master.Silent)

	sm.SetFocused(true)
	assert.False(t, sm.Muted())
	assert.False(t, sm.master.Silent)

	sm.SetMuted(true)
	sm.SetFocused(false)
	sm.SetFocused(true)
	assert.True(t, sm.Muted(), "regaining focus keeps the user mute")
}

func TestSoundManager_ZeroSampleRateDefaults(t *testing.T) {
	sm := NewSoundManager(Settings{MasterVolume: 0.3})
	assert.Equal(t, DefaultSettings().SampleRate, int(sm.rate))
}
