package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Gain every cue decays towards before it stops.
const tailGain = 0.01

// sweepCue is a pitch glide under an exponential fade.
func sweepCue(rate beep.SampleRate, from, to float64, d time.Duration, wave Wave, vol float64) beep.Streamer {
	return NewDecay(NewSweep(from, to, d, wave, rate), rate, d, vol, tailGain)
}

func attackSound(rate beep.SampleRate) beep.Streamer {
	return sweepCue(rate, 400, 100, 100*time.Millisecond, WaveSaw, 0.3)
}

func hitSound(rate beep.SampleRate) beep.Streamer {
	return sweepCue(rate, 150, 50, 150*time.Millisecond, WaveSquare, 0.5)
}

func damageSound(rate beep.SampleRate) beep.Streamer {
	return sweepCue(rate, 200, 80, 200*time.Millisecond, WaveSaw, 0.4)
}

func enemyDeathSound(rate beep.SampleRate) beep.Streamer {
	return sweepCue(rate, 300, 30, 300*time.Millisecond, WaveSquare, 0.3)
}

// stepSound is a short low triangle blip with a little pitch variation.
func stepSound(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	freq := 100 + rng.Float64()*50
	return sweepCue(rate, freq, freq, 50*time.Millisecond, WaveTriangle, 0.3)
}

// Rising C major arpeggio.
var callNotes = [...]float64{523.25, 659.25, 783.99}

const (
	callNoteLength = 100 * time.Millisecond
	callNoteGap    = 50 * time.Millisecond
)

func followerCallSound(rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(callNotes))
	for i, freq := range callNotes {
		note := sweepCue(rate, freq, freq, callNoteLength, WaveSine, 0.3)
		voices = append(voices, beep.Seq(beep.Silence(rate.N(time.Duration(i)*callNoteGap)), note))
	}
	return beep.Mix(voices...)
}
