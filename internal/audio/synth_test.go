package audio

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func peak(samples []float64) float64 {
	m := 0.0
	for _, v := range samples {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func signChanges(samples []float64) int {
	n := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			n++
		}
	}
	return n
}

func TestOscillator_LengthAndRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise} {
		out := drain(t, NewOscillator(440, 50*time.Millisecond, w, testRate))
		assert.Len(t, out, testRate.N(50*time.Millisecond), "wave %d", w)
		assert.LessOrEqual(t, peak(out), 1.0, "wave %d", w)
	}
}

func TestSweep_FallingPitchSlowsDown(t *testing.T) {
	out := drain(t, NewSweep(800, 100, 200*time.Millisecond, WaveSquare, testRate))
	quarter := len(out) / 4
	first := signChanges(out[:quarter])
	last := signChanges(out[len(out)-quarter:])
	assert.Greater(t, first, last*2)
}

func TestEnvelope_ShapeAndEnd(t *testing.T) {
	src := NewOscillator(440, time.Second, WaveSquare, testRate)
	out := drain(t, NewEnvelope(src, testRate,
		Point{0, 0},
		Point{10 * time.Millisecond, 1},
		Point{100 * time.Millisecond, 0},
	))
	require.Len(t, out, testRate.N(100*time.Millisecond))
	assert.InDelta(t, 0, out[0], 1e-9)
	assert.Less(t, math.Abs(out[len(out)-1]), 0.01)
	assert.InDelta(t, 1, peak(out), 0.01)
}

func TestDecay_FallsToTail(t *testing.T) {
	d := 100 * time.Millisecond
	out := drain(t, NewDecay(NewOscillator(200, d, WaveSquare, testRate), testRate, d, 0.5, 0.01))
	assert.InDelta(t, 0.5, math.Abs(out[0]), 1e-9)
	assert.Less(t, math.Abs(out[len(out)-1]), 0.011)
}

func TestNewVolume_ZeroIsSilent(t *testing.T) {
	v := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate), 0)
	assert.True(t, v.Silent)
	assert.Equal(t, 0.0, peak(drain(t, v)))

	v = newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate), 0.5)
	assert.False(t, v.Silent)
	assert.InDelta(t, 0.5, peak(drain(t, v)), 1e-9)
}

func TestCues_Lengths(t *testing.T) {
	cases := []struct {
		name  string
		sound beep.Streamer
		want  time.Duration
	}{
		{"attack", attackSound(testRate), 100 * time.Millisecond},
		{"hit", hitSound(testRate), 150 * time.Millisecond},
		{"damage", damageSound(testRate), 200 * time.Millisecond},
		{"enemy death", enemyDeathSound(testRate), 300 * time.Millisecond},
		{"step", stepSound(testRate, rand.New(rand.NewSource(1))), 50 * time.Millisecond},
		{"follower call", followerCallSound(testRate), 200 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := drain(t, tc.sound)
			assert.Len(t, out, testRate.N(tc.want))
			assert.Greater(t, peak(out), 0.0)
		})
	}
}

func TestMusic_LoopLength(t *testing.T) {
	assert.Equal(t, 32.0, LoopBeats())
	assert.Equal(t, 32.0, trackBeats(harmony))
	assert.Equal(t, 32.0, trackBeats(bass))

	out := drain(t, musicLoop(testRate))
	assert.Len(t, out, testRate.N(beatDuration(LoopBeats())))
	assert.Greater(t, peak(out), 0.05)
}

func TestMusic_EveryNoteIsKnown(t *testing.T) {
	for _, track := range [][]note{melody, harmony, bass} {
		for _, n := range track {
			_, ok := noteFreq[n.name]
			assert.True(t, ok, "unknown note %s", n.name)
		}
	}
}
