package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const musicBPM = 140

var noteFreq = map[string]float64{
	"C4": 261.63, "D4": 293.66, "E4": 329.63, "F4": 349.23, "G4": 392.00,
	"A4": 440.00, "B4": 493.88, "C5": 523.25, "D5": 587.33, "E5": 659.25,
	"F5": 698.46, "G5": 783.99, "A5": 880.00,
	"C3": 130.81, "D3": 146.83, "E3": 164.81, "F3": 174.61, "G3": 196.00,
	"A3": 220.00, "B3": 246.94,
	"C2": 65.41, "D2": 73.42, "E2": 82.41, "F2": 87.31, "G2": 98.00,
	"A2": 110.00, "B2": 123.47,
}

// note is a pitch held for a number of beats.
type note struct {
	name  string
	beats float64
}

const (
	eighth  = 0.5
	quarter = 1.0
	half    = 2.0
)

var melody = []note{
	{"G4", eighth}, {"A4", eighth}, {"C5", quarter},
	{"E5", eighth}, {"D5", eighth}, {"C5", quarter},
	{"G4", eighth}, {"A4", eighth}, {"C5", eighth}, {"D5", eighth},
	{"E5", half},

	{"E5", eighth}, {"D5", eighth}, {"C5", quarter},
	{"A4", eighth}, {"G4", eighth}, {"A4", quarter},
	{"G4", eighth}, {"E4", eighth}, {"G4", quarter},
	{"A4", half},

	{"C5", eighth}, {"D5", eighth}, {"E5", quarter},
	{"G5", eighth}, {"E5", eighth}, {"D5", quarter},
	{"C5", eighth}, {"D5", eighth}, {"E5", eighth}, {"G5", eighth},
	{"A5", quarter}, {"G5", quarter},

	{"E5", eighth}, {"D5", eighth}, {"C5", quarter},
	{"A4", eighth}, {"C5", eighth}, {"G4", quarter},
	{"E4", eighth}, {"G4", eighth}, {"A4", eighth}, {"G4", eighth},
	{"C5", half},
}

var harmony = []note{
	{"E4", quarter}, {"E4", quarter}, {"G4", quarter}, {"G4", quarter},
	{"E4", quarter}, {"G4", quarter}, {"A4", half},
	{"G4", quarter}, {"E4", quarter}, {"D4", quarter}, {"E4", quarter},
	{"D4", quarter}, {"C4", quarter}, {"D4", half},
	{"E4", quarter}, {"G4", quarter}, {"A4", quarter}, {"G4", quarter},
	{"E4", quarter}, {"G4", quarter}, {"C5", quarter}, {"B4", quarter},
	{"G4", quarter}, {"E4", quarter}, {"D4", quarter}, {"E4", quarter},
	{"C4", quarter}, {"D4", quarter}, {"E4", half},
}

var bass = []note{
	{"C3", quarter}, {"C3", quarter}, {"G2", quarter}, {"G2", quarter},
	{"A2", quarter}, {"A2", quarter}, {"E2", quarter}, {"G2", quarter},
	{"C3", quarter}, {"E3", quarter}, {"G2", quarter}, {"C3", quarter},
	{"F2", quarter}, {"G2", quarter}, {"A2", half},
	{"C3", quarter}, {"C3", quarter}, {"E3", quarter}, {"G3", quarter},
	{"A2", quarter}, {"C3", quarter}, {"E3", quarter}, {"D3", quarter},
	{"C3", quarter}, {"G2", quarter}, {"A2", quarter}, {"B2", quarter},
	{"C3", quarter}, {"G2", quarter}, {"C3", half},
}

// drumHit is one noise burst within a two-beat bar.
type drumHit struct {
	offset float64 // beats from bar start
	length time.Duration
	vol    float64
}

var drumBar = []drumHit{
	{0, 80 * time.Millisecond, 0.08},   // kick
	{0.5, 30 * time.Millisecond, 0.04}, // hat
	{1, 30 * time.Millisecond, 0.04},
	{1, 100 * time.Millisecond, 0.06}, // snare
	{1.5, 30 * time.Millisecond, 0.04},
	{2, 30 * time.Millisecond, 0.04},
}

const drumBarBeats = 2

func beatDuration(beats float64) time.Duration {
	return time.Duration(beats * 60 / musicBPM * float64(time.Second))
}

func trackBeats(track []note) float64 {
	total := 0.0
	for _, n := range track {
		total += n.beats
	}
	return total
}

// voice renders one part of the score. Each note sounds for gate of its
// length and rests for the remainder.
type voice struct {
	track []note
	gate  float64
	play  func(freq float64, d time.Duration) beep.Streamer
}

func (v voice) render(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(v.track)*2)
	for _, n := range v.track {
		full := rate.N(beatDuration(n.beats))
		sound := rate.N(beatDuration(n.beats * v.gate))
		freq, ok := noteFreq[n.name]
		if !ok {
			parts = append(parts, beep.Silence(full))
			continue
		}
		parts = append(parts,
			beep.Take(sound, v.play(freq, beatDuration(n.beats*v.gate))),
			beep.Silence(full-sound))
	}
	return beep.Seq(parts...)
}

// chipEnvelope is a quick attack that settles to a sustain and fades out by
// the end of the note.
func chipEnvelope(s beep.Streamer, rate beep.SampleRate, d time.Duration, vol, attack, settle, hold, holdAt float64) beep.Streamer {
	sec := func(x float64) time.Duration { return time.Duration(x * float64(time.Second)) }
	return NewEnvelope(s, rate,
		Point{0, 0},
		Point{sec(attack), vol},
		Point{sec(0.02), vol * settle},
		Point{time.Duration(float64(d) * holdAt), vol * hold},
		Point{d, 0},
	)
}

// pulseNote is two slightly detuned squares for a thicker lead.
func pulseNote(rate beep.SampleRate, vol float64) func(float64, time.Duration) beep.Streamer {
	return func(freq float64, d time.Duration) beep.Streamer {
		osc := beep.Mix(
			NewOscillator(freq, d, WaveSquare, rate),
			NewOscillator(freq*1.002, d, WaveSquare, rate),
		)
		return chipEnvelope(osc, rate, d, vol, 0.008, 0.8, 0.6, 0.7)
	}
}

func chipNote(rate beep.SampleRate, wave Wave, vol float64) func(float64, time.Duration) beep.Streamer {
	return func(freq float64, d time.Duration) beep.Streamer {
		return chipEnvelope(NewOscillator(freq, d, wave, rate), rate, d, vol, 0.01, 0.7, 0.6, 0.8)
	}
}

// LoopBeats is the length of one pass of the theme.
func LoopBeats() float64 { return trackBeats(melody) }

// musicLoop renders one pass of the theme: lead, harmony, bass and drums.
func musicLoop(rate beep.SampleRate) beep.Streamer {
	loopBeats := LoopBeats()
	length := rate.N(beatDuration(loopBeats))

	parts := []beep.Streamer{
		voice{track: melody, gate: 0.9, play: pulseNote(rate, 0.2)}.render(rate),
		voice{track: harmony, gate: 0.85, play: chipNote(rate, WaveSquare, 0.1)}.render(rate),
		voice{track: bass, gate: 0.8, play: chipNote(rate, WaveTriangle, 0.25)}.render(rate),
	}
	for bar := 0.0; bar < loopBeats; bar += drumBarBeats {
		for _, h := range drumBar {
			hit := NewDecay(NewOscillator(0, h.length, WaveNoise, rate), rate, h.length, h.vol, tailGain)
			parts = append(parts, beep.Seq(beep.Silence(rate.N(beatDuration(bar+h.offset))), hit))
		}
	}
	parts = append(parts, beep.Silence(length))
	return beep.Take(length, beep.Mix(parts...))
}
