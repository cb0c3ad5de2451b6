package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// oscillator generates a raw wave whose frequency glides exponentially from
// freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a fixed-pitch wave of the given length.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep returns a wave that glides from one frequency to another.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) current() float64 {
	if o.freq == o.endFreq || o.freq <= 0 || o.endFreq <= 0 || o.duration <= 1 {
		return o.freq
	}
	t := float64(o.position) / float64(o.duration)
	return o.freq * math.Pow(o.endFreq/o.freq, t)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.current() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Point is one corner of a linear gain envelope.
type Point struct {
	At    time.Duration
	Level float64
}

// envelope scales a stream by a piecewise-linear gain curve and ends the
// stream at the last point.
type envelope struct {
	streamer beep.Streamer
	at       []int
	levels   []float64
	position int
}

// NewEnvelope shapes s with the given points, which must be in time order.
func NewEnvelope(s beep.Streamer, rate beep.SampleRate, points ...Point) beep.Streamer {
	e := &envelope{streamer: s}
	for _, p := range points {
		e.at = append(e.at, rate.N(p.At))
		e.levels = append(e.levels, p.Level)
	}
	return e
}

func (e *envelope) level() float64 {
	if len(e.at) == 0 {
		return 1
	}
	if e.position <= e.at[0] {
		return e.levels[0]
	}
	for i := 1; i < len(e.at); i++ {
		if e.position <= e.at[i] {
			span := e.at[i] - e.at[i-1]
			if span <= 0 {
				return e.levels[i]
			}
			t := float64(e.position-e.at[i-1]) / float64(span)
			return e.levels[i-1] + (e.levels[i]-e.levels[i-1])*t
		}
	}
	return e.levels[len(e.levels)-1]
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if len(e.at) > 0 {
		left := e.at[len(e.at)-1] - e.position
		if left <= 0 {
			return 0, false
		}
		if len(samples) > left {
			samples = samples[:left]
		}
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.level()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay scales a stream by a gain that falls exponentially from start to end
// over total samples, like an exponential ramp on a gain node.
type decay struct {
	streamer   beep.Streamer
	start, end float64
	total      int
	position   int
}

// NewDecay applies an exponential fade from start to end over d.
func NewDecay(s beep.Streamer, rate beep.SampleRate, d time.Duration, start, end float64) beep.Streamer {
	return &decay{streamer: s, start: start, end: end, total: rate.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := d.start
		if d.total > 0 && d.start > 0 && d.end > 0 {
			t := math.Min(float64(d.position)/float64(d.total), 1)
			vol = d.start * math.Pow(d.end/d.start, t)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s in a linear-gain volume effect.
// math.Log2(0) is -Inf, so zero is treated as silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, vol)
	return v
}

func setGain(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(vol), false
}
