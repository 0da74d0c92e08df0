package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Tone is a finite sine voice whose pitch follows a linear sweep from
// From to To and whose amplitude decays exponentially.
type Tone struct {
	sr       beep.SampleRate
	from, to float64
	decay    float64 // per second
	gain     float64
	phase    float64
	pos      int
	total    int
}

// NewTone creates a tone lasting d.
func NewTone(sr beep.SampleRate, from, to float64, d time.Duration, decay, gain float64) *Tone {
	return &Tone{sr: sr, from: from, to: to, decay: decay, gain: gain, total: sr.N(d)}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		t := float64(g.pos) / float64(g.sr)
		freq := g.from + (g.to-g.from)*progress

		sample := g.gain * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *Tone) Err() error {
	return nil
}

// Buzz is a finite harsh tone built from the first three harmonics, with a
// short fade-in.
type Buzz struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewBuzz creates a buzz at freq lasting d.
func NewBuzz(sr beep.SampleRate, freq float64, d time.Duration) *Buzz {
	return &Buzz{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *Buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= math.Min(t/0.02, 1.0) * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Buzz) Err() error {
	return nil
}

// chime is two rising notes; treasure rings a fifth higher than a pearl.
func chime(sr beep.SampleRate, base float64) beep.Streamer {
	return beep.Seq(
		NewTone(sr, base, base, 60*time.Millisecond, 10, 0.4),
		NewTone(sr, base*1.5, base*1.5, 120*time.Millisecond, 12, 0.4),
	)
}

func damageBuzz(sr beep.SampleRate) beep.Streamer {
	return NewBuzz(sr, 110, 200*time.Millisecond)
}

// gameOverTone falls two octaves.
func gameOverTone(sr beep.SampleRate) beep.Streamer {
	return NewTone(sr, 440, 110, 900*time.Millisecond, 1.5, 0.5)
}

// newVolume scales s by vol in [0, 1]. Zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
