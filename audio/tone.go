// Package audio synthesizes the short feedback sounds of the entry screen.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator with a linear fade-out.
type tone struct {
	freq     float64
	rate     beep.SampleRate
	length   int
	position int
	phase    float64
}

// Tone returns a streamer that plays freq for d and then ends.
func Tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		rate:   rate,
		length: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}
		envelope := 1 - float64(t.position)/float64(t.length)
		val := math.Sin(2*math.Pi*t.phase) * envelope
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
