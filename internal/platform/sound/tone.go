package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// waveType selects the oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
)

// tone is a fixed-length oscillator streamer. Frequency can sweep linearly
// from freq to endFreq over the tone's duration, which covers every cue the
// games emit without shipping samples.
type tone struct {
	freq     float64
	endFreq  float64
	phase    float64
	wave     waveType
	volume   float64
	rate     beep.SampleRate
	duration int
	position int
}

// newTone builds a streamer for a single cue blip.
func newTone(rate beep.SampleRate, wave waveType, freq, endFreq float64, d time.Duration, volume float64) beep.Streamer {
	return &tone{
		freq:     freq,
		endFreq:  endFreq,
		wave:     wave,
		volume:   volume,
		rate:     rate,
		duration: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		progress := float64(t.position) / float64(t.duration)
		freq := t.freq + (t.endFreq-t.freq)*progress

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (t.phase - 0.5)
		}

		// Short attack/release envelope to avoid clicks.
		env := 1.0
		if progress < 0.05 {
			env = progress / 0.05
		} else if progress > 0.8 {
			env = (1.0 - progress) / 0.2
		}

		val *= t.volume * env
		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
