// Package audio synthesizes short sound cues for game events with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally sliding in pitch.
type oscillator struct {
	freq     float64
	slide    float64 // Hz added per second
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	noise    uint32
}

// NewOscillator creates a wave generator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newSlide(freq, 0, duration, wave, rate)
}

// newSlide creates an oscillator whose pitch moves by slide Hz per second.
func newSlide(freq, slide float64, duration time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   freq,
		slide:  slide,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		noise:  0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift keeps noise reproducible
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := max(o.freq+o.slide*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue identifies a sound effect.
type Cue int

const (
	CueShoot Cue = iota
	CueEnemyShoot
	CueExplosion
	CuePlayerHit
	CueWaveCleared
	CueGameOver
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueEnemyShoot:
		return "enemy_shoot"
	case CueExplosion:
		return "explosion"
	case CuePlayerHit:
		return "player_hit"
	case CueWaveCleared:
		return "wave_cleared"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// NewCue builds a finite streamer for the cue at the given master volume.
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueShoot:
		d := 80 * time.Millisecond
		s = NewEnvelope(newSlide(1200, -6000, d, WaveSquare, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate)
		s = newVolume(s, 0.25)

	case CueEnemyShoot:
		d := 90 * time.Millisecond
		s = NewEnvelope(newSlide(400, -1500, d, WaveSaw, rate), d, 2*time.Millisecond, 50*time.Millisecond, rate)
		s = newVolume(s, 0.2)

	case CueExplosion:
		d := 200 * time.Millisecond
		noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 180*time.Millisecond, rate)
		thump := NewEnvelope(newSlide(120, -300, d, WaveSine, rate), d, time.Millisecond, 150*time.Millisecond, rate)
		s = beep.Mix(newVolume(noise, 0.35), newVolume(thump, 0.5))

	case CuePlayerHit:
		d := 350 * time.Millisecond
		s = NewEnvelope(newSlide(300, -600, d, WaveSquare, rate), d, 5*time.Millisecond, 200*time.Millisecond, rate)
		s = newVolume(s, 0.3)

	case CueWaveCleared:
		notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
		d := 90 * time.Millisecond
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			parts = append(parts, NewEnvelope(NewOscillator(f, d, WaveSine, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate))
		}
		s = newVolume(beep.Seq(parts...), 0.3)

	case CueGameOver:
		d := 900 * time.Millisecond
		s = NewEnvelope(newSlide(440, -300, d, WaveSaw, rate), d, 10*time.Millisecond, 500*time.Millisecond, rate)
		s = newVolume(s, 0.3)

	default:
		return beep.Silence(0)
	}

	return newVolume(s, volume)
}
