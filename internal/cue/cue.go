package cue

import (
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/swap-tracking/internal/engine"
)

const (
	SampleRate = beep.SampleRate(44100)
	fadeTime   = 10 * time.Millisecond
)

// Tone is a plain sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// DefaultTones: a rising pair of beeps frames each trial, a long low one
// ends the session.
var DefaultTones = map[engine.Cue]Tone{
	engine.CueTrialStart: {Freq: 660, Duration: 120 * time.Millisecond},
	engine.CueGuess:      {Freq: 880, Duration: 200 * time.Millisecond},
	engine.CueFinished:   {Freq: 440, Duration: 400 * time.Millisecond},
}

// Player renders cues as tones. Volume follows effects.Volume: 0 is unity,
// each -1 halves the amplitude.
type Player struct {
	sr     beep.SampleRate
	tones  map[engine.Cue]Tone
	volume float64
	live   bool
}

func NewPlayer(sr beep.SampleRate, volume float64) *Player {
	return &Player{sr: sr, tones: DefaultTones, volume: volume}
}

// NewSpeakerPlayer initializes the audio device and returns a player bound to it.
func NewSpeakerPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	p := NewPlayer(SampleRate, volume)
	p.live = true
	return p, nil
}

// Play queues the cue on the speaker. Without an initialized speaker it is
// a no-op so sessions run fine on machines without audio.
func (p *Player) Play(c engine.Cue) {
	s := p.Streamer(c)
	if s == nil || !p.live {
		return
	}
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		log.Printf("[Cue] played %s", c)
	})))
}

// Streamer builds the finite stream for a cue, or nil if the cue has no tone.
func (p *Player) Streamer(c engine.Cue) beep.Streamer {
	t, ok := p.tones[c]
	if !ok || t.Duration <= 0 {
		return nil
	}
	n := p.sr.N(t.Duration)
	shaped := newFade(beep.Take(n, sine(p.sr, t.Freq)), n, p.sr.N(fadeTime))
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: p.volume}
}

func sine(sr beep.SampleRate, freq float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(phase)
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
		return len(samples), true
	})
}
