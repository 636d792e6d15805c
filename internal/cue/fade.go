package cue

import "github.com/faiface/beep"

// fade wraps a finite beep.Streamer of known length and ramps the gain up at
// the start and down at the end so tones don't click.
type fade struct {
	Source beep.Streamer
	total  int
	ramp   int
	pos    int
}

func newFade(src beep.Streamer, total, ramp int) *fade {
	if ramp > total/2 {
		ramp = total / 2
	}
	return &fade{Source: src, total: total, ramp: ramp}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Source.Stream(samples)
	for i := 0; i < n; i++ {
		g := f.gain(f.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.Source.Err() }

func (f *fade) gain(pos int) float64 {
	if f.ramp <= 0 {
		return 1
	}
	g := 1.0
	if pos < f.ramp {
		g = float64(pos) / float64(f.ramp)
	}
	if tail := f.total - 1 - pos; tail < f.ramp {
		g = min(g, float64(max(tail, 0))/float64(f.ramp))
	}
	return g
}
