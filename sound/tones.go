package sound

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/milk9111/jumpman/common"
	"github.com/milk9111/jumpman/game"
)

// SampleRate matches the ebiten audio context so rendered PCM plays unchanged.
const SampleRate = beep.SampleRate(44100)

var ErrUnknownSound = errors.New("sound: unknown sound")

// Names lists every sound the bank synthesizes.
var Names = []string{game.SoundJump, game.SoundHit, game.SoundWin, game.MusicBG}

// New returns a fresh, finite streamer for name.
func New(name string, sr beep.SampleRate) (beep.Streamer, error) {
	switch name {
	case game.SoundJump:
		return newJump(sr), nil
	case game.SoundHit:
		return newHit(sr), nil
	case game.SoundWin:
		return newWin(sr)
	case game.MusicBG:
		return newMusic(sr)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
}

// sweep is a square wave gliding from one frequency to another over its
// duration, with a linear fade out.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	sr       beep.SampleRate
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{from: from, to: to, total: sr.N(d), sr: sr}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := common.Lerp(s.from, s.to, t)

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		val *= 1 - t

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fade applies a short attack and release to a finite streamer so notes do
// not click.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	edge     int
}

func newFade(s beep.Streamer, sr beep.SampleRate, d, edge time.Duration) *fade {
	return &fade{streamer: beep.Take(sr.N(d), s), total: sr.N(d), edge: sr.N(edge)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.edge > 0 {
			if f.pos < f.edge {
				vol = float64(f.pos) / float64(f.edge)
			}
			if remaining := f.total - f.pos; remaining < f.edge {
				vol = math.Max(0, float64(remaining)/float64(f.edge))
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq float64
	dur  time.Duration
}

// melody plays notes back to back. A zero frequency is a rest.
func melody(sr beep.SampleRate, square bool, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, generators.Silence(sr.N(n.dur)))
			continue
		}
		var (
			osc beep.Streamer
			err error
		)
		if square {
			osc, err = generators.SquareTone(sr, n.freq)
		} else {
			osc, err = generators.SineTone(sr, n.freq)
		}
		if err != nil {
			return nil, fmt.Errorf("sound: tone %v: %w", n.freq, err)
		}
		parts = append(parts, newFade(osc, sr, n.dur, 5*time.Millisecond))
	}
	return beep.Seq(parts...), nil
}

func newJump(sr beep.SampleRate) beep.Streamer {
	return volume(newSweep(sr, 280, 720, 160*time.Millisecond), 0.25)
}

func newHit(sr beep.SampleRate) beep.Streamer {
	return volume(newSweep(sr, 320, 60, 450*time.Millisecond), 0.35)
}

func newWin(sr beep.SampleRate) (beep.Streamer, error) {
	const step = 110 * time.Millisecond
	s, err := melody(sr, true, []note{
		{523.25, step}, {659.25, step}, {783.99, step},
		{1046.50, 3 * step}, {0, step}, {783.99, step}, {1046.50, 4 * step},
	})
	if err != nil {
		return nil, err
	}
	return volume(s, 0.2), nil
}

// newMusic is one pass of the background loop: a lead over a bass line.
func newMusic(sr beep.SampleRate) (beep.Streamer, error) {
	const beat = 200 * time.Millisecond
	lead, err := melody(sr, false, []note{
		{659.25, beat}, {783.99, beat}, {880.00, beat}, {783.99, beat},
		{659.25, beat}, {587.33, beat}, {523.25, 2 * beat},
		{587.33, beat}, {659.25, beat}, {783.99, beat}, {659.25, beat},
		{587.33, beat}, {523.25, beat}, {493.88, 2 * beat},
	})
	if err != nil {
		return nil, err
	}
	bass, err := melody(sr, true, []note{
		{130.81, 4 * beat}, {110.00, 4 * beat},
		{146.83, 4 * beat}, {98.00, 4 * beat},
	})
	if err != nil {
		return nil, err
	}
	return beep.Mix(volume(lead, 0.18), volume(bass, 0.06)), nil
}
