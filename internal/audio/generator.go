package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// SweepGenerator plays a sine tone gliding from one frequency to another
// with a short attack and an exponential release. It ends after its duration.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting samples frames.
func NewSweepGenerator(sr beep.SampleRate, from, to, volume float64, samples int) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, volume: volume, samples: samples}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		sample := g.volume * attack * math.Exp(-progress*4) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ThudGenerator is a decaying noise burst over a low rumble, used for hits.
type ThudGenerator struct {
	sr      beep.SampleRate
	rng     *rand.Rand
	samples int
	pos     int
}

// NewThudGenerator creates a thud lasting samples frames.
func NewThudGenerator(sr beep.SampleRate, samples int, seed int64) *ThudGenerator {
	return &ThudGenerator{sr: sr, samples: samples, rng: rand.New(rand.NewSource(seed))}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)
		noise := g.rng.Float64()*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*70*t)
		sample := 0.3 * envelope * (0.5*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
