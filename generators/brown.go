package generators

import "github.com/quietloop/noisegen"

type brownGenerator struct {
	rnd   *noisegen.Rand
	value float64
}

// BrownNoise creates a streamer which produces infinite brown (red) noise by
// integrating white samples. The integrator is leaky: every step damps the
// accumulator by 0.98 and clamps it, so the amplitude cannot drift without
// bound over long runs the way a naive cumulative sum would.
func BrownNoise(rnd *noisegen.Rand) noisegen.Streamer {
	return &brownGenerator{rnd: rnd}
}

func (g *brownGenerator) Stream(samples []float64) (n int, ok bool) {
	for i := range samples {
		g.value += g.rnd.Uniform() * 0.02
		g.value = clamp(g.value, -1, 1)
		g.value *= 0.98
		samples[i] = clamp(g.value*brownGain, -1, 1)
	}
	return len(samples), true
}

func (*brownGenerator) Err() error {
	return nil
}
