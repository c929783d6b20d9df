package generators

import "github.com/quietloop/noisegen"

type whiteGenerator struct {
	rnd *noisegen.Rand
}

// WhiteNoise creates a streamer which produces infinite white noise: i.i.d.
// uniform samples straight from the random source, no spectral shaping.
func WhiteNoise(rnd *noisegen.Rand) noisegen.Streamer {
	return &whiteGenerator{rnd}
}

func (g *whiteGenerator) Stream(samples []float64) (n int, ok bool) {
	for i := range samples {
		samples[i] = g.rnd.Uniform() * whiteGain
	}
	return len(samples), true
}

func (*whiteGenerator) Err() error {
	return nil
}
