package generators

import "github.com/quietloop/noisegen"

type pinkGenerator struct {
	rnd   *noisegen.Rand
	state [7]float64
}

// PinkNoise creates a streamer which produces infinite pink noise: white
// samples passed through Paul Kellet's 7-stage shaping filter, an
// approximation of a -3 dB/octave tilt. All stage coefficients are below one,
// so the filter stays stable over indefinite runtime.
func PinkNoise(rnd *noisegen.Rand) noisegen.Streamer {
	return &pinkGenerator{rnd: rnd}
}

func (g *pinkGenerator) Stream(samples []float64) (n int, ok bool) {
	for i := range samples {
		white := g.rnd.Uniform()
		g.state[0] = 0.99886*g.state[0] + white*0.0555179
		g.state[1] = 0.99332*g.state[1] + white*0.0750759
		g.state[2] = 0.96900*g.state[2] + white*0.1538520
		g.state[3] = 0.86650*g.state[3] + white*0.3104856
		g.state[4] = 0.55000*g.state[4] + white*0.5329522
		g.state[5] = -0.7616*g.state[5] - white*0.0168980
		pink := g.state[0] + g.state[1] + g.state[2] + g.state[3] +
			g.state[4] + g.state[5] + g.state[6] + white*0.5362
		g.state[6] = white * 0.115926
		samples[i] = clamp(pink*0.11*pinkGain, -1, 1)
	}
	return len(samples), true
}

func (*pinkGenerator) Err() error {
	return nil
}
