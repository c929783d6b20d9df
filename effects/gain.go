// Package effects provides streamers that transform other streamers.
package effects

import "github.com/quietloop/noisegen"

// Gain amplifies the wrapped Streamer by a linear per-sample factor. The
// engine's profile volume is linear by contract, which is why this is a plain
// multiply and not a perceptual (exponential) control.
//
// Gain does not clip; sinks clamp to the valid sample range when encoding.
type Gain struct {
	Streamer noisegen.Streamer
	Gain     float64
}

func (g *Gain) Stream(samples []float64) (n int, ok bool) {
	n, ok = g.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i] *= g.Gain
	}
	return n, ok
}

func (g *Gain) Err() error {
	return g.Streamer.Err()
}
