package generators

import "github.com/quietloop/noisegen"

// ToneParams describes one pulsed tone: the oscillator bank settings plus the
// envelope and pulse timing. All durations are in milliseconds.
type ToneParams struct {
	Waveform        noisegen.Waveform
	BaseFrequencyHz float64
	HarmonicRatio   float64
	PulseDurationMs int
	PauseDurationMs int
	AttackMs        int
	DecayMs         int
}

type pulseGenerator struct {
	bank *bank

	pos      int // position within the current cycle, in samples
	cycleLen int
	pulseLen int
	attack   int
	decay    int
}

// Pulse creates a streamer which shapes the oscillator bank into repeating
// Attack -> Sustain -> Decay -> Pause cycles. One cycle lasts
// PulseDurationMs+PauseDurationMs; during the pause the output is exactly
// zero. A zero pause means a continuous tone: the envelope still cycles but
// the oscillator never silences.
//
// The per-sample envelope is the product of the attack ramp (over the first
// AttackMs of the pulse) and the decay ramp (over the last DecayMs). When
// attack and decay overlap because their sum exceeds the pulse duration, the
// product simply blends the two ramps; overlapping parameters are a supported
// configuration, not an error.
//
// Oscillator phase resets at the start of every pulse, so each pulse is
// waveform-identical and resuming after a pause never produces a click.
func Pulse(sr noisegen.SampleRate, p ToneParams) (noisegen.Streamer, error) {
	b, err := newBank(sr, p.Waveform, p.BaseFrequencyHz, p.HarmonicRatio)
	if err != nil {
		return nil, err
	}
	g := &pulseGenerator{
		bank:     b,
		pulseLen: ms(sr, p.PulseDurationMs),
		cycleLen: ms(sr, p.PulseDurationMs+p.PauseDurationMs),
		attack:   ms(sr, p.AttackMs),
		decay:    ms(sr, p.DecayMs),
	}
	if g.attack < 1 {
		g.attack = 1
	}
	if g.decay < 1 {
		g.decay = 1
	}
	return g, nil
}

func (g *pulseGenerator) Stream(samples []float64) (n int, ok bool) {
	for i := range samples {
		if g.pos == 0 {
			g.bank.reset()
		}
		if g.pos < g.pulseLen {
			samples[i] = g.bank.next() * g.envelope()
		} else {
			samples[i] = 0
		}
		g.pos++
		if g.pos >= g.cycleLen {
			g.pos = 0
		}
	}
	return len(samples), true
}

// envelope returns the amplitude for the current in-pulse position. The
// attack ramp runs (i+1)/attack so its first sample is already nonzero and its
// last reaches one; the decay ramp mirrors that, ending one step above zero.
// Exact zeroes therefore occur only in the pause state, which keeps the
// silent-span accounting of a cycle precise.
func (g *pulseGenerator) envelope() float64 {
	amp := 1.0
	if g.pos < g.attack {
		amp = float64(g.pos+1) / float64(g.attack)
	}
	if rem := g.pulseLen - g.pos; rem <= g.decay {
		amp *= float64(rem) / float64(g.decay)
	}
	return amp
}

func (*pulseGenerator) Err() error {
	return nil
}

func ms(sr noisegen.SampleRate, d int) int {
	return int(int64(sr) * int64(d) / 1000)
}
