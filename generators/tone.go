package generators

import (
	"errors"
	"math"

	"github.com/quietloop/noisegen"
)

// osc is a phase accumulator oscillator. The phase advances by freq/sampleRate
// per sample and wraps into [0, 1); the waveform is a closed-form mapping of
// the phase. Phase carries over between Stream calls, so there is no
// discontinuity at chunk seams.
type osc struct {
	wave noisegen.Waveform
	dt   float64
	t    float64
}

func newOsc(sr noisegen.SampleRate, wave noisegen.Waveform, freq float64) (*osc, error) {
	dt := freq / float64(sr)
	if dt >= 1.0/2.0 {
		return nil, errors.New("noisegen tone generator: sample rate must be at least two times greater than frequency")
	}
	switch wave {
	case noisegen.Sine, noisegen.Triangle, noisegen.Square, noisegen.Saw:
	default:
		return nil, errors.New("noisegen tone generator: unknown waveform " + string(wave))
	}
	return &osc{wave: wave, dt: dt}, nil
}

func (o *osc) next() float64 {
	var v float64
	switch o.wave {
	case noisegen.Sine:
		v = math.Sin(o.t * 2 * math.Pi)
	case noisegen.Triangle:
		if o.t < 0.5 {
			v = 4*o.t - 1
		} else {
			v = 3 - 4*o.t
		}
	case noisegen.Square:
		if o.t < 0.5 {
			v = 1
		} else {
			v = -1
		}
	case noisegen.Saw:
		v = 2*o.t - 1
	}
	_, o.t = math.Modf(o.t + o.dt)
	return v
}

func (o *osc) reset() {
	o.t = 0
}

// bank is the primary oscillator plus an optional harmonic one, mixed and
// renormalized so the peak stays within unit range.
type bank struct {
	primary  *osc
	harmonic *osc
	ratio    float64
}

func newBank(sr noisegen.SampleRate, wave noisegen.Waveform, freq, ratio float64) (*bank, error) {
	primary, err := newOsc(sr, wave, freq)
	if err != nil {
		return nil, err
	}
	b := &bank{primary: primary, ratio: ratio}
	if ratio > 0 {
		b.harmonic, err = newOsc(sr, wave, freq*ratio)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *bank) next() float64 {
	v := b.primary.next()
	if b.harmonic != nil {
		v = (v + b.ratio*b.harmonic.next()) / (1 + b.ratio)
	}
	return v
}

func (b *bank) reset() {
	b.primary.reset()
	if b.harmonic != nil {
		b.harmonic.reset()
	}
}

type toneGenerator struct {
	bank *bank
}

// Tone creates a streamer which produces an infinite periodic waveform at the
// given frequency. When harmonicRatio is greater than zero, a second
// oscillator runs at freq*harmonicRatio and is mixed in scaled by the ratio;
// the sum is renormalized by 1/(1+ratio).
//
// The frequency (and frequency*harmonicRatio) must stay below half the sample
// rate, otherwise this function returns an error.
func Tone(sr noisegen.SampleRate, wave noisegen.Waveform, freq, harmonicRatio float64) (noisegen.Streamer, error) {
	b, err := newBank(sr, wave, freq, harmonicRatio)
	if err != nil {
		return nil, err
	}
	return &toneGenerator{bank: b}, nil
}

func (g *toneGenerator) Stream(samples []float64) (n int, ok bool) {
	for i := range samples {
		samples[i] = g.bank.next()
	}
	return len(samples), true
}

func (*toneGenerator) Err() error {
	return nil
}
