package stream

import (
	"github.com/pkg/errors"

	"github.com/quietloop/noisegen"
	"github.com/quietloop/noisegen/generators"
)

// resolve maps a validated profile to its generator chain. Every call builds a
// fresh random source and fresh generator state, which is what keeps
// concurrent playbacks of one profile independent of each other.
func resolve(p noisegen.Profile) (noisegen.Streamer, error) {
	sr := noisegen.DefaultSampleRate

	switch p.Kind {
	case noisegen.White:
		return generators.WhiteNoise(noisegen.NewRand(p.Seed)), nil

	case noisegen.Pink:
		return generators.PinkNoise(noisegen.NewRand(p.Seed)), nil

	case noisegen.Brown:
		return generators.BrownNoise(noisegen.NewRand(p.Seed)), nil

	case noisegen.CustomColor:
		return generators.CustomNoise(sr, noisegen.NewRand(p.Seed), p.SlopeDBPerOctave, p.LowCutoffHz, p.HighCutoffHz), nil

	case noisegen.PresetTone:
		bundle, ok := noisegen.Preset(p.Name)
		if !ok {
			return nil, errors.Wrapf(noisegen.ErrInvalidParameter, "unknown preset %q", p.Name)
		}
		return generators.Pulse(sr, toneParams(bundle))

	case noisegen.CustomTone:
		return generators.Pulse(sr, toneParams(p))

	default:
		return nil, errors.Wrapf(noisegen.ErrUnsupportedKind, "kind %q", p.Kind)
	}
}

func toneParams(p noisegen.Profile) generators.ToneParams {
	return generators.ToneParams{
		Waveform:        p.Waveform,
		BaseFrequencyHz: p.BaseFrequencyHz,
		HarmonicRatio:   p.HarmonicRatio,
		PulseDurationMs: p.PulseDurationMs,
		PauseDurationMs: p.PauseDurationMs,
		AttackMs:        p.AttackMs,
		DecayMs:         p.DecayMs,
	}
}
