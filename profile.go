package noisegen

import (
	"github.com/pkg/errors"
)

// Errors reported when a Profile fails resolution. They surface synchronously
// from stream opening, never mid-stream; retrying an invalid profile is
// pointless and callers are expected not to.
var (
	// ErrInvalidParameter means a Profile field is out of its declared range
	// or violates an ordering invariant.
	ErrInvalidParameter = errors.New("noisegen: invalid parameter")

	// ErrUnsupportedKind means a Profile kind or waveform outside the
	// enumerated set.
	ErrUnsupportedKind = errors.New("noisegen: unsupported kind")
)

// Kind identifies the synthesis family of a Profile.
type Kind string

const (
	White       Kind = "white"
	Pink        Kind = "pink"
	Brown       Kind = "brown"
	CustomColor Kind = "custom-color"
	PresetTone  Kind = "preset-tone"
	CustomTone  Kind = "custom-tone"
)

// Waveform selects the oscillator shape of a tonal Profile.
type Waveform string

const (
	Sine     Waveform = "sine"
	Triangle Waveform = "triangle"
	Square   Waveform = "square"
	Saw      Waveform = "saw"
)

// Parameter ranges enforced by Profile.Validate. Cutoffs top out a little under
// the Nyquist frequency of the engine sample rate.
const (
	MinSlopeDB   = -12.0
	MaxSlopeDB   = +12.0
	MinCutoffHz  = 1
	MaxCutoffHz  = 21800
	MinBaseHz    = 100.0
	MaxBaseHz    = 4000.0
	MaxHarmonic  = 5.0
	MinPulseMs   = 50
	MaxPulseMs   = 4000
	MaxPauseMs   = 3000
	MinAttackMs  = 1
	MaxAttackMs  = 1000
	MinDecayMs   = 10
	MaxDecayMs   = 4000
)

// Profile is an immutable description of one noise or tone to synthesize.
// Profiles are plain values; editing one means constructing a new value, and
// switching between preset and custom replaces the parameter bundle wholesale.
//
// Which fields are meaningful depends on Kind: the cutoff/slope fields apply to
// CustomColor only, the tonal fields to CustomTone only (PresetTone takes its
// tonal bundle from the preset table, keyed by Name). Volume and Seed apply to
// every kind; an empty Seed means non-reproducible entropy.
type Profile struct {
	Name   string
	Kind   Kind
	Volume float64
	Seed   string

	// custom-color
	SlopeDBPerOctave float64
	LowCutoffHz      int
	HighCutoffHz     int

	// tonal
	Waveform        Waveform
	BaseFrequencyHz float64
	HarmonicRatio   float64
	PulseDurationMs int
	PauseDurationMs int
	AttackMs        int
	DecayMs         int
}

// Validate checks every declared range and ordering invariant of the Profile.
// Violations wrap ErrInvalidParameter; an unknown Kind or Waveform wraps
// ErrUnsupportedKind.
//
// Volume is not validated here: it is clamped to [0, 1] at resolution, the way
// the rest of the engine treats it. Attack+decay exceeding the pulse duration
// is valid too; the envelope blends the overlapping ramps instead of failing.
func (p Profile) Validate() error {
	switch p.Kind {
	case White, Pink, Brown:
		return nil

	case CustomColor:
		if p.SlopeDBPerOctave < MinSlopeDB || p.SlopeDBPerOctave > MaxSlopeDB {
			return errors.Wrapf(ErrInvalidParameter, "slope %v dB/oct outside [%v, %v]", p.SlopeDBPerOctave, MinSlopeDB, MaxSlopeDB)
		}
		if p.LowCutoffHz < MinCutoffHz || p.LowCutoffHz > MaxCutoffHz {
			return errors.Wrapf(ErrInvalidParameter, "low cutoff %d Hz outside [%d, %d]", p.LowCutoffHz, MinCutoffHz, MaxCutoffHz)
		}
		if p.HighCutoffHz <= p.LowCutoffHz || p.HighCutoffHz > MaxCutoffHz {
			return errors.Wrapf(ErrInvalidParameter, "high cutoff %d Hz outside (%d, %d]", p.HighCutoffHz, p.LowCutoffHz, MaxCutoffHz)
		}
		return nil

	case PresetTone:
		if _, ok := presets[p.Name]; !ok {
			return errors.Wrapf(ErrInvalidParameter, "unknown preset %q", p.Name)
		}
		return nil

	case CustomTone:
		switch p.Waveform {
		case Sine, Triangle, Square, Saw:
		default:
			return errors.Wrapf(ErrUnsupportedKind, "waveform %q", p.Waveform)
		}
		if p.BaseFrequencyHz < MinBaseHz || p.BaseFrequencyHz > MaxBaseHz {
			return errors.Wrapf(ErrInvalidParameter, "base frequency %v Hz outside [%v, %v]", p.BaseFrequencyHz, MinBaseHz, MaxBaseHz)
		}
		if p.HarmonicRatio < 0 || p.HarmonicRatio > MaxHarmonic {
			return errors.Wrapf(ErrInvalidParameter, "harmonic ratio %v outside [0, %v]", p.HarmonicRatio, MaxHarmonic)
		}
		if p.PulseDurationMs < MinPulseMs || p.PulseDurationMs > MaxPulseMs {
			return errors.Wrapf(ErrInvalidParameter, "pulse duration %d ms outside [%d, %d]", p.PulseDurationMs, MinPulseMs, MaxPulseMs)
		}
		if p.PauseDurationMs < 0 || p.PauseDurationMs > MaxPauseMs {
			return errors.Wrapf(ErrInvalidParameter, "pause duration %d ms outside [0, %d]", p.PauseDurationMs, MaxPauseMs)
		}
		if p.AttackMs < MinAttackMs || p.AttackMs > MaxAttackMs {
			return errors.Wrapf(ErrInvalidParameter, "attack %d ms outside [%d, %d]", p.AttackMs, MinAttackMs, MaxAttackMs)
		}
		if p.DecayMs < MinDecayMs || p.DecayMs > MaxDecayMs {
			return errors.Wrapf(ErrInvalidParameter, "decay %d ms outside [%d, %d]", p.DecayMs, MinDecayMs, MaxDecayMs)
		}
		return nil

	default:
		return errors.Wrapf(ErrUnsupportedKind, "kind %q", p.Kind)
	}
}

// Tonal reports whether the Profile resolves through the oscillator path.
func (p Profile) Tonal() bool {
	return p.Kind == PresetTone || p.Kind == CustomTone
}
