package noisegen

import "sort"

// The built-in tonal presets are fixed parameter bundles, not separate
// implementations: a PresetTone profile resolves through the same oscillator
// and envelope path as CustomTone with the bundle below substituted in.
// The bundles are data on purpose; do not grow code paths per preset.
var presets = map[string]Profile{
	"Gentle Beep": {
		Waveform:        Sine,
		BaseFrequencyHz: 880,
		HarmonicRatio:   0,
		PulseDurationMs: 300,
		PauseDurationMs: 700,
		AttackMs:        40,
		DecayMs:         120,
	},
	"Classic Digital": {
		Waveform:        Square,
		BaseFrequencyHz: 1000,
		HarmonicRatio:   0,
		PulseDurationMs: 120,
		PauseDurationMs: 380,
		AttackMs:        5,
		DecayMs:         30,
	},
	"Mellow Bell": {
		Waveform:        Sine,
		BaseFrequencyHz: 523.25, // C5
		HarmonicRatio:   2,
		PulseDurationMs: 900,
		PauseDurationMs: 1100,
		AttackMs:        8,
		DecayMs:         850,
	},
	"Sunrise Chime": {
		Waveform:        Triangle,
		BaseFrequencyHz: 659.25, // E5
		HarmonicRatio:   1.5,
		PulseDurationMs: 400,
		PauseDurationMs: 1600,
		AttackMs:        60,
		DecayMs:         300,
	},
	"Soft Sweep": {
		Waveform:        Triangle,
		BaseFrequencyHz: 440,
		HarmonicRatio:   0.5,
		PulseDurationMs: 1500,
		PauseDurationMs: 500,
		AttackMs:        600,
		DecayMs:         800,
	},
	"Retro Buzzer": {
		Waveform:        Saw,
		BaseFrequencyHz: 220,
		HarmonicRatio:   1,
		PulseDurationMs: 500,
		PauseDurationMs: 250,
		AttackMs:        10,
		DecayMs:         60,
	},
	"Duet Beeps": {
		Waveform:        Sine,
		BaseFrequencyHz: 784, // G5
		HarmonicRatio:   1.26,
		PulseDurationMs: 180,
		PauseDurationMs: 220,
		AttackMs:        15,
		DecayMs:         80,
	},
	"Warm Drone": {
		Waveform:        Sine,
		BaseFrequencyHz: 110,
		HarmonicRatio:   2,
		PulseDurationMs: 4000,
		PauseDurationMs: 0, // continuous
		AttackMs:        1000,
		DecayMs:         1500,
	},
	"Sci-Fi Ping": {
		Waveform:        Sine,
		BaseFrequencyHz: 1567.98, // G6
		HarmonicRatio:   3,
		PulseDurationMs: 250,
		PauseDurationMs: 1250,
		AttackMs:        2,
		DecayMs:         230,
	},
	"Pop Chime": {
		Waveform:        Triangle,
		BaseFrequencyHz: 1046.5, // C6
		HarmonicRatio:   2.5,
		PulseDurationMs: 150,
		PauseDurationMs: 600,
		AttackMs:        10,
		DecayMs:         120,
	},
}

// Preset returns the fully-specified parameter bundle of a built-in tonal
// preset. The returned Profile has Kind PresetTone, the preset's name and a
// volume of 0.5; the caller adjusts volume and seed as it sees fit. The second
// return value is false for unknown names.
//
// Resolving the same name always yields an identical bundle.
func Preset(name string) (Profile, bool) {
	p, ok := presets[name]
	if !ok {
		return Profile{}, false
	}
	p.Name = name
	p.Kind = PresetTone
	p.Volume = 0.5
	return p, true
}

// Presets returns the names of all built-in tonal presets, sorted, for
// browsing layers that expose them as media entries.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
