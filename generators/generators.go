// Package generators implements the synthesis sources of the engine: colored
// noise driven by a seeded random source, and pulsed tonal oscillators.
//
// Every constructor returns an infinite Streamer. Generator state (filter
// history, phase accumulators, pulse position) lives inside the returned value
// and is never shared; each playback constructs its own generators.
package generators

// Noise paths apply a fixed makeup gain so that sustained RMS is roughly the
// same (~0.28) across kinds before the profile volume is applied. The source
// RMS figures below were measured over long seeded runs of each raw path.
const (
	targetRMS = 0.28

	whiteGain = targetRMS / 0.5774 // uniform [-1,1) has RMS 1/sqrt(3)
	pinkGain  = targetRMS / 0.155  // Kellet filter output scaled by 0.11
	brownGain = targetRMS / 0.057  // leaky integrator, leak 0.98, step 0.02
)

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
