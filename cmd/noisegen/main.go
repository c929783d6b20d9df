// Command noisegen synthesizes a noise or tone profile and streams it as WAV
// (or raw PCM) on stdout, or plays it directly through the speakers. It is
// meant to sit behind a pipe or a process supervisor: SIGINT/SIGTERM stop the
// stream cleanly at a chunk boundary, and a broken pipe is a normal shutdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/quietloop/noisegen"
	"github.com/quietloop/noisegen/pcm"
	"github.com/quietloop/noisegen/speaker"
	"github.com/quietloop/noisegen/stream"
	"github.com/quietloop/noisegen/wav"
)

func main() {
	var (
		kind     = flag.String("kind", "white", "profile kind: white|pink|brown|custom-color|custom-tone (ignored with -preset)")
		preset   = flag.String("preset", "", "built-in tonal preset name (see -list-presets)")
		list     = flag.Bool("list-presets", false, "print the built-in preset names and exit")
		volume   = flag.Float64("volume", 0.5, "volume, 0.0 to 1.0")
		seed     = flag.String("seed", "", "random seed; empty for non-reproducible output")
		duration = flag.Duration("duration", 0, "stop after this long; 0 streams forever")
		raw      = flag.Bool("raw", false, "write headerless PCM instead of WAV")
		play     = flag.Bool("play", false, "play through the speakers instead of writing to stdout")

		slope = flag.Float64("slope", 0, "custom-color: spectral tilt in dB/octave, -12 to +12")
		low   = flag.Int("low-cutoff", 20, "custom-color: low cutoff in Hz")
		high  = flag.Int("high-cutoff", 16000, "custom-color: high cutoff in Hz")

		waveform = flag.String("waveform", "sine", "custom-tone: sine|triangle|square|saw")
		freq     = flag.Float64("frequency", 440, "custom-tone: base frequency in Hz")
		harmonic = flag.Float64("harmonic-ratio", 0, "custom-tone: harmonic oscillator ratio, 0 disables")
		pulse    = flag.Int("pulse", 500, "custom-tone: pulse duration in ms")
		pause    = flag.Int("pause", 500, "custom-tone: pause duration in ms")
		attack   = flag.Int("attack", 20, "custom-tone: attack ramp in ms")
		decay    = flag.Int("decay", 100, "custom-tone: decay ramp in ms")
	)
	flag.Parse()

	if *list {
		for _, name := range noisegen.Presets() {
			fmt.Println(name)
		}
		return
	}

	profile, err := buildProfile(*kind, *preset, *volume, *seed, *slope, *low, *high,
		*waveform, *freq, *harmonic, *pulse, *pause, *attack, *decay)
	if err == nil {
		err = run(profile, *duration, *raw, *play)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "noisegen:", err)
		os.Exit(1)
	}
}

func buildProfile(kind, preset string, volume float64, seed string, slope float64, low, high int,
	waveform string, freq, harmonic float64, pulse, pause, attack, decay int) (noisegen.Profile, error) {

	if preset != "" {
		p, ok := noisegen.Preset(preset)
		if !ok {
			return noisegen.Profile{}, errors.Errorf("unknown preset %q", preset)
		}
		p.Volume = volume
		p.Seed = seed
		return p, nil
	}

	p := noisegen.Profile{
		Name:   "cli",
		Kind:   noisegen.Kind(kind),
		Volume: volume,
		Seed:   seed,
	}
	switch p.Kind {
	case noisegen.CustomColor:
		p.SlopeDBPerOctave = slope
		p.LowCutoffHz = low
		p.HighCutoffHz = high
	case noisegen.CustomTone:
		p.Waveform = noisegen.Waveform(waveform)
		p.BaseFrequencyHz = freq
		p.HarmonicRatio = harmonic
		p.PulseDurationMs = pulse
		p.PauseDurationMs = pause
		p.AttackMs = attack
		p.DecayMs = decay
	}
	return p, p.Validate()
}

func run(profile noisegen.Profile, duration time.Duration, raw, play bool) error {
	cs, err := stream.Open(profile)
	if err != nil {
		return err
	}

	var src noisegen.Streamer = cs.Streamer()
	if duration > 0 {
		src = noisegen.Take(noisegen.DefaultSampleRate.N(duration), src)
	}
	stoppable := newStopStreamer(src)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		stoppable.stop()
	}()

	if play {
		return playThrough(stoppable)
	}

	format := noisegen.DefaultFormat()
	if raw {
		err = pcm.Encode(os.Stdout, stoppable, format)
	} else {
		err = wav.Stream(os.Stdout, stoppable, format)
	}
	if errors.Is(err, syscall.EPIPE) {
		// the consumer hung up; that is how playback normally ends
		return nil
	}
	return err
}

func playThrough(s noisegen.Streamer) error {
	if err := speaker.Init(noisegen.DefaultSampleRate, noisegen.ChunkSize); err != nil {
		return err
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(noisegen.Seq(s, noisegen.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// stopStreamer wraps a streamer with a stop flag flipped from the signal
// handler goroutine. The wrapped stream ends at the next pull boundary, so no
// partial chunk is ever emitted on shutdown.
type stopStreamer struct {
	s       noisegen.Streamer
	stopped atomic.Bool
}

func newStopStreamer(s noisegen.Streamer) *stopStreamer {
	return &stopStreamer{s: s}
}

func (s *stopStreamer) stop() {
	s.stopped.Store(true)
}

func (s *stopStreamer) Stream(samples []float64) (n int, ok bool) {
	if s.stopped.Load() {
		return 0, false
	}
	return s.s.Stream(samples)
}

func (s *stopStreamer) Err() error {
	return s.s.Err()
}
