package stream_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/quietloop/noisegen"
	"github.com/quietloop/noisegen/stream"
)

func whiteProfile(seed string, volume float64) noisegen.Profile {
	return noisegen.Profile{
		Name:   "test white",
		Kind:   noisegen.White,
		Volume: volume,
		Seed:   seed,
	}
}

func chunks(t *testing.T, cs *stream.ChunkStream, n int) []stream.Chunk {
	t.Helper()
	out := make([]stream.Chunk, 0, n)
	for i := 0; i < n; i++ {
		c, ok := cs.Next()
		if !ok {
			t.Fatalf("stream stopped at chunk %v: %v", i, cs.Err())
		}
		out = append(out, c)
	}
	return out
}

func TestOpenValidates(t *testing.T) {
	cases := []struct {
		name    string
		profile noisegen.Profile
		want    error
	}{
		{"unknown kind", noisegen.Profile{Kind: "velvet"}, noisegen.ErrUnsupportedKind},
		{"bad cutoffs", noisegen.Profile{
			Kind: noisegen.CustomColor, LowCutoffHz: 900, HighCutoffHz: 800,
		}, noisegen.ErrInvalidParameter},
		{"unknown preset", noisegen.Profile{
			Kind: noisegen.PresetTone, Name: "Foghorn",
		}, noisegen.ErrInvalidParameter},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := stream.Open(c.profile); !errors.Is(err, c.want) {
				t.Fatalf("got error %v, want %v", err, c.want)
			}
		})
	}
}

func TestChunkShape(t *testing.T) {
	cs, err := stream.Open(whiteProfile("9", 0.5))
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range chunks(t, cs, 5) {
		if c.Index != i {
			t.Fatalf("chunk %v has index %v", i, c.Index)
		}
		if len(c.Samples) != noisegen.ChunkSize {
			t.Fatalf("chunk %v has %v samples, want %v", i, len(c.Samples), noisegen.ChunkSize)
		}
	}
}

func TestSeededStreamsIdentical(t *testing.T) {
	a, err := stream.Open(whiteProfile("determinism", 0.8))
	if err != nil {
		t.Fatal(err)
	}
	b, err := stream.Open(whiteProfile("determinism", 0.8))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(chunks(t, a, 100), chunks(t, b, 100)) {
		t.Fatal("two streams of the same seeded profile diverged")
	}
}

func TestSeededStreamsIdenticalAcrossKinds(t *testing.T) {
	profiles := []noisegen.Profile{
		{Name: "p", Kind: noisegen.Pink, Volume: 1, Seed: "11"},
		{Name: "b", Kind: noisegen.Brown, Volume: 1, Seed: "11"},
		{Name: "c", Kind: noisegen.CustomColor, Volume: 1, Seed: "11",
			SlopeDBPerOctave: -6, LowCutoffHz: 40, HighCutoffHz: 9000},
		{Name: "Mellow Bell", Kind: noisegen.PresetTone, Volume: 1, Seed: "11"},
	}
	for _, p := range profiles {
		t.Run(string(p.Kind), func(t *testing.T) {
			a, err := stream.Open(p)
			if err != nil {
				t.Fatal(err)
			}
			b, err := stream.Open(p)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(chunks(t, a, 10), chunks(t, b, 10)) {
				t.Fatal("streams diverged")
			}
		})
	}
}

func TestUnseededStreamsDiffer(t *testing.T) {
	a, err := stream.Open(whiteProfile("", 1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := stream.Open(whiteProfile("", 1))
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(chunks(t, a, 1), chunks(t, b, 1)) {
		t.Fatal("two unseeded streams produced identical chunks")
	}
}

func TestVolumeScalesLinearly(t *testing.T) {
	quiet, err := stream.Open(whiteProfile("31", 0.3))
	if err != nil {
		t.Fatal(err)
	}
	loud, err := stream.Open(whiteProfile("31", 0.6))
	if err != nil {
		t.Fatal(err)
	}

	qc := chunks(t, quiet, 3)
	lc := chunks(t, loud, 3)
	for i := range qc {
		for j := range qc[i].Samples {
			if lc[i].Samples[j] != 2*qc[i].Samples[j] {
				t.Fatalf("volume 0.6 is not exactly twice volume 0.3 at chunk %v offset %v", i, j)
			}
		}
	}
}

func TestVolumeClamped(t *testing.T) {
	cs, err := stream.Open(whiteProfile("5", 3.7))
	if err != nil {
		t.Fatal(err)
	}
	full, err := stream.Open(whiteProfile("5", 1))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(chunks(t, cs, 2), chunks(t, full, 2)) {
		t.Fatal("volume above 1 not clamped to 1")
	}
}

func TestChunkBoundaryContinuity(t *testing.T) {
	// Chunked production must equal one continuous pull of the same stream:
	// no skipped or resynthesized samples at chunk seams.
	p := noisegen.Profile{Name: "c", Kind: noisegen.Pink, Volume: 0.7, Seed: "seam"}

	byChunk, err := stream.Open(p)
	if err != nil {
		t.Fatal(err)
	}
	var joined []float64
	for _, c := range chunks(t, byChunk, 10) {
		joined = append(joined, c.Samples...)
	}

	continuous, err := stream.Open(p)
	if err != nil {
		t.Fatal(err)
	}
	src := continuous.Streamer()
	pulled := make([]float64, 0, len(joined))
	buf := make([]float64, 479) // deliberately not a divisor of the chunk size
	for len(pulled) < len(joined) {
		want := len(joined) - len(pulled)
		if want > len(buf) {
			want = len(buf)
		}
		n, ok := src.Stream(buf[:want])
		if !ok {
			t.Fatalf("streamer stopped: %v", src.Err())
		}
		pulled = append(pulled, buf[:n]...)
	}

	if !reflect.DeepEqual(joined, pulled) {
		t.Fatal("chunked and continuous pulls of the same profile differ")
	}
}

func TestSamplesClipped(t *testing.T) {
	// A saw with maximum harmonic ratio at full volume pushes against the
	// unit range; whatever happens, emitted samples stay inside it.
	p := noisegen.Profile{
		Name:            "hot",
		Kind:            noisegen.CustomTone,
		Volume:          1,
		Waveform:        noisegen.Saw,
		BaseFrequencyHz: 4000,
		HarmonicRatio:   5,
		PulseDurationMs: 4000,
		PauseDurationMs: 0,
		AttackMs:        1,
		DecayMs:         10,
	}
	cs, err := stream.Open(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range chunks(t, cs, 3) {
		for i, s := range c.Samples {
			if s < -1 || s > 1 {
				t.Fatalf("sample %v of chunk %v outside [-1, 1]: %v", i, c.Index, s)
			}
		}
	}
}
