package pcm_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/quietloop/noisegen"
	"github.com/quietloop/noisegen/pcm"
	"github.com/quietloop/noisegen/stream"
)

func TestEncode(t *testing.T) {
	cs, err := stream.Open(noisegen.Profile{
		Name:   "pcm test",
		Kind:   noisegen.White,
		Volume: 0.5,
		Seed:   "pcm",
	})
	if err != nil {
		t.Fatal(err)
	}
	first, ok := cs.Next()
	if !ok {
		t.Fatal(cs.Err())
	}

	// A fresh stream of the same profile encodes to the bytes of the chunks
	// it produces.
	cs2, err := stream.Open(noisegen.Profile{
		Name:   "pcm test",
		Kind:   noisegen.White,
		Volume: 0.5,
		Seed:   "pcm",
	})
	if err != nil {
		t.Fatal(err)
	}

	format := noisegen.DefaultFormat()
	var buf bytes.Buffer
	if err := pcm.Encode(&buf, noisegen.Take(len(first.Samples), cs2.Streamer()), format); err != nil {
		t.Fatal(err)
	}

	b := buf.Bytes()
	if len(b) != len(first.Samples)*format.Width() {
		t.Fatalf("encoded %v bytes, want %v", len(b), len(first.Samples)*format.Width())
	}
	deviation := 2.0 / (1<<16 - 2)
	for i, want := range first.Samples {
		got, _ := format.DecodeSigned(b[i*format.Width():])
		if math.Abs(got-want) > deviation {
			t.Fatalf("sample %v decoded as %v, want about %v", i, got, want)
		}
	}
}

type countingWriter struct {
	buf    bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

func TestEncodeFlushesPerPull(t *testing.T) {
	// Each pull must reach the underlying writer right away; buffering across
	// pulls would delay a live consumer behind the pipe.
	cs, err := stream.Open(noisegen.Profile{
		Name:   "pcm flush",
		Kind:   noisegen.White,
		Volume: 0.5,
		Seed:   "flush",
	})
	if err != nil {
		t.Fatal(err)
	}

	var w countingWriter
	if err := pcm.Encode(&w, noisegen.Take(1536, cs.Streamer()), noisegen.DefaultFormat()); err != nil {
		t.Fatal(err)
	}
	// 1536 samples arrive in three 512-sample pulls
	if w.writes < 3 {
		t.Fatalf("encoder buffered across pulls: %v writes for 3 pulls", w.writes)
	}
}
