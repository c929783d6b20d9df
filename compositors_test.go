package noisegen_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/quietloop/noisegen"
)

// randomDataStreamer generates numSamples random samples and returns a StreamSeeker which streams
// them and the data itself.
func randomDataStreamer(numSamples int) (s noisegen.StreamSeeker, data []float64) {
	data = make([]float64, numSamples)
	for i := range data {
		data[i] = rand.Float64()*2 - 1
	}
	return &dataStreamer{data, 0}, data
}

type dataStreamer struct {
	data []float64
	pos  int
}

func (ds *dataStreamer) Stream(samples []float64) (n int, ok bool) {
	if ds.pos >= len(ds.data) {
		return 0, false
	}
	n = copy(samples, ds.data[ds.pos:])
	ds.pos += n
	return n, true
}

func (ds *dataStreamer) Err() error {
	return nil
}

func (ds *dataStreamer) Len() int {
	return len(ds.data)
}

func (ds *dataStreamer) Position() int {
	return ds.pos
}

func (ds *dataStreamer) Seek(p int) error {
	ds.pos = p
	return nil
}

// collect drains Streamer s and returns all of the samples it streamed.
func collect(s noisegen.Streamer) []float64 {
	var (
		result []float64
		buf    [479]float64
	)
	for {
		n, ok := s.Stream(buf[:])
		if !ok {
			return result
		}
		result = append(result, buf[:n]...)
	}
}

func TestTake(t *testing.T) {
	for i := 0; i < 7; i++ {
		total := rand.Intn(1e5) + 1e4
		s, data := randomDataStreamer(total)
		take := rand.Intn(total)

		want := data[:take]
		got := collect(noisegen.Take(take, s))

		if !reflect.DeepEqual(want, got) {
			t.Error("Take not working correctly")
		}
	}
}

func TestSeq(t *testing.T) {
	var (
		n    = 7
		s    = make([]noisegen.Streamer, n)
		data = make([][]float64, n)
	)
	for i := range s {
		s[i], data[i] = randomDataStreamer(rand.Intn(1e5) + 1e4)
	}

	var want []float64
	for _, d := range data {
		want = append(want, d...)
	}

	got := collect(noisegen.Seq(s...))

	if !reflect.DeepEqual(want, got) {
		t.Errorf("Seq not working properly")
	}
}

func TestMix(t *testing.T) {
	var (
		n    = 7
		s    = make([]noisegen.Streamer, n)
		data = make([][]float64, n)
	)
	for i := range s {
		s[i], data[i] = randomDataStreamer(rand.Intn(1e5) + 1e4)
	}

	maxLen := 0
	for _, d := range data {
		if len(d) > maxLen {
			maxLen = len(d)
		}
	}

	want := make([]float64, maxLen)
	for _, d := range data {
		for i := range d {
			want[i] += d[i]
		}
	}

	got := collect(noisegen.Mix(s...))

	if !reflect.DeepEqual(want, got) {
		t.Error("Mix not working correctly")
	}
}

func TestSilence(t *testing.T) {
	got := collect(noisegen.Silence(1234))
	if len(got) != 1234 {
		t.Fatalf("Silence streamed %v samples, want 1234", len(got))
	}
	for _, s := range got {
		if s != 0 {
			t.Fatal("Silence streamed a non-zero sample")
		}
	}
}
