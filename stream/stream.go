// Package stream turns a resolved profile into an indefinite, restartable
// sequence of fixed-size audio chunks.
package stream

import (
	"math"

	"github.com/pkg/errors"

	"github.com/quietloop/noisegen"
	"github.com/quietloop/noisegen/effects"
)

// ErrSynthesisFault means a generator produced a non-finite sample or stopped
// even though every generator in this engine is infinite. It must never occur
// under valid inputs; when it does, the stream fails closed instead of
// emitting corrupted audio.
var ErrSynthesisFault = errors.New("stream: synthesis fault")

// Chunk is a fixed-length slice of the infinite audio stream. Index is the
// chunk's position in production order; it exists for diagnostics only,
// playback order is implicit in the order chunks are pulled.
type Chunk struct {
	Index   int
	Samples []float64
}

// ChunkStream produces the chunk sequence of one playback. It owns all
// generator state for that playback; nothing is shared between streams, so
// any number of concurrent streams of the same profile are independent (and,
// when seeded, each reproduces the same sequence).
//
// A ChunkStream is pull-based and runs no goroutines: synthesis happens inside
// Next, backpressure is whatever pace the consumer pulls at, and abandoning
// the stream leaves no background work behind.
type ChunkStream struct {
	src   noisegen.Streamer
	index int
	err   error
}

// Open validates and resolves the profile and returns a fresh chunk stream
// positioned at chunk zero. Opening the same profile again restarts from the
// beginning; with a fixed seed the two streams produce identical sequences.
//
// Validation and resolution errors are returned here, synchronously; a stream
// that opened successfully never reports them mid-stream.
func Open(p noisegen.Profile) (*ChunkStream, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	src, err := resolve(p)
	if err != nil {
		return nil, err
	}
	volume := p.Volume
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &ChunkStream{
		src: &effects.Gain{Streamer: src, Gain: volume},
	}, nil
}

// Next synthesizes and returns the next chunk. The sequence is conceptually
// infinite; ok is false only when the stream has failed, in which case Err
// explains why and no further chunks will ever be produced. A faulting chunk
// is withheld entirely, never emitted partially.
//
// Volume has already been applied when samples arrive here; the final step
// hard-clips every sample to [-1, 1]. The clip is deliberately hard, not soft:
// extreme harmonic-ratio and volume combinations saturate instead of
// overflowing the sample range.
func (cs *ChunkStream) Next() (Chunk, bool) {
	if cs.err != nil {
		return Chunk{}, false
	}
	samples := make([]float64, noisegen.ChunkSize)
	pos := 0
	for pos < len(samples) {
		n, ok := cs.src.Stream(samples[pos:])
		pos += n
		if !ok {
			if err := cs.src.Err(); err != nil {
				cs.err = errors.Wrap(err, "stream: source failed")
			} else {
				cs.err = errors.Wrapf(ErrSynthesisFault, "generator stopped at chunk %d", cs.index)
			}
			return Chunk{}, false
		}
	}
	for i, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			cs.err = errors.Wrapf(ErrSynthesisFault, "non-finite sample at chunk %d offset %d", cs.index, i)
			return Chunk{}, false
		}
		if s < -1 {
			samples[i] = -1
		} else if s > 1 {
			samples[i] = 1
		}
	}
	c := Chunk{Index: cs.index, Samples: samples}
	cs.index++
	return c, true
}

// Err returns the error that stopped the stream, or nil while it is healthy.
func (cs *ChunkStream) Err() error {
	return cs.err
}

// Streamer adapts the chunk stream to the engine's pull interface, so sinks
// (wav, pcm, speaker) can drain it. At most one chunk is buffered; the next
// one is synthesized only once the sink has consumed the previous.
func (cs *ChunkStream) Streamer() noisegen.Streamer {
	return &chunkStreamer{cs: cs}
}

type chunkStreamer struct {
	cs  *ChunkStream
	buf []float64
}

func (s *chunkStreamer) Stream(samples []float64) (n int, ok bool) {
	for n < len(samples) {
		if len(s.buf) == 0 {
			c, ok := s.cs.Next()
			if !ok {
				return n, n > 0
			}
			s.buf = c.Samples
		}
		cn := copy(samples[n:], s.buf)
		s.buf = s.buf[cn:]
		n += cn
	}
	return n, true
}

func (s *chunkStreamer) Err() error {
	return s.cs.Err()
}
