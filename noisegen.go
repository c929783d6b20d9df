// Package noisegen implements continuous, parameterized synthesis of colored
// noise and tonal sound as an infinite, pull-based stream of mono samples.
package noisegen

import (
	"time"
)

const (
	// DefaultSampleRate is the engine-wide sample rate. All generators and
	// sinks in this module run at this rate; it is not per-profile.
	DefaultSampleRate SampleRate = 44100

	// ChunkDuration is the fixed length of one produced chunk.
	ChunkDuration = 500 * time.Millisecond
)

// ChunkSize is the number of samples in one chunk.
var ChunkSize = DefaultSampleRate.N(ChunkDuration)

// SampleRate is the number of samples per second.
type SampleRate int

// D returns the duration of n samples.
func (sr SampleRate) D(n int) time.Duration {
	return time.Second * time.Duration(n) / time.Duration(sr)
}

// N returns the number of samples that last for d duration.
func (sr SampleRate) N(d time.Duration) int {
	return int(d * time.Duration(sr) / time.Second)
}

// Streamer is able to stream a finite or infinite sequence of mono audio
// samples. Every generator in this module is an infinite Streamer; only
// wrappers such as Take make it finite.
type Streamer interface {
	// Stream copies at most len(samples) next samples to the samples slice.
	//
	// The number of streamed samples is returned alongside a flag which is
	// false only when the source is drained or failed. When ok is false,
	// Stream must not be called again and Err explains what happened.
	//
	// Stream must not retain the samples slice.
	Stream(samples []float64) (n int, ok bool)

	// Err returns an error which occurred during streaming. If no error
	// occurred, nil is returned.
	Err() error
}

// StreamerFunc is a Streamer created by simply wrapping a streaming function
// (usually a closure, which encloses a time tracking variable). This sometimes
// simplifies creating new streamers.
//
// Example:
//
//	noise := StreamerFunc(func(samples []float64) (n int, ok bool) {
//	    for i := range samples {
//	        samples[i] = rand.Float64()*2 - 1
//	    }
//	    return len(samples), true
//	})
type StreamerFunc func(samples []float64) (n int, ok bool)

// Stream calls the wrapped streaming function.
func (sf StreamerFunc) Stream(samples []float64) (n int, ok bool) {
	return sf(samples)
}

// Err always returns nil.
func (sf StreamerFunc) Err() error {
	return nil
}

// StreamSeeker is a finite duration Streamer which supports seeking to an
// arbitrary position.
type StreamSeeker interface {
	Streamer

	// Len returns the total number of samples of the Streamer.
	Len() int

	// Position returns the current position of the Streamer. This value is
	// between 0 and the total length.
	Position() int

	// Seek sets the position of the Streamer to the provided value.
	//
	// If an error occurs during seeking, the position remains unchanged. This
	// error will not be returned through the Streamer's Err method.
	Seek(p int) error
}

func norm(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > +1 {
		return +1
	}
	return x
}
