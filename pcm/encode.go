// Package pcm frames engine audio as headerless PCM.
package pcm

import (
	"bufio"
	"io"

	"github.com/quietloop/noisegen"
)

// Encode writes all audio streamed from s to w in raw PCM format. It returns
// when the streamer stops or a write fails; infinite streamers make this an
// indefinite stream.
func Encode(w io.Writer, s noisegen.Streamer, format noisegen.Format) error {
	var (
		bw      = bufio.NewWriter(w)
		samples = make([]float64, 512)
		buffer  = make([]byte, len(samples)*format.Width())
	)
	for {
		n, ok := s.Stream(samples)
		if !ok {
			if err := bw.Flush(); err != nil {
				return err
			}
			return s.Err()
		}
		var offset int
		for _, sample := range samples[:n] {
			offset += format.EncodeSigned(buffer[offset:], sample)
		}
		if _, err := bw.Write(buffer[:offset]); err != nil {
			return err
		}
		// flush per pull so a slow consumer hears audio immediately
		if err := bw.Flush(); err != nil {
			return err
		}
	}
}
