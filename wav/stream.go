package wav

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/quietloop/noisegen"
)

// Stream writes audio from s to w in WAVE format indefinitely. The RIFF and
// data sizes in the header are left at 0xFFFFFFFF, the conventional marker for
// a stream of unknown length, so the output needs no seeking and is suitable
// for pipes and HTTP responses.
//
// Stream returns when the streamer stops (nil, unless its Err is set) or when
// a write fails. A consumer hanging up mid-stream surfaces as the write error
// (typically a broken pipe), which callers should treat as a normal shutdown.
//
// Format precision must be 1, 2 or 3 bytes.
func Stream(w io.Writer, s noisegen.Streamer, format noisegen.Format) (err error) {
	defer func() {
		if err != nil {
			err = errors.Wrap(err, "wav")
		}
	}()

	if err := validFormat(format); err != nil {
		return err
	}

	h := newHeader(format)
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}

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
		buf := buffer
		if format.Precision == 1 {
			for _, sample := range samples[:n] {
				buf = buf[format.EncodeUnsigned(buf, sample):]
			}
		} else {
			for _, sample := range samples[:n] {
				buf = buf[format.EncodeSigned(buf, sample):]
			}
		}
		if _, err := bw.Write(buffer[:n*format.Width()]); err != nil {
			return err
		}
		// flush per pull so a slow consumer hears audio immediately
		if err := bw.Flush(); err != nil {
			return err
		}
	}
}
