package noisegen

// Buffer is a storage for audio data. You can think of it as a bytes.Buffer for audio samples.
// The engine uses it to capture finite slices of the otherwise infinite streams, for example
// when a test or a sink needs a reference run of a known length.
type Buffer struct {
	f    Format
	data []byte
	tmp  []byte
}

// NewBuffer creates a new empty Buffer which stores samples in the provided format.
func NewBuffer(f Format) *Buffer {
	return &Buffer{f: f, tmp: make([]byte, f.Width())}
}

// Format returns the format of the Buffer.
func (b *Buffer) Format() Format {
	return b.f
}

// Len returns the number of samples currently in the Buffer.
func (b *Buffer) Len() int {
	return len(b.data) / b.f.Width()
}

// Pop removes n samples from the beginning of the Buffer.
//
// Existing Streamers are not affected.
func (b *Buffer) Pop(n int) {
	b.data = b.data[n*b.f.Width():]
}

// Append adds all audio data from the given Streamer to the end of the Buffer.
//
// The Streamer will be drained when this method finishes.
func (b *Buffer) Append(s Streamer) {
	var samples [512]float64
	for {
		n, ok := s.Stream(samples[:])
		if !ok {
			break
		}
		for _, sample := range samples[:n] {
			b.f.EncodeSigned(b.tmp, sample)
			b.data = append(b.data, b.tmp...)
		}
	}
}

// Streamer returns a StreamSeeker which streams samples in the given interval (including from,
// excluding to). If from<0 or to>b.Len() or to<from, this method panics.
//
// When using multiple goroutines, synchronization of Streamers with the Buffer is not required,
// as Buffer is persistent (but efficient and garbage collected).
func (b *Buffer) Streamer(from, to int) StreamSeeker {
	return &bufferStreamer{
		f:    b.f,
		data: b.data[from*b.f.Width() : to*b.f.Width()],
		pos:  0,
	}
}

type bufferStreamer struct {
	f    Format
	data []byte
	pos  int
}

func (bs *bufferStreamer) Stream(samples []float64) (n int, ok bool) {
	if bs.pos >= bs.Len() {
		return 0, false
	}
	for i := range samples {
		if bs.pos >= bs.Len() {
			break
		}
		sample, advance := bs.f.DecodeSigned(bs.data[bs.pos*bs.f.Width():])
		samples[i] = sample
		bs.pos += advance / bs.f.Width()
		n++
	}
	return n, true
}

func (bs *bufferStreamer) Err() error {
	return nil
}

func (bs *bufferStreamer) Len() int {
	return len(bs.data) / bs.f.Width()
}

func (bs *bufferStreamer) Position() int {
	return bs.pos
}

func (bs *bufferStreamer) Seek(p int) error {
	bs.pos = p
	return nil
}
