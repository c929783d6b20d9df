package noisegen

import "fmt"

// Format is the PCM framing of an audio sink fed from this engine. Synthesis
// itself is always mono float64 at DefaultSampleRate; Format only describes how
// samples get encoded on the way out.
type Format struct {
	// SampleRate is the number of samples per second.
	SampleRate SampleRate

	// NumChannels is the number of channels. The value of 1 is mono, the value of 2 is stereo.
	// Mono samples are duplicated into every channel.
	NumChannels int

	// Precision is the number of bytes used to encode a single sample.
	Precision int
}

// DefaultFormat is the framing the engine's sinks use unless told otherwise:
// mono 16-bit at the engine sample rate.
func DefaultFormat() Format {
	return Format{
		SampleRate:  DefaultSampleRate,
		NumChannels: 1,
		Precision:   2,
	}
}

// Width returns the number of bytes per one frame (all channels).
//
// This is equal to f.NumChannels * f.Precision.
func (f Format) Width() int {
	return f.NumChannels * f.Precision
}

// EncodeSigned encodes a single sample in f.Width() bytes to p in signed format.
func (f Format) EncodeSigned(p []byte, sample float64) (n int) {
	return f.encode(true, p, sample)
}

// EncodeUnsigned encodes a single sample in f.Width() bytes to p in unsigned format.
func (f Format) EncodeUnsigned(p []byte, sample float64) (n int) {
	return f.encode(false, p, sample)
}

// DecodeSigned decodes a single sample encoded in f.Width() bytes from p in signed format.
func (f Format) DecodeSigned(p []byte) (sample float64, n int) {
	return f.decode(true, p)
}

// DecodeUnsigned decodes a single sample encoded in f.Width() bytes from p in unsigned format.
func (f Format) DecodeUnsigned(p []byte) (sample float64, n int) {
	return f.decode(false, p)
}

func (f Format) encode(signed bool, p []byte, sample float64) (n int) {
	if f.NumChannels < 1 {
		panic(fmt.Errorf("format: encode: invalid number of channels: %d", f.NumChannels))
	}
	x := norm(sample)
	for c := 0; c < f.NumChannels; c++ {
		p = p[encodeFloat(signed, p, f.Precision, x):]
	}
	return f.Width()
}

func (f Format) decode(signed bool, p []byte) (sample float64, n int) {
	if f.NumChannels < 1 {
		panic(fmt.Errorf("format: decode: invalid number of channels: %d", f.NumChannels))
	}
	// Channels beyond the first carry duplicates; the first one is the sample.
	x, _ := decodeFloat(signed, p, f.Precision)
	return x, f.Width()
}

func encodeFloat(signed bool, p []byte, precision int, x float64) (n int) {
	var xUint64 uint64
	if signed {
		xUint64 = floatToSigned(precision, x)
	} else {
		xUint64 = floatToUnsigned(precision, x)
	}
	for i := 0; i < precision; i++ {
		p[i] = byte(xUint64)
		xUint64 >>= 8
	}
	return precision
}

func decodeFloat(signed bool, p []byte, precision int) (x float64, n int) {
	var xUint64 uint64
	for i := precision - 1; i >= 0; i-- {
		xUint64 <<= 8
		xUint64 += uint64(p[i])
	}
	if signed {
		return signedToFloat(precision, xUint64), precision
	}
	return unsignedToFloat(precision, xUint64), precision
}

func floatToSigned(precision int, x float64) uint64 {
	return uint64(int64(x * float64(uint64(1)<<uint(precision*8-1)-1)))
}

func floatToUnsigned(precision int, x float64) uint64 {
	return uint64((x + 1) / 2 * float64(uint64(1)<<uint(precision*8)-1))
}

func signedToFloat(precision int, xUint64 uint64) float64 {
	shift := uint(64 - precision*8)
	return float64(int64(xUint64<<shift)>>shift) / float64(uint64(1)<<uint(precision*8-1)-1)
}

func unsignedToFloat(precision int, xUint64 uint64) float64 {
	return float64(xUint64)/float64(uint64(1)<<uint(precision*8)-1)*2 - 1
}
