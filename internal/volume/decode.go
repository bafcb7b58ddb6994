package volume

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrFormat reports a transfer buffer that cannot be interpreted as a volume
// or mask. The previously loaded data stays authoritative when it is returned.
var ErrFormat = errors.New("volume: bad format")

// HeaderSize is the fixed number of bytes the backend prepends to every
// volume and mask transfer. This offset must track the producer in lockstep;
// the framing is not self-describing.
const HeaderSize = 128

// sampleWidth is the byte width of one intensity sample (little-endian float32).
const sampleWidth = 4

// Decode interprets a raw volume transfer buffer: a HeaderSize-byte header to
// skip, followed by little-endian float32 samples. The cubic dimension
// D = H = W is inferred from the sample count; a buffer whose count has no
// exact integer cube root is rejected.
func Decode(buf []byte) (*Volume, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: buffer of %d bytes is shorter than the %d-byte header",
			ErrFormat, len(buf), HeaderSize)
	}
	body := buf[HeaderSize:]
	if len(body)%sampleWidth != 0 {
		return nil, fmt.Errorf("%w: payload of %d bytes is not a multiple of the %d-byte sample width",
			ErrFormat, len(body), sampleWidth)
	}

	count := len(body) / sampleWidth
	dim, ok := exactCubeRoot(count)
	if !ok {
		return nil, fmt.Errorf("%w: sample count %d has no integer cube root", ErrFormat, count)
	}

	samples := make([]float32, count)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(body[i*sampleWidth:])
		samples[i] = math.Float32frombits(bits)
	}

	return New(samples, dim, dim, dim)
}

// DecodeMask interprets a raw mask transfer buffer: the same HeaderSize-byte
// framing, followed by one-byte labels. The label count must equal the
// current volume's sample count.
func DecodeMask(buf []byte, vol *Volume) (*Mask, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: buffer of %d bytes is shorter than the %d-byte header",
			ErrFormat, len(buf), HeaderSize)
	}
	labels := make([]uint8, len(buf)-HeaderSize)
	copy(labels, buf[HeaderSize:])
	return NewMask(labels, vol)
}

// exactCubeRoot returns the integer n with n*n*n == count, if one exists.
func exactCubeRoot(count int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	n := int(math.Round(math.Cbrt(float64(count))))
	// Guard against float error on large counts.
	for _, c := range []int{n - 1, n, n + 1} {
		if c > 0 && c*c*c == count {
			return c, true
		}
	}
	return 0, false
}
