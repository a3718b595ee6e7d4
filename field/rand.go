package field

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/luxfi/tss"
)

// uniformUint64 draws a uniformly random value in [0, bound) by rejection
// sampling over uint64s read from rng. bound must be > 0.
func uniformUint64(rng io.Reader, bound uint64) (uint64, error) {
	if bound == 0 {
		return 0, nil
	}
	// Largest multiple of bound that fits in 64 bits; reject draws above
	// it to avoid modulo bias.
	limit := (^uint64(0) / bound) * bound
	var buf [8]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", tss.ErrRngFailure, err)
		}
		x := binary.BigEndian.Uint64(buf[:])
		if x < limit {
			return x % bound, nil
		}
	}
}

// sampleUint64 draws count uniform values in [0, p).
func sampleUint64(count int, p uint64, rng io.Reader) ([]uint64, error) {
	out := make([]uint64, count)
	for i := range out {
		v, err := uniformUint64(rng, p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
