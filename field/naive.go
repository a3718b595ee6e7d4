package field

import (
	"fmt"
	"io"

	"github.com/luxfi/tss"
	"github.com/luxfi/tss/internal/modarith"
)

// Naive is the reference prime-field backend: a signed 64-bit integer
// holding a value that intermediate operations may return non-canonical
// (negative, or >= p). Callers must not rely on the sign of an element
// outside this package; use Eq/Decode to observe a value. Add, Mul and Pow
// reduce modulo p but keep the sign of a negative operand - only Sub and
// Inv are guaranteed to land in [0, p).
//
// This is the slowest of the three backends and exists to serve as a
// correctness oracle for the Montgomery and big-integer backends.
type Naive struct {
	p int64
}

// NewNaive constructs the naive backend over the prime p.
func NewNaive(p int64) Naive {
	return Naive{p: p}
}

// Prime returns the field's modulus.
func (f Naive) Prime() int64 { return f.p }

func (f Naive) Zero() int64 { return 0 }
func (f Naive) One() int64  { return 1 }

func (f Naive) Add(a, b int64) int64 {
	return (a + b) % f.p
}

func (f Naive) Sub(a, b int64) int64 {
	c := (a - b) % f.p
	if c < 0 {
		c += f.p
	}
	return c
}

func (f Naive) Mul(a, b int64) int64 {
	return (a * b) % f.p
}

func (f Naive) Pow(a int64, e uint32) int64 {
	return modarith.ModPow(a, e, f.p)
}

func (f Naive) Inv(a int64) (int64, error) {
	if a%f.p == 0 {
		return 0, fmt.Errorf("naive: %w", tss.ErrInverseOfZero)
	}
	return modarith.ModInverse(a, f.p), nil
}

// Eq compares a and b by their canonical residue, matching the other
// direction's (possibly non-canonical) representation.
func (f Naive) Eq(a, b int64) bool {
	ra, rb := a%f.p, b%f.p
	if ra < 0 {
		ra += f.p
	}
	if rb < 0 {
		rb += f.p
	}
	return ra == rb
}

func (f Naive) Neq(a, b int64) bool {
	return !f.Eq(a, b)
}

func (f Naive) Encode(x uint32) int64 {
	return int64(x) % f.p
}

func (f Naive) Decode(a int64) uint32 {
	r := a % f.p
	if r < 0 {
		r += f.p
	}
	return uint32(r)
}

// Sample draws count uniform elements in [0, p), the full range (an
// earlier revision of this backend sampled [0, p-1); the correct range is
// [0, p), which is what this implementation does).
func (f Naive) Sample(count int, rng io.Reader) ([]int64, error) {
	raw, err := sampleUint64(count, uint64(f.p), rng)
	if err != nil {
		return nil, err
	}
	out := make([]int64, count)
	for i, v := range raw {
		out[i] = int64(v)
	}
	return out, nil
}

// Positivise maps a sequence of possibly-negative signed residues into
// canonical [0, p) form. It exists for the naive backend, which does not
// canonicalize after Add or Mul.
func Positivise(values []int64, p int64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		r := v % p
		if r < 0 {
			r += p
		}
		out[i] = r
	}
	return out
}
