package field

import (
	"fmt"
	"io"

	"github.com/luxfi/tss"
	"github.com/luxfi/tss/internal/modarith"
)

// Element is a field element in Montgomery form: the residue a*R mod n,
// where R = 2^32. It carries no indication of which Montgomery32 produced
// it; combining elements from two different moduli is undefined behavior.
type Element struct {
	v uint32
}

// Montgomery32 implements Field[Element] using Montgomery modular
// multiplication with R = 2^32. The modulus n must fit in 32 bits and be
// odd (prime), since R must be invertible mod n.
//
// See https://en.wikipedia.org/wiki/Montgomery_modular_multiplication, or
// Hacker's Delight's chapter on Montgomery multiplication, for the REDC
// algorithm this backend implements.
type Montgomery32 struct {
	n      uint32 // the prime
	nPrime uint32 // -n^-1 mod R
	rInv   uint32 // R^-1 mod n
	rCube  uint32 // R^3 mod n, used by Inv
}

// NewMontgomery32 constructs the Montgomery backend over the prime n.
func NewMontgomery32(n uint32) Montgomery32 {
	const r = int64(1) << 32

	rInvSigned := modarith.ModInverse(r, int64(n))
	nInvSigned := modarith.ModInverse(int64(n), r)
	nPrime := uint32(r - nInvSigned)
	rCube := modarith.ModPow(r%int64(n), 3, int64(n))

	return Montgomery32{
		n:      n,
		nPrime: nPrime,
		rInv:   uint32(rInvSigned),
		rCube:  uint32(rCube),
	}
}

// redc reduces a (which must be < n*R) to a*R^-1 mod n.
func (f Montgomery32) redc(a uint64) Element {
	m := uint64(uint32(a) * f.nPrime)
	t := uint32((a + m*uint64(f.n)) >> 32)
	if t >= f.n {
		t -= f.n
	}
	return Element{v: t}
}

func (f Montgomery32) Zero() Element { return f.Encode(0) }
func (f Montgomery32) One() Element  { return f.Encode(1) }

func (f Montgomery32) Add(a, b Element) Element {
	sum := uint64(a.v) + uint64(b.v)
	if sum >= uint64(f.n) {
		sum -= uint64(f.n)
	}
	return Element{v: uint32(sum)}
}

func (f Montgomery32) Sub(a, b Element) Element {
	if a.v >= b.v {
		return Element{v: a.v - b.v}
	}
	return Element{v: uint32(uint64(a.v) + uint64(f.n) - uint64(b.v))}
}

func (f Montgomery32) Mul(a, b Element) Element {
	return f.redc(uint64(a.v) * uint64(b.v))
}

func (f Montgomery32) Pow(a Element, e uint32) Element {
	acc := f.One()
	x := a
	for e > 0 {
		if e&1 == 1 {
			acc = f.Mul(acc, x)
		}
		x = f.Mul(x, x)
		e >>= 1
	}
	return acc
}

// Inv returns the Montgomery-form inverse of a. It computes the ordinary
// modular inverse of a's underlying residue and re-enters Montgomery form
// by multiplying through R^3 and reducing, rather than converting out of
// Montgomery form and back.
func (f Montgomery32) Inv(a Element) (Element, error) {
	if a.v == 0 {
		return Element{}, fmt.Errorf("montgomery: %w", tss.ErrInverseOfZero)
	}
	aInv := modarith.ModInverse(int64(a.v), int64(f.n))
	return f.redc(uint64(aInv) * uint64(f.rCube)), nil
}

func (f Montgomery32) Eq(a, b Element) bool {
	return (a.v % f.n) == (b.v % f.n)
}

func (f Montgomery32) Neq(a, b Element) bool {
	return !f.Eq(a, b)
}

// Encode converts a machine integer into Montgomery form: a*R mod n.
func (f Montgomery32) Encode(x uint32) Element {
	return Element{v: uint32((uint64(x) << 32) % uint64(f.n))}
}

// Decode converts out of Montgomery form: a*R^-1 mod n.
func (f Montgomery32) Decode(a Element) uint32 {
	return uint32((uint64(a.v) * uint64(f.rInv)) % uint64(f.n))
}

// Sample draws count uniform elements in [0, n) and encodes each into
// Montgomery form.
func (f Montgomery32) Sample(count int, rng io.Reader) ([]Element, error) {
	raw, err := sampleUint64(count, uint64(f.n), rng)
	if err != nil {
		return nil, err
	}
	out := make([]Element, count)
	for i, v := range raw {
		out[i] = f.Encode(uint32(v))
	}
	return out, nil
}
