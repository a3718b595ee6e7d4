package field

import (
	"fmt"
	"io"
	"math/big"

	"github.com/luxfi/tss"
)

// Big is the arbitrary-precision backend, backed by *big.Int. Unlike Naive
// and Montgomery32, elements are always stored in canonical [0, p) form, so
// Eq is plain structural equality.
type Big struct {
	p *big.Int
}

// NewBig constructs the big-integer backend over the prime p. p is copied,
// so the caller may reuse or mutate it afterwards.
func NewBig(p *big.Int) Big {
	return Big{p: new(big.Int).Set(p)}
}

// Prime returns the field's modulus.
func (f Big) Prime() *big.Int { return new(big.Int).Set(f.p) }

func (f Big) Zero() *big.Int { return big.NewInt(0) }
func (f Big) One() *big.Int  { return big.NewInt(1) }

func (f Big) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

func (f Big) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.p)
}

func (f Big) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

func (f Big) Pow(a *big.Int, e uint32) *big.Int {
	exp := new(big.Int).SetUint64(uint64(e))
	return new(big.Int).Exp(a, exp, f.p)
}

// Inv computes the extended Euclidean inverse of a mod p directly, rather
// than deferring to big.Int.ModInverse, to keep the algorithm's shape
// matching the other two backends' hand-rolled extended Euclidean paths.
func (f Big) Inv(a *big.Int) (*big.Int, error) {
	if new(big.Int).Mod(a, f.p).Sign() == 0 {
		return nil, fmt.Errorf("big: %w", tss.ErrInverseOfZero)
	}

	oldR, r := new(big.Int).Set(f.p), new(big.Int).Mod(a, f.p)
	oldS, s := big.NewInt(0), big.NewInt(1)

	quotient := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		quotient.Div(oldR, r)

		tmp.Set(r)
		r.Sub(oldR, new(big.Int).Mul(quotient, r))
		oldR.Set(tmp)

		tmp.Set(s)
		s.Sub(oldS, new(big.Int).Mul(quotient, s))
		oldS.Set(tmp)
	}

	inv := new(big.Int).Mod(oldS, f.p)
	if inv.Sign() < 0 {
		inv.Add(inv, f.p)
	}
	return inv, nil
}

func (f Big) Eq(a, b *big.Int) bool {
	return a.Cmp(b) == 0
}

func (f Big) Neq(a, b *big.Int) bool {
	return !f.Eq(a, b)
}

func (f Big) Encode(x uint32) *big.Int {
	return new(big.Int).Mod(new(big.Int).SetUint64(uint64(x)), f.p)
}

func (f Big) Decode(a *big.Int) uint32 {
	r := new(big.Int).Mod(a, f.p)
	return uint32(r.Uint64())
}

// Sample draws count uniform elements in [0, p) by rejection sampling over
// ceil(log2(p)) bits, reading entropy from rng.
func (f Big) Sample(count int, rng io.Reader) ([]*big.Int, error) {
	bitLen := f.p.BitLen()
	byteLen := (bitLen + 7) / 8
	out := make([]*big.Int, count)
	buf := make([]byte, byteLen)
	for i := 0; i < count; i++ {
		for {
			if _, err := io.ReadFull(rng, buf); err != nil {
				return nil, fmt.Errorf("%w: %v", tss.ErrRngFailure, err)
			}
			candidate := new(big.Int).SetBytes(buf)
			// Mask off excess high bits so the rejection rate stays below
			// 50% even when p is just above a power of two.
			candidate.Rsh(candidate, uint(byteLen*8-bitLen))
			if candidate.Cmp(f.p) < 0 {
				out[i] = candidate
				break
			}
		}
	}
	return out, nil
}
