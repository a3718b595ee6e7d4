package numtheory

import (
	"fmt"

	"github.com/luxfi/tss/field"
)

// FFT2 runs an in-place radix-2 Cooley-Tukey FFT over data, using omega as
// the root of unity. len(data) must be a power of two, and omega must be a
// primitive root of unity of that order; this is a precondition callers
// must establish themselves (paramgen does so for the packed scheme).
func FFT2[E any](f field.Field[E], data []E, omega E) {
	fft2Rearrange(data)
	fft2Compute(f, data, omega)
}

// FFT2Inverse runs the inverse of FFT2: it transforms with omega's inverse
// and scales the result by len(data)^-1.
func FFT2Inverse[E any](f field.Field[E], data []E, omega E) error {
	omegaInv, err := f.Inv(omega)
	if err != nil {
		return fmt.Errorf("numtheory: %w", err)
	}
	lenInv, err := f.Inv(f.Encode(uint32(len(data))))
	if err != nil {
		return fmt.Errorf("numtheory: %w", err)
	}
	FFT2(f, data, omegaInv)
	for i := range data {
		data[i] = f.Mul(data[i], lenInv)
	}
	return nil
}

func fft2Rearrange[E any](data []E) {
	target := 0
	for pos := 0; pos < len(data); pos++ {
		if target > pos {
			data[target], data[pos] = data[pos], data[target]
		}
		mask := len(data) >> 1
		for target&mask != 0 {
			target &^= mask
			mask >>= 1
		}
		target |= mask
	}
}

func fft2Compute[E any](f field.Field[E], data []E, omega E) {
	depth := 0
	for 1<<uint(depth) < len(data) {
		step := 1 << uint(depth)
		jump := 2 * step
		factorStride := f.Pow(omega, uint32(len(data)/step/2))
		factor := f.One()
		for group := 0; group < step; group++ {
			for pair := group; pair < len(data); pair += jump {
				x := data[pair]
				y := f.Mul(data[pair+step], factor)

				data[pair] = f.Add(x, y)
				data[pair+step] = f.Sub(x, y)
			}
			factor = f.Mul(factor, factorStride)
		}
		depth++
	}
}

// FFT3 runs an in-place radix-3 Cooley-Tukey FFT over data, using omega as
// the root of unity. len(data) must be a power of three, and omega must be
// a primitive root of unity of that order.
func FFT3[E any](f field.Field[E], data []E, omega E) {
	fft3Rearrange(data)
	fft3Compute(f, data, omega)
}

// FFT3Inverse runs the inverse of FFT3.
func FFT3Inverse[E any](f field.Field[E], data []E, omega E) error {
	omegaInv, err := f.Inv(omega)
	if err != nil {
		return fmt.Errorf("numtheory: %w", err)
	}
	lenInv, err := f.Inv(f.Encode(uint32(len(data))))
	if err != nil {
		return fmt.Errorf("numtheory: %w", err)
	}
	FFT3(f, data, omegaInv)
	for i := range data {
		data[i] = f.Mul(data[i], lenInv)
	}
	return nil
}

// trigitsLen returns the number of base-3 digits needed to represent n.
func trigitsLen(n int) int {
	result := 1
	value := 3
	for value < n+1 {
		result++
		value *= 3
	}
	return result
}

func fft3Rearrange[E any](data []E) {
	if len(data) <= 1 {
		return
	}
	target := 0
	trigitsLenN := trigitsLen(len(data) - 1)
	trigits := make([]int, trigitsLenN)
	powers := make([]int, trigitsLenN)
	p := 1
	for i := 0; i < trigitsLenN; i++ {
		powers[trigitsLenN-1-i] = p
		p *= 3
	}

	for pos := 0; pos < len(data); pos++ {
		if target > pos {
			data[target], data[pos] = data[pos], data[target]
		}
		for pow := 0; pow < trigitsLenN; pow++ {
			if trigits[pow] < 2 {
				trigits[pow]++
				target += powers[pow]
				break
			}
			trigits[pow] = 0
			target -= 2 * powers[pow]
		}
	}
}

func fft3Compute[E any](f field.Field[E], data []E, omega E) {
	step := 1
	bigOmega := f.Pow(omega, uint32(len(data)/3))
	bigOmegaSq := f.Mul(bigOmega, bigOmega)
	for step < len(data) {
		jump := 3 * step
		factorStride := f.Pow(omega, uint32(len(data)/step/3))
		factor := f.One()
		for group := 0; group < step; group++ {
			factorSq := f.Mul(factor, factor)
			for pair := group; pair < len(data); pair += jump {
				x := data[pair]
				y := f.Mul(data[pair+step], factor)
				z := f.Mul(data[pair+2*step], factorSq)

				data[pair] = f.Add(f.Add(x, y), z)
				data[pair+step] = f.Add(f.Add(x, f.Mul(bigOmega, y)), f.Mul(bigOmegaSq, z))
				data[pair+2*step] = f.Add(f.Add(x, f.Mul(bigOmegaSq, y)), f.Mul(bigOmega, z))
			}
			factor = f.Mul(factor, factorStride)
		}
		step = jump
	}
}

// IsPowerOf reports whether n is an exact power of base (base >= 2).
func IsPowerOf(n, base int) bool {
	if n < 1 {
		return false
	}
	for n%base == 0 {
		n /= base
	}
	return n == 1
}
