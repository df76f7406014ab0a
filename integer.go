package numeral

import (
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// It holds the exact value of a numeral, which is never negative.
type bint big.Int

func newBint(x uint64) *bint {
	z := new(bint)
	z.setUint64(x)
	return z
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setUint64(x uint64) {
	(*big.Int)(z).SetUint64(x)
}

// uint64 converts z to uint64.
// The boolean is false if z cannot be represented as uint64.
func (z *bint) uint64() (uint64, bool) {
	x := (*big.Int)(z)
	if !x.IsUint64() {
		return 0, false
	}
	return x.Uint64(), true
}

// fma (Fused Multiplication and Addition) calculates z = x * base + d.
func (z *bint) fma(x *bint, base int, d uint8) {
	y := getBint()
	defer putBint(y)
	y.setUint64(uint64(base))
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
	y.setUint64(uint64(d))
	(*big.Int)(z).Add((*big.Int)(z), (*big.Int)(y))
}

// setDigits calculates z = d[n-1] * base^(n-1) + ... + d[1] * base + d[0]
// using Horner's method.
func (z *bint) setDigits(d digits, base int) {
	z.setUint64(0)
	for i := len(d) - 1; i >= 0; i-- {
		z.fma(z, base, d[i])
	}
}

// digits returns the normalized expansion of z in the given base.
// If z is negative, the result is unpredictable.
func (z *bint) digits(base int) digits {
	if z.sign() == 0 {
		return nil
	}
	x := getBint()
	defer putBint(x)
	x.setBint(z)
	y := getBint()
	defer putBint(y)
	y.setUint64(uint64(base))
	r := getBint()
	defer putBint(r)

	d := make(digits, 0, (*big.Int)(z).BitLen()+1)
	for x.sign() != 0 {
		(*big.Int)(x).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
		d = append(d, uint8((*big.Int)(r).Uint64()))
	}
	return d
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
