package numeral

// digits is a least-significant-first vector of digits,
// where every digit is less than the base of its numeral.
// The normalized representation has no most-significant zeros,
// so the zero value of any base is the empty vector.
type digits []uint8

// vec is a least-significant-first vector of column values,
// which may exceed the base until the carry is propagated.
type vec []uint64

func (d digits) vec() vec {
	v := make(vec, len(d))
	for i, x := range d {
		v[i] = uint64(x)
	}
	return v
}

func (d digits) clone() digits {
	if len(d) == 0 {
		return nil
	}
	e := make(digits, len(d))
	copy(e, d)
	return e
}

func (d digits) ints() []int {
	s := make([]int, len(d))
	for i, x := range d {
		s[i] = int(x)
	}
	return s
}

// norm returns d without most-significant zeros.
func (d digits) norm() digits {
	i := len(d)
	for i > 0 && d[i-1] == 0 {
		i--
	}
	return d[:i]
}

// text returns the most-significant-first symbols of d, or "0" for an empty vector.
func (d digits) text() string {
	if len(d) == 0 {
		return "0"
	}
	buf := make([]byte, len(d))
	for i, x := range d {
		buf[len(d)-1-i] = symbol(x)
	}
	return string(buf)
}

// sumColumns calculates the position-wise sum of vectors aligned
// at their least-significant ends.
// Carries are not propagated.
func sumColumns(ds ...digits) vec {
	n := 0
	for _, d := range ds {
		n = max(n, len(d))
	}
	v := make(vec, n)
	for _, d := range ds {
		for i, x := range d {
			v[i] += uint64(x)
		}
	}
	return v
}

// propagateCarry reduces v to digits in the given base.
// At every position it emits (carry + f(x)) mod base and carries the quotient;
// when v is exhausted the remaining carry is flushed digit by digit.
// If f is nil, the identity is used.
// The result is not normalized.
func propagateCarry(v vec, carry uint64, base int, f func(uint64) uint64) digits {
	b := uint64(base)
	d := make(digits, 0, len(v)+2)
	for _, x := range v {
		if f != nil {
			x = f(x)
		}
		carry += x
		d = append(d, uint8(carry%b))
		carry /= b
	}
	for carry != 0 {
		d = append(d, uint8(carry%b))
		carry /= b
	}
	return d
}

// scaleAndShift calculates d * factor * base^shift.
// This is one partial term of a long multiplication.
// The result is not normalized.
func scaleAndShift(d digits, factor uint64, base, shift int) digits {
	p := propagateCarry(d.vec(), 0, base, func(x uint64) uint64 { return x * factor })
	z := make(digits, shift, shift+len(p))
	return append(z, p...)
}
