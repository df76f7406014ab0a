package numeral

import "fmt"

// MustNew is like [New] but panics if the base is invalid.
// It simplifies safe initialization of global variables holding numerals.
func MustNew(value uint64, base int) Numeral {
	n, err := New(value, base)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", value, base, err))
	}
	return n
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numerals.
func MustParse(s string, base int) Numeral {
	n, err := Parse(s, base)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q, %v) failed: %v", s, base, err))
	}
	return n
}

// MustNewFromDigits is like [NewFromDigits] but panics if a digit or the base is invalid.
func MustNewFromDigits(ds []int, base int) Numeral {
	n, err := NewFromDigits(ds, base)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromDigits(%v, %v) failed: %v", ds, base, err))
	}
	return n
}

// MustAdd is like [Numeral.Add] but panics if computing error.
func (n Numeral) MustAdd(m Numeral) Numeral {
	f, err := n.Add(m)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", m, err))
	}
	return f
}

// MustMul is like [Numeral.Mul] but panics if computing error.
func (n Numeral) MustMul(m Numeral) Numeral {
	f, err := n.Mul(m)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", m, err))
	}
	return f
}

// MustConvert is like [Numeral.Convert] but panics if the base is invalid.
func (n Numeral) MustConvert(base int) Numeral {
	f, err := n.Convert(base)
	if err != nil {
		panic(fmt.Sprintf("MustConvert(%v) failed: %v", base, err))
	}
	return f
}
