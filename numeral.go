package numeral

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// Numeral type is a representation of a non-negative integer in a positional
// numeral system with a base from [MinBase] to [MaxBase].
// It is immutable and designed to be safe for concurrent use by multiple goroutines.
//
// A numeral keeps four views of the same number:
//
//   - Base: the radix of the numeral system.
//   - Digits: a least-significant-first sequence of digits, each less than the base.
//   - Value: the exact integer value with unbounded precision.
//   - Text: the most-significant-first sequence of digit symbols.
//
// Numerals produced by arithmetic operations also keep the [Computation]
// that derived them.
//
// The zero value is not a valid numeral, since it has no base.
// Use [New], [NewFromBigInt], [Parse] or [NewFromDigits] to create numerals.
type Numeral struct {
	base  int
	digs  digits       // normalized, least significant digit first
	value *bint        // never mutated after construction
	text  string       // canonical, most significant digit first
	comp  *Computation // nil for numerals built from literals
}

// newNumeral builds a numeral from digits that are known to be valid for the base.
func newNumeral(d digits, base int, comp *Computation) Numeral {
	d = d.norm()
	v := new(bint)
	v.setDigits(d, base)
	return Numeral{
		base:  base,
		digs:  d,
		value: v,
		text:  d.text(),
		comp:  comp,
	}
}

// newNumeralFromBint builds a numeral from a non-negative value.
func newNumeralFromBint(v *bint, base int) Numeral {
	d := v.digits(base)
	return Numeral{
		base:  base,
		digs:  d,
		value: v,
		text:  d.text(),
	}
}

// New returns a numeral equal to value in the given base.
//
// New returns an [InvalidBaseError] if base is outside [MinBase, MaxBase].
func New(value uint64, base int) (Numeral, error) {
	if err := checkBase(base); err != nil {
		return Numeral{}, err
	}
	return newNumeralFromBint(newBint(value), base), nil
}

// NewFromBigInt returns a numeral equal to value in the given base.
// The value is copied, so it can be modified after the call.
//
// NewFromBigInt returns an error if:
//   - base is outside [MinBase, MaxBase];
//   - value is nil or negative.
func NewFromBigInt(value *big.Int, base int) (Numeral, error) {
	if err := checkBase(base); err != nil {
		return Numeral{}, err
	}
	if value == nil || value.Sign() < 0 {
		return Numeral{}, fmt.Errorf("NewFromBigInt(%v): %w", value, ErrNegative)
	}
	v := new(bint)
	v.setBint((*bint)(value))
	return newNumeralFromBint(v, base), nil
}

// Parse converts a string of digit symbols to a numeral in the given base.
// The string is read from the most significant digit to the least significant one.
// Symbols are case-insensitive, and leading zeros are ignored.
// An empty string represents 0.
//
//	digit  ::= '0' | ... | '9' | 'A' | ... | 'Z' | 'a' | ... | 'z'
//	number ::= { digit }
//
// Parse returns error:
//   - if base is outside [MinBase, MaxBase];
//   - if any symbol is not a digit or its value is not less than base.
func Parse(s string, base int) (Numeral, error) {
	if err := checkBase(base); err != nil {
		return Numeral{}, err
	}
	d := make(digits, len(s))
	for i := 0; i < len(s); i++ {
		x, err := ParseDigitBase(s[i], base)
		if err != nil {
			return Numeral{}, err
		}
		d[len(s)-1-i] = uint8(x)
	}
	return newNumeral(d, base, nil), nil
}

// NewFromDigits returns a numeral with the given least-significant-first digits.
// The slice is copied, and most-significant zeros are dropped.
//
// NewFromDigits returns error:
//   - if base is outside [MinBase, MaxBase];
//   - if any digit is negative or not less than base.
func NewFromDigits(ds []int, base int) (Numeral, error) {
	if err := checkBase(base); err != nil {
		return Numeral{}, err
	}
	d := make(digits, len(ds))
	for i, x := range ds {
		if _, err := FormatDigitBase(x, base); err != nil {
			return Numeral{}, err
		}
		d[i] = uint8(x)
	}
	return newNumeral(d, base, nil), nil
}

// IsValid returns true if n was created by one of the constructors
// or operations of this package.
func (n Numeral) IsValid() bool {
	return checkBase(n.base) == nil && n.value != nil
}

func (n Numeral) valid() error {
	if !n.IsValid() {
		return &InvalidBaseError{Base: n.base}
	}
	return nil
}

// Base returns the base of the numeral system of n.
func (n Numeral) Base() int {
	return n.base
}

// Digits returns a copy of the least-significant-first digits of n.
// The digits of 0 are empty.
func (n Numeral) Digits() []int {
	return n.digs.ints()
}

// Prec returns the number of digits of n.
// Prec assumes that 0 has no digits.
func (n Numeral) Prec() int {
	return len(n.digs)
}

// Text returns the digit symbols of n without the base.
func (n Numeral) Text() string {
	return n.text
}

// BigInt returns a copy of the value of n.
func (n Numeral) BigInt() *big.Int {
	z := new(big.Int)
	if n.value != nil {
		z.Set((*big.Int)(n.value))
	}
	return z
}

// Uint64 returns the value of n as uint64.
// The boolean is false if the value does not fit.
func (n Numeral) Uint64() (uint64, bool) {
	if n.value == nil {
		return 0, true
	}
	return n.value.uint64()
}

// IsZero returns true if n == 0.
func (n Numeral) IsZero() bool {
	return len(n.digs) == 0
}

// Computation returns the computation that produced n, or nil
// if n was not produced by an arithmetic operation.
func (n Numeral) Computation() *Computation {
	return n.comp
}

// HasComputation returns true if n was produced by an arithmetic operation.
func (n Numeral) HasComputation() bool {
	return n.comp != nil
}

// String method implements the [fmt.Stringer] interface and returns
// the digit symbols of n followed by its base in Unicode subscript digits,
// for example "29CD7₁₆".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Numeral) String() string {
	if !n.IsValid() {
		return "<invalid>"
	}
	return n.text + Subscript(n.base)
}

// Subscript returns the decimal representation of x in Unicode subscript digits,
// as [Numeral.String] writes the base.
func Subscript(x int) string {
	if x == 0 {
		return "₀"
	}
	var buf [20]rune
	pos := len(buf)
	for x > 0 {
		pos--
		buf[pos] = '₀' + rune(x%10)
		x /= 10
	}
	return string(buf[pos:])
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v:  29CD7₁₆
//	%q:     "29CD7₁₆"
//	%d:      171223
//	%b:      101001110011010111
//	%o:      516327
//	%x, %X:  29cd7, 29CD7
//
// The '-' flag and the width are supported by all verbs.
// The width is measured in runes.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Numeral) Format(state fmt.State, verb rune) {
	v := (*big.Int)(n.value)
	if v == nil {
		v = new(big.Int)
	}

	var s string
	switch verb {
	case 's', 'v':
		s = n.String()
	case 'q':
		s = `"` + n.String() + `"`
	case 'd':
		s = v.Text(10)
	case 'b':
		s = v.Text(2)
	case 'o':
		s = v.Text(8)
	case 'x':
		s = v.Text(16)
	case 'X':
		s = strings.ToUpper(v.Text(16))
	default:
		fmt.Fprintf(state, "%%!%c(numeral.Numeral=%s)", verb, n.String())
		return
	}

	// Padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok {
		if pad := w - utf8.RuneCountInString(s); pad > 0 {
			if state.Flag('-') {
				tspaces = pad
			} else {
				lspaces = pad
			}
		}
	}
	state.Write([]byte(strings.Repeat(" ", lspaces)))
	state.Write([]byte(s))
	state.Write([]byte(strings.Repeat(" ", tspaces)))
}

// Equal returns true if n and m have the same base and the same value.
// Numerals of different bases are never equal, even if their values are.
func (n Numeral) Equal(m Numeral) bool {
	if n.base != m.base {
		return false
	}
	if n.value == nil || m.value == nil {
		return n.value == m.value
	}
	return n.value.cmp(m.value) == 0
}

// Cmp compares numerals of the same base and returns:
//
//	-1 if n < m
//	 0 if n == m
//	+1 if n > m
//
// Cmp returns a [DifferentBasesError] if the bases of n and m are not equal.
func (n Numeral) Cmp(m Numeral) (int, error) {
	if err := n.checkOperand(m); err != nil {
		return 0, err
	}
	return n.value.cmp(m.value), nil
}

func (n Numeral) checkOperand(m Numeral) error {
	if err := n.valid(); err != nil {
		return err
	}
	if err := m.valid(); err != nil {
		return err
	}
	if n.base != m.base {
		return &DifferentBasesError{Base1: n.base, Base2: m.base}
	}
	return nil
}

// Add returns the (exact) sum n + m.
// The sum is computed column by column on the digits of n and m,
// and the result keeps a [Computation] with both operands.
//
// Add returns an error if the bases of n and m are not equal.
func (n Numeral) Add(m Numeral) (Numeral, error) {
	if err := n.checkOperand(m); err != nil {
		return Numeral{}, err
	}
	d := propagateCarry(sumColumns(n.digs, m.digs), 0, n.base, nil)
	c := &Computation{op: OpAdd, a: n, b: NumeralOperand(m)}
	return newNumeral(d, n.base, c), nil
}

// AddScalar returns the (exact) sum n + s.
// The scalar enters the digits of n as the initial carry.
func (n Numeral) AddScalar(s Scalar) (Numeral, error) {
	if err := n.valid(); err != nil {
		return Numeral{}, err
	}
	d := propagateCarry(n.digs.vec(), uint64(s), n.base, nil)
	c := &Computation{op: OpAdd, a: n, b: ScalarOperand(s)}
	return newNumeral(d, n.base, c), nil
}

// Mul returns the (exact) product n * m computed by long multiplication.
// Every non-zero digit of m at position i contributes the partial term
// n * digit * base^i, and the terms are summed column by column.
// The result keeps a [Computation] with the partial terms, so that
// the derivation can be rendered with [Computation.Solution].
//
// Mul returns an error if the bases of n and m are not equal.
func (n Numeral) Mul(m Numeral) (Numeral, error) {
	if err := n.checkOperand(m); err != nil {
		return Numeral{}, err
	}
	terms := make([]digits, len(m.digs))
	for i, x := range m.digs {
		if x == 0 || n.IsZero() {
			continue // zero term keeps its position
		}
		terms[i] = scaleAndShift(n.digs, uint64(x), n.base, i)
	}
	d := propagateCarry(sumColumns(terms...), 0, n.base, nil)
	c := &Computation{op: OpMul, a: n, b: NumeralOperand(m), terms: terms}
	return newNumeral(d, n.base, c), nil
}

// MulScalar returns the (exact) product n * s.
// The result keeps a [Computation] without partial terms.
func (n Numeral) MulScalar(s Scalar) (Numeral, error) {
	if err := n.valid(); err != nil {
		return Numeral{}, err
	}
	d := scaleAndShift(n.digs, uint64(s), n.base, 0)
	c := &Computation{op: OpMul, a: n, b: ScalarOperand(s)}
	return newNumeral(d, n.base, c), nil
}

// Lsh (Left Shift) returns n * base^shift by prepending zero digits.
// If shift is negative, Lsh is equivalent to [Numeral.Rsh] with -shift.
// The result has no computation.
func (n Numeral) Lsh(shift int) Numeral {
	switch {
	case !n.IsValid():
		return n
	case shift < 0:
		return n.Rsh(-shift)
	}
	d := make(digits, shift, shift+len(n.digs))
	d = append(d, n.digs...)
	return newNumeral(d, n.base, nil)
}

// Rsh (Right Shift) returns ⌊n / base^shift⌋ by dropping the least significant digits.
// If shift is negative, Rsh is equivalent to [Numeral.Lsh] with -shift.
// The result has no computation.
func (n Numeral) Rsh(shift int) Numeral {
	switch {
	case !n.IsValid():
		return n
	case shift < 0:
		return n.Lsh(-shift)
	case shift >= len(n.digs):
		return newNumeral(nil, n.base, nil)
	}
	return newNumeral(n.digs[shift:].clone(), n.base, nil)
}

// Convert returns n in the given base.
// If base is equal to the base of n, n itself is returned.
//
// Convert returns an [InvalidBaseError] if base is outside [MinBase, MaxBase].
func (n Numeral) Convert(base int) (Numeral, error) {
	if err := checkBase(base); err != nil {
		return Numeral{}, err
	}
	if err := n.valid(); err != nil {
		return Numeral{}, err
	}
	if base == n.base {
		return n, nil
	}
	return newNumeralFromBint(n.value, base), nil
}

// Solution returns the long multiplication layout of the computation of n
// followed by n itself, aligned under the layout.
// The boolean is false if n has no such layout, see [Computation.HasSolution].
func (n Numeral) Solution() (string, bool) {
	if n.comp == nil || !n.comp.HasSolution() {
		return "", false
	}
	s, _ := n.comp.Solution()
	return s + "\n" + fmt.Sprintf("%*s", n.comp.SolutionWidth(), n.String()), true
}

// Answer returns "A op B = n" if n has a computation, or just n otherwise.
func (n Numeral) Answer() string {
	if n.comp == nil {
		return n.String()
	}
	return n.comp.String() + " = " + n.String()
}
