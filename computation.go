package numeral

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Operation is an arithmetic operation recorded by a [Computation].
type Operation byte

const (
	OpAdd Operation = iota + 1
	OpSub           // reserved, never produced
	OpMul
	OpDiv // reserved, never produced
)

// String returns the mathematical symbol of the operation.
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	}
	return "?"
}

// Scalar is a non-negative machine integer operand.
// Its width guarantees that a digit multiplied by a scalar, plus a carry,
// never overflows uint64.
type Scalar uint32

// Add returns the (exact) sum s + n, which is equal to n + s.
func (s Scalar) Add(n Numeral) (Numeral, error) {
	return n.AddScalar(s)
}

// Mul returns the (exact) product s * n, which is equal to n * s.
func (s Scalar) Mul(n Numeral) (Numeral, error) {
	return n.MulScalar(s)
}

// Operand is the right-hand operand of a [Computation]:
// either a [Numeral] or a [Scalar].
type Operand struct {
	num      Numeral
	scalar   Scalar
	isScalar bool
}

// NumeralOperand returns an operand holding a numeral.
func NumeralOperand(n Numeral) Operand {
	return Operand{num: n}
}

// ScalarOperand returns an operand holding a scalar.
func ScalarOperand(s Scalar) Operand {
	return Operand{scalar: s, isScalar: true}
}

// IsNumeral returns true if the operand holds a numeral.
func (o Operand) IsNumeral() bool {
	return !o.isScalar
}

// Numeral returns the numeral held by the operand.
// The boolean is false if the operand holds a scalar.
func (o Operand) Numeral() (Numeral, bool) {
	if o.isScalar {
		return Numeral{}, false
	}
	return o.num, true
}

// Scalar returns the scalar held by the operand.
// The boolean is false if the operand holds a numeral.
func (o Operand) Scalar() (Scalar, bool) {
	if !o.isScalar {
		return 0, false
	}
	return o.scalar, true
}

// String returns the numeral with its base subscript, or the decimal scalar.
func (o Operand) String() string {
	if o.isScalar {
		return strconv.FormatUint(uint64(o.scalar), 10)
	}
	return o.num.String()
}

// Computation is an immutable record of how a numeral was derived:
// the operation, its operands and, for the multiplication of two numerals,
// the partial terms of the long multiplication.
//
// Operands may carry computations of their own, which forms a history of
// derivations.
// Every operand is created before the computation that refers to it,
// so the history has no cycles.
type Computation struct {
	op    Operation
	a     Numeral
	b     Operand
	terms []digits // nil unless a numeral was multiplied by a numeral
}

// Op returns the operation.
func (c *Computation) Op() Operation {
	return c.op
}

// A returns the left-hand operand.
func (c *Computation) A() Numeral {
	return c.a
}

// B returns the right-hand operand.
func (c *Computation) B() Operand {
	return c.b
}

// Terms returns a copy of the partial terms of the long multiplication,
// one per digit of B, least significant first.
// Every term is least-significant-first and already shifted by its position;
// the term of a zero digit is empty.
// Terms returns nil if the computation has no solution.
func (c *Computation) Terms() [][]int {
	if !c.HasSolution() {
		return nil
	}
	terms := make([][]int, len(c.terms))
	for i, t := range c.terms {
		terms[i] = t.ints()
	}
	return terms
}

// HasSolution returns true if the computation can be rendered as
// a long multiplication, that is if it multiplies two numerals.
func (c *Computation) HasSolution() bool {
	return c != nil && c.terms != nil
}

// solutionWidths returns the number of digit columns of the layout
// and the width of the base subscript.
func (c *Computation) solutionWidths() (width, sub int) {
	b, _ := c.b.Numeral()
	width = c.a.Prec() + b.Prec()
	sub = utf8.RuneCountInString(Subscript(c.a.base))
	return width, sub
}

// SolutionWidth returns the width in runes of the lines of [Computation.Solution],
// or 0 if the computation has no solution.
func (c *Computation) SolutionWidth() int {
	if !c.HasSolution() {
		return 0
	}
	width, sub := c.solutionWidths()
	return width + sub + 1
}

// Solution renders the long multiplication:
//
//	   12₃
//	×  21₃
//	──────
//	   12
//	+101
//	──────
//
// Lines are right-aligned.
// Every non-empty partial term is written most significant digit first and
// padded on the right by its position, so that its digits stay in their columns.
// Terms of zero digits produce no line.
// The boolean is false if the computation has no solution.
func (c *Computation) Solution() (string, bool) {
	if !c.HasSolution() {
		return "", false
	}
	width, sub := c.solutionWidths()
	rule := strings.Repeat("─", width+sub+1)

	lines := make([]string, 0, len(c.terms)+4)
	lines = append(lines,
		fmt.Sprintf(" %*s", width+sub, c.a.String()),
		fmt.Sprintf("%v%*s", c.op, width+sub, c.b.String()),
		rule,
	)
	first := true
	for i, t := range c.terms {
		if len(t) == 0 {
			continue
		}
		term := t[i:].text() + strings.Repeat(" ", i)
		sign := OpAdd.String()
		if first {
			sign = " "
			first = false
		}
		lines = append(lines, fmt.Sprintf("%v%*s", sign, width, term))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n"), true
}

// String returns "A op B", for example "12₃ × 21₃".
func (c *Computation) String() string {
	return fmt.Sprintf("%v %v %v", c.a, c.op, c.b)
}
