// Package problem implements exercises on positional numerals:
// conversions between bases and long multiplications.
// Problems are collected into sets that print as a numbered sheet and
// as a matching list of answers with worked solutions.
package problem

import (
	"fmt"
	"strings"

	"github.com/govalues/numeral"
)

// Problem is an exercise with a known answer.
type Problem interface {
	// String returns the prompt, for example "1234567₈ = ?₁₆".
	String() string
	// HasSolution returns true if the problem has a worked solution.
	HasSolution() bool
	// Solution returns the worked solution.
	// The boolean is false if the problem has none.
	Solution() (string, bool)
	// Answer returns the answer alone, for example "53977₁₆".
	Answer() string
	// WithAnswer returns the prompt completed with the answer,
	// for example "1234567₈ = 53977₁₆".
	WithAnswer() string
}

// Conversion is the problem of writing a numeral in another base.
type Conversion struct {
	a, b numeral.Numeral
}

// NewConversion returns the problem of converting a, written in base from,
// to base to.
func NewConversion(a string, from, to int) (*Conversion, error) {
	n, err := numeral.Parse(a, from)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", a, err)
	}
	m, err := n.Convert(to)
	if err != nil {
		return nil, fmt.Errorf("converting %v: %w", n, err)
	}
	return &Conversion{a: n, b: m}, nil
}

// A returns the numeral to convert.
func (c *Conversion) A() numeral.Numeral {
	return c.a
}

func (c *Conversion) String() string {
	return fmt.Sprintf("%v = ?%v", c.a, numeral.Subscript(c.b.Base()))
}

func (c *Conversion) HasSolution() bool {
	return false
}

func (c *Conversion) Solution() (string, bool) {
	return "", false
}

func (c *Conversion) Answer() string {
	return c.b.String()
}

func (c *Conversion) WithAnswer() string {
	return fmt.Sprintf("%v = %v", c.a, c.b)
}

// Multiplication is the problem of multiplying two numerals of the same base
// by hand.
type Multiplication struct {
	product numeral.Numeral
}

// NewMultiplication returns the problem of multiplying a by b,
// both written in the given base.
func NewMultiplication(a, b string, base int) (*Multiplication, error) {
	n, err := numeral.Parse(a, base)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", a, err)
	}
	m, err := numeral.Parse(b, base)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", b, err)
	}
	p, err := n.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("multiplying %v by %v: %w", n, m, err)
	}
	return &Multiplication{product: p}, nil
}

// Product returns the product together with its computation.
func (m *Multiplication) Product() numeral.Numeral {
	return m.product
}

func (m *Multiplication) String() string {
	return m.product.Computation().String()
}

func (m *Multiplication) HasSolution() bool {
	return true
}

func (m *Multiplication) Solution() (string, bool) {
	return m.product.Solution()
}

func (m *Multiplication) Answer() string {
	return m.product.String()
}

func (m *Multiplication) WithAnswer() string {
	return m.product.Answer()
}

// Set is an ordered list of problems.
type Set []Problem

// String returns the prompts numbered from 1, one per line.
func (s Set) String() string {
	lines := make([]string, len(s))
	for i, p := range s {
		lines[i] = fmt.Sprintf("%d) %v", i+1, p)
	}
	return strings.Join(lines, "\n")
}

// Answers returns the completed prompts numbered from 1, each followed by
// its worked solution if any, separated by blank lines.
func (s Set) Answers() string {
	blocks := make([]string, len(s))
	for i, p := range s {
		block := fmt.Sprintf("%d) %v", i+1, p.WithAnswer())
		if sol, ok := p.Solution(); ok {
			block += "\n" + sol
		}
		blocks[i] = block
	}
	return strings.Join(blocks, "\n\n")
}
