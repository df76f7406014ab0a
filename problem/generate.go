package problem

import (
	"fmt"
	"math/rand/v2"

	"github.com/govalues/numeral"
)

const (
	defaultMinBase   = 2
	defaultMaxBase   = 16
	defaultMaxDigits = 6
	minDigits        = 2
)

// Generator produces random problems.
// Generators with the same seed and options produce the same problems.
// A generator is not safe for concurrent use.
type Generator struct {
	rng       *rand.Rand
	minBase   int
	maxBase   int
	maxDigits int
}

// Option configures a [Generator].
type Option func(*Generator)

// WithBases limits the bases of generated problems to [lo, hi].
func WithBases(lo, hi int) Option {
	return func(g *Generator) {
		g.minBase, g.maxBase = lo, hi
	}
}

// WithMaxDigits limits the number of digits of generated numerals.
func WithMaxDigits(n int) Option {
	return func(g *Generator) {
		g.maxDigits = n
	}
}

// NewGenerator returns a generator seeded with seed.
// By default, bases are drawn from [2, 16] and numerals have 2 to 6 digits.
func NewGenerator(seed uint64, opts ...Option) (*Generator, error) {
	g := &Generator{
		rng:       rand.New(rand.NewPCG(seed, seed)),
		minBase:   defaultMinBase,
		maxBase:   defaultMaxBase,
		maxDigits: defaultMaxDigits,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.minBase < numeral.MinBase || g.maxBase > numeral.MaxBase || g.minBase >= g.maxBase {
		return nil, fmt.Errorf("bases [%v, %v] must be a range of at least two bases within [%v, %v]",
			g.minBase, g.maxBase, numeral.MinBase, numeral.MaxBase)
	}
	if g.maxDigits < minDigits {
		return nil, fmt.Errorf("maximum number of digits %v must be at least %v", g.maxDigits, minDigits)
	}
	return g, nil
}

// base returns a random base within the range of the generator.
func (g *Generator) base() int {
	return g.minBase + g.rng.IntN(g.maxBase-g.minBase+1)
}

// text returns the symbols of a random numeral with n digits in the base.
// The most significant digit is never zero.
func (g *Generator) text(n, base int) string {
	ds := make([]int, n)
	for i := range ds {
		ds[i] = g.rng.IntN(base)
	}
	ds[n-1] = 1 + g.rng.IntN(base-1)
	return numeral.MustNewFromDigits(ds, base).Text()
}

// digits returns a random number of digits within [lo, hi].
func (g *Generator) digits(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// Conversion returns a random conversion problem between two different bases.
func (g *Generator) Conversion() *Conversion {
	from := g.base()
	to := g.base()
	for to == from {
		to = g.base()
	}
	a := g.text(g.digits(minDigits, g.maxDigits), from)
	p, err := NewConversion(a, from, to)
	if err != nil {
		panic(fmt.Sprintf("Generator.Conversion() failed: %v", err))
	}
	return p
}

// Multiplication returns a random multiplication problem.
// The multiplier never has more digits than the multiplicand.
func (g *Generator) Multiplication() *Multiplication {
	base := g.base()
	n := g.digits(minDigits, g.maxDigits)
	m := g.digits(minDigits, min(n, minDigits+1))
	p, err := NewMultiplication(g.text(n, base), g.text(m, base), base)
	if err != nil {
		panic(fmt.Sprintf("Generator.Multiplication() failed: %v", err))
	}
	return p
}

// Set returns n problems: conversions first, then multiplications.
// For an odd n there is one more conversion than multiplications.
func (g *Generator) Set(n int) Set {
	s := make(Set, 0, max(n, 0))
	for i := 0; i < n; i++ {
		if i < (n+1)/2 {
			s = append(s, g.Conversion())
		} else {
			s = append(s, g.Multiplication())
		}
	}
	return s
}
