/*
Package numeral implements immutable non-negative integers in positional
numeral systems with bases from 2 to 36.
Arithmetic is performed digit by digit, the way it is done by hand,
and every result remembers how it was derived, so that a long multiplication
can be printed step by step next to its answer.

# Representation

[Numeral] is a struct with four views of the same number:

  - Base: an integer from [MinBase] to [MaxBase].
  - Digits: a sequence of digits stored least significant first.
    Every digit is less than the base.
    The sequence never ends with a zero, so 0 has no digits at all.
  - Value: the exact value as an arbitrary-precision integer.
    There is no upper limit on the number of digits.
  - Text: the digit symbols written most significant first,
    using '0'-'9' for values 0 to 9 and 'A'-'Z' for values 10 to 35.
    The text of 0 is "0".

The numerical value of a numeral is calculated as:

	Digits[n-1] * Base^(n-1) + ... + Digits[1] * Base + Digits[0]

Numerals of different bases are never equal, even if their values are.
For example, 12₁₀ and C₁₆ have the same value but are different numerals.

# Conversions

The package provides functions for creating numerals:

  - from a machine integer: [New].
  - from an arbitrary-precision integer: [NewFromBigInt].
  - from a string of digit symbols: [Parse].
  - from a vector of digits: [NewFromDigits].

All three kinds of input produce the same numeral for the same number.
[Numeral.Convert] rewrites a numeral in another base,
and [Numeral.String] appends the base as a Unicode subscript, as in 1022₃.

# Operations

Numerals support the following operations:

  - [Numeral.Add], [Numeral.AddScalar]: addition with carry.
  - [Numeral.Mul], [Numeral.MulScalar]: long multiplication.
  - [Numeral.Lsh], [Numeral.Rsh]: multiplication and division by powers of the base.
  - [Numeral.Cmp], [Numeral.Equal]: comparison.

Addition and multiplication are carried out in two steps:

 1. Digits are combined column by column into a vector whose entries
    may exceed the base.

 2. The carry is propagated from the least significant column upwards,
    leaving the remainder in each column.

For the multiplication of two numerals, step 1 sums the partial terms:
one per digit of the multiplier, equal to the multiplicand times the digit,
shifted by the position of the digit.
The terms are kept in a [Computation] attached to the product,
and [Computation.Solution] renders them as a long multiplication:

	   12₃
	×  21₃
	──────
	   12
	+101
	──────
	 1022₃

# Errors

All functions and methods are panic-free and pure, except those prefixed
with Must.
Errors are returned in the following cases:

  - Invalid Base.
    A base outside [MinBase, MaxBase] results in an [InvalidBaseError].

  - Invalid Digit.
    A digit value outside [0, 35], a symbol outside [0-9A-Za-z], or a digit
    that is not less than the base results in an [InvalidDigitError].

  - Different Bases.
    Adding, multiplying or comparing numerals of different bases results in
    a [DifferentBasesError].
    Numerals are never converted implicitly.

Every error type wraps a sentinel error ([ErrInvalidBase], [ErrInvalidDigit],
[ErrDifferentBases]), so both [errors.Is] and [errors.As] can be used.

Subtraction and division are not supported.
*/
package numeral
