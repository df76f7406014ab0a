package numeral

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBase    = errors.New("invalid base")
	ErrInvalidDigit   = errors.New("invalid digit")
	ErrDifferentBases = errors.New("different bases")
	ErrNegative       = errors.New("negative value")
)

// InvalidBaseError is returned when a base is outside [MinBase, MaxBase].
type InvalidBaseError struct {
	Base int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("number %v cannot be a numeral system base: %v", e.Base, ErrInvalidBase)
}

func (e *InvalidBaseError) Unwrap() error {
	return ErrInvalidBase
}

// InvalidDigitError is returned when a digit value or symbol cannot be used
// as a digit.
// Symbol is 0 if the digit was given as a value.
// Base is 0 if the digit is invalid regardless of the base.
type InvalidDigitError struct {
	Digit  int
	Symbol byte
	Base   int
}

func (e *InvalidDigitError) Error() string {
	var what, where string
	if e.Symbol != 0 {
		what = fmt.Sprintf("character %q", e.Symbol)
	} else {
		what = fmt.Sprintf("number %v", e.Digit)
	}
	if e.Base != 0 {
		where = fmt.Sprintf("the base-%v", e.Base)
	} else {
		where = "any"
	}
	return fmt.Sprintf("%v cannot be a digit in %v positional numeral system: %v", what, where, ErrInvalidDigit)
}

func (e *InvalidDigitError) Unwrap() error {
	return ErrInvalidDigit
}

// DifferentBasesError is returned when a binary operation is applied to
// numerals of unequal bases.
type DifferentBasesError struct {
	Base1, Base2 int
}

func (e *DifferentBasesError) Error() string {
	return fmt.Sprintf("operations require numerals with equal bases (base1=%v, base2=%v): %v", e.Base1, e.Base2, ErrDifferentBases)
}

func (e *DifferentBasesError) Unwrap() error {
	return ErrDifferentBases
}
