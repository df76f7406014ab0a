package numeral

const (
	MinBase  = 2  // minimum base of a positional numeral system
	MaxBase  = 36 // maximum base, limited by the number of digit symbols
	maxDigit = MaxBase - 1
)

// FormatDigit returns the symbol of a digit value.
// Values from 0 to 9 map to '0'-'9', values from 10 to 35 map to 'A'-'Z'.
//
// FormatDigit returns an [InvalidDigitError] if d is outside [0, 35].
func FormatDigit(d int) (byte, error) {
	switch {
	case 0 <= d && d <= 9:
		return byte(d) + '0', nil
	case 10 <= d && d <= maxDigit:
		return byte(d-10) + 'A', nil
	}
	return 0, &InvalidDigitError{Digit: d}
}

// FormatDigitBase is like [FormatDigit], but it also returns an error
// if d is not less than base.
func FormatDigitBase(d, base int) (byte, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	if d >= base {
		return 0, &InvalidDigitError{Digit: d, Base: base}
	}
	return FormatDigit(d)
}

// ParseDigit returns the value of a digit symbol.
// Letters are case-insensitive.
//
// ParseDigit returns an [InvalidDigitError] if c is not in [0-9A-Za-z].
func ParseDigit(c byte) (int, error) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), nil
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10, nil
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10, nil
	}
	return 0, &InvalidDigitError{Symbol: c}
}

// ParseDigitBase is like [ParseDigit], but it also returns an error
// if the value of c is not less than base.
func ParseDigitBase(c byte, base int) (int, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	d, err := ParseDigit(c)
	if err != nil {
		return 0, err
	}
	if d >= base {
		return 0, &InvalidDigitError{Digit: d, Symbol: c, Base: base}
	}
	return d, nil
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return &InvalidBaseError{Base: base}
	}
	return nil
}

// symbol returns the symbol of a digit that is known to be valid.
func symbol(d uint8) byte {
	if d < 10 {
		return d + '0'
	}
	return d - 10 + 'A'
}
