package numeral

import (
	"errors"
	"testing"
)

func TestFormatDigit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    int
			want byte
		}{
			{0, '0'},
			{9, '9'},
			{10, 'A'},
			{15, 'F'},
			{35, 'Z'},
		}
		for _, tt := range tests {
			got, err := FormatDigit(tt.d)
			if err != nil {
				t.Errorf("FormatDigit(%v) failed: %v", tt.d, err)
				continue
			}
			if got != tt.want {
				t.Errorf("FormatDigit(%v) = %q, want %q", tt.d, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, d := range []int{-1, 36, 100} {
			_, err := FormatDigit(d)
			var e *InvalidDigitError
			if !errors.As(err, &e) {
				t.Errorf("FormatDigit(%v) error = %v, want %T", d, err, e)
				continue
			}
			if e.Digit != d || e.Base != 0 {
				t.Errorf("FormatDigit(%v) error = %+v", d, *e)
			}
		}
	})
}

func TestFormatDigitBase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, base int
			want    byte
		}{
			{0, 2, '0'},
			{1, 2, '1'},
			{9, 10, '9'},
			{15, 16, 'F'},
			{35, 36, 'Z'},
		}
		for _, tt := range tests {
			got, err := FormatDigitBase(tt.d, tt.base)
			if err != nil {
				t.Errorf("FormatDigitBase(%v, %v) failed: %v", tt.d, tt.base, err)
				continue
			}
			if got != tt.want {
				t.Errorf("FormatDigitBase(%v, %v) = %q, want %q", tt.d, tt.base, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d, base int
			want    error
		}{
			"digit 1": {2, 2, ErrInvalidDigit},
			"digit 2": {10, 10, ErrInvalidDigit},
			"digit 3": {-1, 10, ErrInvalidDigit},
			"base 1":  {0, 1, ErrInvalidBase},
			"base 2":  {0, 37, ErrInvalidBase},
		}
		for name, tt := range tests {
			_, err := FormatDigitBase(tt.d, tt.base)
			if !errors.Is(err, tt.want) {
				t.Errorf("%s: FormatDigitBase(%v, %v) error = %v, want %v", name, tt.d, tt.base, err, tt.want)
			}
		}
	})
}

func TestParseDigit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			c    byte
			want int
		}{
			{'0', 0},
			{'9', 9},
			{'A', 10},
			{'a', 10},
			{'f', 15},
			{'Z', 35},
			{'z', 35},
		}
		for _, tt := range tests {
			got, err := ParseDigit(tt.c)
			if err != nil {
				t.Errorf("ParseDigit(%q) failed: %v", tt.c, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseDigit(%q) = %v, want %v", tt.c, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, c := range []byte{' ', '-', '/', ':', '@', '[', '`', '{', 0, 0xff} {
			_, err := ParseDigit(c)
			var e *InvalidDigitError
			if !errors.As(err, &e) {
				t.Errorf("ParseDigit(%q) error = %v, want %T", c, err, e)
				continue
			}
			if e.Symbol != c {
				t.Errorf("ParseDigit(%q) error = %+v", c, *e)
			}
		}
	})
}

func TestParseDigitBase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			c    byte
			base int
			want int
		}{
			{'1', 2, 1},
			{'7', 8, 7},
			{'f', 16, 15},
			{'Z', 36, 35},
		}
		for _, tt := range tests {
			got, err := ParseDigitBase(tt.c, tt.base)
			if err != nil {
				t.Errorf("ParseDigitBase(%q, %v) failed: %v", tt.c, tt.base, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseDigitBase(%q, %v) = %v, want %v", tt.c, tt.base, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			c    byte
			base int
			want error
		}{
			"digit 1":  {'2', 2, ErrInvalidDigit},
			"digit 2":  {'8', 8, ErrInvalidDigit},
			"digit 3":  {'g', 16, ErrInvalidDigit},
			"symbol 1": {'*', 16, ErrInvalidDigit},
			"base 1":   {'0', 0, ErrInvalidBase},
		}
		for name, tt := range tests {
			_, err := ParseDigitBase(tt.c, tt.base)
			if !errors.Is(err, tt.want) {
				t.Errorf("%s: ParseDigitBase(%q, %v) error = %v, want %v", name, tt.c, tt.base, err, tt.want)
			}
		}
	})
}

func TestDigitRoundTrip(t *testing.T) {
	for d := 0; d <= maxDigit; d++ {
		c, err := FormatDigit(d)
		if err != nil {
			t.Fatalf("FormatDigit(%v) failed: %v", d, err)
		}
		if s := symbol(uint8(d)); s != c {
			t.Errorf("symbol(%v) = %q, want %q", d, s, c)
		}
		got, err := ParseDigit(c)
		if err != nil || got != d {
			t.Errorf("ParseDigit(FormatDigit(%v)) = %v, %v", d, got, err)
		}
	}
}

func TestInvalidDigitError_Error(t *testing.T) {
	tests := []struct {
		err  *InvalidDigitError
		want string
	}{
		{&InvalidDigitError{Digit: 36}, "number 36 cannot be a digit in any positional numeral system: invalid digit"},
		{&InvalidDigitError{Digit: 2, Symbol: '2', Base: 2}, "character '2' cannot be a digit in the base-2 positional numeral system: invalid digit"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
