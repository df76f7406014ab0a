package numeral

import (
	"slices"
	"testing"
)

func TestSumColumns(t *testing.T) {
	tests := []struct {
		ds   []digits
		want vec
	}{
		{nil, vec{}},
		{[]digits{{}}, vec{}},
		{[]digits{{1, 2}}, vec{1, 2}},
		{[]digits{{9, 9}, {1}}, vec{10, 9}},
		{[]digits{{1}, {}, {0, 0, 5}}, vec{1, 0, 5}},
		{[]digits{{35, 35}, {35, 35}, {35}}, vec{105, 70}},
	}
	for _, tt := range tests {
		got := sumColumns(tt.ds...)
		if !slices.Equal(got, tt.want) {
			t.Errorf("sumColumns(%v) = %v, want %v", tt.ds, got, tt.want)
		}
	}
}

func TestPropagateCarry(t *testing.T) {
	double := func(x uint64) uint64 { return 2 * x }
	tests := []struct {
		v     vec
		carry uint64
		base  int
		f     func(uint64) uint64
		want  digits
	}{
		{vec{}, 0, 10, nil, digits{}},
		{vec{}, 123, 10, nil, digits{3, 2, 1}},
		{vec{10, 9}, 0, 10, nil, digits{0, 0, 1}},
		{vec{9, 9, 9}, 1, 10, nil, digits{0, 0, 0, 1}},
		{vec{105, 70}, 0, 36, nil, digits{33, 0, 2}},
		{vec{2, 1}, 0, 3, double, digits{1, 0, 1}},
		{vec{0, 0}, 0, 10, nil, digits{0, 0}},
	}
	for _, tt := range tests {
		got := propagateCarry(tt.v, tt.carry, tt.base, tt.f)
		if !slices.Equal(got, tt.want) {
			t.Errorf("propagateCarry(%v, %v, %v) = %v, want %v", tt.v, tt.carry, tt.base, got, tt.want)
		}
	}
}

func TestScaleAndShift(t *testing.T) {
	tests := []struct {
		d      digits
		factor uint64
		base   int
		shift  int
		want   digits
	}{
		{digits{2, 1}, 1, 3, 0, digits{2, 1}},
		{digits{2, 1}, 2, 3, 1, digits{0, 1, 0, 1}},
		{digits{3, 2, 1}, 5, 10, 0, digits{5, 1, 6}},
		{digits{3, 2, 1}, 0, 10, 0, digits{0, 0, 0}},
		{digits{}, 7, 10, 2, digits{0, 0}},
		{digits{15, 15}, 15, 16, 1, digits{0, 1, 15, 14}},
	}
	for _, tt := range tests {
		got := scaleAndShift(tt.d, tt.factor, tt.base, tt.shift)
		if !slices.Equal(got, tt.want) {
			t.Errorf("scaleAndShift(%v, %v, %v, %v) = %v, want %v", tt.d, tt.factor, tt.base, tt.shift, got, tt.want)
		}
	}
}

func TestDigits_Norm(t *testing.T) {
	tests := []struct {
		d    digits
		want digits
	}{
		{nil, digits{}},
		{digits{0}, digits{}},
		{digits{0, 0, 0}, digits{}},
		{digits{1, 0, 0}, digits{1}},
		{digits{0, 0, 1}, digits{0, 0, 1}},
	}
	for _, tt := range tests {
		got := tt.d.norm()
		if !slices.Equal(got, tt.want) {
			t.Errorf("%v.norm() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDigits_Text(t *testing.T) {
	tests := []struct {
		d    digits
		want string
	}{
		{nil, "0"},
		{digits{2, 2, 0, 1}, "1022"},
		{digits{7, 13, 12, 9, 2}, "29CD7"},
		{digits{35}, "Z"},
	}
	for _, tt := range tests {
		if got := tt.d.text(); got != tt.want {
			t.Errorf("%v.text() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
