package engine

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec
		want Vec
	}{
		{"add", Vec{1, 2}.Add(Vec{3, -4}), Vec{4, -2}},
		{"add zero", Vec{1.5, -2.5}.Add(Vec{}), Vec{1.5, -2.5}},
		{"sub", Vec{5, 5}.Sub(Vec{2, 7}), Vec{3, -2}},
		{"scale", Vec{2, -3}.Scale(2.5), Vec{5, -7.5}},
		{"scale negative", Vec{2, -3}.Scale(-1), Vec{-2, 3}},
		{"ortho clockwise", Vec{3, 4}.Ortho(), Vec{4, -3}},
		{"ortho twice negates", Vec{3, 4}.Ortho().Ortho(), Vec{-3, -4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestVecLen(t *testing.T) {
	tests := []struct {
		v    Vec
		want float64
	}{
		{Vec{3, 4}, 5},
		{Vec{0, 0}, 0},
		{Vec{-3, -4}, 5},
		{Vec{2.5, -3.5}, math.Sqrt(2.5*2.5 + 3.5*3.5)},
	}

	for _, tc := range tests {
		if got := tc.v.Len(); got != tc.want {
			t.Errorf("Len(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestVecNaNPropagates(t *testing.T) {
	v := Vec{math.NaN(), 1}.Add(Vec{1, 1})
	if !math.IsNaN(v.X) {
		t.Errorf("NaN should propagate through Add, got %v", v.X)
	}
	if !math.IsNaN(v.Len()) {
		t.Error("NaN should propagate through Len")
	}
}
