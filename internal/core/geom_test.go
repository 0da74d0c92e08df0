package core

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"negative coords", V(-1, -1), V(2, 3), 5},
		{"horizontal", V(10, 7), V(-5, 7), 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Dist(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist() = %v, expected %v", got, tc.expected)
			}
			if back := Dist(tc.b, tc.a); math.Abs(back-got) > 1e-9 {
				t.Errorf("Dist() (reversed) = %v, expected %v", back, got)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	v := V(1, 2).Add(V(3, 4))
	if v != V(4, 6) {
		t.Errorf("Add() = %v, expected {4 6}", v)
	}
	v = v.Sub(V(1, 1))
	if v != V(3, 5) {
		t.Errorf("Sub() = %v, expected {3 5}", v)
	}
	v = v.Scale(2)
	if v != V(6, 10) {
		t.Errorf("Scale() = %v, expected {6 10}", v)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
