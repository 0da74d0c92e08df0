package core

import "testing"

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(42); got != 42 {
		t.Errorf("ResolveSeed(42) = %d, expected 42", got)
	}

	a, b := ResolveSeed(0), ResolveSeed(0)
	if a == 0 || b == 0 {
		t.Errorf("ResolveSeed(0) = %d, %d, expected non-zero seeds", a, b)
	}
	if a == b {
		t.Errorf("ResolveSeed(0) returned %d twice, expected distinct seeds", a)
	}
}
