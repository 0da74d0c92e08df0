package sim

import "testing"

func TestPoolAddRemove(t *testing.T) {
	var p Pool[int]
	a := p.Add(1)
	b := p.Add(2)
	p.Add(3)

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", p.Len())
	}

	p.Remove(b)
	if p.Len() != 2 {
		t.Errorf("Len() after Remove = %d, expected 2", p.Len())
	}
	if _, ok := p.Get(b); ok {
		t.Error("Get() on removed slot should fail")
	}

	// Removing twice is a no-op
	p.Remove(b)
	p.Remove(-1)
	p.Remove(100)
	if p.Len() != 2 {
		t.Errorf("Len() after redundant Remove = %d, expected 2", p.Len())
	}

	c := p.Add(4)
	if c != b {
		t.Errorf("Add() reused slot %d, expected freed slot %d", c, b)
	}
	if v, ok := p.Get(a); !ok || *v != 1 {
		t.Errorf("Get(%d) = %v, %v, expected 1, true", a, v, ok)
	}
}

func TestPoolEachRemove(t *testing.T) {
	var p Pool[int]
	for i := range 10 {
		p.Add(i)
	}

	p.Each(func(i int, v *int) {
		if *v%2 == 0 {
			p.Remove(i)
		}
	})

	items := p.Items()
	if len(items) != 5 {
		t.Fatalf("Items() len = %d, expected 5", len(items))
	}
	for _, v := range items {
		if v%2 == 0 {
			t.Errorf("even value %d survived removal", v)
		}
	}
}

func TestPoolEmpty(t *testing.T) {
	var p Pool[string]
	calls := 0
	p.Each(func(int, *string) { calls++ })
	if calls != 0 {
		t.Errorf("Each() on empty pool called fn %d times", calls)
	}
	if items := p.Items(); len(items) != 0 {
		t.Errorf("Items() = %v, expected empty", items)
	}

	p.Add("a")
	p.Reset()
	if p.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", p.Len())
	}
	if i := p.Add("b"); i != 0 {
		t.Errorf("Add() after Reset = %d, expected 0", i)
	}
}
