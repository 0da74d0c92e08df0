package sim

// Pool is an index-stable collection. Removing an entity tombstones its slot
// and pushes the index on a free list that the next Add reuses, so steady
// spawn/despawn traffic never reallocates.
type Pool[T any] struct {
	slots []T
	alive []bool
	free  []int
	n     int
}

// Add stores v and returns its slot index.
func (p *Pool[T]) Add(v T) int {
	if k := len(p.free); k > 0 {
		i := p.free[k-1]
		p.free = p.free[:k-1]
		p.slots[i] = v
		p.alive[i] = true
		p.n++
		return i
	}
	p.slots = append(p.slots, v)
	p.alive = append(p.alive, true)
	p.n++
	return len(p.slots) - 1
}

// Remove frees slot i. Removing a dead or unknown slot is a no-op.
func (p *Pool[T]) Remove(i int) {
	if i < 0 || i >= len(p.slots) || !p.alive[i] {
		return
	}
	var zero T
	p.slots[i] = zero
	p.alive[i] = false
	p.free = append(p.free, i)
	p.n--
}

// Get returns the entity in slot i.
func (p *Pool[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= len(p.slots) || !p.alive[i] {
		return nil, false
	}
	return &p.slots[i], true
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return p.n
}

// Each calls fn for every live entity in slot order. fn may Remove the slot
// it is visiting.
func (p *Pool[T]) Each(fn func(i int, v *T)) {
	for i := range p.slots {
		if p.alive[i] {
			fn(i, &p.slots[i])
		}
	}
}

// Items returns a copy of the live entities in slot order.
func (p *Pool[T]) Items() []T {
	out := make([]T, 0, p.n)
	for i := range p.slots {
		if p.alive[i] {
			out = append(out, p.slots[i])
		}
	}
	return out
}

// Reset drops every entity but keeps the backing storage.
func (p *Pool[T]) Reset() {
	clear(p.slots)
	p.slots = p.slots[:0]
	p.alive = p.alive[:0]
	p.free = p.free[:0]
	p.n = 0
}
