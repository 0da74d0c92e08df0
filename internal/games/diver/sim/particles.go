package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
)

// Particles is the flat, uncapped set of live effects. Every particle has a
// finite lifetime, so the set drains on its own once emission stops.
type Particles struct {
	items []Particle
	decay float64
}

// Emit adds a radial burst at origin.
func (ps *Particles) Emit(r *rand.Rand, origin core.Vec, b config.BurstConfig, color core.Color) {
	for range b.Count {
		ps.items = append(ps.items, Particle{
			Pos:    origin,
			Vel:    core.V((r.Float64()-0.5)*2*b.Spread, (r.Float64()-0.5)*2*b.Spread),
			Radius: b.MinRadius + r.Float64()*(b.MaxRadius-b.MinRadius),
			Life:   b.Life,
			Color:  color,
		})
	}
}

// Add appends a single particle.
func (ps *Particles) Add(p Particle) {
	ps.items = append(ps.items, p)
}

// Decay advances every particle by one tick and drops the expired ones.
func (ps *Particles) Decay() {
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.Life--
		p.Pos = p.Pos.Add(p.Vel)
		p.Radius *= ps.decay
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	clear(ps.items[len(kept):])
	ps.items = kept
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.items)
}

// Items returns a copy of the live particles.
func (ps *Particles) Items() []Particle {
	return append([]Particle(nil), ps.items...)
}

// emitTrail releases one propulsion bubble behind the diver.
func emitTrail(w *World) {
	pc := w.Cfg.Particles
	w.Particles.Add(Particle{
		Pos:    core.V(w.Diver.Pos.X-w.Diver.W*0.625, w.Diver.Pos.Y+(w.Rand.Float64()-0.5)*10),
		Vel:    core.V(-1, -2),
		Radius: pc.TrailSize,
		Life:   pc.TrailLife,
		Color:  core.ColorBrightWhite,
	})
}
