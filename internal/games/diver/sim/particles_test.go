package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
)

func TestParticleBurst(t *testing.T) {
	ps := Particles{decay: 0.98}
	b := config.BurstConfig{Count: 15, Life: 30, Spread: 3, MinRadius: 3, MaxRadius: 7}
	origin := core.V(100, 100)

	ps.Emit(rand.New(rand.NewSource(1)), origin, b, core.ColorBrightRed)
	if ps.Len() != 15 {
		t.Fatalf("Len() = %d, expected 15", ps.Len())
	}
	for _, p := range ps.Items() {
		if p.Pos != origin {
			t.Errorf("Pos = %v, expected %v", p.Pos, origin)
		}
		if p.Vel.X < -3 || p.Vel.X >= 3 || p.Vel.Y < -3 || p.Vel.Y >= 3 {
			t.Errorf("Vel = %v outside ±3", p.Vel)
		}
		if p.Radius < 3 || p.Radius >= 7 {
			t.Errorf("Radius = %v outside [3, 7)", p.Radius)
		}
		if p.Life != 30 || p.Color != core.ColorBrightRed {
			t.Errorf("particle = %+v, expected life 30 and red", p)
		}
	}
}

func TestParticleDecay(t *testing.T) {
	ps := Particles{decay: 0.5}
	ps.Add(Particle{Pos: core.V(0, 0), Vel: core.V(1, -2), Radius: 8, Life: 3})
	ps.Add(Particle{Radius: 1, Life: 1})

	ps.Decay()
	if ps.Len() != 1 {
		t.Fatalf("Len() after first decay = %d, expected 1", ps.Len())
	}
	p := ps.Items()[0]
	if p.Pos != core.V(1, -2) || p.Radius != 4 || p.Life != 2 {
		t.Errorf("particle = %+v, expected pos (1,-2) radius 4 life 2", p)
	}

	ps.Decay()
	ps.Decay()
	if ps.Len() != 0 {
		t.Errorf("Len() = %d, expected all particles expired", ps.Len())
	}

	// decaying an empty set is fine
	ps.Decay()
}

func TestTrailEmission(t *testing.T) {
	w := newTestWorld(t, config.TierMedium)
	emitTrail(w)

	items := w.Particles.Items()
	if len(items) != 1 {
		t.Fatalf("Len() = %d, expected 1", len(items))
	}
	p := items[0]
	if p.Pos.X != w.Diver.Pos.X-25 {
		t.Errorf("trail x = %v, expected %v", p.Pos.X, w.Diver.Pos.X-25)
	}
	if dy := p.Pos.Y - w.Diver.Pos.Y; dy < -5 || dy >= 5 {
		t.Errorf("trail y offset = %v outside ±5", dy)
	}
	if p.Life != 60 || p.Vel != core.V(-1, -2) {
		t.Errorf("trail = %+v, expected life 60 and vel (-1,-2)", p)
	}
}
