package sim

import (
	"math"

	"github.com/vovakirdan/tui-diver/internal/config"
)

// Snapshot is the immutable per-tick view handed to frontends. All slices
// are copies; holding on to a snapshot never aliases the world.
type Snapshot struct {
	Tick  uint64
	State State
	Tier  config.Tier
	HUD   HUD

	Width, Height float64

	Diver        Diver
	Collectibles []Collectible
	Hazards      []Hazard
	Decorations  []Decoration
	Particles    []Particle
	Events       []Event

	// Summary is set once the session has reached GAME_OVER.
	Summary *Summary
}

func buildSnapshot(w *World, tick uint64, state State, tier config.Tier, events []Event) Snapshot {
	snap := Snapshot{
		Tick:   tick,
		State:  state,
		Tier:   tier,
		Width:  w.Cfg.World.Width,
		Height: w.Cfg.World.Height,
		Diver:  w.Diver,
		HUD: HUD{
			Score:  w.Score.Score,
			Lives:  w.Score.Lives,
			Pearls: w.Score.Pearls,
			Tier:   tier,
		},
		Decorations: append([]Decoration(nil), w.Decorations...),
		Particles:   w.Particles.Items(),
	}
	if len(events) > 0 {
		snap.Events = append([]Event(nil), events...)
	}
	for k := range w.Collectibles {
		snap.Collectibles = append(snap.Collectibles, w.Collectibles[k].Items()...)
	}
	for k := range w.Hazards {
		snap.Hazards = append(snap.Hazards, w.Hazards[k].Items()...)
	}
	return snap
}

// Hash folds the gameplay-relevant fields into a single value. Two runs
// with the same seed and the same input script produce equal hashes.
func (s *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }

	mix(s.Tick)
	mix(uint64(s.State))
	mix(uint64(s.HUD.Score))
	mix(uint64(s.HUD.Lives))
	mix(uint64(s.HUD.Pearls))
	mixF(s.Diver.Pos.X)
	mixF(s.Diver.Pos.Y)
	for _, c := range s.Collectibles {
		mix(uint64(c.Kind))
		mixF(c.Pos.X)
		mixF(c.Pos.Y)
	}
	for _, hz := range s.Hazards {
		mix(uint64(hz.Kind))
		mixF(hz.Pos.X)
		mixF(hz.Pos.Y)
		mixF(hz.Speed)
	}
	for _, d := range s.Decorations {
		mixF(d.Pos.X)
		mixF(d.Pos.Y)
	}
	for _, p := range s.Particles {
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
		mix(uint64(p.Life))
	}
	return h
}
