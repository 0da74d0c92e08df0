package sim

import "github.com/vovakirdan/tui-diver/internal/core"

// Hit reports whether two centres are strictly closer than reach. This is a
// circle test even for box-shaped sprites; hit timing depends on it.
func Hit(a, b core.Vec, reach float64) bool {
	return core.Dist(a, b) < reach
}

// Collide resolves diver contacts in a fixed order: pearls, treasures,
// sharks, jellyfish. Every touched entity is removed immediately so it can
// resolve at most once. Events are appended to events and returned; depleted
// is true if this call took the last life.
func Collide(w *World, events []Event) (_ []Event, depleted bool) {
	pc := w.Cfg.Particles

	for k := range w.Collectibles {
		pool := &w.Collectibles[k]
		pool.Each(func(i int, c *Collectible) {
			if !Hit(c.Pos, w.Diver.Pos, c.Reach(w.Diver)) {
				return
			}
			w.Score.AddScore(c.Value)
			color := core.ColorGold
			if c.Kind == Pearl {
				w.Score.IncrementPearls()
				color = core.ColorPink
			}
			w.Particles.Emit(w.Rand, c.Pos, pc.Collect, color)
			events = append(events, Event{Kind: EventCollected, Collectible: c.Kind, Value: c.Value, Pos: c.Pos})
			pool.Remove(i)
		})
	}

	for k := range w.Hazards {
		pool := &w.Hazards[k]
		pool.Each(func(i int, h *Hazard) {
			if !h.Dangerous || !Hit(h.Pos, w.Diver.Pos, h.Reach(w.Diver)) {
				return
			}
			events = append(events, Event{Kind: EventDamaged, Hazard: h.Kind, Pos: w.Diver.Pos})
			if w.Score.LoseLife() {
				depleted = true
				events = append(events, Event{Kind: EventGameOver, Pos: w.Diver.Pos})
			}
			w.Particles.Emit(w.Rand, w.Diver.Pos, pc.Damage, core.ColorBrightRed)
			w.Diver.Pos = w.Home
			w.Diver.Vel = core.Vec{}
			pool.Remove(i)
		})
	}

	return events, depleted
}
