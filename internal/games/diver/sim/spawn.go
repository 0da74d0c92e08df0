package sim

import (
	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
)

// Spawn admits new collectibles and hazards for this tick. A kind is
// considered only on ticks that are multiples of its interval, only while
// its pool is below the tier cap, and, for kinds with a chance, only when
// the per-tick roll succeeds. New entities appear past the right edge.
func Spawn(w *World, tick uint64) {
	if tick%uint64(w.Profile.CollectibleInterval) == 0 {
		spawnCollectibles(w)
	}
	if tick%uint64(w.Profile.HazardInterval) == 0 {
		spawnHazards(w)
	}
}

// seedWorld runs one admission pass without the interval gate, so a fresh
// session starts with entities already on their way.
func seedWorld(w *World) {
	spawnCollectibles(w)
	spawnHazards(w)
}

func spawnCollectibles(w *World) {
	for k := range numCollectibleKinds {
		spawnCollectible(w, k)
	}
}

func spawnHazards(w *World) {
	for k := range numHazardKinds {
		spawnHazard(w, k)
	}
}

func collectibleSpec(cfg config.SpawnConfig, k CollectibleKind) config.CollectibleSpawn {
	if k == Treasure {
		return cfg.Treasure
	}
	return cfg.Pearl
}

func hazardSpec(cfg config.SpawnConfig, k HazardKind) config.HazardSpawn {
	if k == Jellyfish {
		return cfg.Jellyfish
	}
	return cfg.Shark
}

func spawnCollectible(w *World, k CollectibleKind) {
	pool := &w.Collectibles[k]
	if pool.Len() >= w.CollectibleCap(k) {
		return
	}
	spec := collectibleSpec(w.Cfg.Spawn, k)
	if spec.Chance > 0 && w.Rand.Float64() >= spec.Chance {
		return
	}

	pool.Add(Collectible{
		Kind:   k,
		Pos:    entryPoint(w, spec.Overshoot, spec.TopMargin, spec.BottomMargin),
		W:      spec.Width,
		H:      spec.Height,
		Radius: spec.Radius,
		Speed:  w.Cfg.World.Autoscroll + spec.SpeedBonus,
		Value:  spec.Value,
	})
}

func spawnHazard(w *World, k HazardKind) {
	pool := &w.Hazards[k]
	if pool.Len() >= w.HazardCap(k) {
		return
	}
	spec := hazardSpec(w.Cfg.Spawn, k)

	pos := entryPoint(w, spec.Overshoot, spec.TopMargin, spec.BottomMargin)
	pool.Add(Hazard{
		Kind:      k,
		Pos:       pos,
		W:         spec.Width,
		H:         spec.Height,
		Speed:     w.Cfg.World.Autoscroll + w.Rand.Float64()*spec.SpeedSpread*w.Profile.HazardSpeedFactor,
		Dangerous: true,
	})
}

// entryPoint picks x in [W, W+overshoot) and y in [top, H-bottom).
func entryPoint(w *World, overshoot, top, bottom float64) core.Vec {
	W, H := w.Cfg.World.Width, w.Cfg.World.Height
	x := W + w.Rand.Float64()*overshoot
	y := top + w.Rand.Float64()*(H-top-bottom)
	return core.V(x, y)
}
