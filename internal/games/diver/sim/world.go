// Package sim is the pure simulation of the diving game: entity pools, the
// spawn scheduler, motion, collision, score and lives, particle effects and
// the session state machine. It draws nothing and performs no I/O; frontends
// consume the immutable Snapshot produced by every tick.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
)

// World is everything one play-through owns. Every stage of the tick takes
// it explicitly; nothing in the package keeps state elsewhere.
type World struct {
	Cfg     config.DiverConfig
	Profile config.DifficultyProfile

	Diver Diver
	Home  core.Vec

	Collectibles [numCollectibleKinds]Pool[Collectible]
	Hazards      [numHazardKinds]Pool[Hazard]
	Decorations  []Decoration
	Particles    Particles
	Score        ScoreState

	Rand *rand.Rand
}

// NewWorld builds a fresh world for the profile: diver at home, full lives,
// scenery scattered over the viewport and empty entity pools.
func NewWorld(cfg config.DiverConfig, profile config.DifficultyProfile, seed int64) *World {
	w := &World{
		Cfg:     cfg,
		Profile: profile,
		Home:    core.V(cfg.World.HomeX, cfg.World.Height/2),
		Rand:    rand.New(rand.NewSource(seed)),
	}
	w.Diver = Diver{Pos: w.Home, W: cfg.Diver.Width, H: cfg.Diver.Height}
	w.Score = ScoreState{Lives: profile.Lives}
	w.Particles = Particles{decay: cfg.Particles.Decay}
	w.scatterDecorations()
	return w
}

// CollectibleCap returns the pool cap for a collectible kind.
func (w *World) CollectibleCap(k CollectibleKind) int {
	if k == Treasure {
		return w.Profile.MaxTreasures
	}
	return w.Profile.MaxPearls
}

// HazardCap returns the pool cap for a hazard kind.
func (w *World) HazardCap(k HazardKind) int {
	if k == Jellyfish {
		return w.Profile.MaxJellyfish
	}
	return w.Profile.MaxSharks
}

func (w *World) scatterDecorations() {
	W, H := w.Cfg.World.Width, w.Cfg.World.Height
	r := w.Rand
	d := w.Cfg.Decorations

	w.Decorations = make([]Decoration, 0, d.Bubbles+d.Fish+d.Corals)
	for range d.Bubbles {
		size := r.Float64()*3 + 2
		w.Decorations = append(w.Decorations, Decoration{
			Kind:  Bubble,
			Pos:   core.V(r.Float64()*W, r.Float64()*H),
			W:     size,
			H:     size,
			Speed: r.Float64()*1.5 + 0.5,
		})
	}
	for range d.Fish {
		dir := -1.0
		if r.Float64() > 0.5 {
			dir = 1
		}
		w.Decorations = append(w.Decorations, Decoration{
			Kind:  Fish,
			Pos:   core.V(r.Float64()*W, r.Float64()*H),
			W:     r.Float64()*30 + 20,
			H:     r.Float64()*15 + 10,
			Speed: r.Float64()*2 + 1,
			Dir:   dir,
		})
	}
	for range d.Corals {
		w.Decorations = append(w.Decorations, Decoration{
			Kind: Coral,
			Pos:  core.V(r.Float64()*W, H-r.Float64()*150-50),
			W:    r.Float64()*40 + 30,
			H:    r.Float64()*60 + 40,
		})
	}
}
