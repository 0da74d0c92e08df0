package sim

import (
	"math"

	"github.com/vovakirdan/tui-diver/internal/core"
)

// Controls is the input sampled at the start of a tick.
type Controls struct {
	Up, Down, Boost bool
}

// Sample reads the held state of the movement actions once.
func Sample(in InputSource) Controls {
	if in == nil {
		return Controls{}
	}
	return Controls{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Boost: in.Has(core.ActionBoost),
	}
}

// Move advances every entity by one tick. Collectibles and hazards that have
// left the viewport on the left are despawned; scenery wraps around.
func Move(w *World, c Controls) {
	moveDiver(w, c)
	moveDecorations(w)

	for k := range w.Collectibles {
		pool := &w.Collectibles[k]
		despawnX := collectibleSpec(w.Cfg.Spawn, CollectibleKind(k)).DespawnX
		pool.Each(func(i int, e *Collectible) {
			e.Pos.X -= e.Speed
			if e.Pos.X <= despawnX {
				pool.Remove(i)
			}
		})
	}
	for k := range w.Hazards {
		pool := &w.Hazards[k]
		despawnX := hazardSpec(w.Cfg.Spawn, HazardKind(k)).DespawnX
		pool.Each(func(i int, e *Hazard) {
			e.Pos.X -= e.Speed
			if e.Pos.X <= despawnX {
				pool.Remove(i)
			}
		})
	}
}

// moveDiver applies input, clamps to the play area and drifts back toward
// home while not boosting. Vertical input and boost may combine.
func moveDiver(w *World, c Controls) {
	d := &w.Diver
	world := w.Cfg.World

	d.Vel = core.Vec{}
	d.Boosting = false
	if c.Up {
		d.Vel.Y = -w.Profile.CruiseSpeed
	}
	if c.Down {
		d.Vel.Y = w.Profile.CruiseSpeed
	}
	if c.Boost {
		d.Vel.X = w.Profile.BoostSpeed
		d.Boosting = true
	}

	d.Pos = d.Pos.Add(d.Vel)
	d.Pos.Y = core.ClampF(d.Pos.Y, d.H/2, world.Height-d.H/2)
	d.Pos.X = core.ClampF(d.Pos.X, world.MinX, world.Width-world.RightMargin)

	if !d.Boosting && d.Pos.X > w.Home.X {
		d.Pos.X -= world.HomeDrift
	}
}

func moveDecorations(w *World) {
	W, H := w.Cfg.World.Width, w.Cfg.World.Height
	scroll := w.Cfg.World.Autoscroll

	for i := range w.Decorations {
		d := &w.Decorations[i]
		switch d.Kind {
		case Bubble:
			d.Pos.Y -= d.Speed
			d.Pos.X += math.Sin(d.Pos.Y*0.05)*0.5 - scroll*0.3
			if d.Pos.Y < -20 {
				d.Pos.Y = H + 20
				d.Pos.X = W + w.Rand.Float64()*W
			}
			if d.Pos.X < -20 {
				d.Pos.X = W + 20
			}
		case Fish:
			d.Pos.X += d.Speed*d.Dir - scroll*0.5
			if d.Pos.X > W+50 {
				d.Pos.X = -50
			} else if d.Pos.X < -50 {
				d.Pos.X = W + 50
			}
		case Coral:
			d.Pos.X -= scroll * 0.8
			if d.Pos.X < -100 {
				d.Pos.X = W + w.Rand.Float64()*200
			}
		}
	}
}
