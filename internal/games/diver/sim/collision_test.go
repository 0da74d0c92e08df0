package sim

import (
	"testing"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
)

func TestHitThreshold(t *testing.T) {
	tests := []struct {
		name  string
		b     core.Vec
		reach float64
		want  bool
	}{
		{"same point", core.V(0, 0), 10, true},
		{"just inside", core.V(9.999, 0), 10, true},
		{"exactly at reach", core.V(10, 0), 10, false},
		{"just outside", core.V(10.001, 0), 10, false},
		{"diagonal inside", core.V(6, 7.9), 10, true},
		{"diagonal outside", core.V(6, 8.1), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hit(core.V(0, 0), tt.b, tt.reach); got != tt.want {
				t.Errorf("Hit() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestCollectibleReachThreshold(t *testing.T) {
	w := newTestWorld(t, config.TierMedium)
	pearl := Collectible{Kind: Pearl, Radius: 12, W: 24, H: 24, Value: 10}
	treasure := Collectible{Kind: Treasure, W: 30, H: 25, Value: 50}

	tests := []struct {
		name   string
		c      Collectible
		offset float64
		want   int
	}{
		{"pearl inside", pearl, 31.9, 10},
		{"pearl on boundary", pearl, 32, 0},
		{"treasure inside", treasure, 34.9, 50},
		{"treasure on boundary", treasure, 35, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEntities(w)
			w.Score = ScoreState{Lives: 3}
			c := tt.c
			c.Pos = w.Diver.Pos.Add(core.V(tt.offset, 0))
			w.Collectibles[c.Kind].Add(c)

			Collide(w, nil)
			if w.Score.Score != tt.want {
				t.Errorf("Score = %d, expected %d", w.Score.Score, tt.want)
			}
		})
	}
}

func TestCollectScoring(t *testing.T) {
	w := newTestWorld(t, config.TierMedium)
	at := w.Diver.Pos

	w.Collectibles[Pearl].Add(Collectible{Kind: Pearl, Pos: at, Radius: 12, Value: 10})
	w.Collectibles[Treasure].Add(Collectible{Kind: Treasure, Pos: at, W: 30, Value: 50})

	events, depleted := Collide(w, nil)
	if depleted {
		t.Error("collecting should never deplete lives")
	}
	if w.Score.Score != 60 {
		t.Errorf("Score = %d, expected 60", w.Score.Score)
	}
	if w.Score.Pearls != 1 {
		t.Errorf("Pearls = %d, expected 1 (treasure must not count)", w.Score.Pearls)
	}
	if w.Collectibles[Pearl].Len() != 0 || w.Collectibles[Treasure].Len() != 0 {
		t.Error("collected entities should be removed")
	}
	if len(events) != 2 || events[0].Collectible != Pearl || events[1].Collectible != Treasure {
		t.Errorf("events = %+v, expected pearl then treasure", events)
	}
	if want := 2 * w.Cfg.Particles.Collect.Count; w.Particles.Len() != want {
		t.Errorf("Particles.Len() = %d, expected %d", w.Particles.Len(), want)
	}
}

func TestHazardDamage(t *testing.T) {
	w := newTestWorld(t, config.TierMedium)
	w.Diver.Pos = core.V(400, 120)
	w.Hazards[Shark].Add(Hazard{Kind: Shark, Pos: core.V(410, 125), W: 80, Dangerous: true})
	w.Hazards[Shark].Add(Hazard{Kind: Shark, Pos: core.V(700, 500), W: 80, Dangerous: true})

	events, depleted := Collide(w, nil)
	if depleted {
		t.Error("first hit at 3 lives should not deplete")
	}
	if w.Score.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", w.Score.Lives)
	}
	if w.Diver.Pos != w.Home {
		t.Errorf("Diver.Pos = %v, expected home %v", w.Diver.Pos, w.Home)
	}
	if w.Hazards[Shark].Len() != 1 {
		t.Errorf("shark pool Len() = %d, expected 1", w.Hazards[Shark].Len())
	}
	if len(events) != 1 || events[0].Kind != EventDamaged || events[0].Hazard != Shark {
		t.Errorf("events = %+v, expected one shark damage", events)
	}
	if want := w.Cfg.Particles.Damage.Count; w.Particles.Len() != want {
		t.Errorf("Particles.Len() = %d, expected %d", w.Particles.Len(), want)
	}
}

func TestDistinctHazardsDecrementIndependently(t *testing.T) {
	w := newTestWorld(t, config.TierLow)
	at := w.Home
	w.Hazards[Shark].Add(Hazard{Kind: Shark, Pos: at, W: 80, Dangerous: true})
	w.Hazards[Jellyfish].Add(Hazard{Kind: Jellyfish, Pos: at, W: 35, Dangerous: true})

	Collide(w, nil)
	if w.Score.Lives != w.Profile.Lives-2 {
		t.Errorf("Lives = %d, expected %d", w.Score.Lives, w.Profile.Lives-2)
	}
}

func TestLivesFloorSingleGameOver(t *testing.T) {
	w := newTestWorld(t, config.TierHigh)
	w.Score.Lives = 1
	for range 3 {
		w.Hazards[Jellyfish].Add(Hazard{Kind: Jellyfish, Pos: w.Home, W: 35, Dangerous: true})
	}

	events, depleted := Collide(w, nil)
	if !depleted {
		t.Error("Collide() should report depletion")
	}
	if w.Score.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", w.Score.Lives)
	}

	overs := 0
	for _, e := range events {
		if e.Kind == EventGameOver {
			overs++
		}
	}
	if overs != 1 {
		t.Errorf("game over events = %d, expected 1", overs)
	}
}

func TestCollideEmptyWorld(t *testing.T) {
	w := newTestWorld(t, config.TierLow)
	events, depleted := Collide(w, nil)
	if len(events) != 0 || depleted {
		t.Errorf("Collide() on empty world = %v, %v, expected no events", events, depleted)
	}
}
