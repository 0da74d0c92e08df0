package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
)

func TestDiverClampInvariant(t *testing.T) {
	for _, tier := range config.Tiers() {
		t.Run(string(tier), func(t *testing.T) {
			w := newTestWorld(t, tier)
			r := rand.New(rand.NewSource(7))
			world := w.Cfg.World
			d := &w.Diver

			for i := range 5000 {
				Move(w, Controls{
					Up:    r.Intn(3) == 0,
					Down:  r.Intn(3) == 0,
					Boost: r.Intn(2) == 0,
				})
				if d.Pos.Y < d.H/2 || d.Pos.Y > world.Height-d.H/2 {
					t.Fatalf("tick %d: y = %v outside [%v, %v]", i, d.Pos.Y, d.H/2, world.Height-d.H/2)
				}
				if d.Pos.X < world.MinX || d.Pos.X > world.Width-world.RightMargin {
					t.Fatalf("tick %d: x = %v outside [%v, %v]", i, d.Pos.X, world.MinX, world.Width-world.RightMargin)
				}
			}
		})
	}
}

func TestMoveDiver(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec
		c     Controls
		want  core.Vec
	}{
		{"idle at home", core.V(150, 300), Controls{}, core.V(150, 300)},
		{"up", core.V(150, 300), Controls{Up: true}, core.V(150, 295)},
		{"down wins over up", core.V(150, 300), Controls{Up: true, Down: true}, core.V(150, 305)},
		{"boost with vertical", core.V(150, 300), Controls{Down: true, Boost: true}, core.V(160, 305)},
		{"drift toward home", core.V(300, 300), Controls{}, core.V(298, 300)},
		{"clamp top", core.V(150, 32), Controls{Up: true}, core.V(150, 30)},
		{"clamp right", core.V(695, 300), Controls{Boost: true}, core.V(700, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, config.TierMedium)
			w.Diver.Pos = tt.start
			moveDiver(w, tt.c)
			if w.Diver.Pos != tt.want {
				t.Errorf("Pos = %v, expected %v", w.Diver.Pos, tt.want)
			}
			if w.Diver.Boosting != tt.c.Boost {
				t.Errorf("Boosting = %v, expected %v", w.Diver.Boosting, tt.c.Boost)
			}
		})
	}
}

func TestMoveDespawnsLeftEdge(t *testing.T) {
	w := newTestWorld(t, config.TierMedium)
	w.Collectibles[Pearl].Add(Collectible{Kind: Pearl, Pos: core.V(-48, 100), Speed: 3.5})
	w.Collectibles[Pearl].Add(Collectible{Kind: Pearl, Pos: core.V(400, 100), Speed: 3.5})
	w.Hazards[Shark].Add(Hazard{Kind: Shark, Pos: core.V(-95, 100), Speed: 6})
	w.Hazards[Jellyfish].Add(Hazard{Kind: Jellyfish, Pos: core.V(-95, 100), Speed: 6})

	Move(w, Controls{})

	if n := w.Collectibles[Pearl].Len(); n != 1 {
		t.Errorf("pearl pool Len() = %d, expected 1", n)
	}
	if n := w.Hazards[Shark].Len(); n != 0 {
		t.Errorf("shark pool Len() = %d, expected 0", n)
	}
	if n := w.Hazards[Jellyfish].Len(); n != 0 {
		t.Errorf("jellyfish pool Len() = %d, expected 0", n)
	}

	p := w.Collectibles[Pearl].Items()[0]
	if p.Pos.X != 396.5 {
		t.Errorf("pearl x = %v, expected 396.5", p.Pos.X)
	}
}

func TestDecorationsWrap(t *testing.T) {
	w := newTestWorld(t, config.TierMedium)
	W := w.Cfg.World.Width
	w.Decorations = []Decoration{
		{Kind: Coral, Pos: core.V(-99, 500)},
		{Kind: Fish, Pos: core.V(W+49, 200), Speed: 3, Dir: 1},
		{Kind: Bubble, Pos: core.V(300, -19), Speed: 2},
	}

	moveDecorations(w)

	if x := w.Decorations[0].Pos.X; x < W {
		t.Errorf("coral x = %v, expected wrap past %v", x, W)
	}
	if x := w.Decorations[1].Pos.X; x > 0 {
		t.Errorf("fish x = %v, expected wrap to the left edge", x)
	}
	if y := w.Decorations[2].Pos.Y; y < w.Cfg.World.Height {
		t.Errorf("bubble y = %v, expected wrap below the floor", y)
	}
	if len(w.Decorations) != 3 {
		t.Errorf("decorations = %d, expected 3", len(w.Decorations))
	}
}

func TestSampleNilInput(t *testing.T) {
	if c := Sample(nil); c != (Controls{}) {
		t.Errorf("Sample(nil) = %+v, expected zero", c)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionBoost)
	if c := Sample(in); !c.Boost || c.Up || c.Down {
		t.Errorf("Sample() = %+v, expected boost only", c)
	}
}
