package sim

import (
	"testing"

	"github.com/vovakirdan/tui-diver/internal/config"
)

func TestSpawnNeverExceedsCaps(t *testing.T) {
	for _, tier := range config.Tiers() {
		t.Run(string(tier), func(t *testing.T) {
			w := newTestWorld(t, tier)
			for tick := range uint64(20000) {
				Spawn(w, tick)
				for k := range numCollectibleKinds {
					if n := w.Collectibles[k].Len(); n > w.CollectibleCap(k) {
						t.Fatalf("tick %d: %s pool = %d, cap %d", tick, k, n, w.CollectibleCap(k))
					}
				}
				for k := range numHazardKinds {
					if n := w.Hazards[k].Len(); n > w.HazardCap(k) {
						t.Fatalf("tick %d: %s pool = %d, cap %d", tick, k, n, w.HazardCap(k))
					}
				}
			}

			// nothing moved, so the always-admitted kinds fill up
			if n := w.Collectibles[Pearl].Len(); n != w.Profile.MaxPearls {
				t.Errorf("pearls = %d, expected %d", n, w.Profile.MaxPearls)
			}
			if n := w.Hazards[Shark].Len(); n != w.Profile.MaxSharks {
				t.Errorf("sharks = %d, expected %d", n, w.Profile.MaxSharks)
			}
			if n := w.Hazards[Jellyfish].Len(); n != w.Profile.MaxJellyfish {
				t.Errorf("jellyfish = %d, expected %d", n, w.Profile.MaxJellyfish)
			}
		})
	}
}

func TestSpawnIntervalGate(t *testing.T) {
	w := newTestWorld(t, config.TierMedium)

	Spawn(w, 1)
	if w.Collectibles[Pearl].Len() != 0 || w.Hazards[Shark].Len() != 0 {
		t.Error("Spawn() off-interval should admit nothing")
	}

	Spawn(w, 0)
	if n := w.Collectibles[Pearl].Len(); n != 1 {
		t.Errorf("pearls = %d, expected 1", n)
	}
	if n := w.Hazards[Shark].Len(); n != 1 {
		t.Errorf("sharks = %d, expected 1", n)
	}
	if n := w.Hazards[Jellyfish].Len(); n != 1 {
		t.Errorf("jellyfish = %d, expected 1", n)
	}
}

func TestSeedWorldIgnoresInterval(t *testing.T) {
	w := newTestWorld(t, config.TierHigh)
	seedWorld(w)
	if n := w.Collectibles[Pearl].Len(); n != 1 {
		t.Errorf("pearls = %d, expected 1", n)
	}
	if n := w.Hazards[Shark].Len() + w.Hazards[Jellyfish].Len(); n != 2 {
		t.Errorf("hazards = %d, expected 2", n)
	}
}

func TestSpawnEntryRanges(t *testing.T) {
	w := newTestWorld(t, config.TierHigh)
	W, H := w.Cfg.World.Width, w.Cfg.World.Height
	pearl := w.Cfg.Spawn.Pearl
	shark := w.Cfg.Spawn.Shark
	scroll := w.Cfg.World.Autoscroll

	for range 2000 {
		spawnCollectible(w, Pearl)
		p := w.Collectibles[Pearl].Items()[0]
		w.Collectibles[Pearl].Reset()
		if p.Pos.X < W || p.Pos.X >= W+pearl.Overshoot {
			t.Fatalf("pearl x = %v outside [%v, %v)", p.Pos.X, W, W+pearl.Overshoot)
		}
		if p.Pos.Y < pearl.TopMargin || p.Pos.Y >= H-pearl.BottomMargin {
			t.Fatalf("pearl y = %v outside [%v, %v)", p.Pos.Y, pearl.TopMargin, H-pearl.BottomMargin)
		}
		if p.Value != 10 || p.Speed != scroll+pearl.SpeedBonus {
			t.Fatalf("pearl = %+v, expected value 10 and speed %v", p, scroll+pearl.SpeedBonus)
		}

		spawnHazard(w, Shark)
		s := w.Hazards[Shark].Items()[0]
		w.Hazards[Shark].Reset()
		if s.Pos.X < W || s.Pos.X >= W+shark.Overshoot {
			t.Fatalf("shark x = %v outside [%v, %v)", s.Pos.X, W, W+shark.Overshoot)
		}
		if s.Pos.Y < shark.TopMargin || s.Pos.Y >= H-shark.BottomMargin {
			t.Fatalf("shark y = %v outside [%v, %v)", s.Pos.Y, shark.TopMargin, H-shark.BottomMargin)
		}
		maxSpeed := scroll + shark.SpeedSpread*w.Profile.HazardSpeedFactor
		if s.Speed < scroll || s.Speed >= maxSpeed {
			t.Fatalf("shark speed = %v outside [%v, %v)", s.Speed, scroll, maxSpeed)
		}
		if !s.Dangerous {
			t.Fatal("hazards must be dangerous")
		}
	}
}

func TestTreasureAdmissionRate(t *testing.T) {
	w := newTestWorld(t, config.TierLow)
	const attempts = 20000

	admitted := 0
	for range attempts {
		spawnCollectible(w, Treasure)
		admitted += w.Collectibles[Treasure].Len()
		w.Collectibles[Treasure].Reset()
	}

	rate := float64(admitted) / attempts
	if rate < 0.006 || rate > 0.014 {
		t.Errorf("treasure rate = %.4f, expected about %.2f", rate, w.Cfg.Spawn.Treasure.Chance)
	}
}
