package config

import (
	_ "embed"
)

//go:embed defaults/diver.yaml
var defaultDiverYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDiverYAML
}

// DefaultDiverConfig returns the built-in configuration. It mirrors
// defaults/diver.yaml and is used when the embedded file cannot be parsed.
func DefaultDiverConfig() DiverConfig {
	return DiverConfig{
		World: WorldConfig{
			Width:       800,
			Height:      600,
			Autoscroll:  3,
			HomeX:       150,
			MinX:        50,
			RightMargin: 100,
			HomeDrift:   2,
		},
		Diver: BodyConfig{Width: 40, Height: 60},
		Decorations: DecorationConfig{
			Bubbles: 30,
			Fish:    15,
			Corals:  8,
		},
		Spawn: SpawnConfig{
			Pearl: CollectibleSpawn{
				Radius: 12, Width: 24, Height: 24, Value: 10, SpeedBonus: 0.5,
				Overshoot: 200, TopMargin: 50, BottomMargin: 50, DespawnX: -50,
			},
			Treasure: CollectibleSpawn{
				Width: 30, Height: 25, Value: 50, SpeedBonus: 0.3, Chance: 0.01,
				Overshoot: 200, TopMargin: 50, BottomMargin: 50, DespawnX: -50,
			},
			Shark: HazardSpawn{
				Width: 80, Height: 40, SpeedSpread: 2,
				Overshoot: 300, TopMargin: 50, BottomMargin: 100, DespawnX: -100,
			},
			Jellyfish: HazardSpawn{
				Width: 35, Height: 50, SpeedSpread: 1,
				Overshoot: 400, TopMargin: 50, BottomMargin: 100, DespawnX: -50,
			},
		},
		Particles: ParticleConfig{
			Decay:      0.98,
			TrailEvery: 20,
			TrailLife:  60,
			TrailSize:  4,
			Collect:    BurstConfig{Count: 10, Life: 40, Spread: 2, MinRadius: 2, MaxRadius: 5},
			Damage:     BurstConfig{Count: 15, Life: 30, Spread: 3, MinRadius: 3, MaxRadius: 7},
		},
		Input: InputConfig{HoldTicks: 8},
		Tiers: map[Tier]DifficultyProfile{
			TierLow: {
				Lives: 5, CruiseSpeed: 4, BoostSpeed: 8, HazardSpeedFactor: 0.7,
				HazardInterval: 150, CollectibleInterval: 80,
				MaxSharks: 2, MaxJellyfish: 3, MaxPearls: 10, MaxTreasures: 5,
			},
			TierMedium: {
				Lives: 3, CruiseSpeed: 5, BoostSpeed: 10, HazardSpeedFactor: 1.0,
				HazardInterval: 100, CollectibleInterval: 100,
				MaxSharks: 4, MaxJellyfish: 5, MaxPearls: 8, MaxTreasures: 3,
			},
			TierHigh: {
				Lives: 2, CruiseSpeed: 6, BoostSpeed: 12, HazardSpeedFactor: 1.5,
				HazardInterval: 70, CollectibleInterval: 130,
				MaxSharks: 6, MaxJellyfish: 7, MaxPearls: 6, MaxTreasures: 2,
			},
		},
	}
}
