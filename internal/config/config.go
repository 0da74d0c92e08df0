// Package config provides YAML-based game configuration loading and the
// difficulty tiers of the diving game.
package config

import (
	"errors"
	"fmt"
)

// DiverConfig contains all tuning for the diving game. World quantities are
// in world units (the original playfield is 800x600); speeds are per tick.
type DiverConfig struct {
	World       WorldConfig                `yaml:"world"`
	Diver       BodyConfig                 `yaml:"diver"`
	Decorations DecorationConfig           `yaml:"decorations"`
	Spawn       SpawnConfig                `yaml:"spawn"`
	Particles   ParticleConfig             `yaml:"particles"`
	Input       InputConfig                `yaml:"input"`
	Tiers       map[Tier]DifficultyProfile `yaml:"tiers"`
}

// WorldConfig defines the viewport and the diver's movement envelope.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Autoscroll  float64 `yaml:"autoscroll"`   // baseline leftward speed of the world
	HomeX       float64 `yaml:"home_x"`       // diver reset x; y is the vertical centre
	MinX        float64 `yaml:"min_x"`        // leftmost diver x
	RightMargin float64 `yaml:"right_margin"` // diver x stays below width - margin
	HomeDrift   float64 `yaml:"home_drift"`   // per-tick pull back toward home_x when not boosting
}

// BodyConfig is a bounding extent.
type BodyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DecorationConfig sets how many cosmetic entities populate the world.
type DecorationConfig struct {
	Bubbles int `yaml:"bubbles"`
	Fish    int `yaml:"fish"`
	Corals  int `yaml:"corals"`
}

// SpawnConfig holds per-kind spawn geometry.
type SpawnConfig struct {
	Pearl     CollectibleSpawn `yaml:"pearl"`
	Treasure  CollectibleSpawn `yaml:"treasure"`
	Shark     HazardSpawn      `yaml:"shark"`
	Jellyfish HazardSpawn      `yaml:"jellyfish"`
}

// CollectibleSpawn describes a reward entity.
type CollectibleSpawn struct {
	Radius       float64 `yaml:"radius"` // circular hit shape when > 0
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Value        int     `yaml:"value"`
	SpeedBonus   float64 `yaml:"speed_bonus"` // added to autoscroll
	Chance       float64 `yaml:"chance"`      // per gated tick admission probability; 0 means always
	Overshoot    float64 `yaml:"overshoot"`   // max random distance past the right edge
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	DespawnX     float64 `yaml:"despawn_x"`
}

// HazardSpawn describes a dangerous entity.
type HazardSpawn struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpeedSpread  float64 `yaml:"speed_spread"` // random term, scaled by the tier's hazard factor
	Overshoot    float64 `yaml:"overshoot"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	DespawnX     float64 `yaml:"despawn_x"`
}

// ParticleConfig tunes the visual effects.
type ParticleConfig struct {
	Decay      float64     `yaml:"decay"`       // radius multiplier per tick
	TrailEvery int         `yaml:"trail_every"` // ticks between propulsion bubbles
	TrailLife  int         `yaml:"trail_life"`
	TrailSize  float64     `yaml:"trail_size"`
	Collect    BurstConfig `yaml:"collect"`
	Damage     BurstConfig `yaml:"damage"`
}

// BurstConfig is a radial particle burst.
type BurstConfig struct {
	Count     int     `yaml:"count"`
	Life      int     `yaml:"life"`
	Spread    float64 `yaml:"spread"` // velocity range is [-spread, spread) on each axis
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // how long one key press counts as held
}

// Validate checks that the configuration can drive a session.
func (c DiverConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfiguration)
	}
	if c.Diver.Width <= 0 || c.Diver.Height <= 0 {
		return fmt.Errorf("%w: diver size must be positive", ErrInvalidConfiguration)
	}
	if err := c.Particles.validate(); err != nil {
		return fmt.Errorf("%w: particles: %v", ErrInvalidConfiguration, err)
	}
	for _, t := range Tiers() {
		p, ok := c.Tiers[t]
		if !ok {
			return fmt.Errorf("%w: tier %s is not configured", ErrInvalidConfiguration, t)
		}
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: tier %s: %v", ErrInvalidConfiguration, t, err)
		}
	}
	return nil
}

func (p ParticleConfig) validate() error {
	switch {
	case p.Decay <= 0 || p.Decay > 1:
		return fmt.Errorf("decay %g outside (0, 1]", p.Decay)
	case p.TrailEvery < 0 || p.TrailLife < 0 || p.TrailSize < 0:
		return errors.New("trail settings must not be negative")
	}
	if err := p.Collect.validate(); err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	if err := p.Damage.validate(); err != nil {
		return fmt.Errorf("damage: %w", err)
	}
	return nil
}

func (b BurstConfig) validate() error {
	switch {
	case b.Count < 0 || b.Life < 0:
		return errors.New("count and life must not be negative")
	case b.Spread < 0:
		return errors.New("spread must not be negative")
	case b.MinRadius < 0 || b.MinRadius > b.MaxRadius:
		return fmt.Errorf("radius range [%g, %g] is invalid", b.MinRadius, b.MaxRadius)
	}
	return nil
}
