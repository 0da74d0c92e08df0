package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration reports an unknown difficulty tier or an
// incomplete configuration. It is never silently replaced by a default.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Tier names one of the fixed difficulty configurations.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Tiers returns every tier from easiest to hardest.
func Tiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh}
}

// ParseTier resolves a tier name. It accepts low/medium/high and the classic
// easy/normal/hard labels, case-insensitively. An empty or unknown name
// fails with ErrInvalidConfiguration.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "easy":
		return TierLow, nil
	case "medium", "normal":
		return TierMedium, nil
	case "high", "hard":
		return TierHigh, nil
	case "":
		return "", fmt.Errorf("%w: no difficulty tier selected", ErrInvalidConfiguration)
	default:
		return "", fmt.Errorf("%w: unknown difficulty tier %q", ErrInvalidConfiguration, s)
	}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	}
	return false
}

// Label is the upper-case display name (LOW, MEDIUM, HIGH).
func (t Tier) Label() string {
	return strings.ToUpper(string(t))
}

// LegacyName is the easy/medium/hard name used for key/value high score keys.
func (t Tier) LegacyName() string {
	switch t {
	case TierLow:
		return "easy"
	case TierHigh:
		return "hard"
	default:
		return "medium"
	}
}

// DifficultyProfile is the immutable per-session tuning selected by tier.
type DifficultyProfile struct {
	Tier                Tier    `yaml:"-"`
	Lives               int     `yaml:"lives"`
	CruiseSpeed         float64 `yaml:"cruise_speed"`
	BoostSpeed          float64 `yaml:"boost_speed"`
	HazardSpeedFactor   float64 `yaml:"hazard_speed_factor"`
	HazardInterval      int     `yaml:"hazard_interval"`      // ticks between shark/jellyfish admissions
	CollectibleInterval int     `yaml:"collectible_interval"` // ticks between pearl/treasure admissions
	MaxSharks           int     `yaml:"max_sharks"`
	MaxJellyfish        int     `yaml:"max_jellyfish"`
	MaxPearls           int     `yaml:"max_pearls"`
	MaxTreasures        int     `yaml:"max_treasures"`
}

// Profile returns the profile for a tier.
func (c DiverConfig) Profile(t Tier) (DifficultyProfile, error) {
	if !t.Valid() {
		return DifficultyProfile{}, fmt.Errorf("%w: unknown difficulty tier %q", ErrInvalidConfiguration, t)
	}
	p, ok := c.Tiers[t]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w: tier %s is not configured", ErrInvalidConfiguration, t)
	}
	p.Tier = t
	return p, nil
}

func (p DifficultyProfile) validate() error {
	switch {
	case p.Lives <= 0:
		return errors.New("lives must be positive")
	case p.HazardInterval <= 0:
		return errors.New("hazard_interval must be positive")
	case p.CollectibleInterval <= 0:
		return errors.New("collectible_interval must be positive")
	case p.MaxSharks < 0 || p.MaxJellyfish < 0 || p.MaxPearls < 0 || p.MaxTreasures < 0:
		return errors.New("pool caps must not be negative")
	}
	return nil
}
