package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		in       string
		expected Tier
		wantErr  bool
	}{
		{"low", TierLow, false},
		{"EASY", TierLow, false},
		{"medium", TierMedium, false},
		{"Normal", TierMedium, false},
		{"high", TierHigh, false},
		{" hard ", TierHigh, false},
		{"", "", true},
		{"extreme", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTier(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("ParseTier(%q) error = %v, expected ErrInvalidConfiguration", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTier(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseTier(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestDefaultProfiles(t *testing.T) {
	cfg := DefaultDiverConfig()

	tests := []struct {
		tier     Tier
		expected DifficultyProfile
	}{
		{TierLow, DifficultyProfile{
			Tier: TierLow, Lives: 5, CruiseSpeed: 4, BoostSpeed: 8, HazardSpeedFactor: 0.7,
			HazardInterval: 150, CollectibleInterval: 80,
			MaxSharks: 2, MaxJellyfish: 3, MaxPearls: 10, MaxTreasures: 5,
		}},
		{TierMedium, DifficultyProfile{
			Tier: TierMedium, Lives: 3, CruiseSpeed: 5, BoostSpeed: 10, HazardSpeedFactor: 1.0,
			HazardInterval: 100, CollectibleInterval: 100,
			MaxSharks: 4, MaxJellyfish: 5, MaxPearls: 8, MaxTreasures: 3,
		}},
		{TierHigh, DifficultyProfile{
			Tier: TierHigh, Lives: 2, CruiseSpeed: 6, BoostSpeed: 12, HazardSpeedFactor: 1.5,
			HazardInterval: 70, CollectibleInterval: 130,
			MaxSharks: 6, MaxJellyfish: 7, MaxPearls: 6, MaxTreasures: 2,
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.tier), func(t *testing.T) {
			got, err := cfg.Profile(tc.tier)
			if err != nil {
				t.Fatalf("Profile(%s) error: %v", tc.tier, err)
			}
			if got != tc.expected {
				t.Errorf("Profile(%s) = %+v, expected %+v", tc.tier, got, tc.expected)
			}
		})
	}
}

func TestProfileUnknownTier(t *testing.T) {
	cfg := DefaultDiverConfig()

	for _, tier := range []Tier{"", "extreme", "HIGH"} {
		if _, err := cfg.Profile(tier); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("Profile(%q) error = %v, expected ErrInvalidConfiguration", tier, err)
		}
	}

	delete(cfg.Tiers, TierHigh)
	if _, err := cfg.Profile(TierHigh); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Profile() for an unconfigured tier error = %v, expected ErrInvalidConfiguration", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var fromYAML DiverConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultDiverConfig()) {
		t.Errorf("embedded YAML and DefaultDiverConfig() have drifted apart:\nyaml: %+v\ncode: %+v",
			fromYAML, DefaultDiverConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DiverConfig)
	}{
		{"zero world", func(c *DiverConfig) { c.World.Width = 0 }},
		{"zero diver", func(c *DiverConfig) { c.Diver.Height = 0 }},
		{"missing tier", func(c *DiverConfig) { delete(c.Tiers, TierLow) }},
		{"no lives", func(c *DiverConfig) {
			p := c.Tiers[TierMedium]
			p.Lives = 0
			c.Tiers[TierMedium] = p
		}},
		{"zero interval", func(c *DiverConfig) {
			p := c.Tiers[TierHigh]
			p.HazardInterval = 0
			c.Tiers[TierHigh] = p
		}},
		{"negative cap", func(c *DiverConfig) {
			p := c.Tiers[TierLow]
			p.MaxPearls = -1
			c.Tiers[TierLow] = p
		}},
		{"zero decay", func(c *DiverConfig) { c.Particles.Decay = 0 }},
		{"growing decay", func(c *DiverConfig) { c.Particles.Decay = 1.5 }},
		{"negative trail life", func(c *DiverConfig) { c.Particles.TrailLife = -1 }},
		{"negative burst count", func(c *DiverConfig) { c.Particles.Collect.Count = -1 }},
		{"negative burst life", func(c *DiverConfig) { c.Particles.Damage.Life = -5 }},
		{"inverted radius", func(c *DiverConfig) { c.Particles.Collect.MinRadius = 9 }},
	}

	if err := DefaultDiverConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDiverConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestLoadDiverCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  width: 1024\ntiers:\n  medium:\n    lives: 9\n    cruise_speed: 5\n    boost_speed: 10\n    hazard_speed_factor: 1\n    hazard_interval: 50\n    collectible_interval: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDiver(path)
	if err != nil {
		t.Fatalf("LoadDiver() error: %v", err)
	}
	if cfg.World.Width != 1024 {
		t.Errorf("World.Width = %v, expected 1024", cfg.World.Width)
	}
	if cfg.World.Height != 600 {
		t.Errorf("World.Height = %v, expected default 600", cfg.World.Height)
	}

	p, _ := cfg.Profile(TierMedium)
	if p.Lives != 9 || p.HazardInterval != 50 {
		t.Errorf("medium profile = %+v, expected overridden lives and interval", p)
	}
	if low, _ := cfg.Profile(TierLow); low.Lives != 5 {
		t.Errorf("low profile lives = %d, expected untouched default 5", low.Lives)
	}
}

func TestLoadDiverCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDiver(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadDiver() with a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tiers:\n  high:\n    lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDiver(bad); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("LoadDiver() error = %v, expected ErrInvalidConfiguration", err)
	}

	noDecay := filepath.Join(dir, "nodecay.yaml")
	if err := os.WriteFile(noDecay, []byte("particles:\n  decay: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDiver(noDecay); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("LoadDiver() with decay 0 error = %v, expected ErrInvalidConfiguration", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDiver(garbage); err == nil {
		t.Error("LoadDiver() with malformed YAML should fail")
	}
}

func TestLoadDiverFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadDiver("")
	if err != nil {
		t.Fatalf("LoadDiver() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDiverConfig()) {
		t.Error("LoadDiver() without any files should return the defaults")
	}
}

func TestLoadDiverUserConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfgDir := filepath.Join(dir, ".diver", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "diver.yaml"), []byte("input:\n  hold_ticks: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDiver("")
	if err != nil {
		t.Fatalf("LoadDiver() error: %v", err)
	}
	if cfg.Input.HoldTicks != 3 {
		t.Errorf("Input.HoldTicks = %d, expected 3 from the user config", cfg.Input.HoldTicks)
	}
}

func TestTierNames(t *testing.T) {
	tests := []struct {
		tier          Tier
		label, legacy string
	}{
		{TierLow, "LOW", "easy"},
		{TierMedium, "MEDIUM", "medium"},
		{TierHigh, "HIGH", "hard"},
	}
	for _, tc := range tests {
		if got := tc.tier.Label(); got != tc.label {
			t.Errorf("Label() = %q, expected %q", got, tc.label)
		}
		if got := tc.tier.LegacyName(); got != tc.legacy {
			t.Errorf("LegacyName() = %q, expected %q", got, tc.legacy)
		}
	}
}
