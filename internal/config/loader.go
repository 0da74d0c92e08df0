package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "diver.yaml"

// LoadDiver loads the game configuration.
// Search order: customPath -> ~/.diver/configs/diver.yaml -> ./configs/diver.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// sections it names; a tier entry is replaced as a whole.
func LoadDiver(customPath string) (DiverConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DiverConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DiverConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if p := userConfigPath(configFile); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(defaultDiverYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultDiverConfig(), nil
	}
	return cfg, nil
}

func decode(data []byte) (DiverConfig, error) {
	cfg := DefaultDiverConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DiverConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".diver", "configs", filename)
}
