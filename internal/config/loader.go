package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBomberman loads Bomberman configuration.
// Search order: customPath -> ~/.bomberman/configs/bomberman.yaml -> ./configs/bomberman.yaml -> embedded default
func LoadBomberman(customPath string) (BombermanConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readBomberman(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bomberman.yaml"); userCfgPath != "" {
		if cfg, err := readBomberman(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := readBomberman(filepath.Join("configs", "bomberman.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := ParseBomberman(GetDefaultYAML("bomberman"))
	if err != nil {
		return DefaultBombermanConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ParseBomberman decodes YAML on top of the built-in defaults, so a partial
// file only overrides the keys it names. The result is validated.
func ParseBomberman(data []byte) (BombermanConfig, error) {
	cfg := DefaultBombermanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MarshalBomberman encodes a configuration as YAML.
func MarshalBomberman(cfg BombermanConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func readBomberman(path string) (BombermanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BombermanConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseBomberman(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomberman", "configs", filename)
}
