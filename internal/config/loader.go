package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadSushi loads the Sushi Bros configuration.
// Search order: customPath -> ~/.sushibros/configs/sushi.{yaml,toml} ->
// ./configs/sushi.yaml -> embedded default -> hard-coded default.
// Files are decoded on top of the defaults, so partial overrides are fine.
func LoadSushi(customPath string) (SushiConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SushiConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return SushiConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{
		userConfigPath("sushi.yaml"),
		userConfigPath("sushi.toml"),
		filepath.Join("configs", "sushi.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultSushiConfig()
	if err := yaml.Unmarshal(defaultSushiYAML, &cfg); err != nil {
		return DefaultSushiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data as TOML or YAML depending on the file extension.
func decode(path string, data []byte) (SushiConfig, error) {
	cfg := DefaultSushiConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sushibros", "configs", filename)
}

// ApplySushiPreset modifies the config based on a difficulty preset.
func ApplySushiPreset(cfg *SushiConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust survivability based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.StartLives = 5
		cfg.PowerUps.DropChance = 0.2
	case DifficultyHard:
		cfg.Player.StartLives = 2
		cfg.Player.InvulnFrames = 90
	}
}
