package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the available presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a CLI string to a preset. An empty string means "none".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Describe returns a one-line summary of the preset for menus.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "5 lives"
	case DifficultyNormal:
		return "3 lives"
	case DifficultyHard:
		return "2 lives, one extra enemy per level"
	default:
		return ""
	}
}

// ApplyBombermanPreset modifies the config based on a difficulty preset.
// Presets only change starting constants; enemy count still grows by one per level.
func ApplyBombermanPreset(cfg *BombermanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyNormal:
		cfg.Player.Lives = 3
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.BaseCount++
	}
}
