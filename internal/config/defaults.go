package config

import (
	_ "embed"
)

//go:embed defaults/intruder.yaml
var defaultIntruderYAML []byte

// DefaultIntruderConfig returns the default Space Intruder configuration.
// Used as a fallback when the embedded YAML cannot be parsed.
func DefaultIntruderConfig() IntruderConfig {
	return IntruderConfig{
		Screen: IntruderScreen{
			Width:  800,
			Height: 600,
		},
		Player: IntruderPlayer{
			Size:         40,
			Speed:        5,
			Health:       100,
			BottomMargin: 20,
		},
		Bullet: IntruderBullet{
			Width:  5,
			Height: 10,
			Speed:  10,
		},
		Enemy: IntruderEnemy{
			Size:        35,
			BaseSpeed:   3,
			SpeedJitter: 1,
			SpawnRate:   60,
		},
		Gameplay: IntruderGameplay{
			FireInterval:  10,
			PointsPerKill: 10,
			HintFrames:    180, // 3 seconds at 60fps
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultIntruderYAML
}
