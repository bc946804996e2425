// Package config provides YAML-based game configuration loading and
// validation for Space Intruder.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// IntruderConfig contains all configuration for the Space Intruder game.
// It is passed by value into the game at construction; nothing reads globals.
type IntruderConfig struct {
	Screen   IntruderScreen   `yaml:"screen"`
	Player   IntruderPlayer   `yaml:"player"`
	Bullet   IntruderBullet   `yaml:"bullet"`
	Enemy    IntruderEnemy    `yaml:"enemy"`
	Gameplay IntruderGameplay `yaml:"gameplay"`
}

// IntruderScreen defines the world size in world units.
type IntruderScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// IntruderPlayer defines the player's craft.
type IntruderPlayer struct {
	Size         int     `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	Health       int     `yaml:"health"`
	BottomMargin int     `yaml:"bottom_margin"`
}

// IntruderBullet defines projectile parameters.
type IntruderBullet struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// IntruderEnemy defines enemy parameters.
type IntruderEnemy struct {
	Size        int     `yaml:"size"`
	BaseSpeed   float64 `yaml:"base_speed"`
	SpeedJitter float64 `yaml:"speed_jitter"`
	SpawnRate   int     `yaml:"spawn_rate"` // Lower = more frequent
}

// IntruderGameplay defines rules that are not tied to a single entity.
type IntruderGameplay struct {
	FireInterval  int `yaml:"fire_interval"`
	PointsPerKill int `yaml:"points_per_kill"`
	HintFrames    int `yaml:"hint_frames"`
}

// Validate checks the configuration for values the simulation cannot run with.
// All returned errors wrap ErrInvalidConfig.
func (c IntruderConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Screen.Width > 0, "screen.width must be positive, got %d", c.Screen.Width)
	check(c.Screen.Height > 0, "screen.height must be positive, got %d", c.Screen.Height)

	check(c.Player.Size > 0, "player.size must be positive, got %d", c.Player.Size)
	check(c.Player.Size <= c.Screen.Width && c.Player.Size <= c.Screen.Height,
		"player.size %d does not fit a %dx%d screen", c.Player.Size, c.Screen.Width, c.Screen.Height)
	check(c.Player.Speed >= 0, "player.speed must not be negative, got %g", c.Player.Speed)
	check(c.Player.Health >= 0 && c.Player.Health <= 100, "player.health must be within 0..100, got %d", c.Player.Health)
	check(c.Player.BottomMargin >= 0, "player.bottom_margin must not be negative, got %d", c.Player.BottomMargin)

	check(c.Bullet.Width > 0 && c.Bullet.Height > 0,
		"bullet size must be positive, got %dx%d", c.Bullet.Width, c.Bullet.Height)
	check(c.Bullet.Speed > 0, "bullet.speed must be positive, got %g", c.Bullet.Speed)

	check(c.Enemy.Size > 0, "enemy.size must be positive, got %d", c.Enemy.Size)
	check(c.Enemy.BaseSpeed >= 0, "enemy.base_speed must not be negative, got %g", c.Enemy.BaseSpeed)
	check(c.Enemy.SpeedJitter >= 0, "enemy.speed_jitter must not be negative, got %g", c.Enemy.SpeedJitter)
	check(c.Enemy.SpawnRate >= 1, "enemy.spawn_rate must be at least 1, got %d", c.Enemy.SpawnRate)

	check(c.Gameplay.FireInterval >= 1, "gameplay.fire_interval must be at least 1, got %d", c.Gameplay.FireInterval)
	check(c.Gameplay.PointsPerKill >= 0, "gameplay.points_per_kill must not be negative, got %d", c.Gameplay.PointsPerKill)
	check(c.Gameplay.HintFrames >= 0, "gameplay.hint_frames must not be negative, got %d", c.Gameplay.HintFrames)

	return errors.Join(errs...)
}
