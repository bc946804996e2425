package intruder

import (
	"math/rand"

	"github.com/vovakirdan/space-intruder/internal/config"
)

// Spawner decides when enemies appear and where.
// All randomness comes from the RNG it is given, so a seeded RNG makes spawns reproducible.
type Spawner struct {
	rng    *rand.Rand
	cfg    config.IntruderEnemy
	worldW int
}

// NewSpawner creates a spawner for a world of the given width.
func NewSpawner(rng *rand.Rand, cfg config.IntruderEnemy, worldW int) *Spawner {
	return &Spawner{
		rng:    rng,
		cfg:    cfg,
		worldW: worldW,
	}
}

// TrySpawn rolls once for a spawn. With probability 1/SpawnRate it returns a new
// enemy just above the top edge at a random x where the sprite fits.
func (s *Spawner) TrySpawn(id EntityID) (Enemy, bool) {
	rate := max(s.cfg.SpawnRate, 1)
	if s.rng.Intn(rate) != 0 {
		return Enemy{}, false
	}

	x := 0
	if span := s.worldW - s.cfg.Size; span > 0 {
		x = s.rng.Intn(span + 1)
	}

	jitter := (s.rng.Float64()*2 - 1) * s.cfg.SpeedJitter
	speed := s.cfg.BaseSpeed + jitter

	return NewEnemy(id, float64(x), -float64(s.cfg.Size), s.cfg.Size, speed), true
}
