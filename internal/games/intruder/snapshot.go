package intruder

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Phase is the coarse game state shown to renderers.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// Snapshot is a value copy of everything a renderer or a determinism test needs.
// It shares no memory with the live game.
type Snapshot struct {
	Frame      int
	Score      int
	Health     int
	Kills      int
	Spawned    int
	Phase      Phase
	ShowHint   bool
	WorldW     int
	WorldH     int
	Player     Player
	Bullets    []Bullet
	Enemies    []Enemy
	Explosions []Explosion
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	cfg := s.Config()

	phase := PhasePlaying
	switch {
	case s.GameOver():
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	fx := make([]Explosion, len(s.explosions))
	for i, e := range s.explosions {
		fx[i] = e.clone()
	}

	return Snapshot{
		Frame:      s.Frame(),
		Score:      s.Score(),
		Health:     s.player.Health,
		Kills:      s.Kills(),
		Spawned:    s.Spawned(),
		Phase:      phase,
		ShowHint:   s.Frame() < cfg.Gameplay.HintFrames,
		WorldW:     cfg.Screen.Width,
		WorldH:     cfg.Screen.Height,
		Player:     s.Player(),
		Bullets:    s.Bullets(),
		Enemies:    s.Enemies(),
		Explosions: fx,
	}
}

// Hash returns a fingerprint of the gameplay-relevant fields.
// Two runs with the same seed and inputs must produce the same hash.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	writeInt(snap.Frame)
	writeInt(snap.Score)
	writeInt(snap.Kills)
	writeInt(snap.Spawned)
	h.Write([]byte(snap.Phase))
	writeFloat(snap.Player.X)
	writeFloat(snap.Player.Y)

	for _, b := range snap.Bullets {
		writeInt(int(b.ID)) //#nosec G115 -- hash computation
		writeFloat(b.X)
		writeFloat(b.Y)
	}
	for _, e := range snap.Enemies {
		writeInt(int(e.ID)) //#nosec G115 -- hash computation
		writeFloat(e.X)
		writeFloat(e.Y)
		writeFloat(e.Speed())
	}

	return h.Sum64()
}
