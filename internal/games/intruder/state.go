package intruder

import (
	"math/rand"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/space-intruder/internal/config"
)

// State owns every entity of a running game and advances them one frame at a time.
// It has two states, playing and game over; the only way out of game over is ResetGame.
type State struct {
	cfg     config.IntruderConfig
	rng     *rand.Rand // gameplay randomness (spawns, enemy speeds)
	fxRng   *rand.Rand // cosmetic randomness, kept apart so effects never shift spawns
	spawner *Spawner

	player     Player
	bullets    []Bullet
	enemies    []Enemy
	explosions []Explosion

	score    int
	gameOver bool
	frame    int
	nextID   EntityID

	spawned int // enemies spawned since the last reset
	kills   int // enemies destroyed since the last reset

	// dead collects ids destroyed during the collision pass; they are swept afterwards.
	dead *intmap.Map[EntityID, struct{}]
}

// NewState creates a game ready to play. The seed fixes all gameplay randomness.
// The config is expected to have passed Validate.
func NewState(cfg config.IntruderConfig, seed int64) *State {
	rng := rand.New(rand.NewSource(seed))
	s := &State{
		cfg:     cfg,
		rng:     rng,
		fxRng:   rand.New(rand.NewSource(seed ^ 0x5eed)),
		spawner: NewSpawner(rng, cfg.Enemy, cfg.Screen.Width),
		dead:    intmap.New[EntityID, struct{}](16),
	}
	s.ResetGame()
	return s
}

// ResetGame puts the player back at the start position and clears everything else.
// The RNG stream is not reseeded, so consecutive games differ.
func (s *State) ResetGame() {
	s.player = Player{
		X:      float64(s.cfg.Screen.Width/2 - s.cfg.Player.Size/2),
		Y:      float64(s.cfg.Screen.Height - s.cfg.Player.Size - s.cfg.Player.BottomMargin),
		Width:  s.cfg.Player.Size,
		Height: s.cfg.Player.Size,
		Speed:  s.cfg.Player.Speed,
		Health: s.cfg.Player.Health,
	}
	s.bullets = s.bullets[:0]
	s.enemies = s.enemies[:0]
	s.explosions = s.explosions[:0]
	s.score = 0
	s.gameOver = false
	s.frame = 0
	s.spawned = 0
	s.kills = 0
	s.dead.Clear()
}

// HandleInput moves the player and fires. It must be called before Update within
// a frame: the fire-rate check uses the frame counter before Update increments it.
// Does nothing once the game is over.
func (s *State) HandleInput(c Controls) {
	if s.gameOver {
		return
	}

	s.player.Move(c, s.cfg.Screen.Width, s.cfg.Screen.Height)

	if c.Fire && s.frame%max(s.cfg.Gameplay.FireInterval, 1) == 0 {
		s.fire()
	}
}

// fire launches a bullet from the nose of the craft.
func (s *State) fire() {
	b := s.cfg.Bullet
	s.bullets = append(s.bullets, Bullet{
		ID:     s.newID(),
		X:      s.player.X + float64(s.player.Width/2-b.Width/2),
		Y:      s.player.Y,
		Width:  b.Width,
		Height: b.Height,
		Speed:  b.Speed,
	})
}

// Update advances the simulation by one frame. Does nothing once the game is over.
func (s *State) Update() {
	if s.gameOver {
		return
	}

	s.frame++

	if e, ok := s.spawner.TrySpawn(s.nextID + 1); ok {
		s.nextID++
		s.enemies = append(s.enemies, e)
		s.spawned++
	}

	s.advance()
	s.resolveBulletHits()
	s.resolvePlayerHit()
}

// advance moves every entity and drops the ones that left the world.
// Compaction writes behind the read index, so no element is skipped or visited twice.
func (s *State) advance() {
	liveBullets := s.bullets[:0]
	for _, b := range s.bullets {
		b.Update()
		if !b.IsOffScreen() {
			liveBullets = append(liveBullets, b)
		}
	}
	s.bullets = liveBullets

	liveEnemies := s.enemies[:0]
	for _, e := range s.enemies {
		e.Update()
		if !e.IsOffScreen(s.cfg.Screen.Height) {
			liveEnemies = append(liveEnemies, e)
		}
	}
	s.enemies = liveEnemies

	liveFX := s.explosions[:0]
	for _, fx := range s.explosions {
		fx.Update()
		if !fx.Finished() {
			liveFX = append(liveFX, fx)
		}
	}
	s.explosions = liveFX
}

// resolveBulletHits destroys bullet/enemy pairs that overlap.
// Each bullet takes out at most one enemy: the first live one in spawn order.
func (s *State) resolveBulletHits() {
	s.dead.Clear()

	for _, b := range s.bullets {
		br := b.Rect()
		for _, e := range s.enemies {
			if s.isDead(e.ID) {
				continue
			}
			if !br.Intersects(e.Rect()) {
				continue
			}

			s.dead.Put(b.ID, struct{}{})
			s.dead.Put(e.ID, struct{}{})
			s.score += s.cfg.Gameplay.PointsPerKill
			s.kills++

			cx, cy := e.Rect().Center()
			s.explosions = append(s.explosions, newExplosion(s.fxRng, cx, cy, false))
			break
		}
	}

	if s.dead.Len() == 0 {
		return
	}
	s.bullets = slices.DeleteFunc(s.bullets, func(b Bullet) bool { return s.isDead(b.ID) })
	s.enemies = slices.DeleteFunc(s.enemies, func(e Enemy) bool { return s.isDead(e.ID) })
}

// resolvePlayerHit ends the game on the first enemy touching the player.
// The enemy that hit stays where it is.
func (s *State) resolvePlayerHit() {
	pr := s.player.Rect()
	for _, e := range s.enemies {
		if pr.Intersects(e.Rect()) {
			s.gameOver = true
			cx, cy := pr.Center()
			s.explosions = append(s.explosions, newExplosion(s.fxRng, cx, cy, true))
			return
		}
	}
}

func (s *State) isDead(id EntityID) bool {
	_, ok := s.dead.Get(id)
	return ok
}

func (s *State) newID() EntityID {
	s.nextID++
	return s.nextID
}

// Config returns the configuration the game runs with.
func (s *State) Config() config.IntruderConfig { return s.cfg }

// Player returns a copy of the player.
func (s *State) Player() Player { return s.player }

// Bullets returns a copy of the live bullets in creation order.
func (s *State) Bullets() []Bullet { return slices.Clone(s.bullets) }

// Enemies returns a copy of the live enemies in spawn order.
func (s *State) Enemies() []Enemy { return slices.Clone(s.enemies) }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// GameOver reports whether the player has been hit.
func (s *State) GameOver() bool { return s.gameOver }

// Frame returns the number of frames simulated since the last reset.
func (s *State) Frame() int { return s.frame }

// Spawned returns the number of enemies spawned since the last reset.
func (s *State) Spawned() int { return s.spawned }

// Kills returns the number of enemies destroyed since the last reset.
func (s *State) Kills() int { return s.kills }
