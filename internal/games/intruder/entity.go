package intruder

import "github.com/vovakirdan/space-intruder/internal/core"

// EntityID identifies a bullet or enemy for its whole lifetime.
// IDs are never reused within a State, so removal never depends on field equality.
type EntityID uint64

// Controls is the per-frame movement and fire input.
// Directions are independent; opposite directions cancel out.
type Controls struct {
	Left, Right, Up, Down bool
	Fire                  bool
}

// ControlsFromInput extracts controls from a platform input frame.
func ControlsFromInput(in core.InputFrame) Controls {
	return Controls{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Fire:  in.Has(core.ActionFire),
	}
}

// Player is the craft controlled by the user.
type Player struct {
	X, Y   float64
	Width  int
	Height int
	Speed  float64
	// Health is shown on the HUD. Nothing decrements it: the game ends on the
	// first enemy contact.
	Health int
}

// Move applies one frame of directional input and clamps the craft to the world.
// Diagonal movement is the sum of both axes and is not normalized.
func (p *Player) Move(c Controls, worldW, worldH int) {
	if c.Left {
		p.X -= p.Speed
	}
	if c.Right {
		p.X += p.Speed
	}
	if c.Up {
		p.Y -= p.Speed
	}
	if c.Down {
		p.Y += p.Speed
	}

	p.X = core.ClampF(p.X, 0, float64(worldW-p.Width))
	p.Y = core.ClampF(p.Y, 0, float64(worldH-p.Height))
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, float64(p.Width), float64(p.Height))
}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	ID     EntityID
	X, Y   float64
	Width  int
	Height int
	Speed  float64
}

// Update moves the bullet up by its speed.
func (b *Bullet) Update() {
	b.Y -= b.Speed
}

// IsOffScreen reports whether the bullet has left the top of the world.
func (b Bullet) IsOffScreen() bool {
	return b.Y < 0
}

// Rect returns the bullet's collision rectangle.
func (b Bullet) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, float64(b.Width), float64(b.Height))
}

// Enemy descends from the top of the world at a per-instance speed.
type Enemy struct {
	ID     EntityID
	X, Y   float64
	Width  int
	Height int
	speed  float64
}

// NewEnemy creates an enemy. The speed is fixed for the enemy's lifetime.
func NewEnemy(id EntityID, x, y float64, size int, speed float64) Enemy {
	return Enemy{
		ID:     id,
		X:      x,
		Y:      y,
		Width:  size,
		Height: size,
		speed:  speed,
	}
}

// Speed returns the enemy's descent speed per frame.
func (e Enemy) Speed() float64 {
	return e.speed
}

// Update moves the enemy down by its speed.
func (e *Enemy) Update() {
	e.Y += e.speed
}

// IsOffScreen reports whether the enemy has passed the bottom of the world.
func (e Enemy) IsOffScreen(worldH int) bool {
	return e.Y > float64(worldH)
}

// Rect returns the enemy's collision rectangle.
func (e Enemy) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, float64(e.Width), float64(e.Height))
}
