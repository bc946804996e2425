package intruder

import (
	"math"
	"math/rand"
)

// Explosion tuning
const (
	explosionLife      = 30 // Frames an explosion lasts
	explosionParticles = 12 // Particles for a destroyed enemy
	crashParticles     = 20 // Particles for the player crash
	particleFriction   = 0.95
)

// Particle is one fragment of an explosion.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Hot    bool // Hot particles are drawn yellow, the rest red
}

// Explosion is a purely visual burst of particles.
// It never takes part in collisions or scoring.
type Explosion struct {
	Particles []Particle
	Age       int
	Large     bool
}

// newExplosion creates a burst centered at (x, y).
func newExplosion(rng *rand.Rand, x, y float64, large bool) Explosion {
	n := explosionParticles
	if large {
		n = crashParticles
	}

	particles := make([]Particle, n)
	for i := range particles {
		angle := 2*math.Pi*float64(i)/float64(n) + rng.Float64()*0.5
		speed := 2 + rng.Float64()*4
		particles[i] = Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Size: 3 + rng.Float64()*4,
			Hot:  rng.Float64() > 0.5,
		}
	}

	return Explosion{Particles: particles, Large: large}
}

// Update advances all particles by one frame.
func (e *Explosion) Update() {
	e.Age++
	for i := range e.Particles {
		p := &e.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleFriction
		p.VY *= particleFriction
	}
}

// Finished reports whether the explosion has faded out.
func (e Explosion) Finished() bool {
	return e.Age >= explosionLife
}

// Fade returns the remaining intensity in [0, 1].
func (e Explosion) Fade() float64 {
	return 1 - float64(min(e.Age, explosionLife))/explosionLife
}

// clone returns a deep copy so snapshots do not alias live particles.
func (e Explosion) clone() Explosion {
	c := e
	c.Particles = append([]Particle(nil), e.Particles...)
	return c
}
