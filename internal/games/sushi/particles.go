package sushi

import (
	"math"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

const maxParticles = 600

// Particle is a short-lived cosmetic effect in screen space.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.Color
}

// burst scatters n particles from (x, y) in random directions.
func (w *World) burst(x, y float64, n int, c core.Color) {
	for i := 0; i < n && len(w.Particles) < maxParticles; i++ {
		a := w.rng.Float64() * 2 * math.Pi
		s := w.rng.Float64() * 3
		w.Particles = append(w.Particles, &Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(a) * s,
			VY:      math.Sin(a) * s,
			Life:    20 + w.rng.Intn(31),
			MaxLife: 50,
			Color:   c,
		})
	}
}

// updateParticles moves and ages particles, dropping dead ones.
func (w *World) updateParticles() {
	kept := w.Particles[:0]
	for _, p := range w.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= 0.96
		p.VY *= 0.96
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	w.Particles = kept
}
