package particle

import (
	"math"

	"github.com/milk9111/folio/common"
)

const (
	repelRadius    = 100.0
	repelStrength  = 0.01
	swellFactor    = 2.0
	drag           = 0.99
	bounceDamping  = 0.8
	initialSpeed   = 0.25
	minDecay       = 0.003
	maxDecay       = 0.023
	minBaseSize    = 1.0
	maxBaseSize    = 4.0
	minDensity     = 1.0
	maxDensity     = 31.0
	glowBlur       = 20.0
	coreAlpha      = 0.8
	secondaryAlpha = 0.4
	glowAlpha      = 0.3
)

// Particle is a single point light with a fading lifetime.
type Particle struct {
	Pos  common.Vec
	Vel  common.Vec
	Size float64
	// BaseSize is the rest radius; Size swells above it near the pointer.
	BaseSize float64
	// Density is drawn per particle but does not affect motion.
	Density float64
	Life    float64
	Decay   float64
}

func newParticle(w, h float64, rng Rand) Particle {
	p := Particle{
		Pos: common.Vec{X: uniform(rng, 0, w), Y: uniform(rng, 0, h)},
		Vel: common.Vec{
			X: uniform(rng, -initialSpeed, initialSpeed),
			Y: uniform(rng, -initialSpeed, initialSpeed),
		},
		Life:  1,
		Decay: uniform(rng, minDecay, maxDecay),
	}
	p.BaseSize = uniform(rng, minBaseSize, maxBaseSize)
	p.Size = p.BaseSize
	p.Density = uniform(rng, minDensity, maxDensity)
	return p
}

// Advance moves the particle one tick inside a w×h surface, applying
// pointer repulsion, drag, boundary bounces and life decay. A particle
// whose life runs out is respawned in place.
func (p *Particle) Advance(w, h float64, pointer common.Vec, rng Rand) {
	if p == nil {
		return
	}

	p.Pos = p.Pos.Add(p.Vel)

	if d := p.Pos.Dist(pointer); d < repelRadius {
		force := (repelRadius - d) / repelRadius
		angle := math.Atan2(p.Pos.Y-pointer.Y, p.Pos.X-pointer.X)
		p.Vel.X += math.Cos(angle) * force * repelStrength
		p.Vel.Y += math.Sin(angle) * force * repelStrength
		p.Size = p.BaseSize + force*swellFactor
	} else {
		p.Size = p.BaseSize
	}

	p.Vel = p.Vel.Scale(drag)

	if p.Pos.X < 0 || p.Pos.X > w {
		p.Vel.X *= -bounceDamping
		p.Pos.X = common.Clamp(p.Pos.X, 0, w)
	}
	if p.Pos.Y < 0 || p.Pos.Y > h {
		p.Vel.Y *= -bounceDamping
		p.Pos.Y = common.Clamp(p.Pos.Y, 0, h)
	}

	p.Life -= p.Decay
	if p.Life <= 0 {
		*p = newParticle(w, h, rng)
	}
}

// Draw paints the particle's gradient disc and its glow core.
func (p *Particle) Draw(s Surface, pal Palette) {
	if p == nil || s == nil || p.Size <= 0 {
		return
	}

	s.FillRadialGradient(p.Pos.X, p.Pos.Y, p.Size, []GradientStop{
		{Offset: 0, Color: WithAlpha(pal.Accent, p.Life*coreAlpha)},
		{Offset: 0.5, Color: WithAlpha(pal.Secondary, p.Life*secondaryAlpha)},
		{Offset: 1, Color: WithAlpha(pal.Accent, 0)},
	})

	core := WithAlpha(pal.Accent, p.Life*glowAlpha)
	if g, ok := s.(Glower); ok {
		g.FillGlowCircle(p.Pos.X, p.Pos.Y, p.Size*0.5, glowBlur, core)
		return
	}
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Size*0.5, core)
}
