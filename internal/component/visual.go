// internal/component/visual.go
package component

import (
	"image/color"

	"space-game/internal/utils"
	"space-game/pkg/render"
)

// Particle — короткоживущая цветная частица.
type Particle struct {
	Pos        utils.Vec2
	Vel        utils.Vec2
	Size       float64
	Shape      ParticleShape
	StartColor color.RGBA
	EndColor   color.RGBA
	Duration   float64
	Elapsed    float64
}

// Expired reports whether the particle outlived its duration.
func (p *Particle) Expired() bool {
	return p.Elapsed >= p.Duration
}

// Color is the start→end blend at the particle's current age.
func (p *Particle) Color() color.RGBA {
	return render.ColorLerp(p.StartColor, p.EndColor, p.Elapsed/p.Duration)
}
