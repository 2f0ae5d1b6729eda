package component

import (
	"image/color"

	"space-game/internal/utils"
)

// ParticleShape selects the draw primitive of a particle.
type ParticleShape int

const (
	ShapeSquare ParticleShape = iota
	ShapeCircle
	ShapeRotSquare
)

// ParticleTemplate is copied into every particle an emitter releases.
type ParticleTemplate struct {
	Size       float64
	Shape      ParticleShape
	StartColor color.RGBA
	EndColor   color.RGBA
	Duration   float64
}

// ParticleEmitter is attached to a carrier and releases particles at a fixed average rate.
type ParticleEmitter struct {
	Offset      utils.Vec2
	Pos         utils.Vec2 // derived
	Vel         utils.Vec2 // outgoing particle velocity, derived
	BaseSpeed   float64
	Speed       float64 // BaseSpeed scaled by damage links, recomputed each tick
	Template    ParticleTemplate
	Interval    float64
	Accumulator float64
	// HealthPart is the carrier part whose health ratio scales the exhaust; -1 for none.
	HealthPart int
}

// BulletTemplate is copied into every bullet an emitter fires.
type BulletTemplate struct {
	Size     float64
	Damage   float64
	Speed    float64
	Duration float64
	Friendly bool
}

// BulletEmitter is a gun mount attached to a carrier.
type BulletEmitter struct {
	Offset       utils.Vec2
	Pos          utils.Vec2 // derived
	Template     BulletTemplate
	BaseInterval float64
	Interval     float64 // BaseInterval scaled by damage links, recomputed each tick
	Accumulator  float64
}
