package component

import "space-game/internal/utils"

// FireGate decides whether an enemy's guns may fire this tick.
type FireGate int

const (
	GateAlways FireGate = iota
	GateFacing          // player within the aim cone
	GateNever
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Name string
	Body
	TargetPos    utils.Vec2
	Speed        float64
	TurningSpeed float64 // degrees per second
	Predictive   bool
	Size         float64 // collision radius
	Health       float64
	TextureScale float64
	Friction     float64 // lateral damping multiplier

	ParticleEmitters []ParticleEmitter
	BulletEmitters   []BulletEmitter
	Gate             FireGate
	Cannon           *Cannon // nil for ships without a turret head

	Texture string
}

// Dead reports whether the enemy is flagged for removal.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// Clone returns a deep copy so spawned enemies never share emitter state with their template.
func (e *Enemy) Clone() Enemy {
	c := *e
	c.ParticleEmitters = append([]ParticleEmitter(nil), e.ParticleEmitters...)
	c.BulletEmitters = append([]BulletEmitter(nil), e.BulletEmitters...)
	if e.Cannon != nil {
		cannon := *e.Cannon
		c.Cannon = &cannon
	}
	return c
}
