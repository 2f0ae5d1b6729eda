// internal/entity/world.go
package entity

import (
	"space-game/internal/component"
)

// World owns every entity collection of one game. Pools are unordered; an
// entity's identity is its index until the next retention pass.
type World struct {
	GameTime  float64
	State     component.RunState
	Player    *component.Player
	Enemies   []component.Enemy
	Bullets   []component.Bullet
	Particles []component.Particle
	PowerUps  []component.PowerUp
	Waves     []component.Wave
}

func NewWorld(player *component.Player) *World {
	return &World{
		Player:    player,
		State:     component.RunPlaying,
		Enemies:   make([]component.Enemy, 0, 64),
		Bullets:   make([]component.Bullet, 0, 256),
		Particles: make([]component.Particle, 0, 4096),
	}
}

// Retain drops dead enemies and expired bullets and particles.
func (w *World) Retain() {
	w.Enemies = SwapRemove(w.Enemies, func(e *component.Enemy) bool { return e.Dead() })
	w.Bullets = SwapRemove(w.Bullets, func(b *component.Bullet) bool { return b.Expired() })
	w.Particles = SwapRemove(w.Particles, func(p *component.Particle) bool { return p.Expired() })
}
