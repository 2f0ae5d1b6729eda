// internal/system/particle.go
package system

import (
	"image/color"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/entity"
	"space-game/internal/utils"
)

// ParticleSystem двигает частицы и порождает взрывы.
type ParticleSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewParticleSystem(world *entity.World, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{world: world, rng: rng}
}

// Update ages every particle and moves it along its velocity.
func (s *ParticleSystem) Update(deltaTime float64) {
	for i := range s.world.Particles {
		p := &s.world.Particles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(deltaTime))
		p.Elapsed += deltaTime
	}
}

// Spawn appends a particle to the pool.
func (s *ParticleSystem) Spawn(p component.Particle) {
	s.world.Particles = append(s.world.Particles, p)
}

// Explode releases count square particles at center. Each flies off on
// carrierVel plus a random push of forceMin..forceMax in a random direction.
func (s *ParticleSystem) Explode(center, carrierVel utils.Vec2, forceMin, forceMax float64, count int, start, end color.RGBA, duration float64) {
	for i := 0; i < count; i++ {
		s.Spawn(component.Particle{
			Pos:        center,
			Vel:        carrierVel.Add(s.rng.Jitter(forceMin, forceMax)),
			Size:       config.ExplosionParticleSize,
			Shape:      component.ShapeSquare,
			StartColor: start,
			EndColor:   end,
			Duration:   duration,
		})
	}
}

// EnemyDies is the large burst left by a destroyed enemy.
func (s *ParticleSystem) EnemyDies(pos, vel utils.Vec2) {
	s.Explode(pos, vel, 0, config.DeathForceMax, config.DeathParticles, config.DeathStart, config.DeathEnd, config.DeathDuration)
}

// EnemyHit flashes where a friendly bullet struck.
func (s *ParticleSystem) EnemyHit(pos, vel utils.Vec2) {
	s.Explode(pos, vel, 0, config.HitForceMax, config.HitParticles, config.EnemyHitStart, config.EnemyHitEnd, config.HitDuration)
}

// PartHit flashes on a damaged player part.
func (s *ParticleSystem) PartHit(pos, vel utils.Vec2) {
	s.Explode(pos, vel, 0, config.HitForceMax, config.HitParticles, config.PartHitStart, config.PartHitEnd, config.HitDuration)
}
