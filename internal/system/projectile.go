// internal/system/projectile.go
package system

import (
	"space-game/internal/entity"
	"space-game/internal/event"
)

// BulletSystem двигает снаряды и разрешает попадания. A bullet is not
// consumed by a hit: it keeps flying and may strike again until it expires.
// Enemies already shot down this tick still take hits until retention.
type BulletSystem struct {
	world           *entity.World
	particles       *ParticleSystem
	eventDispatcher *event.Dispatcher
}

func NewBulletSystem(world *entity.World, particles *ParticleSystem, eventDispatcher *event.Dispatcher) *BulletSystem {
	return &BulletSystem{world: world, particles: particles, eventDispatcher: eventDispatcher}
}

func (s *BulletSystem) Update(deltaTime float64) {
	player := s.world.Player
	for i := range s.world.Bullets {
		b := &s.world.Bullets[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(deltaTime))
		b.Elapsed += deltaTime
		if b.Expired() {
			continue
		}

		if b.Friendly {
			for j := range s.world.Enemies {
				e := &s.world.Enemies[j]
				if b.Pos.DistanceTo(e.Pos) >= b.Size*2+e.Size {
					continue
				}
				e.Health -= b.Strength()
				s.particles.EnemyHit(b.Pos, player.Vel)
			}
			continue
		}

		for j := range player.Parts {
			part := &player.Parts[j]
			if b.Pos.DistanceTo(part.Pos) >= b.Size*2+part.Size {
				continue
			}
			dmg := b.Strength()
			part.TakeDamage(dmg)
			s.particles.PartHit(part.Pos, player.Vel)
			s.eventDispatcher.Emit(event.PartDamaged, event.PartDamagedData{
				Part:      part.Name,
				Damage:    dmg,
				Remaining: part.Health,
			})
		}
	}
}
