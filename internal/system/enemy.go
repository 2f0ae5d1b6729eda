// internal/system/enemy.go
package system

import (
	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/entity"
	"space-game/internal/event"
	"space-game/internal/utils"
)

// EnemySystem управляет ИИ врагов, их движением, стрельбой и столкновениями.
//
// The pass runs in phases so that every enemy explodes exactly once, whatever
// killed it: enemies shot down by bullets earlier in the tick go first, then
// the live ones steer and fire, then ramming and mutual collisions resolve.
type EnemySystem struct {
	world           *entity.World
	particles       *ParticleSystem
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(world *entity.World, particles *ParticleSystem, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{world: world, particles: particles, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *EnemySystem) Update(deltaTime float64) {
	enemies := s.world.Enemies
	player := s.world.Player

	// Alive flags are taken before the pass; anything already dead was shot.
	alive := make([]bool, len(enemies))
	for i := range enemies {
		e := &enemies[i]
		if e.Dead() {
			s.destroy(e, event.CauseBullet)
			continue
		}
		alive[i] = true
	}

	for i := range enemies {
		if alive[i] {
			s.think(&enemies[i], player, deltaTime)
		}
	}

	// Ramming: the enemy dies, every part it touches takes one point.
	for i := range enemies {
		if !alive[i] {
			continue
		}
		e := &enemies[i]
		rammed := false
		for j := range player.Parts {
			part := &player.Parts[j]
			if e.Pos.DistanceTo(part.Pos) >= e.Size+part.Size {
				continue
			}
			rammed = true
			part.TakeDamage(1)
			s.particles.PartHit(part.Pos, player.Vel)
			s.eventDispatcher.Emit(event.PartDamaged, event.PartDamagedData{
				Part:      part.Name,
				Damage:    1,
				Remaining: part.Health,
			})
		}
		if rammed {
			e.Health = -1
			alive[i] = false
			s.destroy(e, event.CauseRamming)
		}
	}

	// Each unordered pair is tested once against the survivors of ramming;
	// an enemy touching several others still explodes once.
	collided := make([]bool, len(enemies))
	for i := range enemies {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < len(enemies); j++ {
			if !alive[j] {
				continue
			}
			a, b := &enemies[i], &enemies[j]
			if a.Pos.DistanceTo(b.Pos) < a.Size+b.Size {
				collided[i], collided[j] = true, true
			}
		}
	}
	for i := range enemies {
		if collided[i] {
			enemies[i].Health = -1
			s.destroy(&enemies[i], event.CauseCollision)
		}
	}
}

// think runs targeting, steering, integration, the cannon and the emitters of one live enemy.
func (s *EnemySystem) think(e *component.Enemy, player *component.Player, deltaTime float64) {
	e.TargetPos = player.Pos
	if speed := e.Vel.Length(); e.Predictive && speed > 0 {
		e.TargetPos = PredictIntercept(e.Pos, speed, player.Pos, player.Dir, player.Vel.Length(), config.PredictIterations)
	}

	SteerToward(&e.Body, e.TargetPos, e.TurningSpeed, deltaTime)
	Integrate(&e.Body, e.Speed, e.Friction, deltaTime)

	aim := e.Dir
	if e.Cannon != nil {
		aimCannon(e.Cannon, e.Pos, e.TargetPos, deltaTime)
		aim = e.Cannon.Dir
	}

	for i := range e.ParticleEmitters {
		UpdateParticleEmitter(&e.ParticleEmitters[i], &e.Body, 1, deltaTime, s.rng, &s.world.Particles)
	}

	fire := s.gateOpen(e, aim, player.Pos)
	for i := range e.BulletEmitters {
		UpdateBulletEmitter(&e.BulletEmitters[i], &e.Body, aim, fire, deltaTime, &s.world.Bullets)
	}
}

func (s *EnemySystem) gateOpen(e *component.Enemy, aim, playerPos utils.Vec2) bool {
	switch e.Gate {
	case component.GateAlways:
		return true
	case component.GateFacing:
		to := playerPos.Sub(e.Pos)
		return to.IsZero() || to.Normalize().Dot(aim) > config.FireConeCos
	default:
		return false
	}
}

func (s *EnemySystem) destroy(e *component.Enemy, cause event.Cause) {
	s.particles.EnemyDies(e.Pos, e.Vel)
	s.eventDispatcher.Emit(event.EnemyDestroyed, event.EnemyDestroyedData{Archetype: e.Name, Cause: cause})
}

// PredictIntercept solves for where a target moving in a straight line will
// be when a shooter at from, closing at speed, reaches it. The fixed-point
// iteration starts from the target's current position.
func PredictIntercept(from utils.Vec2, speed float64, target, targetDir utils.Vec2, targetSpeed float64, iterations int) utils.Vec2 {
	pos := target
	if speed <= 0 {
		return pos
	}
	tau := 0.0
	for i := 0; i < iterations; i++ {
		pos = target.Add(targetDir.Scale(targetSpeed * tau))
		tau = pos.DistanceTo(from) / speed
	}
	return pos
}

// aimCannon turns the cannon toward target by at most TurnSpeed·dt degrees.
func aimCannon(c *component.Cannon, pos, target utils.Vec2, deltaTime float64) {
	to := target.Sub(pos)
	if to.IsZero() {
		return
	}
	diff := utils.NormalizeAngle(utils.VectorToAngle(to) - utils.VectorToAngle(c.Dir))
	step := utils.DegToRad(c.TurnSpeed) * deltaTime
	c.Dir = utils.RotateVector(c.Dir, utils.Clamp(diff, -step, step))
}
