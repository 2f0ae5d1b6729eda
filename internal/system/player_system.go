// internal/system/player_system.go
package system

import (
	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/entity"
	"space-game/internal/platform"
	"space-game/internal/utils"
)

// PlayerSystem отвечает за корабль игрока: параметры от повреждений,
// управление, движение и его излучатели.
type PlayerSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewPlayerSystem(world *entity.World, rng *utils.PRNGService) *PlayerSystem {
	return &PlayerSystem{world: world, rng: rng}
}

func (s *PlayerSystem) Update(deltaTime float64, in platform.Input) {
	p := s.world.Player

	ResetParameters(p)
	ApplyDamageLinks(p)

	if in != nil {
		if in.IsKeyDown(platform.KeyA) {
			Turn(&p.Body, -p.LeftTurn*deltaTime)
		}
		if in.IsKeyDown(platform.KeyD) {
			Turn(&p.Body, p.RightTurn*deltaTime)
		}
	}

	Integrate(&p.Body, p.Speed, 1, deltaTime)
	UpdatePartPoses(p)

	for i := range p.ParticleEmitters {
		em := &p.ParticleEmitters[i]
		UpdateParticleEmitter(em, &p.Body, s.healthFactor(em), deltaTime, s.rng, &s.world.Particles)
	}

	fire := EnemyInSights(p.Body, s.world.Enemies)
	for i := range p.BulletEmitters {
		UpdateBulletEmitter(&p.BulletEmitters[i], &p.Body, p.Dir, fire, deltaTime, &s.world.Bullets)
	}
}

// UpdatePartPoses places every part relative to the current body pose.
func UpdatePartPoses(p *component.Player) {
	for i := range p.Parts {
		p.Parts[i].Pos = p.ToWorld(p.Parts[i].Offset)
	}
}

// healthFactor scales an engine's exhaust by the health of the part it hangs off.
func (s *PlayerSystem) healthFactor(em *component.ParticleEmitter) float64 {
	p := s.world.Player
	if em.HealthPart < 0 || em.HealthPart >= len(p.Parts) {
		return 1
	}
	return p.Parts[em.HealthPart].Ratio()
}

// EnemyInSights reports whether a live enemy lies inside the firing cone of body.
func EnemyInSights(body component.Body, enemies []component.Enemy) bool {
	for i := range enemies {
		e := &enemies[i]
		if e.Dead() {
			continue
		}
		to := e.Pos.Sub(body.Pos)
		if to.IsZero() {
			return true
		}
		if to.Normalize().Dot(body.Dir) > config.FireConeCos {
			return true
		}
	}
	return false
}
