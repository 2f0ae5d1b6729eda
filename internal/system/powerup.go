// internal/system/powerup.go
package system

import (
	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/entity"
	"space-game/internal/event"
	"space-game/internal/utils"
)

// PowerUpSystem срабатывает, когда любая часть корабля касается бонуса.
type PowerUpSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewPowerUpSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *PowerUpSystem {
	return &PowerUpSystem{world: world, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *PowerUpSystem) Update() {
	player := s.world.Player
	for i := range s.world.PowerUps {
		pu := &s.world.PowerUps[i]
		for j := range player.Parts {
			part := &player.Parts[j]
			if part.Pos.DistanceTo(pu.Pos) < part.Size+config.PowerUpRadius {
				s.apply(pu, player)
				break
			}
		}
	}
}

func (s *PowerUpSystem) apply(pu *component.PowerUp, player *component.Player) {
	switch pu.Type {
	case component.PowerUpRepair:
		player.RepairAll()
		dist := s.rng.Range(config.RepairMinDistance, config.RepairMaxDistance)
		pu.Pos = player.Pos.Add(s.rng.Direction().Scale(dist))
		s.eventDispatcher.Emit(event.PowerUpCollected, event.PowerUpData{Kind: pu.Type.String()})
	case component.PowerUpShield:
		// not designed yet
	}
}
