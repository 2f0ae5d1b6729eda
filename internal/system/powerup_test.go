package system

import (
	"testing"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/event"
	"space-game/internal/utils"
)

func TestRepairPowerUp(t *testing.T) {
	r := newTestRig()
	p := r.world.Player
	p.Parts[0].Health = 0.5
	p.Parts[3].Health = 1
	r.world.PowerUps = []component.PowerUp{{Pos: p.Parts[2].Pos, Type: component.PowerUpRepair}}

	NewPowerUpSystem(r.world, r.rng, r.events).Update()

	for _, part := range p.Parts {
		if part.Health != part.StartingHealth {
			t.Errorf("%s not repaired: %g", part.Name, part.Health)
		}
	}
	d := r.world.PowerUps[0].Pos.DistanceTo(p.Pos)
	if d < config.RepairMinDistance || d >= config.RepairMaxDistance+1e-6 {
		t.Errorf("relocated to distance %g, want [%g, %g)", d, config.RepairMinDistance, config.RepairMaxDistance)
	}
	if r.count(event.PowerUpCollected) != 1 {
		t.Errorf("PowerUpCollected events = %d, want 1", r.count(event.PowerUpCollected))
	}
}

func TestPowerUpOutOfReach(t *testing.T) {
	r := newTestRig()
	p := r.world.Player
	p.Parts[0].Health = 1
	at := utils.V(200, 0)
	r.world.PowerUps = []component.PowerUp{{Pos: at, Type: component.PowerUpRepair}}

	NewPowerUpSystem(r.world, r.rng, r.events).Update()

	if p.Parts[0].Health != 1 || r.world.PowerUps[0].Pos != at {
		t.Error("power-up triggered out of reach")
	}
}

func TestShieldPowerUpIsInert(t *testing.T) {
	r := newTestRig()
	p := r.world.Player
	p.Parts[0].Health = 1
	at := p.Parts[2].Pos
	r.world.PowerUps = []component.PowerUp{{Pos: at, Type: component.PowerUpShield}}

	NewPowerUpSystem(r.world, r.rng, r.events).Update()

	if p.Parts[0].Health != 1 || r.world.PowerUps[0].Pos != at {
		t.Error("shield power-up had an effect")
	}
}
