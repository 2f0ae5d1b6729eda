package system

import (
	"testing"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/event"
	"space-game/internal/utils"
)

func TestFriendlyBulletDamageFadesWithAge(t *testing.T) {
	r := newTestRig()
	enemy := newTestEnemy(utils.V(1000, 0))
	enemy.Health = 2
	r.world.Enemies = append(r.world.Enemies, enemy)
	r.world.Bullets = append(r.world.Bullets, component.Bullet{
		Pos: utils.V(1000, 0), Size: 4, Damage: 2, Friendly: true, Duration: 2, Elapsed: 1.5,
	})

	NewBulletSystem(r.world, r.particles, r.events).Update(0)

	if got := r.world.Enemies[0].Health; got != 1.5 {
		t.Errorf("enemy health = %g, want 1.5", got)
	}
	if len(r.world.Particles) != config.HitParticles {
		t.Errorf("expected %d hit particles, got %d", config.HitParticles, len(r.world.Particles))
	}
	if len(r.world.Bullets) != 1 {
		t.Errorf("bullet should survive the hit")
	}
}

func TestBulletsKeepHittingShotDownEnemy(t *testing.T) {
	r := newTestRig()
	r.world.Enemies = append(r.world.Enemies, newTestEnemy(utils.V(1000, 0)))
	for i := 0; i < 2; i++ {
		r.world.Bullets = append(r.world.Bullets, component.Bullet{
			Pos: utils.V(1000, 0), Size: 4, Damage: 1, Friendly: true, Duration: 1,
		})
	}

	NewBulletSystem(r.world, r.particles, r.events).Update(0)

	if got := r.world.Enemies[0].Health; got != -1 {
		t.Errorf("enemy health = %g, want -1", got)
	}
	if got := len(r.world.Particles); got != 2*config.HitParticles {
		t.Errorf("particles = %d, want %d", got, 2*config.HitParticles)
	}
}

func TestHostileBulletDamagesParts(t *testing.T) {
	r := newTestRig()
	cockpit := r.world.Player.Parts[2]
	r.world.Bullets = append(r.world.Bullets, component.Bullet{
		Pos: cockpit.Pos, Size: 1, Damage: 1, Duration: 1,
	})

	NewBulletSystem(r.world, r.particles, r.events).Update(0)

	if got := r.world.Player.Parts[2].Health; got != 1 {
		t.Errorf("cockpit health = %g, want 1", got)
	}
	if r.count(event.PartDamaged) == 0 {
		t.Error("expected a PartDamaged event")
	}
}

func TestHostileBulletIgnoresEnemies(t *testing.T) {
	r := newTestRig()
	r.world.Enemies = append(r.world.Enemies, newTestEnemy(utils.V(1000, 0)))
	r.world.Bullets = append(r.world.Bullets, component.Bullet{Pos: utils.V(1000, 0), Size: 4, Damage: 1, Duration: 1})

	NewBulletSystem(r.world, r.particles, r.events).Update(0)

	if r.world.Enemies[0].Health != 1 {
		t.Errorf("hostile bullet damaged an enemy")
	}
}

func TestBulletMovesAndAges(t *testing.T) {
	r := newTestRig()
	r.world.Bullets = append(r.world.Bullets, component.Bullet{
		Pos: utils.V(5000, 0), Vel: utils.V(100, 0), Size: 1, Damage: 1, Friendly: true, Duration: 1,
	})
	bs := NewBulletSystem(r.world, r.particles, r.events)

	bs.Update(0.5)
	b := r.world.Bullets[0]
	if b.Pos != utils.V(5050, 0) || b.Elapsed != 0.5 {
		t.Fatalf("after 0.5s bullet = %+v", b)
	}

	bs.Update(0.5)
	r.world.Retain()
	if len(r.world.Bullets) != 0 {
		t.Errorf("expired bullet was retained")
	}
}
