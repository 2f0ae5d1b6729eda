// internal/system/emitter.go
package system

import (
	"math"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/utils"
)

// UpdateParticleEmitter re-poses an emitter on its carrier and releases the
// particles owed for deltaTime. healthFactor scales the exhaust speed. The
// outgoing velocity is picked once per tick, so every particle released in
// the same tick shares it. Returns the number of particles released.
func UpdateParticleEmitter(em *component.ParticleEmitter, carrier *component.Body, healthFactor, deltaTime float64, rng *utils.PRNGService, out *[]component.Particle) int {
	em.Pos = carrier.ToWorld(em.Offset)
	em.Vel = carrier.Vel.
		Add(carrier.Dir.Neg().Scale(em.Speed * healthFactor)).
		Add(rng.Jitter(config.JitterMin, config.JitterMax))

	if !(em.Interval > 0) || math.IsInf(em.Interval, 1) {
		em.Accumulator = 0
		return 0
	}

	em.Accumulator += deltaTime
	n := 0
	for em.Accumulator >= em.Interval {
		*out = append(*out, component.Particle{
			Pos:        em.Pos,
			Vel:        em.Vel,
			Size:       em.Template.Size,
			Shape:      em.Template.Shape,
			StartColor: em.Template.StartColor,
			EndColor:   em.Template.EndColor,
			Duration:   em.Template.Duration,
		})
		em.Accumulator -= em.Interval
		n++
	}
	return n
}

// UpdateBulletEmitter re-poses a gun and fires along aim for every interval
// that elapsed. When fire is false the interval is still consumed, so a gun
// never stores up a volley while its target is out of sight. An infinite
// interval (the gun part destroyed) disables the gun until repaired.
func UpdateBulletEmitter(em *component.BulletEmitter, carrier *component.Body, aim utils.Vec2, fire bool, deltaTime float64, out *[]component.Bullet) int {
	em.Pos = carrier.ToWorld(em.Offset)

	if !(em.Interval > 0) || math.IsInf(em.Interval, 1) {
		em.Accumulator = 0
		return 0
	}

	em.Accumulator += deltaTime
	n := 0
	for em.Accumulator >= em.Interval {
		em.Accumulator -= em.Interval
		if !fire {
			continue
		}
		t := em.Template
		*out = append(*out, component.Bullet{
			Pos:      em.Pos,
			Vel:      carrier.Vel.Add(aim.Scale(t.Speed)),
			Size:     t.Size,
			Damage:   t.Damage,
			Friendly: t.Friendly,
			Duration: t.Duration,
		})
		n++
	}
	return n
}
