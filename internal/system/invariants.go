// internal/system/invariants.go
package system

import (
	"errors"
	"fmt"
	"math"

	"space-game/internal/component"
	"space-game/internal/entity"
)

// ErrInvariant marks a world state the tick must never produce.
var ErrInvariant = errors.New("invariant violated")

// CheckInvariants validates the world between ticks.
func CheckInvariants(w *entity.World) error {
	p := w.Player
	if !p.Pos.IsFinite() || !p.Vel.IsFinite() || !p.Dir.IsFinite() {
		return fmt.Errorf("%w: player pose pos=%v vel=%v dir=%v", ErrInvariant, p.Pos, p.Vel, p.Dir)
	}
	for i := range p.Parts {
		part := &p.Parts[i]
		if part.Health < 0 || part.Health > part.StartingHealth {
			return fmt.Errorf("%w: part %q health %g outside [0,%g]", ErrInvariant, part.Name, part.Health, part.StartingHealth)
		}
	}
	if err := checkEmitters("player", p.ParticleEmitters, p.BulletEmitters); err != nil {
		return err
	}
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Pos.IsFinite() || !e.Vel.IsFinite() {
			return fmt.Errorf("%w: enemy %q pose pos=%v vel=%v", ErrInvariant, e.Name, e.Pos, e.Vel)
		}
		if err := checkEmitters(fmt.Sprintf("enemy %d (%s)", i, e.Name), e.ParticleEmitters, e.BulletEmitters); err != nil {
			return err
		}
	}
	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Elapsed < 0 || b.Elapsed >= b.Duration {
			return fmt.Errorf("%w: bullet %d elapsed %g outside [0,%g)", ErrInvariant, i, b.Elapsed, b.Duration)
		}
	}
	for i := range w.Waves {
		wave := &w.Waves[i]
		if wave.Interval < wave.MinInterval {
			return fmt.Errorf("%w: wave %q interval %g below minimum %g", ErrInvariant, wave.Name, wave.Interval, wave.MinInterval)
		}
		if wave.DoubleSpawnChance > wave.MaxDoubleSpawnChance {
			return fmt.Errorf("%w: wave %q chance %g above maximum %g", ErrInvariant, wave.Name, wave.DoubleSpawnChance, wave.MaxDoubleSpawnChance)
		}
	}
	return nil
}

func checkEmitters(owner string, particles []component.ParticleEmitter, bullets []component.BulletEmitter) error {
	for i := range particles {
		em := &particles[i]
		if err := checkAccumulator(owner+" particle emitter", i, em.Accumulator, em.Interval); err != nil {
			return err
		}
	}
	for i := range bullets {
		em := &bullets[i]
		if err := checkAccumulator(owner+" bullet emitter", i, em.Accumulator, em.Interval); err != nil {
			return err
		}
	}
	return nil
}

func checkAccumulator(kind string, idx int, acc, interval float64) error {
	if math.IsInf(interval, 1) || !(interval > 0) {
		if acc != 0 {
			return fmt.Errorf("%w: disabled %s %d has accumulator %g", ErrInvariant, kind, idx, acc)
		}
		return nil
	}
	if acc < 0 || acc >= interval {
		return fmt.Errorf("%w: %s %d accumulator %g outside [0,%g)", ErrInvariant, kind, idx, acc, interval)
	}
	return nil
}
