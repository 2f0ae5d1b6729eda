package system

import (
	"image/color"
	"testing"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/utils"
)

func TestExplode(t *testing.T) {
	r := newTestRig()
	carrier := utils.V(10, -5)
	r.particles.Explode(utils.V(1, 2), carrier, 100, 200, 64, color.RGBA{R: 255, A: 255}, color.RGBA{}, 0.5)

	if len(r.world.Particles) != 64 {
		t.Fatalf("particles = %d, want 64", len(r.world.Particles))
	}
	for _, p := range r.world.Particles {
		push := p.Vel.Sub(carrier).Length()
		if push < 100-1e-9 || push >= 200+1e-9 {
			t.Errorf("push %g outside [100, 200)", push)
		}
		if p.Size != config.ExplosionParticleSize || p.Shape != component.ShapeSquare {
			t.Errorf("unexpected particle %+v", p)
		}
		if p.Pos != utils.V(1, 2) || p.Elapsed != 0 {
			t.Errorf("particle not spawned fresh at centre: %+v", p)
		}
	}
}

func TestParticleStepAndRetain(t *testing.T) {
	r := newTestRig()
	r.particles.Spawn(component.Particle{Vel: utils.V(10, 0), Duration: 1})
	r.particles.Spawn(component.Particle{Vel: utils.V(0, 10), Duration: 0.25})

	r.particles.Update(0.5)
	r.world.Retain()

	if len(r.world.Particles) != 1 {
		t.Fatalf("particles = %d, want 1", len(r.world.Particles))
	}
	p := r.world.Particles[0]
	if p.Pos != utils.V(5, 0) || p.Elapsed != 0.5 {
		t.Errorf("particle = %+v", p)
	}
}

func TestParticleColorFades(t *testing.T) {
	p := component.Particle{
		StartColor: color.RGBA{200, 100, 0, 255},
		EndColor:   color.RGBA{0, 100, 200, 0},
		Duration:   2,
	}
	if p.Color() != p.StartColor {
		t.Errorf("fresh particle color = %v", p.Color())
	}
	p.Elapsed = 2
	if p.Color() != p.EndColor {
		t.Errorf("expired particle color = %v", p.Color())
	}
}
