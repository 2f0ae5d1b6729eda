package system

import (
	"math"
	"testing"

	"space-game/internal/component"
	"space-game/internal/platform"
	"space-game/internal/platform/platformtest"
	"space-game/internal/utils"
)

func TestDestroyedEngineStopsTurning(t *testing.T) {
	r := newTestRig()
	p := r.world.Player
	p.Parts[1].Health = 0

	in := platformtest.NewInput()
	in.Press(platform.KeyA)
	NewPlayerSystem(r.world, r.rng).Update(0.1, in)

	if p.LeftTurn != 0 {
		t.Errorf("leftTurn = %g, want 0", p.LeftTurn)
	}
	if p.Dir != utils.V(1, 0) {
		t.Errorf("facing changed to %v with a dead right engine", p.Dir)
	}
}

func TestTurnInput(t *testing.T) {
	tests := []struct {
		name string
		key  platform.Key
		sign float64
	}{
		{"A turns to port", platform.KeyA, -1},
		{"D turns to starboard", platform.KeyD, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig()
			in := platformtest.NewInput()
			in.Press(tt.key)
			NewPlayerSystem(r.world, r.rng).Update(0.5, in)

			// 180 deg/s for half a second
			want := tt.sign * math.Pi / 2
			if got := utils.VectorToAngle(r.world.Player.Dir); math.Abs(got-want) > 1e-9 {
				t.Errorf("facing angle = %g, want %g", got, want)
			}
		})
	}
}

func TestDamageLinksScaleParameters(t *testing.T) {
	p := newTestPlayer()
	p.Parts[0].Health = 1 // left engine at half
	p.Parts[3].Health = 1 // gun at half

	ResetParameters(p)
	ApplyDamageLinks(p)

	if p.RightTurn != 90 {
		t.Errorf("rightTurn = %g, want 90", p.RightTurn)
	}
	if p.LeftTurn != 180 {
		t.Errorf("leftTurn = %g, want 180", p.LeftTurn)
	}
	if p.Speed != 375 { // (1+2)/(2+2) of 500
		t.Errorf("speed = %g, want 375", p.Speed)
	}
	if p.ParticleEmitters[0].Speed != 125 || p.ParticleEmitters[1].Speed != 250 {
		t.Errorf("exhaust speeds = %g, %g", p.ParticleEmitters[0].Speed, p.ParticleEmitters[1].Speed)
	}
	if p.BulletEmitters[0].Interval != 0.3 {
		t.Errorf("gun interval = %g, want 0.3", p.BulletEmitters[0].Interval)
	}
}

func TestDamageLinksOrderIndependent(t *testing.T) {
	a := newTestPlayer()
	a.Damage = append(a.Damage,
		component.DamageLink{Sources: []int{2}, Dest: component.ParamSpeed},
		component.DamageLink{Sources: []int{2, 3}, Dest: component.ParamGunInterval, Type: component.DamageDiv},
	)
	a.Parts[0].Health = 1.5
	a.Parts[1].Health = 0.5
	a.Parts[2].Health = 1
	a.Parts[3].Health = 0.25

	b := newTestPlayer()
	b.Parts = append([]component.Part(nil), a.Parts...)
	b.Damage = nil
	for i := len(a.Damage) - 1; i >= 0; i-- {
		b.Damage = append(b.Damage, a.Damage[i])
	}

	for _, p := range []*component.Player{a, b} {
		ResetParameters(p)
		ApplyDamageLinks(p)
	}

	near := func(x, y float64) bool { return math.Abs(x-y) <= 1e-9*math.Max(1, math.Abs(x)) }
	if !near(a.Speed, b.Speed) || !near(a.LeftTurn, b.LeftTurn) || !near(a.RightTurn, b.RightTurn) {
		t.Errorf("movement differs: %g/%g/%g vs %g/%g/%g", a.Speed, a.LeftTurn, a.RightTurn, b.Speed, b.LeftTurn, b.RightTurn)
	}
	if !near(a.BulletEmitters[0].Interval, b.BulletEmitters[0].Interval) {
		t.Errorf("gun interval differs: %g vs %g", a.BulletEmitters[0].Interval, b.BulletEmitters[0].Interval)
	}
	for i := range a.ParticleEmitters {
		if !near(a.ParticleEmitters[i].Speed, b.ParticleEmitters[i].Speed) {
			t.Errorf("exhaust %d differs", i)
		}
	}
}

func TestDestroyedGunDisablesEmitter(t *testing.T) {
	p := newTestPlayer()
	p.Parts[3].Health = 0
	ResetParameters(p)
	ApplyDamageLinks(p)
	if !math.IsInf(p.BulletEmitters[0].Interval, 1) {
		t.Errorf("gun interval = %g, want +Inf", p.BulletEmitters[0].Interval)
	}
}

func TestValidateDamageLinks(t *testing.T) {
	tests := []struct {
		name    string
		link    component.DamageLink
		wantErr bool
	}{
		{"speed", component.DamageLink{Sources: []int{0}, Dest: component.ParamSpeed}, false},
		{"gun div", component.DamageLink{Sources: []int{3}, Dest: component.ParamGunInterval, Type: component.DamageDiv}, false},
		{"no sources", component.DamageLink{Dest: component.ParamSpeed}, true},
		{"source out of range", component.DamageLink{Sources: []int{4}, Dest: component.ParamSpeed}, true},
		{"negative source", component.DamageLink{Sources: []int{-1}, Dest: component.ParamSpeed}, true},
		{"exhaust index out of range", component.DamageLink{Sources: []int{0}, Dest: component.ParamParticleSpeed, Index: 2}, true},
		{"gun index out of range", component.DamageLink{Sources: []int{0}, Dest: component.ParamGunInterval, Index: 1}, true},
		{"div on speed", component.DamageLink{Sources: []int{0}, Dest: component.ParamSpeed, Type: component.DamageDiv}, true},
		{"unknown destination", component.DamageLink{Sources: []int{0}, Dest: component.ParamKind(99)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Damage = []component.DamageLink{tt.link}
			err := ValidateDamageLinks(p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDamageLinks() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
