package system

import (
	"errors"
	"math"
	"testing"

	"space-game/internal/component"
	"space-game/internal/entity"
	"space-game/internal/utils"
)

func TestCheckInvariants(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(w *entity.World)
		wantErr bool
	}{
		{"fresh world", func(*entity.World) {}, false},
		{"part overhealed", func(w *entity.World) { w.Player.Parts[0].Health = 3 }, true},
		{"part negative", func(w *entity.World) { w.Player.Parts[0].Health = -1 }, true},
		{"nan position", func(w *entity.World) { w.Player.Pos.X = math.NaN() }, true},
		{"accumulator past interval", func(w *entity.World) { w.Player.ParticleEmitters[0].Accumulator = 0.02 }, true},
		{"disabled gun", func(w *entity.World) { w.Player.BulletEmitters[0].Interval = math.Inf(1) }, false},
		{"stale bullet", func(w *entity.World) {
			w.Bullets = append(w.Bullets, component.Bullet{Duration: 1, Elapsed: 1})
		}, true},
		{"wave below minimum", func(w *entity.World) {
			w.Waves = append(w.Waves, component.Wave{Name: "basic", Interval: 0.5, MinInterval: 1})
		}, true},
		{"enemy at infinity", func(w *entity.World) {
			e := newTestEnemy(utils.V(math.Inf(1), 0))
			w.Enemies = append(w.Enemies, e)
		}, true},
		{"enemy gun accumulator past interval", func(w *entity.World) {
			e := newTestEnemy(utils.V(500, 0))
			e.BulletEmitters = []component.BulletEmitter{{BaseInterval: 0.5, Interval: 0.5, Accumulator: 0.7}}
			w.Enemies = append(w.Enemies, e)
		}, true},
		{"enemy exhaust accumulator negative", func(w *entity.World) {
			e := newTestEnemy(utils.V(500, 0))
			e.ParticleEmitters = []component.ParticleEmitter{{Interval: 0.02, Accumulator: -0.01}}
			w.Enemies = append(w.Enemies, e)
		}, true},
		{"enemy emitters in range", func(w *entity.World) {
			e := newTestEnemy(utils.V(500, 0))
			e.ParticleEmitters = []component.ParticleEmitter{{Interval: 0.02, Accumulator: 0.01}}
			e.BulletEmitters = []component.BulletEmitter{{BaseInterval: 0.5, Interval: 0.5, Accumulator: 0.25}}
			w.Enemies = append(w.Enemies, e)
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := entity.NewWorld(newTestPlayer())
			tt.mutate(w)
			err := CheckInvariants(w)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckInvariants() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvariant) {
				t.Errorf("error %v does not wrap ErrInvariant", err)
			}
		})
	}
}
