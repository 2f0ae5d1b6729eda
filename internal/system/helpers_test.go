package system

import (
	"io"

	"github.com/charmbracelet/log"

	"space-game/internal/component"
	"space-game/internal/entity"
	"space-game/internal/event"
	"space-game/internal/utils"
)

func newTestPlayer() *component.Player {
	part := func(name string, x, y float64) component.Part {
		return component.Part{Name: name, Offset: utils.V(x, y), Health: 2, StartingHealth: 2, Size: 10}
	}
	p := &component.Player{
		Body:          component.Body{Dir: utils.V(1, 0)},
		BaseSpeed:     500,
		BaseLeftTurn:  180,
		BaseRightTurn: 180,
		Parts: []component.Part{
			part("Left Engine", -14, -12),
			part("Right Engine", -14, 12),
			part("Cockpit", 6, 0),
			part("Gun", 24, 0),
		},
		Damage: []component.DamageLink{
			{Sources: []int{1}, Dest: component.ParamTurnLeft},
			{Sources: []int{0}, Dest: component.ParamTurnRight},
			{Sources: []int{0, 1}, Dest: component.ParamSpeed},
			{Sources: []int{0}, Dest: component.ParamParticleSpeed, Index: 0},
			{Sources: []int{1}, Dest: component.ParamParticleSpeed, Index: 1},
			{Sources: []int{3}, Dest: component.ParamGunInterval, Index: 0, Type: component.DamageDiv},
		},
		ParticleEmitters: []component.ParticleEmitter{
			{Offset: utils.V(-26, -12), BaseSpeed: 250, Interval: 0.01, HealthPart: 0,
				Template: component.ParticleTemplate{Size: 4, Shape: component.ShapeCircle, Duration: 0.4}},
			{Offset: utils.V(-26, 12), BaseSpeed: 250, Interval: 0.01, HealthPart: 1,
				Template: component.ParticleTemplate{Size: 4, Shape: component.ShapeCircle, Duration: 0.4}},
		},
		BulletEmitters: []component.BulletEmitter{
			{Offset: utils.V(30, 0), BaseInterval: 0.15, Interval: 0.15,
				Template: component.BulletTemplate{Size: 4, Damage: 1, Speed: 1200, Duration: 1, Friendly: true}},
		},
		TextureScale: 2,
	}
	UpdatePartPoses(p)
	return p
}

func newTestEnemy(pos utils.Vec2) component.Enemy {
	return component.Enemy{
		Name:         "basic",
		Body:         component.Body{Pos: pos, Dir: utils.V(1, 0)},
		Speed:        450,
		TurningSpeed: 120,
		Predictive:   true,
		Size:         16,
		Health:       1,
		TextureScale: 2,
		Friction:     1,
		Gate:         component.GateNever,
	}
}

type testRig struct {
	world     *entity.World
	rng       *utils.PRNGService
	events    *event.Dispatcher
	particles *ParticleSystem
	recorded  []event.Event
}

func newTestRig() *testRig {
	r := &testRig{
		world:  entity.NewWorld(newTestPlayer()),
		rng:    utils.NewPRNGService(42),
		events: event.NewDispatcher(),
	}
	r.particles = NewParticleSystem(r.world, r.rng)
	record := event.ListenerFunc(func(e event.Event) { r.recorded = append(r.recorded, e) })
	for _, t := range []event.EventType{event.EnemySpawned, event.EnemyDestroyed, event.PartDamaged, event.PowerUpCollected} {
		r.events.Subscribe(t, record)
	}
	return r
}

func (r *testRig) count(t event.EventType) int {
	n := 0
	for _, e := range r.recorded {
		if e.Type == t {
			n++
		}
	}
	return n
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}
