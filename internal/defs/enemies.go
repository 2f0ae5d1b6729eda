// internal/defs/enemies.go
package defs

import (
	"fmt"

	"space-game/internal/component"
	"space-game/internal/utils"
)

type CannonDef struct {
	Texture   string  `yaml:"texture"`
	TurnSpeed float64 `yaml:"turn_speed"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID               string               `yaml:"id"`
	Texture          string               `yaml:"texture"`
	TextureScale     float64              `yaml:"texture_scale"`
	Speed            float64              `yaml:"speed"`
	TurningSpeed     float64              `yaml:"turning_speed"`
	Predictive       bool                 `yaml:"predictive"`
	Size             float64              `yaml:"size"`
	Health           float64              `yaml:"health"`
	Friction         float64              `yaml:"friction"`
	Gate             string               `yaml:"gate"`
	Cannon           *CannonDef           `yaml:"cannon"`
	ParticleEmitters []ParticleEmitterDef `yaml:"particle_emitters"`
	BulletEmitters   []BulletEmitterDef   `yaml:"bullet_emitters"`
}

// Enemy looks up an archetype by id.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	for _, e := range l.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return EnemyDefinition{}, false
}

// NewEnemy builds the pristine template of an archetype. Waves clone it on spawn.
func (l *Library) NewEnemy(id string) (component.Enemy, error) {
	d, ok := l.Enemy(id)
	if !ok {
		return component.Enemy{}, invalid("unknown enemy %q", id)
	}
	if d.Size <= 0 || d.Health <= 0 {
		return component.Enemy{}, invalid("enemy %q: size and health must be positive", id)
	}
	if d.Speed < 0 || d.TurningSpeed < 0 || d.Friction < 0 {
		return component.Enemy{}, invalid("enemy %q: speed, turning_speed and friction must not be negative", id)
	}
	gate, err := parseGate(d.Gate)
	if err != nil {
		return component.Enemy{}, fmt.Errorf("enemy %q: %w", id, err)
	}

	e := component.Enemy{
		Name:         d.ID,
		Body:         component.Body{Dir: utils.V(1, 0)},
		Speed:        d.Speed,
		TurningSpeed: d.TurningSpeed,
		Predictive:   d.Predictive,
		Size:         d.Size,
		Health:       d.Health,
		TextureScale: d.TextureScale,
		Friction:     d.Friction,
		Gate:         gate,
		Texture:      d.Texture,
	}
	if d.Cannon != nil {
		e.Cannon = &component.Cannon{Dir: e.Dir, TurnSpeed: d.Cannon.TurnSpeed, Texture: d.Cannon.Texture}
	}
	for i, ed := range d.ParticleEmitters {
		em, err := ed.build(0)
		if err != nil {
			return component.Enemy{}, fmt.Errorf("enemy %q particle emitter %d: %w", id, i, err)
		}
		e.ParticleEmitters = append(e.ParticleEmitters, em)
	}
	for i, ed := range d.BulletEmitters {
		em, err := ed.build()
		if err != nil {
			return component.Enemy{}, fmt.Errorf("enemy %q bullet emitter %d: %w", id, i, err)
		}
		e.BulletEmitters = append(e.BulletEmitters, em)
	}
	return e, nil
}
