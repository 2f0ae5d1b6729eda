// internal/defs/emitters.go
package defs

import (
	"space-game/internal/component"
	"space-game/internal/utils"
)

type ParticleDef struct {
	Size       float64 `yaml:"size"`
	Shape      string  `yaml:"shape"`
	StartColor Color   `yaml:"start_color"`
	EndColor   Color   `yaml:"end_color"`
	Duration   float64 `yaml:"duration"`
}

type ParticleEmitterDef struct {
	Offset     Vec         `yaml:"offset"`
	Speed      float64     `yaml:"speed"`
	Interval   float64     `yaml:"interval"`
	HealthPart *int        `yaml:"health_part"`
	Particle   ParticleDef `yaml:"particle"`
}

type BulletDef struct {
	Size     float64 `yaml:"size"`
	Damage   float64 `yaml:"damage"`
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	Friendly bool    `yaml:"friendly"`
}

type BulletEmitterDef struct {
	Offset   Vec       `yaml:"offset"`
	Interval float64   `yaml:"interval"`
	Bullet   BulletDef `yaml:"bullet"`
}

// build converts the definition; parts is the carrier's part count, 0 for enemies.
func (d ParticleEmitterDef) build(parts int) (component.ParticleEmitter, error) {
	if d.Interval <= 0 {
		return component.ParticleEmitter{}, invalid("particle emitter interval %g must be positive", d.Interval)
	}
	if d.Particle.Duration <= 0 {
		return component.ParticleEmitter{}, invalid("particle duration %g must be positive", d.Particle.Duration)
	}
	shape, err := parseShape(d.Particle.Shape)
	if err != nil {
		return component.ParticleEmitter{}, err
	}
	healthPart := -1
	if d.HealthPart != nil {
		healthPart = *d.HealthPart
		if healthPart < 0 || healthPart >= parts {
			return component.ParticleEmitter{}, invalid("health_part %d out of range [0,%d)", healthPart, parts)
		}
	}
	return component.ParticleEmitter{
		Offset:    utils.Vec2(d.Offset),
		BaseSpeed: d.Speed,
		Speed:     d.Speed,
		Interval:  d.Interval,
		Template: component.ParticleTemplate{
			Size:       d.Particle.Size,
			Shape:      shape,
			StartColor: d.Particle.StartColor.rgba(),
			EndColor:   d.Particle.EndColor.rgba(),
			Duration:   d.Particle.Duration,
		},
		HealthPart: healthPart,
	}, nil
}

func (d BulletEmitterDef) build() (component.BulletEmitter, error) {
	if d.Interval <= 0 {
		return component.BulletEmitter{}, invalid("bullet emitter interval %g must be positive", d.Interval)
	}
	if d.Bullet.Duration <= 0 {
		return component.BulletEmitter{}, invalid("bullet duration %g must be positive", d.Bullet.Duration)
	}
	return component.BulletEmitter{
		Offset:       utils.Vec2(d.Offset),
		BaseInterval: d.Interval,
		Interval:     d.Interval,
		Template: component.BulletTemplate{
			Size:     d.Bullet.Size,
			Damage:   d.Bullet.Damage,
			Speed:    d.Bullet.Speed,
			Duration: d.Bullet.Duration,
			Friendly: d.Bullet.Friendly,
		},
	}, nil
}
