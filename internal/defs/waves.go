// internal/defs/waves.go
package defs

import (
	"fmt"

	"space-game/internal/component"
	"space-game/internal/utils"
)

// WaveDefinition is the spawn schedule of one archetype.
type WaveDefinition struct {
	Enemy                string  `yaml:"enemy"`
	Interval             float64 `yaml:"interval"`
	MinInterval          float64 `yaml:"min_interval"`
	DoubleSpawnChance    float64 `yaml:"double_spawn_chance"`
	MaxDoubleSpawnChance float64 `yaml:"max_double_spawn_chance"`
}

type PowerUpDefinition struct {
	Type    string `yaml:"type"`
	Texture string `yaml:"texture"`
	Offset  Vec    `yaml:"offset"`
}

// NewWaves builds one wave per definition, each with its own enemy template.
func (l *Library) NewWaves() ([]component.Wave, error) {
	waves := make([]component.Wave, 0, len(l.Waves))
	for i, wd := range l.Waves {
		if wd.MinInterval <= 0 || wd.Interval < wd.MinInterval {
			return nil, invalid("wave %d (%s): need 0 < min_interval <= interval, got %g and %g", i, wd.Enemy, wd.MinInterval, wd.Interval)
		}
		if wd.DoubleSpawnChance < 0 || wd.DoubleSpawnChance > wd.MaxDoubleSpawnChance {
			return nil, invalid("wave %d (%s): need 0 <= double_spawn_chance <= max_double_spawn_chance", i, wd.Enemy)
		}
		tmpl, err := l.NewEnemy(wd.Enemy)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		waves = append(waves, component.Wave{
			Name:                 wd.Enemy,
			Interval:             wd.Interval,
			MinInterval:          wd.MinInterval,
			DoubleSpawnChance:    wd.DoubleSpawnChance,
			MaxDoubleSpawnChance: wd.MaxDoubleSpawnChance,
			Template:             tmpl,
		})
	}
	return waves, nil
}

// NewPowerUps places every power-up relative to at.
func (l *Library) NewPowerUps(at utils.Vec2) ([]component.PowerUp, error) {
	out := make([]component.PowerUp, 0, len(l.PowerUps))
	for i, pd := range l.PowerUps {
		typ, err := parsePowerUp(pd.Type)
		if err != nil {
			return nil, fmt.Errorf("power-up %d: %w", i, err)
		}
		out = append(out, component.PowerUp{
			Pos:     at.Add(utils.Vec2(pd.Offset)),
			Type:    typ,
			Texture: pd.Texture,
		})
	}
	return out, nil
}
