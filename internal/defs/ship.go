// internal/defs/ship.go
package defs

import (
	"fmt"

	"space-game/internal/component"
	"space-game/internal/system"
	"space-game/internal/utils"
)

type PartDef struct {
	Name   string  `yaml:"name"`
	Offset Vec     `yaml:"offset"`
	Health float64 `yaml:"health"`
	Size   float64 `yaml:"size"`
}

type DamageLinkDef struct {
	Sources []int  `yaml:"sources"`
	Dest    string `yaml:"dest"`
	Index   int    `yaml:"index"`
	Type    string `yaml:"type"`
}

// ShipDef is the player's ship.
type ShipDef struct {
	Texture          string               `yaml:"texture"`
	TextureScale     float64              `yaml:"texture_scale"`
	Speed            float64              `yaml:"speed"`
	LeftTurn         float64              `yaml:"left_turn"`
	RightTurn        float64              `yaml:"right_turn"`
	Parts            []PartDef            `yaml:"parts"`
	Damage           []DamageLinkDef      `yaml:"damage"`
	ParticleEmitters []ParticleEmitterDef `yaml:"particle_emitters"`
	BulletEmitters   []BulletEmitterDef   `yaml:"bullet_emitters"`
}

// NewPlayer builds a fresh player ship at the origin, facing up.
func (l *Library) NewPlayer() (*component.Player, error) {
	s := l.Ship
	if len(s.Parts) == 0 {
		return nil, invalid("ship has no parts")
	}

	p := &component.Player{
		Body:          component.Body{Dir: utils.V(0, -1)},
		BaseSpeed:     s.Speed,
		BaseLeftTurn:  s.LeftTurn,
		BaseRightTurn: s.RightTurn,
		Texture:       s.Texture,
		TextureScale:  s.TextureScale,
	}

	for i, pd := range s.Parts {
		if pd.Health <= 0 || pd.Size <= 0 {
			return nil, invalid("part %d (%s): health and size must be positive", i, pd.Name)
		}
		p.Parts = append(p.Parts, component.Part{
			Name:           pd.Name,
			Offset:         utils.Vec2(pd.Offset),
			Health:         pd.Health,
			StartingHealth: pd.Health,
			Size:           pd.Size,
		})
	}

	for i, ed := range s.ParticleEmitters {
		em, err := ed.build(len(p.Parts))
		if err != nil {
			return nil, fmt.Errorf("ship particle emitter %d: %w", i, err)
		}
		p.ParticleEmitters = append(p.ParticleEmitters, em)
	}
	for i, ed := range s.BulletEmitters {
		em, err := ed.build()
		if err != nil {
			return nil, fmt.Errorf("ship bullet emitter %d: %w", i, err)
		}
		p.BulletEmitters = append(p.BulletEmitters, em)
	}

	for i, ld := range s.Damage {
		dest, err := parseParam(ld.Dest)
		if err != nil {
			return nil, fmt.Errorf("damage link %d: %w", i, err)
		}
		typ, err := parseDamageType(ld.Type)
		if err != nil {
			return nil, fmt.Errorf("damage link %d: %w", i, err)
		}
		p.Damage = append(p.Damage, component.DamageLink{
			Sources: append([]int(nil), ld.Sources...),
			Dest:    dest,
			Index:   ld.Index,
			Type:    typ,
		})
	}
	if err := system.ValidateDamageLinks(p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	system.ResetParameters(p)
	system.UpdatePartPoses(p)
	return p, nil
}
