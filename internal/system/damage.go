// internal/system/damage.go
package system

import (
	"fmt"
	"math"

	"space-game/internal/component"
)

// ResetParameters restores every damage-scaled player parameter to its baseline.
func ResetParameters(p *component.Player) {
	p.Speed = p.BaseSpeed
	p.LeftTurn = p.BaseLeftTurn
	p.RightTurn = p.BaseRightTurn
	for i := range p.ParticleEmitters {
		p.ParticleEmitters[i].Speed = p.ParticleEmitters[i].BaseSpeed
	}
	for i := range p.BulletEmitters {
		p.BulletEmitters[i].Interval = p.BulletEmitters[i].BaseInterval
	}
}

// ApplyDamageLinks scales parameters by the health of their source parts.
// Each link contributes an independent factor, so the result does not depend
// on link order. Links must have been validated with ValidateDamageLinks.
func ApplyDamageLinks(p *component.Player) {
	for _, link := range p.Damage {
		param := linkTarget(p, link)
		ratio := sourceRatio(p, link.Sources)
		switch link.Type {
		case component.DamageDiv:
			if ratio > 0 {
				*param /= ratio
			} else {
				*param = math.Inf(1)
			}
		default:
			*param *= ratio
		}
	}
}

// sourceRatio is Σhealth / Σstarting over the source parts.
func sourceRatio(p *component.Player, sources []int) float64 {
	var health, starting float64
	for _, idx := range sources {
		health += p.Parts[idx].Health
		starting += p.Parts[idx].StartingHealth
	}
	if starting <= 0 {
		return 1
	}
	return health / starting
}

func linkTarget(p *component.Player, link component.DamageLink) *float64 {
	switch link.Dest {
	case component.ParamSpeed:
		return &p.Speed
	case component.ParamTurnLeft:
		return &p.LeftTurn
	case component.ParamTurnRight:
		return &p.RightTurn
	case component.ParamParticleSpeed:
		return &p.ParticleEmitters[link.Index].Speed
	case component.ParamGunInterval:
		return &p.BulletEmitters[link.Index].Interval
	}
	panic(fmt.Sprintf("damage link: unknown destination %d", link.Dest))
}

// ValidateDamageLinks checks every index a link refers to.
func ValidateDamageLinks(p *component.Player) error {
	for i, link := range p.Damage {
		if len(link.Sources) == 0 {
			return fmt.Errorf("damage link %d: no source parts", i)
		}
		for _, src := range link.Sources {
			if src < 0 || src >= len(p.Parts) {
				return fmt.Errorf("damage link %d: source part %d out of range [0,%d)", i, src, len(p.Parts))
			}
		}

		var n int
		switch link.Dest {
		case component.ParamSpeed, component.ParamTurnLeft, component.ParamTurnRight:
		case component.ParamParticleSpeed:
			n = len(p.ParticleEmitters)
		case component.ParamGunInterval:
			n = len(p.BulletEmitters)
		default:
			return fmt.Errorf("damage link %d: unknown destination %d", i, link.Dest)
		}
		if link.Dest.Indexed() && (link.Index < 0 || link.Index >= n) {
			return fmt.Errorf("damage link %d: %s index %d out of range [0,%d)", i, link.Dest, link.Index, n)
		}
		if link.Type == component.DamageDiv && link.Dest != component.ParamGunInterval {
			return fmt.Errorf("damage link %d: divisive scaling only applies to gun_interval, got %s", i, link.Dest)
		}
	}
	return nil
}
