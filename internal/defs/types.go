// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"space-game/internal/component"
	"space-game/internal/utils"
)

// Vec is written as a two-element sequence: [x, y].
type Vec utils.Vec2

func (v *Vec) UnmarshalYAML(n *yaml.Node) error {
	var xs []float64
	if err := n.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 2 {
		return fmt.Errorf("line %d: want [x, y], got %d values", n.Line, len(xs))
	}
	v.X, v.Y = xs[0], xs[1]
	return nil
}

// Color is written as [r, g, b] or [r, g, b, a], each 0..255. Alpha defaults to 255.
type Color color.RGBA

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var xs []int
	if err := n.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 && len(xs) != 4 {
		return fmt.Errorf("line %d: want [r, g, b] or [r, g, b, a], got %d values", n.Line, len(xs))
	}
	if len(xs) == 3 {
		xs = append(xs, 255)
	}
	for _, x := range xs {
		if x < 0 || x > 255 {
			return fmt.Errorf("line %d: color channel %d outside 0..255", n.Line, x)
		}
	}
	*c = Color{uint8(xs[0]), uint8(xs[1]), uint8(xs[2]), uint8(xs[3])}
	return nil
}

func (c Color) rgba() color.RGBA { return color.RGBA(c) }

func parseShape(s string) (component.ParticleShape, error) {
	switch s {
	case "", "square":
		return component.ShapeSquare, nil
	case "circle":
		return component.ShapeCircle, nil
	case "rot_square":
		return component.ShapeRotSquare, nil
	}
	return 0, invalid("unknown particle shape %q", s)
}

func parseParam(s string) (component.ParamKind, error) {
	for _, k := range []component.ParamKind{
		component.ParamSpeed,
		component.ParamTurnLeft,
		component.ParamTurnRight,
		component.ParamParticleSpeed,
		component.ParamGunInterval,
	} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, invalid("unknown damage destination %q", s)
}

func parseDamageType(s string) (component.DamageType, error) {
	switch s {
	case "", "mult":
		return component.DamageMult, nil
	case "div":
		return component.DamageDiv, nil
	}
	return 0, invalid("unknown damage type %q", s)
}

func parseGate(s string) (component.FireGate, error) {
	switch s {
	case "always":
		return component.GateAlways, nil
	case "facing":
		return component.GateFacing, nil
	case "", "never":
		return component.GateNever, nil
	}
	return 0, invalid("unknown fire gate %q", s)
}

func parsePowerUp(s string) (component.PowerUpType, error) {
	switch s {
	case "repair":
		return component.PowerUpRepair, nil
	case "shield":
		return component.PowerUpShield, nil
	}
	return 0, invalid("unknown power-up type %q", s)
}
