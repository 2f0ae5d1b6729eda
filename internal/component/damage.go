package component

// ParamKind selects the player parameter a DamageLink scales.
// ParamParticleSpeed and ParamGunInterval also carry an index into the
// player's particle or bullet emitters.
type ParamKind int

const (
	ParamSpeed ParamKind = iota
	ParamTurnLeft
	ParamTurnRight
	ParamParticleSpeed
	ParamGunInterval
)

func (k ParamKind) String() string {
	switch k {
	case ParamSpeed:
		return "speed"
	case ParamTurnLeft:
		return "turn_left"
	case ParamTurnRight:
		return "turn_right"
	case ParamParticleSpeed:
		return "particle_speed"
	case ParamGunInterval:
		return "gun_interval"
	default:
		return "unknown"
	}
}

// Indexed reports whether the kind addresses an emitter by index.
func (k ParamKind) Indexed() bool {
	return k == ParamParticleSpeed || k == ParamGunInterval
}

// DamageType — как коэффициент здоровья применяется к параметру.
type DamageType int

const (
	DamageMult DamageType = iota // param *= ratio
	DamageDiv                    // param /= ratio, interval destinations only
)

// DamageLink scales one player parameter by the combined health ratio of its source parts.
type DamageLink struct {
	Sources []int
	Dest    ParamKind
	Index   int
	Type    DamageType
}
