package component

import "space-game/internal/utils"

// PowerUpType — тип бонуса.
type PowerUpType int

const (
	PowerUpRepair PowerUpType = iota
	PowerUpShield
)

func (t PowerUpType) String() string {
	switch t {
	case PowerUpRepair:
		return "repair"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUp is a persistent world item triggered by contact with any player part.
type PowerUp struct {
	Pos     utils.Vec2
	Type    PowerUpType
	Texture string
}
