// internal/component/player.go
package component

// Player is the player's ship. Parts, damage links and emitters are owned by it.
// The Base* fields are authored values; Speed, LeftTurn and RightTurn are
// recomputed from them every tick. Turn rates are in degrees per second.
type Player struct {
	Body

	BaseSpeed     float64
	BaseLeftTurn  float64
	BaseRightTurn float64

	Speed     float64
	LeftTurn  float64
	RightTurn float64

	Parts            []Part
	Damage           []DamageLink
	ParticleEmitters []ParticleEmitter
	BulletEmitters   []BulletEmitter

	Texture      string
	TextureScale float64
}

// Destroyed reports whether any part has run out of health.
func (p *Player) Destroyed() bool {
	for i := range p.Parts {
		if p.Parts[i].Health <= 0 {
			return true
		}
	}
	return false
}

// RepairAll restores every part to its starting health.
func (p *Player) RepairAll() {
	for i := range p.Parts {
		p.Parts[i].Repair()
	}
}
