// internal/component/projectile.go
package component

import "space-game/internal/utils"

// Bullet представляет летящий снаряд.
type Bullet struct {
	Pos      utils.Vec2
	Vel      utils.Vec2
	Size     float64
	Damage   float64
	Friendly bool
	Duration float64
	Elapsed  float64
}

// Expired reports whether the bullet outlived its duration.
func (b *Bullet) Expired() bool {
	return b.Elapsed >= b.Duration
}

// Strength is the damage dealt on a hit; it fades linearly with age.
func (b *Bullet) Strength() float64 {
	return b.Damage * (1 - b.Elapsed/b.Duration)
}

// Progress is elapsed/duration.
func (b *Bullet) Progress() float64 {
	return b.Elapsed / b.Duration
}
