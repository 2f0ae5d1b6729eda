package component

import "space-game/internal/utils"

// Part is a damageable subsystem of the player ship.
type Part struct {
	Name           string
	Offset         utils.Vec2 // local, rotated by the ship's facing
	Pos            utils.Vec2 // world, derived each tick
	Health         float64
	StartingHealth float64
	Size           float64 // collision radius
}

// TakeDamage lowers health, never below zero, and reports whether the part is destroyed.
func (p *Part) TakeDamage(amount float64) bool {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health <= 0
}

// Repair restores the starting health.
func (p *Part) Repair() {
	p.Health = p.StartingHealth
}

// Ratio is health/startingHealth.
func (p *Part) Ratio() float64 {
	if p.StartingHealth <= 0 {
		return 0
	}
	return p.Health / p.StartingHealth
}
