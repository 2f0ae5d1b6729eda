// internal/system/movement.go
package system

import (
	"space-game/internal/component"
	"space-game/internal/utils"
)

// Integrate advances a body by one step of the shared ship model.
//
// Thrust along the facing approaches speed; velocity already aligned with the
// facing counts fully against it, velocity pointing backwards not at all.
// Sideways velocity bleeds off at friction per second, so ships carve turns
// instead of sliding.
func Integrate(b *component.Body, speed, friction, deltaTime float64) {
	cur := b.Vel.Length()
	align := 1.0
	if cur > 0 {
		align = b.Vel.Scale(1 / cur).Dot(b.Dir)
	}

	thrust := speed - cur*(1+align)/2
	b.Vel = b.Vel.Add(b.Dir.Scale(thrust * deltaTime))

	right := b.Dir.Right()
	b.Vel = b.Vel.Sub(right.Scale(right.Dot(b.Vel) * friction * deltaTime))

	b.Pos = b.Pos.Add(b.Vel.Scale(deltaTime))
}

// Turn rotates the facing by degrees; positive turns to starboard.
func Turn(b *component.Body, degrees float64) {
	if degrees == 0 {
		return
	}
	b.Dir = utils.RotateVector(b.Dir, utils.DegToRad(degrees)).Normalize()
}

// SteerToward turns at up to rate degrees/s toward target and reports the side chosen.
func SteerToward(b *component.Body, target utils.Vec2, rate, deltaTime float64) float64 {
	side := 1.0
	if b.Dir.Right().Dot(target.Sub(b.Pos)) <= 0 {
		side = -1
	}
	Turn(b, side*rate*deltaTime)
	return side
}
