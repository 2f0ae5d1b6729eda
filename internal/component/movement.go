// component/movement.go
package component

import "space-game/internal/utils"

// Body — кинематика носителя: позиция, скорость и единичный вектор направления.
// Parts and emitters derive their world pose from it each tick.
type Body struct {
	Pos utils.Vec2
	Vel utils.Vec2
	Dir utils.Vec2
}

// ToWorld places a local offset relative to the body's position and facing.
func (b *Body) ToWorld(offset utils.Vec2) utils.Vec2 {
	return utils.LocalToWorld(b.Pos, b.Dir, offset)
}
