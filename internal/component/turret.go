// internal/component/turret.go
package component

import "space-game/internal/utils"

// Cannon отвечает за вращение "головы" турели.
type Cannon struct {
	// Dir - текущее направление ствола (единичный вектор).
	Dir utils.Vec2
	// TurnSpeed - скорость поворота в градусах в секунду.
	TurnSpeed float64
	// Texture - спрайт ствола, рисуется поверх корпуса.
	Texture string
}
