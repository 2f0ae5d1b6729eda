// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/platform"
	"space-game/internal/utils"
)

// PartHealthIndicator lists every ship part with its health, top left.
type PartHealthIndicator struct {
	Position   utils.Vec2
	FontSize   int
	LineHeight float64
}

// NewPartHealthIndicator создает новый индикатор здоровья.
func NewPartHealthIndicator(x, y float64, fontSize int) *PartHealthIndicator {
	return &PartHealthIndicator{
		Position:   utils.V(x, y),
		FontSize:   fontSize,
		LineHeight: float64(fontSize) + 4,
	}
}

// Draw рисует строку на каждую часть корабля. Returns the y below the last line.
func (i *PartHealthIndicator) Draw(s platform.Surface, parts []component.Part) float64 {
	y := i.Position.Y
	for _, p := range parts {
		c := config.PartHealthyText
		switch {
		case p.Health <= 0:
			c = config.PartBrokenText
		case p.Health < p.StartingHealth:
			c = config.PartDamagedText
		}
		s.DrawText(fmt.Sprintf("%s  %g/%g", p.Name, p.Health, p.StartingHealth), utils.V(i.Position.X, y), i.FontSize, c)
		y += i.LineHeight
	}
	return y
}
