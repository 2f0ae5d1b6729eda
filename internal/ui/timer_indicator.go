package ui

import (
	"fmt"
	"image/color"

	"space-game/internal/config"
	"space-game/internal/platform"
	"space-game/internal/utils"
	"space-game/pkg/render"
)

// TimerIndicator отображает время выживания по центру сверху.
type TimerIndicator struct {
	Y                float64
	FontSize         int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewTimerIndicator создает новый индикатор времени.
func NewTimerIndicator(y float64, fontSize int) *TimerIndicator {
	return &TimerIndicator{
		Y:                y,
		FontSize:         fontSize,
		Color:            config.TextColor,
		OutlineColor:     render.DarkenColor(config.BackgroundColor),
		OutlineThickness: 2,
	}
}

// FormatTime renders seconds as m:ss.t.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	tenths := int(seconds * 10)
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

// Draw отрисовывает индикатор на экране.
func (i *TimerIndicator) Draw(s platform.Surface, width int, gameTime float64) {
	text := FormatTime(gameTime)
	x := (float64(width) - float64(s.MeasureText(text, i.FontSize))) / 2

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy += i.OutlineThickness {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx += i.OutlineThickness {
			if dx == 0 && dy == 0 {
				continue
			}
			s.DrawText(text, utils.V(x+float64(dx), i.Y+float64(dy)), i.FontSize, i.OutlineColor)
		}
	}
	s.DrawText(text, utils.V(x, i.Y), i.FontSize, i.Color)
}
