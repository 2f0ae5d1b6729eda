package ui

import (
	"fmt"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/platform"
	"space-game/internal/utils"
)

// Stats is what the HUD shows besides the ship itself.
type Stats struct {
	GameTime  float64
	Kills     int
	FPS       float64
	Particles int
	Bullets   int
	Enemies   int
}

// HUD draws the screen-space overlay above the world.
type HUD struct {
	Timer *TimerIndicator
	Parts *PartHealthIndicator
}

func NewHUD() *HUD {
	return &HUD{
		Timer: NewTimerIndicator(10, config.TimerTextSize),
		Parts: NewPartHealthIndicator(10, 10, config.TextSize),
	}
}

func (h *HUD) Draw(s platform.Surface, width, height int, player *component.Player, st Stats, debug bool) {
	h.Timer.Draw(s, width, st.GameTime)
	y := h.Parts.Draw(s, player.Parts)
	s.DrawText(fmt.Sprintf("Kills: %d", st.Kills), utils.V(10, y+4), config.TextSize, config.TextColor)

	if debug {
		DrawDebug(s, width, player, st)
	}
}

// DrawDebug prints the F3 panel in the top-right corner.
func DrawDebug(s platform.Surface, width int, p *component.Player, st Stats) {
	lines := []string{
		fmt.Sprintf("FPS: %.0f", st.FPS),
		fmt.Sprintf("pos: %.1f, %.1f", p.Pos.X, p.Pos.Y),
		fmt.Sprintf("target speed: %.1f", p.Speed),
		fmt.Sprintf("speed: %.1f", p.Vel.Length()),
		fmt.Sprintf("dir: %.1f deg", utils.RadToDeg(utils.VectorToAngle(p.Dir))),
		fmt.Sprintf("turn: %.1f / %.1f", p.LeftTurn, p.RightTurn),
		fmt.Sprintf("particles: %d", st.Particles),
		fmt.Sprintf("bullets: %d", st.Bullets),
		fmt.Sprintf("enemies: %d", st.Enemies),
	}
	y := 10.0
	for _, l := range lines {
		x := float64(width - s.MeasureText(l, config.TextSize) - 10)
		s.DrawText(l, utils.V(x, y), config.TextSize, config.TextColor)
		y += config.TextSize + 4
	}
}

// DrawOverlay dims the screen and centres a title with an optional subtitle.
func DrawOverlay(s platform.Surface, width, height int, title, subtitle string) {
	s.DrawRect(utils.Vec2{}, utils.V(float64(width), float64(height)), config.DimColor)

	size := config.TimerTextSize
	x := (float64(width) - float64(s.MeasureText(title, size))) / 2
	y := float64(height)/2 - float64(size)
	s.DrawText(title, utils.V(x, y), size, config.TextColor)

	if subtitle != "" {
		x = (float64(width) - float64(s.MeasureText(subtitle, config.TextSize))) / 2
		s.DrawText(subtitle, utils.V(x, y+float64(size)+8), config.TextSize, config.TextColor)
	}
}
