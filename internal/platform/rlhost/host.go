// Package rlhost runs the game in a raylib window.
package rlhost

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-game/internal/config"
	"space-game/internal/platform"
	"space-game/internal/utils"
)

const monitor = 0

var keys = map[platform.Key]int32{
	platform.KeyA:      rl.KeyA,
	platform.KeyD:      rl.KeyD,
	platform.KeyF3:     rl.KeyF3,
	platform.KeyEscape: rl.KeyEscape,
	platform.KeyF11:    rl.KeyF11,
}

var (
	_ platform.Host          = (*Host)(nil)
	_ platform.TextureLoader = (*Host)(nil)
)

// Host adapts raylib to platform.Host. All methods must be called from the
// goroutine that called Open.
type Host struct {
	windowed bool
	logger   *log.Logger
}

func New(windowed bool, logger *log.Logger) *Host {
	return &Host{windowed: windowed, logger: logger}
}

// Open creates the window. Textures can only be loaded after Open.
func (h *Host) Open() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	if !rl.IsWindowReady() {
		return errors.New("rlhost: window init failed")
	}
	// Escape is the pause key, not raylib's quit key.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(config.TargetFPS)

	if !h.windowed {
		rl.SetWindowMonitor(monitor)
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
		rl.ToggleFullscreen()
	}
	h.logger.Info("window opened", "renderer", "raylib", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())
	return nil
}

// Run drives loop until the window is closed.
func (h *Host) Run(loop platform.Loop) error {
	for !rl.WindowShouldClose() {
		dt := math.Min(float64(rl.GetFrameTime()), config.MaxDeltaTime)
		if err := loop.Update(dt); err != nil {
			h.logger.Error("frame update failed", "err", err)
		}
		rl.BeginDrawing()
		loop.Draw()
		rl.EndDrawing()
	}
	return nil
}

func (h *Host) Close() {
	rl.CloseWindow()
}

func (h *Host) IsKeyDown(key platform.Key) bool {
	k, ok := keys[key]
	return ok && rl.IsKeyDown(k)
}

func (h *Host) IsKeyReleased(key platform.Key) bool {
	k, ok := keys[key]
	return ok && rl.IsKeyReleased(k)
}

func (h *Host) ScreenSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// ToggleFullscreen leaves fullscreen into a window half the monitor size.
func (h *Host) ToggleFullscreen() {
	w, ht := rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor)
	if rl.IsWindowFullscreen() {
		rl.ToggleFullscreen()
		rl.SetWindowSize(w/2, ht/2)
		return
	}
	rl.SetWindowSize(w, ht)
	rl.ToggleFullscreen()
}

func (h *Host) Clear(c color.RGBA) {
	rl.ClearBackground(rgba(c))
}

func (h *Host) DrawRect(topLeft, size utils.Vec2, c color.RGBA) {
	rl.DrawRectangleV(vec(topLeft), vec(size), rgba(c))
}

func (h *Host) DrawRectRotated(r platform.Rect, origin utils.Vec2, rotationDeg float64, c color.RGBA) {
	rl.DrawRectanglePro(rect(r), vec(origin), float32(rotationDeg), rgba(c))
}

func (h *Host) DrawCircle(center utils.Vec2, radius float64, c color.RGBA) {
	rl.DrawCircleV(vec(center), float32(radius), rgba(c))
}

func (h *Host) DrawTexture(tex platform.Texture, src, dst platform.Rect, origin utils.Vec2, rotationDeg float64, tint color.RGBA) {
	t, ok := tex.(*texture)
	if !ok {
		return
	}
	rl.DrawTexturePro(t.tex, rect(src), rect(dst), vec(origin), float32(rotationDeg), rgba(tint))
}

func (h *Host) DrawText(text string, pos utils.Vec2, size int, c color.RGBA) {
	rl.DrawText(text, int32(pos.X), int32(pos.Y), int32(size), rgba(c))
}

func (h *Host) MeasureText(text string, size int) int {
	return int(rl.MeasureText(text, int32(size)))
}

// texture wraps a GPU texture.
type texture struct {
	tex rl.Texture2D
}

func (t *texture) Width() int  { return int(t.tex.Width) }
func (t *texture) Height() int { return int(t.tex.Height) }

func (h *Host) LoadTexture(path string) (platform.Texture, error) {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return nil, fmt.Errorf("rlhost: load texture %s", path)
	}
	return &texture{tex: tex}, nil
}

func (h *Host) UnloadTexture(tex platform.Texture) {
	if t, ok := tex.(*texture); ok {
		rl.UnloadTexture(t.tex)
	}
}

func rgba(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(v utils.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func rect(r platform.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}
