// Package ebitenhost runs the game on Ebitengine. It draws the same frames as
// rlhost and is handy where no C toolchain is available for raylib.
package ebitenhost

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"space-game/internal/config"
	"space-game/internal/platform"
	"space-game/internal/utils"
)

var keys = map[platform.Key]ebiten.Key{
	platform.KeyA:      ebiten.KeyA,
	platform.KeyD:      ebiten.KeyD,
	platform.KeyF3:     ebiten.KeyF3,
	platform.KeyEscape: ebiten.KeyEscape,
	platform.KeyF11:    ebiten.KeyF11,
}

// basicfont is a fixed 7x13 face; DrawText scales it to the requested size.
var face font.Face = basicfont.Face7x13

const (
	faceHeight = 13
	faceAscent = 11
)

var (
	_ platform.Host          = (*Host)(nil)
	_ platform.TextureLoader = (*Host)(nil)
	_ ebiten.Game            = (*Host)(nil)
)

// Host adapts Ebitengine to platform.Host and is itself the ebiten.Game.
type Host struct {
	windowed bool
	logger   *log.Logger

	loop           platform.Loop
	screen         *ebiten.Image // valid only inside Draw
	pixel          *ebiten.Image
	width, height  int
	lastUpdateTime time.Time
}

func New(windowed bool, logger *log.Logger) *Host {
	return &Host{
		windowed: windowed,
		logger:   logger,
		width:    config.ScreenWidth,
		height:   config.ScreenHeight,
	}
}

func (h *Host) Open() error {
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(!h.windowed)

	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.logger.Info("window configured", "renderer", "ebiten", "fullscreen", !h.windowed)
	return nil
}

// Run blocks until the window is closed.
func (h *Host) Run(loop platform.Loop) error {
	h.loop = loop
	h.lastUpdateTime = time.Now()
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

func (h *Host) Close() {}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	now := time.Now()
	deltaTime := now.Sub(h.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	h.lastUpdateTime = now
	if err := h.loop.Update(deltaTime); err != nil {
		h.logger.Error("frame update failed", "err", err)
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.screen = screen
	h.loop.Draw()
	h.screen = nil
}

// Layout implements ebiten.Game. One logical pixel per window pixel.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.width, h.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (h *Host) IsKeyDown(key platform.Key) bool {
	k, ok := keys[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (h *Host) IsKeyReleased(key platform.Key) bool {
	k, ok := keys[key]
	return ok && inpututil.IsKeyJustReleased(k)
}

func (h *Host) ScreenSize() (int, int) {
	return h.width, h.height
}

// ToggleFullscreen leaves fullscreen into a window half the monitor size.
func (h *Host) ToggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		w, ht := ebiten.Monitor().Size()
		ebiten.SetWindowSize(w/2, ht/2)
		return
	}
	ebiten.SetFullscreen(true)
}

func (h *Host) Clear(c color.RGBA) {
	h.screen.Fill(c)
}

func (h *Host) DrawRect(topLeft, size utils.Vec2, c color.RGBA) {
	vector.DrawFilledRect(h.screen, float32(topLeft.X), float32(topLeft.Y), float32(size.X), float32(size.Y), c, true)
}

func (h *Host) DrawRectRotated(r platform.Rect, origin utils.Vec2, rotationDeg float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W, r.H)
	place(&op.GeoM, r, origin, rotationDeg)
	op.ColorScale.ScaleWithColor(c)
	h.screen.DrawImage(h.pixel, op)
}

func (h *Host) DrawCircle(center utils.Vec2, radius float64, c color.RGBA) {
	vector.DrawFilledCircle(h.screen, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (h *Host) DrawTexture(tex platform.Texture, src, dst platform.Rect, origin utils.Vec2, rotationDeg float64, tint color.RGBA) {
	t, ok := tex.(*texture)
	if !ok || src.W <= 0 || src.H <= 0 {
		return
	}
	bounds := image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H))
	sub, ok := t.img.SubImage(bounds).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	place(&op.GeoM, dst, origin, rotationDeg)
	op.ColorScale.ScaleWithColor(tint)
	h.screen.DrawImage(sub, op)
}

// place moves a dst-sized image so origin lands on (dst.X, dst.Y), rotated about it.
func place(g *ebiten.GeoM, dst platform.Rect, origin utils.Vec2, rotationDeg float64) {
	g.Translate(-origin.X, -origin.Y)
	g.Rotate(utils.DegToRad(rotationDeg))
	g.Translate(dst.X, dst.Y)
}

func (h *Host) DrawText(s string, pos utils.Vec2, size int, c color.RGBA) {
	scale := float64(size) / faceHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y+faceAscent*scale)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(h.screen, s, face, op)
}

func (h *Host) MeasureText(s string, size int) int {
	return font.MeasureString(face, s).Ceil() * size / faceHeight
}

type texture struct {
	img *ebiten.Image
}

func (t *texture) Width() int  { return t.img.Bounds().Dx() }
func (t *texture) Height() int { return t.img.Bounds().Dy() }

func (h *Host) LoadTexture(path string) (platform.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: %w", err)
	}
	return &texture{img: img}, nil
}

func (h *Host) UnloadTexture(tex platform.Texture) {
	if t, ok := tex.(*texture); ok {
		t.img.Deallocate()
	}
}
