// Package platform is the surface the simulation needs from its host: key
// state, a 2D draw target and texture loading. The core never imports a
// graphics toolkit directly; rlhost and ebitenhost adapt real ones.
package platform

import (
	"image/color"

	"space-game/internal/utils"
)

// Key identifies the handful of keys the game reads.
type Key int

const (
	KeyA Key = iota
	KeyD
	KeyF3
	KeyEscape
	KeyF11
)

// Input is polled once per frame.
type Input interface {
	IsKeyDown(key Key) bool
	IsKeyReleased(key Key) bool
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Texture is a host-owned image handle.
type Texture interface {
	Width() int
	Height() int
}

// Surface is write-only from the game's point of view. Rotations are in
// degrees, clockwise on screen; origin is relative to the destination
// rectangle's top-left corner and is placed at (X, Y).
type Surface interface {
	Clear(c color.RGBA)
	DrawRect(topLeft, size utils.Vec2, c color.RGBA)
	DrawRectRotated(r Rect, origin utils.Vec2, rotationDeg float64, c color.RGBA)
	DrawCircle(center utils.Vec2, radius float64, c color.RGBA)
	DrawTexture(tex Texture, src, dst Rect, origin utils.Vec2, rotationDeg float64, tint color.RGBA)
	DrawText(text string, pos utils.Vec2, size int, c color.RGBA)
	MeasureText(text string, size int) int
}

// Window is the part of the host the menu-level key handling talks to.
type Window interface {
	ScreenSize() (width, height int)
	ToggleFullscreen()
}

// TextureLoader turns an image file into a Texture.
type TextureLoader interface {
	LoadTexture(path string) (Texture, error)
	UnloadTexture(tex Texture)
}

// Host bundles everything a running frame needs.
type Host interface {
	Input
	Surface
	Window
}

// Loop is driven by a host once per frame: Update with the clamped frame
// time, then Draw between the host's begin/end calls.
type Loop interface {
	Update(deltaTime float64) error
	Draw()
}
