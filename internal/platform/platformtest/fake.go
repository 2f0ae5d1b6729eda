// Package platformtest provides headless stand-ins for the host in tests.
package platformtest

import (
	"fmt"
	"image/color"
	"os"

	"space-game/internal/platform"
	"space-game/internal/utils"
)

// Input is a scripted key state. Released keys are consumed by Next.
type Input struct {
	Down     map[platform.Key]bool
	Released map[platform.Key]bool
}

func NewInput() *Input {
	return &Input{
		Down:     make(map[platform.Key]bool),
		Released: make(map[platform.Key]bool),
	}
}

func (in *Input) IsKeyDown(key platform.Key) bool     { return in.Down[key] }
func (in *Input) IsKeyReleased(key platform.Key) bool { return in.Released[key] }

// Press holds a key down until Lift.
func (in *Input) Press(key platform.Key) { in.Down[key] = true }

func (in *Input) Lift(key platform.Key) { delete(in.Down, key) }

// Release marks a key as released for the current frame.
func (in *Input) Release(key platform.Key) { in.Released[key] = true }

// Next clears one-frame state.
func (in *Input) Next() {
	in.Released = make(map[platform.Key]bool)
}

// Call is one recorded draw call.
type Call struct {
	Kind    string
	Text    string
	Texture platform.Texture
	Color   color.RGBA
}

// Surface records draw calls instead of rasterising them.
type Surface struct {
	Width, Height int
	Calls         []Call
	Fullscreen    bool
	Input
}

func NewSurface(width, height int) *Surface {
	return &Surface{Width: width, Height: height, Input: *NewInput()}
}

func (s *Surface) Clear(c color.RGBA) {
	s.Calls = append(s.Calls, Call{Kind: "clear", Color: c})
}

func (s *Surface) DrawRect(_, _ utils.Vec2, c color.RGBA) {
	s.Calls = append(s.Calls, Call{Kind: "rect", Color: c})
}

func (s *Surface) DrawRectRotated(_ platform.Rect, _ utils.Vec2, _ float64, c color.RGBA) {
	s.Calls = append(s.Calls, Call{Kind: "rect_rotated", Color: c})
}

func (s *Surface) DrawCircle(_ utils.Vec2, _ float64, c color.RGBA) {
	s.Calls = append(s.Calls, Call{Kind: "circle", Color: c})
}

func (s *Surface) DrawTexture(tex platform.Texture, _, _ platform.Rect, _ utils.Vec2, _ float64, tint color.RGBA) {
	s.Calls = append(s.Calls, Call{Kind: "texture", Texture: tex, Color: tint})
}

func (s *Surface) DrawText(text string, _ utils.Vec2, _ int, c color.RGBA) {
	s.Calls = append(s.Calls, Call{Kind: "text", Text: text, Color: c})
}

func (s *Surface) MeasureText(text string, size int) int {
	return len(text) * size / 2
}

func (s *Surface) ScreenSize() (int, int) { return s.Width, s.Height }

func (s *Surface) ToggleFullscreen() { s.Fullscreen = !s.Fullscreen }

// Count returns how many calls of kind were recorded.
func (s *Surface) Count(kind string) int {
	n := 0
	for _, c := range s.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every string drawn, in order.
func (s *Surface) Texts() []string {
	var out []string
	for _, c := range s.Calls {
		if c.Kind == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (s *Surface) Reset() { s.Calls = s.Calls[:0] }

// Texture is a sized placeholder.
type Texture struct {
	Name string
	W, H int
}

func (t *Texture) Width() int  { return t.W }
func (t *Texture) Height() int { return t.H }

// Loader hands out 32x32 placeholders for files that exist on disk, or for
// every path when SkipStat is set.
type Loader struct {
	SkipStat bool
	Loaded   []string
	Unloaded int
}

func (l *Loader) LoadTexture(path string) (platform.Texture, error) {
	if !l.SkipStat {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	l.Loaded = append(l.Loaded, path)
	return &Texture{Name: path, W: 32, H: 32}, nil
}

func (l *Loader) UnloadTexture(platform.Texture) { l.Unloaded++ }

var (
	_ platform.Host          = (*Surface)(nil)
	_ platform.TextureLoader = (*Loader)(nil)
)
