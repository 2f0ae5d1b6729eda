// internal/system/render.go
package system

import (
	"image/color"

	"github.com/charmbracelet/log"

	"space-game/internal/component"
	"space-game/internal/config"
	"space-game/internal/entity"
	"space-game/internal/platform"
	"space-game/internal/utils"
	"space-game/pkg/render"
)

// TextureSource resolves a texture by file name.
type TextureSource interface {
	Get(name string) (platform.Texture, bool)
}

var white = color.RGBA{255, 255, 255, 255}

// RenderSystem рисует мир. The camera is centred on the player. It only reads
// the world.
type RenderSystem struct {
	world      *entity.World
	background *BackgroundRenderer
	logger     *log.Logger
}

func NewRenderSystem(world *entity.World, logger *log.Logger) *RenderSystem {
	return &RenderSystem{world: world, background: NewBackgroundRenderer(), logger: logger}
}

// Camera is the world position of the viewport's top-left corner.
func (s *RenderSystem) Camera(width, height int) utils.Vec2 {
	return s.world.Player.Pos.Sub(utils.V(float64(width)/2, float64(height)/2))
}

func (s *RenderSystem) Draw(surface platform.Surface, textures TextureSource, width, height int, debug bool) {
	camera := s.Camera(width, height)
	surface.Clear(config.BackgroundColor)
	if err := s.background.Draw(surface, camera, width, height); err != nil {
		s.logger.Error("background", "err", err)
	}

	for i := range s.world.Particles {
		s.drawParticle(surface, &s.world.Particles[i], camera)
	}

	for i := range s.world.PowerUps {
		pu := &s.world.PowerUps[i]
		s.drawSprite(surface, textures, pu.Texture, pu.Pos.Sub(camera), utils.V(1, 0), config.PowerUpScale, config.PowerUpRadius)
	}

	p := s.world.Player
	if debug {
		for i := range p.Parts {
			part := &p.Parts[i]
			c := render.ColorLerp(config.DebugPartHealthy, config.DebugPartBroken, 1-part.Ratio())
			surface.DrawCircle(part.Pos.Sub(camera), part.Size, c)
		}
	}
	s.drawSprite(surface, textures, p.Texture, p.Pos.Sub(camera), p.Dir, p.TextureScale, 16)

	for i := range s.world.Enemies {
		s.drawEnemy(surface, textures, &s.world.Enemies[i], camera, width, height, debug)
	}

	for i := range s.world.Bullets {
		s.drawBullet(surface, &s.world.Bullets[i], camera)
	}
}

func (s *RenderSystem) drawParticle(surface platform.Surface, p *component.Particle, camera utils.Vec2) {
	pos := p.Pos.Sub(camera)
	c := p.Color()
	switch p.Shape {
	case component.ShapeCircle:
		surface.DrawCircle(pos, p.Size/2, c)
	case component.ShapeRotSquare:
		rot := 0.0
		if !p.Vel.IsZero() {
			rot = utils.RadToDeg(utils.VectorToAngle(p.Vel))
		}
		surface.DrawRectRotated(platform.Rect{X: pos.X, Y: pos.Y, W: p.Size, H: p.Size}, utils.V(p.Size/2, p.Size/2), rot, c)
	default:
		half := p.Size / 2
		surface.DrawRect(pos.Sub(utils.V(half, half)), utils.V(p.Size, p.Size), c)
	}
}

func (s *RenderSystem) drawEnemy(surface platform.Surface, textures TextureSource, e *component.Enemy, camera utils.Vec2, width, height int, debug bool) {
	pos := e.Pos.Sub(camera)
	if pos.X < 0 || pos.Y < 0 || pos.X > float64(width) || pos.Y > float64(height) {
		s.drawWarning(surface, textures, e, pos, width, height)
		return
	}

	s.drawSprite(surface, textures, e.Texture, pos, e.Dir, e.TextureScale, e.Size)
	if e.Cannon != nil {
		s.drawSprite(surface, textures, e.Cannon.Texture, pos, e.Cannon.Dir, e.TextureScale, e.Size/2)
	}
	if debug {
		surface.DrawCircle(pos, e.Size, config.DebugEnemyColor)
		surface.DrawCircle(e.TargetPos.Sub(camera), 4, config.DebugTargetColor)
	}
}

// drawWarning pins an arrow to the screen edge, pointing from the player toward the enemy.
func (s *RenderSystem) drawWarning(surface platform.Surface, textures TextureSource, e *component.Enemy, pos utils.Vec2, width, height int) {
	m := config.WarningMargin
	at := utils.V(
		utils.Clamp(pos.X, m, float64(width)-m),
		utils.Clamp(pos.Y, m, float64(height)-m),
	)
	dir := e.Pos.Sub(s.world.Player.Pos)
	if dir.IsZero() {
		dir = utils.V(1, 0)
	}
	s.drawSprite(surface, textures, config.WarningTexture, at, dir, config.WarningScale, 8)
}

func (s *RenderSystem) drawBullet(surface platform.Surface, b *component.Bullet, camera utils.Vec2) {
	shrink := 1 - b.Progress()
	if shrink <= 0 {
		return
	}
	c := config.HostileBulletColor
	if b.Friendly {
		c = config.FriendlyBulletColor
	}
	rot := 0.0
	if !b.Vel.IsZero() {
		rot = utils.RadToDeg(utils.VectorToAngle(b.Vel))
	}
	w, h := b.Size*4*shrink, b.Size*2*shrink
	pos := b.Pos.Sub(camera)
	surface.DrawRectRotated(platform.Rect{X: pos.X, Y: pos.Y, W: w, H: h}, utils.V(w/2, h/2), rot, c)
}

// drawSprite draws a texture centred on pos. Sprites face up in their image,
// hence the quarter turn. A missing texture falls back to a circle of radius.
func (s *RenderSystem) drawSprite(surface platform.Surface, textures TextureSource, name string, pos, dir utils.Vec2, scale, radius float64) {
	var tex platform.Texture
	ok := false
	if textures != nil {
		tex, ok = textures.Get(name)
	}
	if !ok {
		surface.DrawCircle(pos, radius, white)
		return
	}
	w, h := float64(tex.Width()), float64(tex.Height())
	dw, dh := w*scale, h*scale
	surface.DrawTexture(tex,
		platform.Rect{W: w, H: h},
		platform.Rect{X: pos.X, Y: pos.Y, W: dw, H: dh},
		utils.V(dw/2, dh/2),
		utils.RadToDeg(utils.VectorToAngle(dir))+90,
		white,
	)
}
