package system

import (
	"testing"

	"space-game/internal/component"
	"space-game/internal/platform"
	"space-game/internal/platform/platformtest"
	"space-game/internal/utils"
)

type textureMap map[string]platform.Texture

func (m textureMap) Get(name string) (platform.Texture, bool) {
	t, ok := m[name]
	return t, ok
}

func newTextureMap(names ...string) textureMap {
	m := textureMap{}
	for _, n := range names {
		m[n] = &platformtest.Texture{Name: n, W: 16, H: 16}
	}
	return m
}

func TestRenderDrawsEveryLayer(t *testing.T) {
	r := newTestRig()
	r.world.Player.Texture = "V1Ship.png"
	onScreen := newTestEnemy(utils.V(100, 50))
	onScreen.Texture = "V1Enemy.png"
	offScreen := newTestEnemy(utils.V(5000, 0))
	offScreen.Texture = "V1Enemy.png"
	r.world.Enemies = append(r.world.Enemies, onScreen, offScreen)
	r.world.Bullets = append(r.world.Bullets,
		component.Bullet{Pos: utils.V(10, 10), Vel: utils.V(1, 0), Size: 4, Friendly: true, Duration: 1},
		component.Bullet{Pos: utils.V(20, 10), Vel: utils.V(1, 0), Size: 4, Duration: 1},
	)
	r.world.Particles = append(r.world.Particles,
		component.Particle{Size: 4, Shape: component.ShapeSquare, Duration: 1},
		component.Particle{Size: 4, Shape: component.ShapeCircle, Duration: 1},
		component.Particle{Size: 4, Shape: component.ShapeRotSquare, Duration: 1},
	)
	r.world.PowerUps = []component.PowerUp{{Pos: utils.V(-50, 0), Texture: "Repair.png"}}

	tex := newTextureMap("V1Ship.png", "V1Enemy.png", "EnemyWarning.png", "Repair.png")
	surface := platformtest.NewSurface(640, 480)
	NewRenderSystem(r.world, quietLogger()).Draw(surface, tex, 640, 480, false)

	if surface.Calls[0].Kind != "clear" {
		t.Errorf("first call = %q, want clear", surface.Calls[0].Kind)
	}
	// player, one enemy, one warning, one power-up
	if got := surface.Count("texture"); got != 4 {
		t.Errorf("textures drawn = %d, want 4", got)
	}
	// two bullets and one rotated particle
	if got := surface.Count("rect_rotated"); got != 3 {
		t.Errorf("rotated rects = %d, want 3", got)
	}
	if got := surface.Count("circle"); got != 1 {
		t.Errorf("circles = %d, want 1", got)
	}
}

func TestRenderDebugOverlay(t *testing.T) {
	r := newTestRig()
	r.world.Enemies = append(r.world.Enemies, newTestEnemy(utils.V(100, 50)))
	tex := newTextureMap()

	plain := platformtest.NewSurface(640, 480)
	NewRenderSystem(r.world, quietLogger()).Draw(plain, tex, 640, 480, false)
	debug := platformtest.NewSurface(640, 480)
	NewRenderSystem(r.world, quietLogger()).Draw(debug, tex, 640, 480, true)

	// four part circles, enemy radius and target point
	if got := debug.Count("circle") - plain.Count("circle"); got != 6 {
		t.Errorf("debug added %d circles, want 6", got)
	}
}

func TestRenderDoesNotMutateWorld(t *testing.T) {
	r := newTestRig()
	r.world.Enemies = append(r.world.Enemies, newTestEnemy(utils.V(100, 50)))
	before := *r.world.Player
	enemy := r.world.Enemies[0]

	NewRenderSystem(r.world, quietLogger()).Draw(platformtest.NewSurface(320, 240), nil, 320, 240, true)

	if r.world.Player.Body != before.Body || r.world.Enemies[0].Body != enemy.Body {
		t.Error("draw changed the world")
	}
}
