// internal/system/background.go
package system

import (
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"space-game/internal/config"
	"space-game/internal/platform"
	"space-game/internal/utils"
	"space-game/pkg/render"
	pkgutils "space-game/pkg/utils"
)

// Star is one background star in screen space.
type Star struct {
	Pos   utils.Vec2
	Value float64 // brightness in [0,1)
}

// BackgroundRenderer draws an endless star field. Whether a world tile holds
// a star, and where, depends only on the tile coordinates, so the field is
// stable across frames and the same wherever the camera returns.
type BackgroundRenderer struct {
	tileSize int
	workers  int
}

func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{
		tileSize: config.StarTileSize,
		workers:  runtime.GOMAXPROCS(0),
	}
}

// Stars returns the stars visible in a width×height viewport whose top-left
// corner sits at camera in world space. Rows of tiles are generated in
// parallel and joined before returning.
func (r *BackgroundRenderer) Stars(camera utils.Vec2, width, height int) ([]Star, error) {
	ts := r.tileSize
	left := int(math.Floor(camera.X))
	top := int(math.Floor(camera.Y))
	x0 := pkgutils.FloorDiv(left, ts) - 1
	x1 := pkgutils.FloorDiv(left+width, ts) + 1
	y0 := pkgutils.FloorDiv(top, ts) - 1
	y1 := pkgutils.FloorDiv(top+height, ts) + 1

	rows := make([][]Star, y1-y0+1)
	var g errgroup.Group
	g.SetLimit(r.workers)
	for ty := y0; ty <= y1; ty++ {
		g.Go(func() error {
			rows[ty-y0] = r.row(camera, ty, x0, x1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var stars []Star
	for _, row := range rows {
		stars = append(stars, row...)
	}
	return stars, nil
}

func (r *BackgroundRenderer) row(camera utils.Vec2, ty, x0, x1 int) []Star {
	var out []Star
	ts := float64(r.tileSize)
	for tx := x0; tx <= x1; tx++ {
		rng := rand.New(rand.NewPCG(uint64(pkgutils.TileSeed(tx, ty)), 0))
		if rng.Float64() >= config.StarChance {
			continue
		}
		world := utils.V(
			float64(tx)*ts+rng.Float64()*ts,
			float64(ty)*ts+rng.Float64()*ts,
		)
		out = append(out, Star{Pos: world.Sub(camera), Value: rng.Float64()})
	}
	return out
}

// Draw paints the star field.
func (r *BackgroundRenderer) Draw(s platform.Surface, camera utils.Vec2, width, height int) error {
	stars, err := r.Stars(camera, width, height)
	if err != nil {
		return err
	}
	size := utils.V(config.StarSize, config.StarSize)
	for _, st := range stars {
		s.DrawRect(st.Pos, size, render.Gray(st.Value))
	}
	return nil
}
