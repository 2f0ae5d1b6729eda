// pkg/render/color.go
package render

import "image/color"

// ColorLerp interpolates a→b component-wise. t is expected in [0,1] but is not
// clamped; channels that overshoot saturate at 0 or 255.
func ColorLerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Gray returns an opaque-to-transparent gray where every channel equals v·255,
// alpha included. Used for background stars.
func Gray(v float64) color.RGBA {
	c := uint8(255 * v)
	return color.RGBA{c, c, c, c}
}
