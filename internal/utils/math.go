// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians. Turn rates are authored in degrees per second.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg is used only at draw time.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
