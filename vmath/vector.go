package vmath

import "math"

// Normalize returns the unit vector of (x, y), zero-safe
func Normalize(x, y float64) (nx, ny float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Dot returns the dot product of two vectors
func Dot(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}

// FromAngle returns the unit vector pointing at angle (radians)
func FromAngle(angle float64) (float64, float64) {
	return math.Cos(angle), math.Sin(angle)
}

// AngleOf returns the direction of (x, y), or fallback for the zero vector
func AngleOf(x, y, fallback float64) float64 {
	if x == 0 && y == 0 {
		return fallback
	}
	return math.Atan2(y, x)
}

// NormalizeAngle maps an angle into [0, 2π)
func NormalizeAngle(a float64) float64 {
	return Wrap(a, 2*math.Pi)
}
