package vmath

import "math"

// Wrap normalises v into [0, l) for a periodic axis of length l
func Wrap(v, l float64) float64 {
	w := math.Mod(v, l)
	if w < 0 {
		w += l
	}
	// -tiny + l rounds to l in float64
	if w >= l {
		w = 0
	}
	return w
}

// WrapPoint normalises a position into [0,w)x[0,h)
func WrapPoint(x, y, w, h float64) (float64, float64) {
	return Wrap(x, w), Wrap(y, h)
}

// WrappedDelta returns the signed shortest displacement from a to b on an axis of length l
// Result lies in (-l/2, l/2] and a+delta is congruent to b modulo l
func WrappedDelta(a, b, l float64) float64 {
	d := math.Mod(b-a, l)
	if d > l/2 {
		d -= l
	} else if d <= -l/2 {
		d += l
	}
	return d
}

// WrappedDelta2 composes WrappedDelta on both axes
func WrappedDelta2(x1, y1, x2, y2, w, h float64) (dx, dy float64) {
	return WrappedDelta(x1, x2, w), WrappedDelta(y1, y2, h)
}

// WrappedDistanceSquared returns the squared toroidal distance between two points
// Compare against squared radii; take the root only when the real distance is needed
func WrappedDistanceSquared(x1, y1, x2, y2, w, h float64) float64 {
	dx := WrappedDelta(x1, x2, w)
	dy := WrappedDelta(y1, y2, h)
	return dx*dx + dy*dy
}

// WithinWrapped reports whether two circles on the torus overlap (strict)
func WithinWrapped(x1, y1, x2, y2, w, h, reach float64) bool {
	return WrappedDistanceSquared(x1, y1, x2, y2, w, h) < reach*reach
}
