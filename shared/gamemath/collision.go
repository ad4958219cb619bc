package gamemath

import "math"

// RectContains reports whether (px, py) lies strictly inside the rectangle
// with top-left (rx, ry) and size (rw, rh). Points on an edge are outside.
func RectContains(rx, ry, rw, rh, px, py float64) bool {
	return px > rx && px < rx+rw && py > ry && py < ry+rh
}

// BoxesNear is the projectile proximity test. Each axis is checked
// independently against the summed radii, so the test region is a square and
// not a circle.
func BoxesNear(ax, ay, ar, bx, by, br float64) bool {
	reach := ar + br
	return math.Abs(ax-bx) < reach && math.Abs(ay-by) < reach
}

// Midpoint returns the point halfway between a and b.
func Midpoint(ax, ay, bx, by float64) (x, y float64) {
	return (ax + bx) / 2, (ay + by) / 2
}

// OutsideSpan reports whether x has left the closed interval [0, width].
func OutsideSpan(x, width float64) bool {
	return x < 0 || x > width
}
