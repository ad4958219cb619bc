package gamemath

// ApplyGravity returns the vertical speed after one tick of gravity.
// Grounded bodies are not accelerated.
func ApplyGravity(speedY, gravity float64, onGround bool) float64 {
	if onGround {
		return speedY
	}
	return speedY + gravity
}

// ClampToFloor snaps a body of the given height onto the floor line when its
// lower edge reaches or passes it. grounded is true only when the body was
// snapped.
func ClampToFloor(y, height, floor float64) (clampedY float64, grounded bool) {
	if y+height >= floor {
		return floor - height, true
	}
	return y, false
}

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
