package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyGravity(t *testing.T) {
	assert.Equal(t, 0.5, ApplyGravity(0, 0.5, false))
	assert.Equal(t, -14.5, ApplyGravity(-15, 0.5, false))
	assert.Equal(t, 3.0, ApplyGravity(3, 0.5, true))
}

func TestClampToFloor(t *testing.T) {
	y, grounded := ClampToFloor(600, 160, 720)
	assert.Equal(t, 560.0, y)
	assert.True(t, grounded)

	// resting exactly on the floor counts as grounded
	y, grounded = ClampToFloor(560, 160, 720)
	assert.Equal(t, 560.0, y)
	assert.True(t, grounded)

	y, grounded = ClampToFloor(520, 160, 720)
	assert.Equal(t, 520.0, y)
	assert.False(t, grounded)
}

func TestMaxInt(t *testing.T) {
	assert.Equal(t, 30, MaxInt(30, 20))
	assert.Equal(t, 60, MaxInt(30, 60))
}
