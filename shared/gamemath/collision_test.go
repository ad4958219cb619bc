package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRectContains(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 140, 80, true},
		{"left edge", 100, 80, false},
		{"right edge", 180, 80, false},
		{"top edge", 140, 0, false},
		{"bottom edge", 140, 160, false},
		{"just inside corner", 100.001, 0.001, true},
		{"outside", 90, 80, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectContains(100, 0, 80, 160, tt.px, tt.py))
		})
	}
}

func TestBoxesNear(t *testing.T) {
	// 5 apart on x with radius 8 each
	assert.True(t, BoxesNear(100, 50, 8, 105, 50, 8))

	// exactly at the summed radii is not near
	assert.False(t, BoxesNear(100, 50, 8, 116, 50, 8))
	assert.False(t, BoxesNear(100, 50, 8, 100, 66, 8))

	// a diagonal offset inside the square but outside the circle still counts
	assert.True(t, BoxesNear(0, 0, 8, 15, 15, 8))
}

func TestBoxesNearIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ax := rapid.Float64Range(-500, 500).Draw(t, "ax")
		ay := rapid.Float64Range(-500, 500).Draw(t, "ay")
		bx := rapid.Float64Range(-500, 500).Draw(t, "bx")
		by := rapid.Float64Range(-500, 500).Draw(t, "by")

		if BoxesNear(ax, ay, 8, bx, by, 8) != BoxesNear(bx, by, 8, ax, ay, 8) {
			t.Fatalf("proximity differs by argument order")
		}
	})
}

func TestMidpoint(t *testing.T) {
	x, y := Midpoint(100, 50, 105, 50)
	assert.Equal(t, 102.5, x)
	assert.Equal(t, 50.0, y)
}

func TestOutsideSpan(t *testing.T) {
	assert.False(t, OutsideSpan(0, 640))
	assert.False(t, OutsideSpan(640, 640))
	assert.True(t, OutsideSpan(-0.5, 640))
	assert.True(t, OutsideSpan(640.5, 640))
}
