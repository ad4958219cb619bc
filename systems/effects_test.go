package systems

import (
	"testing"

	"github.com/automoto/merlinio-playground/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateExplosions_GrowsFadesAndExpires(t *testing.T) {
	w, _, _ := newTestWorld(t)
	factory.CreateExplosion(w, 10, 20)

	UpdateExplosions(w)
	exps := explosions(w)
	require.Len(t, exps, 1)
	assert.InDelta(t, 2.0, exps[0].Radius, 1e-6)
	assert.InDelta(t, 0.95, exps[0].Alpha, 1e-6)

	for i := 0; i < 13; i++ {
		UpdateExplosions(w)
	}
	exps = explosions(w)
	require.Len(t, exps, 1)
	assert.InDelta(t, 28.0, exps[0].Radius, 1e-4)

	UpdateExplosions(w)
	assert.Empty(t, explosions(w))
}

func TestUpdateExplosions_IndependentLifetimes(t *testing.T) {
	w, _, _ := newTestWorld(t)
	factory.CreateExplosion(w, 0, 0)
	for i := 0; i < 10; i++ {
		UpdateExplosions(w)
	}
	factory.CreateExplosion(w, 50, 50)

	for i := 0; i < 5; i++ {
		UpdateExplosions(w)
	}

	exps := explosions(w)
	require.Len(t, exps, 1)
	assert.Equal(t, 50.0, exps[0].X)
}
