package core_test

import (
	"context"
	"testing"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/automoto/merlinio-playground/core/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGameLoop_AppliesCommandsAndSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	s := core.NewSession(config.C, r)
	loop := core.NewGameLoop(s, 1000)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rendered := 0
	r.EXPECT().Render(gomock.Any()).AnyTimes().Do(func(snap core.Snapshot) {
		rendered++
		if rendered == 5 {
			cancel()
		}
	})

	require.True(t, loop.Send(core.Command{Action: config.ActionStart, Pressed: true}))
	require.NoError(t, loop.Run(ctx))

	assert.GreaterOrEqual(t, rendered, 5)
	assert.Equal(t, components.RoundRunning, s.State())
	assert.Greater(t, s.Snapshot().Tick, uint64(0))
}

func TestGameLoop_SendDropsWhenFull(t *testing.T) {
	loop := core.NewGameLoop(core.NewSession(config.C, nil), 60)

	for i := 0; i < 16; i++ {
		require.True(t, loop.Send(core.Command{Action: config.ActionFire, Pressed: true}))
	}
	assert.False(t, loop.Send(core.Command{Action: config.ActionFire, Pressed: true}))
}
