package sim_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jcoghill/wander/internal/game/sim"
)

func TestLoopTicksAndStops(t *testing.T) {
	s := newTestSim(t)
	loop := sim.NewLoop(s, 100, zaptest.NewLogger(t))

	var ticks atomic.Int64
	loop.OnTick(func(*sim.Simulation) { ticks.Add(1) })

	done := make(chan error, 1)
	go func() { done <- loop.Start() }()

	deadline := time.After(2 * time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("loop did not tick in time")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	loop.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop in time")
	}

	stopped := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no ticks after Stop returns")
}

func TestLoopStopIsIdempotent(t *testing.T) {
	s := newTestSim(t)
	loop := sim.NewLoop(s, 100, zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() { done <- loop.Start() }()

	loop.Stop()
	loop.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop in time")
	}
}

func TestLoopAdvancesSimulation(t *testing.T) {
	s := newTestSim(t)
	s.SetInput(1, 0)
	start := s.Player().Pos

	loop := sim.NewLoop(s, 100, zaptest.NewLogger(t))
	done := make(chan error, 1)
	go func() { done <- loop.Start() }()

	time.Sleep(100 * time.Millisecond)
	loop.Stop()
	require.NoError(t, <-done)

	assert.Greater(t, s.Player().Pos.X, start.X, "player intent applied over real time")
}
