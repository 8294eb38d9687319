package timer_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ardanlabs/questhub/foundation/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_EveryFiresOnEachInterval(t *testing.T) {
	m := timer.NewManual()

	var ticks int
	h := m.Every(time.Second, func() { ticks++ })

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, ticks, "no tick before the first interval")

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 1, ticks)

	m.Advance(3 * time.Second)
	assert.Equal(t, 4, ticks)

	h.Stop()
	m.Advance(10 * time.Second)
	assert.Equal(t, 4, ticks, "stopped handle should not tick")
	assert.Equal(t, 0, m.Live())
}

func TestManual_AfterFiresOnce(t *testing.T) {
	m := timer.NewManual()

	var fired int
	m.After(2*time.Second, func() { fired++ })
	assert.Equal(t, 1, m.Live())

	m.Advance(time.Second)
	assert.Equal(t, 0, fired)

	m.Advance(5 * time.Second)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, m.Live(), "one shot callbacks release themselves")
	assert.Equal(t, 6*time.Second, m.Now())
}

func TestManual_StopBeforeDue(t *testing.T) {
	m := timer.NewManual()

	var fired bool
	h := m.After(time.Second, func() { fired = true })
	h.Stop()
	h.Stop()

	m.Advance(time.Minute)
	assert.False(t, fired)
}

func TestManual_ChainedAfterRunsWithinOneAdvance(t *testing.T) {
	m := timer.NewManual()

	var order []int
	var step func(i int)
	step = func(i int) {
		order = append(order, i)
		if i < 3 {
			m.After(time.Second, func() { step(i + 1) })
		}
	}
	m.After(time.Second, func() { step(1) })

	m.Advance(3 * time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestManual_OrderIsDueThenScheduling(t *testing.T) {
	m := timer.NewManual()

	var order []string
	m.After(2*time.Second, func() { order = append(order, "late") })
	m.After(time.Second, func() { order = append(order, "first") })
	m.After(time.Second, func() { order = append(order, "second") })

	m.Advance(2 * time.Second)
	assert.Equal(t, []string{"first", "second", "late"}, order)
}

func TestManual_StopFromInsideCallback(t *testing.T) {
	m := timer.NewManual()

	var ticks int
	var h timer.Handle
	h = m.Every(time.Second, func() {
		ticks++
		if ticks == 2 {
			h.Stop()
		}
	})

	m.Advance(10 * time.Second)
	assert.Equal(t, 2, ticks)
}

func TestManual_EveryRejectsNonPositive(t *testing.T) {
	m := timer.NewManual()
	assert.Panics(t, func() { m.Every(0, func() {}) })
}

func TestStop_NilHandle(t *testing.T) {
	assert.NotPanics(t, func() { timer.Stop(nil) })
}

func TestSystem_AfterAndEvery(t *testing.T) {
	s := timer.NewSystem()
	defer s.Shutdown()

	done := make(chan struct{})
	s.After(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("after callback did not fire")
	}

	var ticks atomic.Int32
	h := s.Every(5*time.Millisecond, func() { ticks.Add(1) })
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, time.Millisecond)

	h.Stop()
	assert.Equal(t, 0, s.Live())
}

func TestSystem_ShutdownStopsLiveHandles(t *testing.T) {
	s := timer.NewSystem()

	var fired atomic.Bool
	s.After(time.Hour, func() { fired.Store(true) })
	s.Every(time.Hour, func() { fired.Store(true) })
	assert.Equal(t, 2, s.Live())

	s.Shutdown()
	assert.Equal(t, 0, s.Live())
	assert.False(t, fired.Load())
}
