package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_FiresOncePerPeriod(t *testing.T) {
	m := NewManual()
	var n int
	m.Every(time.Second, func() { n++ })

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, n)

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 1, n)

	m.Advance(3 * time.Second)
	assert.Equal(t, 4, n)
}

func TestManual_CancelStopsCallbacks(t *testing.T) {
	m := NewManual()
	var n int
	h := m.Every(time.Second, func() { n++ })
	require.Equal(t, 1, m.Active())

	m.Advance(2 * time.Second)
	h.Cancel()
	h.Cancel()
	m.Advance(5 * time.Second)

	assert.Equal(t, 2, n)
	assert.Equal(t, 0, m.Active())
}

func TestManual_CallbackMayCancelItself(t *testing.T) {
	m := NewManual()
	var n int
	var h Handle
	h = m.Every(time.Second, func() {
		n++
		if n == 3 {
			h.Cancel()
		}
	})

	m.Advance(10 * time.Second)
	assert.Equal(t, 3, n)
}

func TestManual_OrderAcrossHandles(t *testing.T) {
	m := NewManual()
	var order []string
	m.Every(2*time.Second, func() { order = append(order, "slow") })
	m.Every(time.Second, func() { order = append(order, "fast") })

	m.Advance(2 * time.Second)
	assert.Equal(t, []string{"fast", "slow", "fast"}, order)
}

func TestReal_TicksAndCancels(t *testing.T) {
	var n atomic.Int32
	h := Real{}.Every(5*time.Millisecond, func() { n.Add(1) })

	require.Eventually(t, func() bool { return n.Load() >= 2 }, time.Second, time.Millisecond)

	h.Cancel()
	// Allow an in-flight tick to land, then expect silence.
	time.Sleep(20 * time.Millisecond)
	stopped := n.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, n.Load())
}
