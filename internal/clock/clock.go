// Package clock provides cancellable periodic callbacks.
//
// The game engine arms one Handle per round and cancels it when the round
// ends or is replaced. Manual lets tests drive time explicitly.
package clock

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Handle is a running periodic callback.
type Handle interface {
	// Cancel stops future callbacks. It is safe to call more than once and
	// does not wait for a callback already in flight.
	Cancel()
}

// Clock schedules periodic callbacks.
type Clock interface {
	Every(d time.Duration, fn func()) Handle
}

// Real is a Clock backed by time.Ticker.
type Real struct{}

// Every starts a goroutine that calls fn every d until cancelled.
func (Real) Every(d time.Duration, fn func()) Handle {
	ctx, cancel := context.WithCancel(context.Background())
	t := time.NewTicker(d)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				// The ticker and Done can be ready together.
				if ctx.Err() != nil {
					return
				}
				fn()
			}
		}
	}()
	return realHandle{cancel: cancel}
}

type realHandle struct {
	cancel context.CancelFunc
}

func (h realHandle) Cancel() { h.cancel() }

// Manual is a deterministic Clock for tests.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	tickers map[int]*manualTicker
}

type manualTicker struct {
	id     int
	period time.Duration
	next   time.Duration
	fn     func()
}

// NewManual creates a Manual clock at time zero.
func NewManual() *Manual {
	return &Manual{tickers: make(map[int]*manualTicker)}
}

// Every registers fn to run every d of advanced time.
func (m *Manual) Every(d time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	tk := &manualTicker{id: m.nextID, period: d, next: m.now + d, fn: fn}
	m.tickers[tk.id] = tk
	return &manualHandle{clock: m, id: tk.id}
}

// Advance moves time forward, firing due callbacks in order. Callbacks run
// without the clock's lock held, so they may cancel handles.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		tk := m.earliestDue(target)
		if tk == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = tk.next
		tk.next += tk.period
		fn := tk.fn
		m.mu.Unlock()

		fn()
	}
}

// Active returns the number of uncancelled handles.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

func (m *Manual) earliestDue(target time.Duration) *manualTicker {
	due := make([]*manualTicker, 0, len(m.tickers))
	for _, tk := range m.tickers {
		if tk.next <= target {
			due = append(due, tk)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].next == due[j].next {
			return due[i].id < due[j].id
		}
		return due[i].next < due[j].next
	})
	return due[0]
}

type manualHandle struct {
	clock *Manual
	id    int
}

func (h *manualHandle) Cancel() {
	h.clock.mu.Lock()
	defer h.clock.mu.Unlock()
	delete(h.clock.tickers, h.id)
}
