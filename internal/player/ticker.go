package player

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is how often progress is sampled while playing
const DefaultTickInterval = 500 * time.Millisecond

// TickerScheduler runs callbacks on a time.Ticker and hands every tick to
// dispatch, which is expected to run it on the UI goroutine (fyne.Do).
type TickerScheduler struct {
	dispatch func(func())
}

// NewTickerScheduler creates a scheduler. A nil dispatch runs ticks directly on
// the ticker goroutine with no serialization: Stop then only guarantees that no
// new tick starts, and a tick already running may finish after Stop returns.
// Callers that need Stop to be fully synchronous pass a dispatch that runs
// ticks on the goroutine that also calls Stop.
func NewTickerScheduler(dispatch func(func())) *TickerScheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &TickerScheduler{dispatch: dispatch}
}

// Every starts calling fn every interval until the returned Timer is stopped
func (s *TickerScheduler) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	t := &tickerTimer{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.run(s.dispatch, fn)
	return t
}

type tickerTimer struct {
	ticker  *time.Ticker
	done    chan struct{}
	once    sync.Once
	stopped atomic.Bool
}

func (t *tickerTimer) run(dispatch func(func()), fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			dispatch(func() {
				// A tick queued before Stop must not fire after it
				if t.stopped.Load() {
					return
				}
				fn()
			})
		}
	}
}

// Stop cancels the timer. It is safe to call more than once.
func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		t.stopped.Store(true)
		t.ticker.Stop()
		close(t.done)
	})
}
