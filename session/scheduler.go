package session

import (
	"sync"
	"time"
)

// Handle cancels a schedule. Cancel may be called more than once.
type Handle interface {
	Cancel()
}

// Scheduler invokes fn every interval until the returned handle is cancelled.
// Implementations may call fn before Schedule returns.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) Handle
}

// TickerScheduler runs scheduled functions from a time.Ticker.
type TickerScheduler struct{}

type tickerHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}

// Schedule starts a goroutine that calls fn on every tick.
func (TickerScheduler) Schedule(interval time.Duration, fn func()) Handle {
	h := &tickerHandle{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.ticker.C:
				fn()
			}
		}
	}()

	return h
}
