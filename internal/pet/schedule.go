package pet

import (
	"sync"
	"time"
)

// Handle cancels a scheduled action. Cancelling an already-fired or
// already-cancelled handle is a no-op.
type Handle interface {
	Cancel()
}

// Scheduler arms timers whose actions run on the runtime goroutine. All
// timer work (frame ticks, bubble TTLs, mood reverts, price cadence) goes
// through here so tests can drive time by hand.
type Scheduler interface {
	Schedule(delay time.Duration, repeating bool, fn func()) Handle
}

// loopScheduler is the production scheduler: real timers whose actions are
// posted onto the runtime loop instead of firing on the timer goroutine.
type loopScheduler struct {
	post func(func())
}

func newLoopScheduler(post func(func())) *loopScheduler {
	return &loopScheduler{post: post}
}

func (s *loopScheduler) Schedule(delay time.Duration, repeating bool, fn func()) Handle {
	if repeating {
		h := &repeatHandle{stop: make(chan struct{})}
		go func() {
			ticker := time.NewTicker(delay)
			defer ticker.Stop()
			for {
				select {
				case <-h.stop:
					return
				case <-ticker.C:
					s.post(func() {
						// suppress actions that were cancelled while queued
						select {
						case <-h.stop:
						default:
							fn()
						}
					})
				}
			}
		}()
		return h
	}

	h := &oneShotHandle{}
	h.timer = time.AfterFunc(delay, func() {
		s.post(func() {
			h.mu.Lock()
			cancelled := h.cancelled
			h.mu.Unlock()
			if !cancelled {
				fn()
			}
		})
	})
	return h
}

type oneShotHandle struct {
	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
}

func (h *oneShotHandle) Cancel() {
	h.mu.Lock()
	h.cancelled = true
	h.mu.Unlock()
	h.timer.Stop()
}

type repeatHandle struct {
	once sync.Once
	stop chan struct{}
}

func (h *repeatHandle) Cancel() {
	h.once.Do(func() { close(h.stop) })
}
