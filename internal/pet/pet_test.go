package pet

import (
	"time"

	"github.com/hoshinoya/dogepet/internal/logging"
)

// fakeScheduler drives scheduled actions by hand so tests never sleep.
type fakeScheduler struct {
	now     time.Duration
	entries []*fakeEntry
}

type fakeEntry struct {
	at        time.Duration
	interval  time.Duration
	repeating bool
	fn        func()
	cancelled bool
}

func (e *fakeEntry) Cancel() { e.cancelled = true }

func (s *fakeScheduler) Schedule(delay time.Duration, repeating bool, fn func()) Handle {
	e := &fakeEntry{at: s.now + delay, interval: delay, repeating: repeating, fn: fn}
	s.entries = append(s.entries, e)
	return e
}

// Advance moves the clock forward, firing due entries in order.
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		var next *fakeEntry
		for _, e := range s.entries {
			if e.cancelled || e.at > target {
				continue
			}
			if next == nil || e.at < next.at {
				next = e
			}
		}
		if next == nil {
			break
		}
		s.now = next.at
		if next.repeating {
			next.at += next.interval
		} else {
			next.cancelled = true
		}
		next.fn()
	}
	s.now = target
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, e := range s.entries {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// stubAssets serves one-frame sequences for a fixed set of states.
type stubAssets struct {
	frames map[string][]string
}

func newStubAssets(keys ...string) *stubAssets {
	s := &stubAssets{frames: make(map[string][]string)}
	for _, k := range keys {
		s.frames[k] = []string{"[" + k + " 0]", "[" + k + " 1]"}
	}
	return s
}

func (s *stubAssets) Frames(key string) ([]string, error) {
	frames, ok := s.frames[key]
	if !ok {
		return nil, errMissingAsset
	}
	return frames, nil
}

var errMissingAsset = assetError("no such animation")

type assetError string

func (e assetError) Error() string { return string(e) }

func allStateAssets() *stubAssets {
	return newStubAssets("idle", "happy", "laugh", "wow", "sad", "thinking")
}

func newTestAnimator(sched Scheduler, assets AssetSource) *Animator {
	return NewAnimator(assets, sched, logging.Nop())
}
