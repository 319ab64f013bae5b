// Package watchertest provides a manually driven watcher.Scheduler for tests.
package watchertest

import (
	"sync"
	"time"

	"winget-installer/internal/watcher"
)

// ManualScheduler records scheduled callbacks; nothing runs until Fire is called
type ManualScheduler struct {
	mu      sync.Mutex
	entries []*entry
}

type entry struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (e *entry) Stop() bool {
	if e.stopped || e.fired {
		return false
	}
	e.stopped = true
	return true
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) watcher.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry{delay: d, fn: f}
	s.entries = append(s.entries, e)
	return e
}

// Pending counts callbacks that are neither fired nor stopped
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.entries {
		if !e.stopped && !e.fired {
			n++
		}
	}
	return n
}

// Scheduled counts every AfterFunc call so far
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// LastDelay returns the delay of the most recent AfterFunc call
func (s *ManualScheduler) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[len(s.entries)-1].delay
}

// Fire runs the oldest pending callback and reports whether one existed
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	var next *entry
	for _, e := range s.entries {
		if !e.stopped && !e.fired {
			next = e
			break
		}
	}
	if next != nil {
		next.fired = true
	}
	s.mu.Unlock()

	if next == nil {
		return false
	}
	next.fn()
	return true
}

// FireStale runs every callback that was stopped, emulating a timer that
// expired just before it was cancelled
func (s *ManualScheduler) FireStale() int {
	s.mu.Lock()
	var stale []*entry
	for _, e := range s.entries {
		if e.stopped && !e.fired {
			e.fired = true
			stale = append(stale, e)
		}
	}
	s.mu.Unlock()

	for _, e := range stale {
		e.fn()
	}
	return len(stale)
}
