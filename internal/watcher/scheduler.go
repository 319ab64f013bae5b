package watcher

import "time"

// Timer is a cancellable pending callback
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d and returns a handle that cancels it
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// DispatchScheduler waits on a runtime timer and hands the callback to
// dispatch, which is expected to run it on the UI goroutine (fyne.Do).
type DispatchScheduler struct {
	dispatch func(func())
}

// NewDispatchScheduler creates a scheduler; a nil dispatch runs callbacks on the timer goroutine
func NewDispatchScheduler(dispatch func(func())) *DispatchScheduler {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &DispatchScheduler{dispatch: dispatch}
}

func (s *DispatchScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() {
		s.dispatch(f)
	})
}
