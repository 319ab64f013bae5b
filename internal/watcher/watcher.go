// Package watcher polls the operating system theme while follow-system is on.
//
// A Watcher is a two-state machine (Stopped, Running). It is not safe for
// concurrent use: Start, Stop, Refresh and the scheduled ticks must all run on
// the same goroutine, which in the application is the Fyne UI goroutine.
package watcher

import (
	"time"

	"winget-installer/internal/logger"
	"winget-installer/internal/systheme"
)

// DefaultInterval is the delay between two samples of the OS setting
const DefaultInterval = 5000 * time.Millisecond

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	}
	return "unknown"
}

type Watcher struct {
	sampler   systheme.Sampler
	scheduler Scheduler
	interval  time.Duration
	onChange  func(dark bool)
	log       logger.Logger

	state   State
	last    *bool
	pending Timer
	// generation invalidates ticks scheduled before the latest Start/Stop
	generation uint64
}

// New creates a stopped watcher. onChange receives every observed change,
// including the first sample after Start.
func New(sampler systheme.Sampler, scheduler Scheduler, interval time.Duration, onChange func(dark bool), log logger.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	if onChange == nil {
		onChange = func(bool) {}
	}

	return &Watcher{
		sampler:   sampler,
		scheduler: scheduler,
		interval:  interval,
		onChange:  onChange,
		log:       log,
		state:     Stopped,
	}
}

// Start samples the OS setting synchronously, reports it and schedules the
// first delayed tick. Calling Start while running does nothing.
func (w *Watcher) Start() {
	if w.state == Running {
		return
	}

	w.generation++
	w.state = Running
	w.last = nil

	w.log.Debug("Watcher", "started", map[string]interface{}{
		"interval": w.interval.String(),
	})

	gen := w.generation
	w.sample()
	if w.current(gen) {
		w.schedule(gen)
	}
}

// Stop cancels the pending tick. Calling Stop while stopped does nothing.
func (w *Watcher) Stop() {
	if w.state == Stopped {
		return
	}

	w.state = Stopped
	w.generation++
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}

	w.log.Debug("Watcher", "stopped", nil)
}

// Refresh samples immediately while running without adding a tick chain
func (w *Watcher) Refresh() {
	if w.state != Running {
		return
	}
	w.sample()
}

func (w *Watcher) State() State {
	return w.state
}

func (w *Watcher) Running() bool {
	return w.state == Running
}

// LastObserved returns the last sampled value; ok is false before the first sample
func (w *Watcher) LastObserved() (dark bool, ok bool) {
	if w.last == nil {
		return false, false
	}
	return *w.last, true
}

func (w *Watcher) Interval() time.Duration {
	return w.interval
}

func (w *Watcher) current(gen uint64) bool {
	return w.state == Running && w.generation == gen
}

func (w *Watcher) schedule(gen uint64) {
	w.pending = w.scheduler.AfterFunc(w.interval, func() {
		w.tick(gen)
	})
}

func (w *Watcher) tick(gen uint64) {
	// stale callback from a previous run
	if !w.current(gen) {
		return
	}

	w.pending = nil
	w.sample()

	// onChange may have stopped the watcher
	if w.current(gen) {
		w.schedule(gen)
	}
}

func (w *Watcher) sample() {
	dark := w.sampler.IsDark()
	if w.last != nil && *w.last == dark {
		return
	}

	w.last = &dark
	w.log.Info("Watcher", "system theme changed", map[string]interface{}{
		"dark": dark,
	})
	w.onChange(dark)
}
