package sync

import (
	stdsync "sync"

	"fyne.io/fyne/v2"

	"winget-installer/internal/models"
)

type UpdateType int

const (
	UpdateTypeStatus UpdateType = iota
	UpdateTypeSearchResults
	UpdateTypeNotice
)

type Update struct {
	Type UpdateType
	Data interface{}
}

// Coordinator carries updates from worker goroutines to the UI goroutine.
// It implements services.Reporter.
type Coordinator struct {
	updateChan chan *Update
	done       chan struct{}
	stopOnce   stdsync.Once
	dispatch   func(func())
	processor  *UpdateProcessor
}

// NewCoordinator creates a coordinator that applies updates through fyne.Do
func NewCoordinator() *Coordinator {
	return NewCoordinatorWithDispatch(fyne.Do, 100)
}

// NewCoordinatorWithDispatch lets callers choose how updates reach the UI goroutine
func NewCoordinatorWithDispatch(dispatch func(func()), buffer int) *Coordinator {
	return &Coordinator{
		updateChan: make(chan *Update, buffer),
		done:       make(chan struct{}),
		dispatch:   dispatch,
		processor:  NewUpdateProcessor(),
	}
}

// ScheduleUpdate queues an update; it reports false when the queue is full
// and the update was dropped.
func (c *Coordinator) ScheduleUpdate(update *Update) bool {
	select {
	case c.updateChan <- update:
		return true
	default:
		return false
	}
}

func (c *Coordinator) Run() {
	for {
		select {
		case update := <-c.updateChan:
			c.dispatch(func() {
				c.processor.ProcessUpdate(update)
			})
		case <-c.done:
			return
		}
	}
}

func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}

// Shutdown stops the update loop
func (c *Coordinator) Shutdown() {
	c.Stop()
}

func (c *Coordinator) SetStatus(status string) {
	c.ScheduleUpdate(&Update{Type: UpdateTypeStatus, Data: status})
}

func (c *Coordinator) SetSearchResults(text string) {
	c.ScheduleUpdate(&Update{Type: UpdateTypeSearchResults, Data: text})
}

func (c *Coordinator) Notify(notice models.Notice) {
	c.ScheduleUpdate(&Update{Type: UpdateTypeNotice, Data: notice})
}

func (c *Coordinator) SetStatusBar(statusBar StatusBarHandler) {
	c.processor.SetStatusBar(statusBar)
}

func (c *Coordinator) SetResultsPanel(panel ResultsHandler) {
	c.processor.SetResultsPanel(panel)
}

func (c *Coordinator) SetNoticeHandler(handler NoticeHandler) {
	c.processor.SetNoticeHandler(handler)
}
