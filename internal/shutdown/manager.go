package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"winget-installer/internal/logger"
)

// DefaultTimeout bounds how long a single component may take to stop
const DefaultTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

type entry struct {
	name      string
	component Shutdownable
}

type Manager struct {
	components []entry
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
	stopSignal func()
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: DefaultTimeout,
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SetTimeout changes the per-component shutdown timeout
func (m *Manager) SetTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

// Register adds a component; components stop in reverse registration order
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, entry{name: name, component: component})
}

// Listen reacts to SIGINT or SIGTERM. A nil onSignal runs Shutdown on the
// signal goroutine; otherwise onSignal decides where Shutdown runs.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	m.mu.Lock()
	m.stopSignal = func() { signal.Stop(sigChan) }
	m.mu.Unlock()

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal()
				return
			}
			m.Shutdown()
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
		close(m.done)
	}
	components := append([]entry(nil), m.components...)
	timeout := m.timeout
	stopSignal := m.stopSignal
	m.mu.Unlock()

	if stopSignal != nil {
		stopSignal()
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	m.cancel()

	for i := len(components) - 1; i >= 0; i-- {
		if err := m.stop(components[i], timeout); err != nil {
			m.logger.Error("ShutdownManager", err, map[string]interface{}{
				"component": components[i].name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) stop(e entry, timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.component.Shutdown()
	}()

	select {
	case <-done:
		m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
			"component": e.name,
		})
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("%s did not stop within %s", e.name, timeout)
	}
}

// Context is cancelled when Shutdown starts; long-running work derives from it
func (m *Manager) Context() context.Context {
	return m.ctx
}
